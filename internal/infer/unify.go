package infer

import "github.com/sunholo/hindley/internal/types"

// Unify attempts to unify t1 and t2, mutating holes in place. It returns a
// human-readable message on failure instead of an error so callers can
// decide how to turn it into a *errors.Report with the right code and
// position (spec.md §4.C).
func Unify(t1, t2 types.MonoType) (ok bool, message string) {
	t1 = types.RealType(t1)
	t2 = types.RealType(t2)

	switch a := t1.(type) {
	case *types.NamedVariable:
		if b, isVar := t2.(*types.NamedVariable); isVar && a.Name == b.Name {
			return true, ""
		}
		if h, isHole := t2.(*types.Hole); isHole {
			return unifyHole(h, t1)
		}
		if _, isErr := t2.(types.ErrorType); isErr {
			return true, ""
		}
		return false, "type mismatch between " + t1.String() + " and " + t2.String()

	case *types.Arrow:
		b, isArrow := t2.(*types.Arrow)
		switch {
		case isArrow:
			if ok, msg := Unify(a.Domain, b.Domain); !ok {
				return false, msg
			}
			return Unify(a.Codomain, b.Codomain)
		default:
			if h, isHole := t2.(*types.Hole); isHole {
				return unifyHole(h, t1)
			}
			if _, isErr := t2.(types.ErrorType); isErr {
				return true, ""
			}
			return false, "type mismatch between " + t1.String() + " and " + t2.String()
		}

	case *types.Tuple:
		b, isTuple := t2.(*types.Tuple)
		switch {
		case isTuple:
			if len(a.Elems) != len(b.Elems) {
				return false, "type mismatch between " + t1.String() + " and " + t2.String()
			}
			for i := range a.Elems {
				if ok, msg := Unify(a.Elems[i], b.Elems[i]); !ok {
					return false, msg
				}
			}
			return true, ""
		default:
			if h, isHole := t2.(*types.Hole); isHole {
				return unifyHole(h, t1)
			}
			if _, isErr := t2.(types.ErrorType); isErr {
				return true, ""
			}
			return false, "type mismatch between " + t1.String() + " and " + t2.String()
		}

	case *types.TypeApp:
		b, isApp := t2.(*types.TypeApp)
		switch {
		case isApp:
			if a.Name != b.Name || len(a.Args) != len(b.Args) {
				return false, "type mismatch between " + t1.String() + " and " + t2.String()
			}
			for i := range a.Args {
				if ok, msg := Unify(a.Args[i], b.Args[i]); !ok {
					return false, msg
				}
			}
			return true, ""
		default:
			if h, isHole := t2.(*types.Hole); isHole {
				return unifyHole(h, t1)
			}
			if _, isErr := t2.(types.ErrorType); isErr {
				return true, ""
			}
			return false, "type mismatch between " + t1.String() + " and " + t2.String()
		}

	case *types.Hole:
		return unifyHole(a, t2)

	case types.ErrorType:
		return true, ""
	}

	if _, isErr := t2.(types.ErrorType); isErr {
		return true, ""
	}
	return false, "type mismatch between " + t1.String() + " and " + t2.String()
}

// unifyHole unifies hole h with τ (τ may itself be a hole; RealType on the
// caller side has already dereferenced filled holes on both sides except
// for h itself, which unifyHole is responsible for, since it may be the
// side that is Filled when called directly from the *types.Hole case
// above). Spec.md §4.C.
func unifyHole(h *types.Hole, t types.MonoType) (ok bool, message string) {
	ref := h.Ref()
	if filled, isFilled := ref.Filled(); isFilled {
		return Unify(filled, t)
	}

	// Hole-vs-hole: two distinct empty holes unify by filling one with the
	// other; identical holes succeed without filling.
	if otherHole, isHole := t.(*types.Hole); isHole {
		otherRef := otherHole.Ref()
		if ref.Same(otherRef) {
			return true, ""
		}
		if filled, isFilled := otherRef.Filled(); isFilled {
			return unifyHole(h, filled)
		}
	}

	// Error absorbs without constraining: the hole is left empty rather than
	// filled with ERROR, so an unrelated diagnostic can't cascade into the
	// hole's own (otherwise untouched) type (spec.md §4.C rule 5, §9).
	if _, isErr := t.(types.ErrorType); isErr {
		return true, ""
	}

	if cyclic := occursCheckAndLowerLevels(ref, t); cyclic {
		return false, "cyclic type of infinite size"
	}

	ref.Fill(t)
	return true, ""
}

// occursCheckAndLowerLevels walks τ (following Filled holes), and for
// every distinct Empty hole h' encountered lowers its level to
// min(level(h'), level(h)). Returns true iff h occurs in τ (a cycle).
func occursCheckAndLowerLevels(h *types.HoleRef, t types.MonoType) (cyclic bool) {
	switch t := t.(type) {
	case *types.Hole:
		other := t.Ref()
		if h.Same(other) {
			return true
		}
		if filled, isFilled := other.Filled(); isFilled {
			return occursCheckAndLowerLevels(h, filled)
		}
		other.LowerLevel(h.Level())
		return false

	case *types.Tuple:
		for _, e := range t.Elems {
			if occursCheckAndLowerLevels(h, e) {
				return true
			}
		}
		return false

	case *types.Arrow:
		if occursCheckAndLowerLevels(h, t.Domain) {
			return true
		}
		return occursCheckAndLowerLevels(h, t.Codomain)

	case *types.TypeApp:
		for _, a := range t.Args {
			if occursCheckAndLowerLevels(h, a) {
				return true
			}
		}
		return false

	default:
		return false
	}
}
