package types

// Substitution maps free type-variable names to MonoTypes.
type Substitution map[string]MonoType

// Substitute replaces every NamedVariable(n) in t with sub[n] when present.
// Filled holes are followed and their target substituted; Empty holes are
// preserved by identity; ErrorType is preserved. Substitute never mutates
// t — it returns a new tree sharing unchanged subtrees (spec.md §4.A).
func Substitute(t MonoType, sub Substitution) MonoType {
	switch t := t.(type) {
	case *NamedVariable:
		if repl, ok := sub[t.Name]; ok {
			return repl
		}
		return t

	case *Tuple:
		elems := make([]MonoType, len(t.Elems))
		changed := false
		for i, e := range t.Elems {
			elems[i] = Substitute(e, sub)
			if elems[i] != e {
				changed = true
			}
		}
		if !changed {
			return t
		}
		return &Tuple{Elems: elems}

	case *TypeApp:
		args := make([]MonoType, len(t.Args))
		changed := false
		for i, a := range t.Args {
			args[i] = Substitute(a, sub)
			if args[i] != a {
				changed = true
			}
		}
		if !changed {
			return t
		}
		return &TypeApp{Name: t.Name, Args: args}

	case *Arrow:
		domain := Substitute(t.Domain, sub)
		codomain := Substitute(t.Codomain, sub)
		if domain == t.Domain && codomain == t.Codomain {
			return t
		}
		return &Arrow{Domain: domain, Codomain: codomain}

	case *Hole:
		if filled, ok := t.cell.filled(); ok {
			return Substitute(filled, sub)
		}
		return t

	case ErrorType:
		return t

	default:
		return t
	}
}
