package types

// cell is the mutable payload shared by every MonoType referencing a given
// Hole. Identity (pointer equality), not content, is what makes two Holes
// "the same hole" — see spec.md §3 invariant and DESIGN.md component A.
type cell struct {
	name  string
	lvl   int      // meaningful only while filledTo == nil
	filledTo MonoType // nil while Empty
}

// HoleRef is a shared, mutable reference to a unification cell. It is the
// exported identity/ordering handle for a Hole; spec.md §3 requires holes
// to be usable as map keys (by identity) during generalization, which a Go
// pointer already provides directly.
type HoleRef cell

// NewHole allocates a fresh, Empty hole at the given level and wraps it as
// a MonoType.
func NewHole(name string, level int) *Hole {
	return &Hole{cell: &cell{name: name, lvl: level}}
}

// Name returns the hole's display name (diagnostics only).
func (r *HoleRef) Name() string { return r.name }

// Filled reports whether the hole has been filled, and its payload.
func (r *HoleRef) Filled() (MonoType, bool) { return (*cell)(r).filled() }

// Level returns the hole's current level. Only meaningful while Empty;
// once Filled the level of the cell itself is no longer consulted.
func (r *HoleRef) Level() int { return (*cell)(r).level() }

// Same reports whether two HoleRefs wrap the same underlying cell
// (identity, not structural equality) — spec.md §3.
func (r *HoleRef) Same(other *HoleRef) bool { return r == other }

// Fill sets an Empty hole's payload. Per spec.md §3 invariant 3, a hole
// that was once Filled is never unfilled; Fill panics if called twice,
// since that would indicate a bug in the unifier, not a user-facing error.
func (r *HoleRef) Fill(t MonoType) {
	c := (*cell)(r)
	if c.filledTo != nil {
		panic("types: hole filled twice")
	}
	c.filledTo = t
}

// LowerLevel lowers an Empty hole's level to min(current, to). Per spec.md
// §3 invariant 2, level never increases. Filled holes ignore this — their
// level is no longer meaningful.
func (r *HoleRef) LowerLevel(to int) {
	c := (*cell)(r)
	if c.filledTo != nil {
		return
	}
	if to < c.lvl {
		c.lvl = to
	}
}

func (c *cell) filled() (MonoType, bool) {
	if c.filledTo == nil {
		return nil, false
	}
	return c.filledTo, true
}

func (c *cell) level() int { return c.lvl }

// RealType follows a chain of Filled holes to the first non-Hole type, or
// the final Empty hole if the chain ends there. It never mutates (no
// path-compression on this type; callers that want to shortcut chains on
// read may do so using the Hole/HoleRef identity directly).
func RealType(t MonoType) MonoType {
	for {
		h, ok := t.(*Hole)
		if !ok {
			return t
		}
		filled, ok := h.cell.filled()
		if !ok {
			return t
		}
		t = filled
	}
}
