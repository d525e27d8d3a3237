package infer

import "github.com/sunholo/hindley/internal/types"

// Instantiate replaces every quantified name in scheme with a fresh hole
// allocated at ctx's current level, and applies the resulting substitution
// to the scheme's body. Two instantiations of the same scheme always
// produce holes with disjoint identities (spec.md §4.D, §8 "Instantiation
// freshness").
func (c *Ctx) Instantiate(scheme *types.TypeScheme) types.MonoType {
	if len(scheme.Quantifiers) == 0 {
		return scheme.Body
	}
	sub := make(types.Substitution, len(scheme.Quantifiers))
	for _, name := range scheme.Quantifiers {
		sub[name] = c.NewHole()
	}
	return types.Substitute(scheme.Body, sub)
}

// Generalize promotes τ to a scheme at context c: every Empty hole
// reachable by following Filled holes, whose level is strictly greater
// than c.Level(), is quantified under a fresh name; holes at or below
// c.Level() are "older" and are left shared with the outer scope
// (spec.md §4.D).
func Generalize(c *Ctx, t types.MonoType) *types.TypeScheme {
	g := &generalizer{ctx: c, names: map[*types.HoleRef]string{}}
	body := g.walk(t)
	return &types.TypeScheme{Quantifiers: g.order, Body: body}
}

type generalizer struct {
	ctx   *Ctx
	names map[*types.HoleRef]string
	order []string
}

func (g *generalizer) walk(t types.MonoType) types.MonoType {
	switch t := t.(type) {
	case *types.Hole:
		ref := t.Ref()
		if filled, ok := ref.Filled(); ok {
			return g.walk(filled)
		}
		if ref.Level() <= g.ctx.Level() {
			// Older than this scope: stays shared, left as a Hole.
			return t
		}
		if name, seen := g.names[ref]; seen {
			return &types.NamedVariable{Name: name}
		}
		name := g.ctx.NewName()
		g.names[ref] = name
		g.order = append(g.order, name)
		return &types.NamedVariable{Name: name}

	case *types.Tuple:
		elems := make([]types.MonoType, len(t.Elems))
		for i, e := range t.Elems {
			elems[i] = g.walk(e)
		}
		return &types.Tuple{Elems: elems}

	case *types.Arrow:
		return &types.Arrow{Domain: g.walk(t.Domain), Codomain: g.walk(t.Codomain)}

	case *types.TypeApp:
		args := make([]types.MonoType, len(t.Args))
		for i, a := range t.Args {
			args[i] = g.walk(a)
		}
		return &types.TypeApp{Name: t.Name, Args: args}

	default:
		return t
	}
}
