package infer

import (
	"github.com/sunholo/hindley/internal/ast"
	"github.com/sunholo/hindley/internal/errors"
	"github.com/sunholo/hindley/internal/types"
)

// InferTypeExpr converts a surface type expression into a MonoType, per
// spec.md §4.F. TypeVariable references a name already brought into scope
// by an enclosing TypeForall (or, at the top level, the manifest); a name
// with no such binder is a TYP002 error.
func InferTypeExpr(ctx *Ctx, t ast.TypeExpr) types.MonoType {
	ctx = ctx.SetPosition(t.Position())

	switch t := t.(type) {
	case *ast.TypeUnit:
		return &types.NamedVariable{Name: "()"}

	case *ast.TypeVariable:
		if !ctx.HasType(t.Name) {
			return ctx.Error(errors.TYP002, "unbound type variable '"+t.Name+"'")
		}
		return &types.NamedVariable{Name: t.Name}

	case *ast.TypeTuple:
		elems := make([]types.MonoType, len(t.Elems))
		for i, sub := range t.Elems {
			elems[i] = InferTypeExpr(ctx, sub)
		}
		return &types.Tuple{Elems: elems}

	case *ast.TypeArrow:
		domain := InferTypeExpr(ctx, t.Domain)
		codomain := InferTypeExpr(ctx, t.Codomain)
		return &types.Arrow{Domain: domain, Codomain: codomain}

	case *ast.TypeApp:
		args := make([]types.MonoType, len(t.Args))
		for i, sub := range t.Args {
			args[i] = InferTypeExpr(ctx, sub)
		}
		if len(args) == 0 {
			return &types.NamedVariable{Name: t.Ctor}
		}
		return &types.TypeApp{Name: t.Ctor, Args: args}

	case *ast.TypeForall:
		inner := ctx.ExtendTypes(t.Args...)
		body := InferTypeExpr(inner, t.Body)
		scheme := &types.TypeScheme{Quantifiers: t.Args, Body: body}
		return ctx.Instantiate(scheme)
	}

	return ctx.Error(errors.TYP003, "unhandled type expression")
}
