package infer

import (
	"github.com/sunholo/hindley/internal/ast"
	"github.com/sunholo/hindley/internal/errors"
	"github.com/sunholo/hindley/internal/types"
)

// InferExpr produces a MonoType for e under ctx, per the rules of
// spec.md §4.E. All rules first update the context's source position.
func InferExpr(ctx *Ctx, e ast.Expr) types.MonoType {
	ctx = ctx.SetPosition(e.Position())

	switch e := e.(type) {
	case *ast.Unit:
		return &types.NamedVariable{Name: "()"}

	case *ast.Number:
		return &types.NamedVariable{Name: "Int"}

	case *ast.Boolean:
		return &types.NamedVariable{Name: "Bool"}

	case *ast.Tuple:
		elems := make([]types.MonoType, len(e.Elems))
		for i, sub := range e.Elems {
			elems[i] = InferExpr(ctx, sub)
		}
		return &types.Tuple{Elems: elems}

	case *ast.Identifier:
		scheme, ok := ctx.Lookup(e.Name)
		if !ok {
			scheme, _, ok = ctx.LookupConstructor(e.Name)
		}
		if !ok {
			return ctx.Error(errors.TYP001, "unbound variable '"+e.Name+"'")
		}
		return ctx.Instantiate(scheme)

	case *ast.Application:
		funcType := InferExpr(ctx, e.Func)
		argType := InferExpr(ctx, e.Arg)
		ret := ctx.NewHole()
		if ok, msg := Unify(funcType, &types.Arrow{Domain: argType, Codomain: ret}); !ok {
			code := errors.TYP003
			if msg == "cyclic type of infinite size" {
				code = errors.TYP004
			}
			return ctx.Error(code, msg)
		}
		return ret

	case *ast.Abstraction:
		paramType := ctx.NewHole()
		bodyCtx := ctx.Extend(e.Param, types.ToScheme(paramType))
		bodyType := InferExpr(bodyCtx, e.Body)
		return &types.Arrow{Domain: paramType, Codomain: bodyType}

	case *ast.Let:
		rhsCtx := ctx.SetLevel(ctx.Level() + 1)
		rhsType := InferExpr(rhsCtx, e.Value)
		scheme := Generalize(ctx, rhsType)
		bodyCtx := ctx.Extend(e.Name, scheme)
		return InferExpr(bodyCtx, e.Body)

	case *ast.Match:
		scrutineeType := InferExpr(ctx, e.Scrutinee)
		result := ctx.NewHole()
		for _, clause := range e.Clauses {
			patType, clauseCtx := InferPattern(ctx, clause.Pattern)
			if ok, msg := Unify(scrutineeType, patType); !ok {
				return ctx.Error(errors.TYP003, msg)
			}
			bodyType := InferExpr(clauseCtx, clause.Body)
			if ok, msg := Unify(bodyType, result); !ok {
				return ctx.Error(errors.TYP003, msg)
			}
		}
		return result

	case *ast.Annotation:
		annType := InferTypeExpr(ctx, e.Type)
		exprType := InferExpr(ctx, e.Expr)
		if ok, msg := Unify(exprType, annType); !ok {
			return ctx.Error(errors.TYP003, msg)
		}
		return annType
	}

	return ctx.Error(errors.TYP003, "unhandled expression")
}
