package infer

import (
	"strconv"

	"github.com/sunholo/hindley/internal/ast"
	"github.com/sunholo/hindley/internal/errors"
	"github.com/sunholo/hindley/internal/types"
)

// InferPattern produces the MonoType a pattern matches and the context
// extended with every name it binds, per spec.md §4.F. A name bound twice
// within the same pattern is a TYP005 error; the walk still returns a
// context (extended with the first binding) so the caller can keep
// checking the body without cascading unrelated failures.
func InferPattern(ctx *Ctx, p ast.Pattern) (types.MonoType, *Ctx) {
	seen := map[string]bool{}
	return inferPattern(ctx, p, seen)
}

func inferPattern(ctx *Ctx, p ast.Pattern, seen map[string]bool) (types.MonoType, *Ctx) {
	ctx = ctx.SetPosition(p.Position())

	switch p := p.(type) {
	case *ast.PatternUnit:
		return &types.NamedVariable{Name: "()"}, ctx

	case *ast.PatternNumber:
		return &types.NamedVariable{Name: "Int"}, ctx

	case *ast.PatternBoolean:
		return &types.NamedVariable{Name: "Bool"}, ctx

	case *ast.PatternTuple:
		elems := make([]types.MonoType, len(p.Elems))
		for i, sub := range p.Elems {
			var elemType types.MonoType
			elemType, ctx = inferPattern(ctx, sub, seen)
			elems[i] = elemType
		}
		return &types.Tuple{Elems: elems}, ctx

	case *ast.PatternConstructor:
		return inferConstructorPattern(ctx, p.Name, p.Args, seen)

	case *ast.PatternIdentifier:
		if scheme, arity, ok := ctx.LookupConstructor(p.Name); ok && arity == 0 {
			return ctx.Instantiate(scheme), ctx
		}
		if seen[p.Name] {
			errType := ctx.Error(errors.TYP005, "identifier '"+p.Name+"' bound more than once in this pattern")
			return errType, ctx
		}
		seen[p.Name] = true
		varType := ctx.NewHole()
		return varType, ctx.Extend(p.Name, types.ToScheme(varType))
	}

	errType := ctx.Error(errors.TYP003, "unhandled pattern")
	return errType, ctx
}

func inferConstructorPattern(ctx *Ctx, name string, args []ast.Pattern, seen map[string]bool) (types.MonoType, *Ctx) {
	scheme, arity, ok := ctx.LookupConstructor(name)
	if !ok {
		errType := ctx.Error(errors.TYP001, "unbound constructor '"+name+"'")
		return errType, ctx
	}
	if arity != len(args) {
		errType := ctx.Error(errors.TYP003, "constructor '"+name+"' expects "+strconv.Itoa(arity)+" argument(s), got "+strconv.Itoa(len(args)))
		return errType, ctx
	}

	ctorType := ctx.Instantiate(scheme)
	result := ctorType
	argTypes := make([]types.MonoType, 0, len(args))
	for range args {
		arrow, isArrow := result.(*types.Arrow)
		if !isArrow {
			errType := ctx.Error(errors.TYP003, "constructor '"+name+"' applied to too many arguments")
			return errType, ctx
		}
		argTypes = append(argTypes, arrow.Domain)
		result = arrow.Codomain
	}

	for i, sub := range args {
		var patType types.MonoType
		patType, ctx = inferPattern(ctx, sub, seen)
		if ok, msg := Unify(patType, argTypes[i]); !ok {
			ctx.Error(errors.TYP003, msg)
		}
	}

	return result, ctx
}
