package infer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sunholo/hindley/internal/ast"
	"github.com/sunholo/hindley/internal/errors"
	"github.com/sunholo/hindley/internal/types"
)

func baseCtx() *Ctx {
	ctx := NewCtx()
	ctx = ctx.Extend("zero", types.ToScheme(&types.NamedVariable{Name: "Int"}))
	ctx = ctx.Extend("true", types.ToScheme(&types.NamedVariable{Name: "Bool"}))
	return ctx
}

func TestInferExprLiterals(t *testing.T) {
	assert.Equal(t, "()", InferExpr(NewCtx(), &ast.Unit{}).String())
	assert.Equal(t, "Int", InferExpr(NewCtx(), &ast.Number{Value: 1}).String())
	assert.Equal(t, "Bool", InferExpr(NewCtx(), &ast.Boolean{Value: true}).String())
}

func TestInferExprUnboundIdentifierIsTYP001(t *testing.T) {
	ctx := NewCtx()
	got := InferExpr(ctx, &ast.Identifier{Name: "x"})
	assert.True(t, ctx.Sink().Failed())
	assert.Equal(t, errors.TYP001, ctx.Sink().Reports[0].Code)
	assert.Equal(t, "ERROR", got.String())
}

func TestInferExprIdentityFunction(t *testing.T) {
	// \x. x : forall a. a -> a, but inferred monomorphically at the binder.
	lambda := &ast.Abstraction{Param: "x", Body: &ast.Identifier{Name: "x"}}
	got := InferExpr(NewCtx(), lambda)
	arrow, ok := got.(*types.Arrow)
	assert.True(t, ok)
	assert.Equal(t, arrow.Domain.String(), arrow.Codomain.String())
}

func TestInferExprApplication(t *testing.T) {
	// (\x. x) zero : Int
	lambda := &ast.Abstraction{Param: "x", Body: &ast.Identifier{Name: "x"}}
	app := &ast.Application{Func: lambda, Arg: &ast.Identifier{Name: "zero"}}
	got := InferExpr(baseCtx(), app)
	assert.Equal(t, "Int", got.String())
}

func TestInferExprApplicationMismatchIsTYP003(t *testing.T) {
	lambda := &ast.Abstraction{Param: "x", Body: &ast.Annotation{
		Expr: &ast.Identifier{Name: "x"},
		Type: &ast.TypeApp{Ctor: "Int"},
	}}
	app := &ast.Application{Func: lambda, Arg: &ast.Identifier{Name: "true"}}
	ctx := baseCtx()
	got := InferExpr(ctx, app)
	assert.True(t, ctx.Sink().Failed())
	assert.Equal(t, errors.TYP003, ctx.Sink().Reports[0].Code)
	assert.Equal(t, "ERROR", got.String())
}

func TestInferExprTuple(t *testing.T) {
	tup := &ast.Tuple{Elems: []ast.Expr{&ast.Number{Value: 1}, &ast.Boolean{Value: true}}}
	got := InferExpr(NewCtx(), tup)
	assert.Equal(t, "(Int, Bool)", got.String())
}

func TestInferExprLetPolymorphism(t *testing.T) {
	// let id = \x. x in (id zero, id true)
	let := &ast.Let{
		Name:  "id",
		Value: &ast.Abstraction{Param: "x", Body: &ast.Identifier{Name: "x"}},
		Body: &ast.Tuple{Elems: []ast.Expr{
			&ast.Application{Func: &ast.Identifier{Name: "id"}, Arg: &ast.Identifier{Name: "zero"}},
			&ast.Application{Func: &ast.Identifier{Name: "id"}, Arg: &ast.Identifier{Name: "true"}},
		}},
	}
	ctx := baseCtx()
	got := InferExpr(ctx, let)
	assert.False(t, ctx.Sink().Failed())
	assert.Equal(t, "(Int, Bool)", got.String())
}

func TestInferExprLetGeneralizationOccursCheck(t *testing.T) {
	// let f = \x. x x in f : unifying x with (x -> _) is cyclic.
	let := &ast.Let{
		Name: "f",
		Value: &ast.Abstraction{
			Param: "x",
			Body:  &ast.Application{Func: &ast.Identifier{Name: "x"}, Arg: &ast.Identifier{Name: "x"}},
		},
		Body: &ast.Identifier{Name: "f"},
	}
	ctx := NewCtx()
	InferExpr(ctx, let)
	assert.True(t, ctx.Sink().Failed())
	assert.Equal(t, errors.TYP004, ctx.Sink().Reports[0].Code)
}

func TestInferExprMatchStopsAtFirstError(t *testing.T) {
	match := &ast.Match{
		Scrutinee: &ast.Number{Value: 1},
		Clauses: []ast.MatchClause{
			{Pattern: &ast.PatternBoolean{Value: true}, Body: &ast.Number{Value: 1}},
			{Pattern: &ast.PatternNumber{Value: 2}, Body: &ast.Boolean{Value: true}},
		},
	}
	ctx := NewCtx()
	InferExpr(ctx, match)
	assert.True(t, ctx.Sink().Failed())
	assert.Len(t, ctx.Sink().Reports, 1)
}

func TestInferExprMatchUnifiesClauseBodies(t *testing.T) {
	match := &ast.Match{
		Scrutinee: &ast.Number{Value: 1},
		Clauses: []ast.MatchClause{
			{Pattern: &ast.PatternNumber{Value: 0}, Body: &ast.Boolean{Value: true}},
			{Pattern: &ast.PatternIdentifier{Name: "n"}, Body: &ast.Boolean{Value: false}},
		},
	}
	ctx := NewCtx()
	got := InferExpr(ctx, match)
	assert.False(t, ctx.Sink().Failed())
	assert.Equal(t, "Bool", got.String())
}

func TestInferExprAnnotationForall(t *testing.T) {
	ann := &ast.Annotation{
		Expr: &ast.Abstraction{Param: "x", Body: &ast.Identifier{Name: "x"}},
		Type: &ast.TypeForall{
			Args: []string{"a"},
			Body: &ast.TypeArrow{Domain: &ast.TypeVariable{Name: "a"}, Codomain: &ast.TypeVariable{Name: "a"}},
		},
	}
	ctx := NewCtx()
	got := InferExpr(ctx, ann)
	assert.False(t, ctx.Sink().Failed())
	arrow := got.(*types.Arrow)
	assert.Equal(t, arrow.Domain.String(), arrow.Codomain.String())
}
