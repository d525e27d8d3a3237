package infer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sunholo/hindley/internal/ast"
	"github.com/sunholo/hindley/internal/errors"
)

func TestInferTypeExprUnit(t *testing.T) {
	got := InferTypeExpr(NewCtx(), &ast.TypeUnit{})
	assert.Equal(t, "()", got.String())
}

func TestInferTypeExprUnboundVariableIsTYP002(t *testing.T) {
	ctx := NewCtx()
	got := InferTypeExpr(ctx, &ast.TypeVariable{Name: "a"})
	assert.True(t, ctx.Sink().Failed())
	assert.Equal(t, errors.TYP002, ctx.Sink().Reports[0].Code)
	assert.Equal(t, "ERROR", got.String())
}

func TestInferTypeExprVariableInScope(t *testing.T) {
	ctx := NewCtx().ExtendTypes("a")
	got := InferTypeExpr(ctx, &ast.TypeVariable{Name: "a"})
	assert.False(t, ctx.Sink().Failed())
	assert.Equal(t, "a", got.String())
}

func TestInferTypeExprArrow(t *testing.T) {
	te := &ast.TypeArrow{Domain: &ast.TypeUnit{}, Codomain: &ast.TypeUnit{}}
	got := InferTypeExpr(NewCtx(), te)
	assert.Equal(t, "(() -> ())", got.String())
}

func TestInferTypeExprTuple(t *testing.T) {
	te := &ast.TypeTuple{Elems: []ast.TypeExpr{&ast.TypeUnit{}, &ast.TypeUnit{}}}
	got := InferTypeExpr(NewCtx(), te)
	assert.Equal(t, "((), ())", got.String())
}

func TestInferTypeExprForallInstantiatesFreshEachTime(t *testing.T) {
	te := &ast.TypeForall{
		Args: []string{"a"},
		Body: &ast.TypeArrow{Domain: &ast.TypeVariable{Name: "a"}, Codomain: &ast.TypeVariable{Name: "a"}},
	}
	ctx := NewCtx()
	got := InferTypeExpr(ctx, te)
	assert.False(t, ctx.Sink().Failed())
	assert.Contains(t, got.String(), "->")
	again := InferTypeExpr(ctx, te)
	assert.NotEqual(t, got.String(), again.String())
}

func TestInferTypeExprAppNullary(t *testing.T) {
	got := InferTypeExpr(NewCtx(), &ast.TypeApp{Ctor: "Int"})
	assert.Equal(t, "Int", got.String())
}

func TestInferTypeExprAppWithArgs(t *testing.T) {
	te := &ast.TypeApp{Ctor: "List", Args: []ast.TypeExpr{&ast.TypeUnit{}}}
	got := InferTypeExpr(NewCtx(), te)
	assert.Equal(t, "List ()", got.String())
}
