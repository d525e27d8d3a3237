package infer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sunholo/hindley/internal/ast"
	"github.com/sunholo/hindley/internal/types"
)

func TestExtendShadowsAndLookupFindsNewest(t *testing.T) {
	ctx := NewCtx()
	ctx = ctx.Extend("x", types.ToScheme(&types.NamedVariable{Name: "Int"}))
	ctx = ctx.Extend("x", types.ToScheme(&types.NamedVariable{Name: "Bool"}))

	scheme, ok := ctx.Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, "Bool", scheme.Body.String())
}

func TestExtendDoesNotMutateParent(t *testing.T) {
	base := NewCtx().Extend("x", types.ToScheme(&types.NamedVariable{Name: "Int"}))
	_ = base.Extend("y", types.ToScheme(&types.NamedVariable{Name: "Bool"}))

	_, ok := base.Lookup("y")
	assert.False(t, ok)
}

func TestLookupMissingIsFalse(t *testing.T) {
	_, ok := NewCtx().Lookup("nope")
	assert.False(t, ok)
}

func TestSetLevelAndLevel(t *testing.T) {
	ctx := NewCtx()
	assert.Equal(t, 0, ctx.Level())
	ctx = ctx.SetLevel(3)
	assert.Equal(t, 3, ctx.Level())
}

func TestNewHoleUsesContextLevel(t *testing.T) {
	ctx := NewCtx().SetLevel(2)
	h := ctx.NewHole()
	assert.Equal(t, 2, h.Ref().Level())
}

func TestNewNameIsUniqueAndMonotonic(t *testing.T) {
	ctx := NewCtx()
	a := ctx.NewName()
	b := ctx.NewName()
	assert.NotEqual(t, a, b)
	assert.Equal(t, "t0", a)
	assert.Equal(t, "t1", b)
}

func TestExtendConstructorAndLookup(t *testing.T) {
	ctx := NewCtx()
	scheme := types.ToScheme(&types.NamedVariable{Name: "Bool"})
	ctx = ctx.ExtendConstructor("True", 0, scheme)

	got, arity, ok := ctx.LookupConstructor("True")
	assert.True(t, ok)
	assert.Equal(t, 0, arity)
	assert.Equal(t, scheme, got)

	_, _, ok = ctx.LookupConstructor("False")
	assert.False(t, ok)
}

func TestErrorRecordsToSinkAndReturnsErrorType(t *testing.T) {
	ctx := NewCtx().SetPosition(ast.Pos{File: "f", Line: 1, Column: 1})
	result := ctx.Error("TYP001", "boom")

	assert.Equal(t, types.Error, result)
	assert.True(t, ctx.Sink().Failed())
	assert.Equal(t, "TYP001", ctx.Sink().Reports[0].Code)
}
