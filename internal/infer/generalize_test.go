package infer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sunholo/hindley/internal/types"
)

func TestGeneralizeQuantifiesYoungHoles(t *testing.T) {
	ctx := NewCtx().SetLevel(0)
	inner := ctx.SetLevel(1)
	h := inner.NewHole()

	scheme := Generalize(ctx, h)
	assert.Len(t, scheme.Quantifiers, 1)
	assert.Equal(t, scheme.Quantifiers[0], scheme.Body.String())
}

func TestGeneralizeLeavesOlderHolesShared(t *testing.T) {
	ctx := NewCtx().SetLevel(1)
	h := ctx.NewHole() // allocated at level 1, same as ctx's generalization level

	scheme := Generalize(ctx, h)
	assert.Empty(t, scheme.Quantifiers)
	assert.Same(t, types.MonoType(h), scheme.Body)
}

func TestGeneralizeFollowsFilledHoles(t *testing.T) {
	ctx := NewCtx().SetLevel(0)
	h := types.NewHole("t0", 1)
	h.Ref().Fill(&types.NamedVariable{Name: "Int"})

	scheme := Generalize(ctx, h)
	assert.Empty(t, scheme.Quantifiers)
	assert.Equal(t, "Int", scheme.Body.String())
}

func TestGeneralizeSameHoleGetsSameQuantifierName(t *testing.T) {
	ctx := NewCtx().SetLevel(0)
	inner := ctx.SetLevel(1)
	h := inner.NewHole()

	pair := &types.Tuple{Elems: []types.MonoType{h, h}}
	scheme := Generalize(ctx, pair)
	tup := scheme.Body.(*types.Tuple)
	assert.Equal(t, tup.Elems[0].String(), tup.Elems[1].String())
	assert.Len(t, scheme.Quantifiers, 1)
}

func TestInstantiateProducesFreshHolesEachTime(t *testing.T) {
	ctx := NewCtx()
	scheme := &types.TypeScheme{
		Quantifiers: []string{"a"},
		Body:        &types.Arrow{Domain: &types.NamedVariable{Name: "a"}, Codomain: &types.NamedVariable{Name: "a"}},
	}

	t1 := ctx.Instantiate(scheme)
	t2 := ctx.Instantiate(scheme)

	arrow1 := t1.(*types.Arrow)
	arrow2 := t2.(*types.Arrow)
	h1 := arrow1.Domain.(*types.Hole)
	h2 := arrow2.Domain.(*types.Hole)
	assert.False(t, h1.Ref().Same(h2.Ref()))
}

func TestInstantiateTrivialSchemeReturnsBodyUnchanged(t *testing.T) {
	ctx := NewCtx()
	body := &types.NamedVariable{Name: "Int"}
	scheme := types.ToScheme(body)
	assert.Same(t, types.MonoType(body), ctx.Instantiate(scheme))
}
