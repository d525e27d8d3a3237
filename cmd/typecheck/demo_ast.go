package main

import (
	"fmt"

	"github.com/sunholo/hindley/internal/ast"
	"github.com/sunholo/hindley/internal/infer"
	"github.com/sunholo/hindley/internal/types"
)

func p(line, col int) ast.Pos { return ast.Pos{File: "<demo>", Line: line, Column: col} }

// DemoLetPolymorphism builds `let id = \x. x in (id 0, id true)` by hand
// and shows that `id` gets a fresh instantiation at each use site.
func DemoLetPolymorphism() {
	fmt.Println()
	fmt.Println("let id = \\x. x in (id 0, id true)")
	fmt.Println("----------------------------------")

	expr := &ast.Let{
		Pos:  p(1, 1),
		Name: "id",
		Value: &ast.Abstraction{
			Pos:   p(1, 10),
			Param: "x",
			Body:  &ast.Identifier{Pos: p(1, 15), Name: "x"},
		},
		Body: &ast.Tuple{
			Pos: p(1, 20),
			Elems: []ast.Expr{
				&ast.Application{
					Pos:  p(1, 21),
					Func: &ast.Identifier{Pos: p(1, 21), Name: "id"},
					Arg:  &ast.Number{Pos: p(1, 24), Value: 0},
				},
				&ast.Application{
					Pos:  p(1, 28),
					Func: &ast.Identifier{Pos: p(1, 28), Name: "id"},
					Arg:  &ast.Boolean{Pos: p(1, 31), Value: true},
				},
			},
		},
	}

	ctx := infer.NewCtx()
	result := infer.InferExpr(ctx, expr)
	if ctx.Sink().Failed() {
		reportFailures(ctx)
		return
	}
	fmt.Printf("Inferred type: %s\n", result.String())
}

// DemoOccursCheck builds `let f = \x. x x in f`, which has no finite
// monomorphic type: inferring `x x` requires `x` to unify with a function
// from itself to a hole, an infinite type, so this is expected to fail
// with a cyclic-type diagnostic rather than a type.
func DemoOccursCheck() {
	fmt.Println()
	fmt.Println("let f = \\x. x x in f")
	fmt.Println("---------------------")

	xRef1 := &ast.Identifier{Pos: p(1, 14), Name: "x"}
	xRef2 := &ast.Identifier{Pos: p(1, 16), Name: "x"}
	expr := &ast.Let{
		Pos:  p(1, 1),
		Name: "f",
		Value: &ast.Abstraction{
			Pos:   p(1, 9),
			Param: "x",
			Body:  &ast.Application{Pos: p(1, 14), Func: xRef1, Arg: xRef2},
		},
		Body: &ast.Identifier{Pos: p(1, 20), Name: "f"},
	}

	ctx := infer.NewCtx()
	infer.InferExpr(ctx, expr)
	if ctx.Sink().Failed() {
		reportFailures(ctx)
		return
	}
	fmt.Println("(no error recorded — this should not happen)")
}

// DemoConstructorPattern declares an Option type by hand (the way
// internal/manifest does it from YAML) and matches on it, showing that
// pattern.go resolves constructor arity and field types against the
// environment rather than treating ADTs as inert.
func DemoConstructorPattern() {
	fmt.Println()
	fmt.Println("type Option a = None | Some a")
	fmt.Println("match Some 1 with None => 0 | Some n => n")
	fmt.Println("-------------------------------------------")

	noneScheme := types.BuildConstructorScheme("Option", []string{"a"}, nil)
	someScheme := types.BuildConstructorScheme("Option", []string{"a"}, []types.MonoType{&types.NamedVariable{Name: "a"}})

	ctx := infer.NewCtx()
	ctx = ctx.ExtendConstructor("None", 0, noneScheme)
	ctx = ctx.ExtendConstructor("Some", 1, someScheme)

	expr := &ast.Match{
		Pos: p(1, 1),
		Scrutinee: &ast.Application{
			Pos:  p(1, 7),
			Func: &ast.Identifier{Pos: p(1, 7), Name: "Some"},
			Arg:  &ast.Number{Pos: p(1, 12), Value: 1},
		},
		Clauses: []ast.MatchClause{
			{
				Pattern: &ast.PatternConstructor{Pos: p(1, 20), Name: "None"},
				Body:    &ast.Number{Pos: p(1, 28), Value: 0},
			},
			{
				Pattern: &ast.PatternConstructor{
					Pos:  p(1, 32),
					Name: "Some",
					Args: []ast.Pattern{&ast.PatternIdentifier{Pos: p(1, 37), Name: "n"}},
				},
				Body: &ast.Identifier{Pos: p(1, 42), Name: "n"},
			},
		},
	}

	result := infer.InferExpr(ctx, expr)
	if ctx.Sink().Failed() {
		reportFailures(ctx)
		return
	}
	fmt.Printf("Inferred type: %s\n", result.String())
}

func reportFailures(ctx *infer.Ctx) {
	for _, rep := range ctx.Sink().Reports {
		fmt.Printf("[%s] %s: %s\n", rep.Code, rep.Span.Start.String(), rep.Message)
	}
}
