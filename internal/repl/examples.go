package repl

import (
	"github.com/sunholo/hindley/internal/ast"
)

// Example is a named, hand-built AST the REPL can run through inference.
// There is no parser in this engine (spec.md §1): a real front end is an
// external collaborator, so the interactive driver demonstrates the
// engine against expressions built directly with internal/ast, exactly
// the way spec.md §8's scenarios are phrased.
type Example struct {
	Name        string
	Description string
	Build       func() ast.Expr
}

func pos(line, col int) ast.Pos { return ast.Pos{File: "<repl>", Line: line, Column: col} }

// Examples is the fixed catalog offered by `:list` and run by `:infer`.
var Examples = []Example{
	{
		Name:        "identity",
		Description: "\\x. x  ::  forall a. a -> a",
		Build: func() ast.Expr {
			return &ast.Abstraction{
				Pos:   pos(1, 1),
				Param: "x",
				Body:  &ast.Identifier{Pos: pos(1, 6), Name: "x"},
			}
		},
	},
	{
		Name:        "let-polymorphism",
		Description: "let id = \\x. x in (id 0, id true)  -- id used at two types",
		Build: func() ast.Expr {
			id := &ast.Abstraction{
				Pos:   pos(1, 10),
				Param: "x",
				Body:  &ast.Identifier{Pos: pos(1, 15), Name: "x"},
			}
			return &ast.Let{
				Pos:   pos(1, 1),
				Name:  "id",
				Value: id,
				Body: &ast.Tuple{
					Pos: pos(1, 20),
					Elems: []ast.Expr{
						&ast.Application{
							Pos:  pos(1, 21),
							Func: &ast.Identifier{Pos: pos(1, 21), Name: "id"},
							Arg:  &ast.Number{Pos: pos(1, 24), Value: 0},
						},
						&ast.Application{
							Pos:  pos(1, 28),
							Func: &ast.Identifier{Pos: pos(1, 28), Name: "id"},
							Arg:  &ast.Boolean{Pos: pos(1, 31), Value: true},
						},
					},
				},
			}
		},
	},
	{
		Name:        "self-application-cycle",
		Description: "let f = \\x. x x in f  -- triggers the occurs check (TYP004)",
		Build: func() ast.Expr {
			x := &ast.Identifier{Pos: pos(1, 14), Name: "x"}
			selfApp := &ast.Abstraction{
				Pos:   pos(1, 9),
				Param: "x",
				Body:  &ast.Application{Pos: pos(1, 14), Func: x, Arg: x},
			}
			return &ast.Let{
				Pos:   pos(1, 1),
				Name:  "f",
				Value: selfApp,
				Body:  &ast.Identifier{Pos: pos(1, 20), Name: "f"},
			}
		},
	},
	{
		Name:        "unbound-variable",
		Description: "mystery  -- triggers TYP001",
		Build: func() ast.Expr {
			return &ast.Identifier{Pos: pos(1, 1), Name: "mystery"}
		},
	},
	{
		Name:        "non-linear-pattern",
		Description: "match (0, 0) with (x, x) => x  -- triggers TYP005",
		Build: func() ast.Expr {
			return &ast.Match{
				Pos: pos(1, 1),
				Scrutinee: &ast.Tuple{
					Pos: pos(1, 7),
					Elems: []ast.Expr{
						&ast.Number{Pos: pos(1, 8), Value: 0},
						&ast.Number{Pos: pos(1, 11), Value: 0},
					},
				},
				Clauses: []ast.MatchClause{
					{
						Pattern: &ast.PatternTuple{
							Pos: pos(1, 16),
							Elems: []ast.Pattern{
								&ast.PatternIdentifier{Pos: pos(1, 17), Name: "x"},
								&ast.PatternIdentifier{Pos: pos(1, 20), Name: "x"},
							},
						},
						Body: &ast.Identifier{Pos: pos(1, 26), Name: "x"},
					},
				},
			}
		},
	},
	{
		Name:        "annotation-forall",
		Description: "(\\x. x : forall a. a -> a)  -- explicit polymorphic annotation",
		Build: func() ast.Expr {
			return &ast.Annotation{
				Pos: pos(1, 1),
				Expr: &ast.Abstraction{
					Pos:   pos(1, 2),
					Param: "x",
					Body:  &ast.Identifier{Pos: pos(1, 7), Name: "x"},
				},
				Type: &ast.TypeForall{
					Pos:  pos(1, 12),
					Args: []string{"a"},
					Body: &ast.TypeArrow{
						Pos:      pos(1, 22),
						Domain:   &ast.TypeVariable{Pos: pos(1, 22), Name: "a"},
						Codomain: &ast.TypeVariable{Pos: pos(1, 27), Name: "a"},
					},
				},
			}
		},
	},
	{
		Name:        "option-match",
		Description: "match Some 1 with None => 0 | Some n => n  -- needs a manifest declaring Option/None/Some",
		Build: func() ast.Expr {
			return &ast.Match{
				Pos: pos(1, 1),
				Scrutinee: &ast.Application{
					Pos:  pos(1, 7),
					Func: &ast.Identifier{Pos: pos(1, 7), Name: "Some"},
					Arg:  &ast.Number{Pos: pos(1, 12), Value: 1},
				},
				Clauses: []ast.MatchClause{
					{
						Pattern: &ast.PatternConstructor{Pos: pos(1, 20), Name: "None"},
						Body:    &ast.Number{Pos: pos(1, 28), Value: 0},
					},
					{
						Pattern: &ast.PatternConstructor{
							Pos:  pos(1, 32),
							Name: "Some",
							Args: []ast.Pattern{&ast.PatternIdentifier{Pos: pos(1, 37), Name: "n"}},
						},
						Body: &ast.Identifier{Pos: pos(1, 42), Name: "n"},
					},
				},
			}
		},
	},
}

// Lookup finds an example by name.
func Lookup(name string) (Example, bool) {
	for _, ex := range Examples {
		if ex.Name == name {
			return ex, true
		}
	}
	return Example{}, false
}
