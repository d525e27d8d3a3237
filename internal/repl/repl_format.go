package repl

import (
	"fmt"
	"io"

	"github.com/sunholo/hindley/internal/infer"
	"github.com/sunholo/hindley/internal/lexer"
)

// RunExample looks up name in Examples, runs it through inference against
// the REPL's current environment, and renders the result or diagnostics.
// name is normalized first since it's user-typed input becoming a lookup
// key, the same boundary manifest.Load normalizes at (lexer.Normalize's
// doc comment).
func (r *REPL) RunExample(name string, out io.Writer) {
	name = string(lexer.Normalize([]byte(name)))
	ex, ok := Lookup(name)
	if !ok {
		fmt.Fprintf(out, "%s: no such example %q (try :list)\n", red("Error"), name)
		return
	}

	expr := ex.Build()
	ctx := r.ctx.Fresh()
	result := infer.InferExpr(ctx, expr)

	if ctx.Sink().Failed() {
		r.printDiagnostics(ctx, out)
		return
	}

	fmt.Fprintf(out, "%s : %s\n", cyan(name), yellow(result.String()))
}

func (r *REPL) printDiagnostics(ctx *infer.Ctx, out io.Writer) {
	for _, rep := range ctx.Sink().Reports {
		fmt.Fprintf(out, "%s[%s] %s: %s\n", red("error"), rep.Code, rep.Span.Start.String(), rep.Message)
	}
}
