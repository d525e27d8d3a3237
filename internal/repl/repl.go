// Package repl is an interactive driver for the inference engine. There is
// no parser in this system (spec.md §1), so the REPL does not read
// arbitrary source text: it runs named, hand-built example expressions
// (examples.go) through internal/infer, optionally against an
// internal/manifest-declared environment, and renders the result.
package repl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/sunholo/hindley/internal/infer"
	"github.com/sunholo/hindley/internal/manifest"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
)

// REPL holds the current ambient type environment and version banner info.
type REPL struct {
	ctx           *infer.Ctx
	manifestPath  string
	version       string
	history       []string
}

// New creates a REPL with an empty environment (no primitives, no
// functions, no constructors besides what `:manifest` later loads).
func New(version string) *REPL {
	if version == "" {
		version = "dev"
	}
	return &REPL{ctx: infer.NewCtx(), version: version}
}

// LoadManifest replaces the REPL's environment with the one described by
// the manifest at path.
func (r *REPL) LoadManifest(path string) error {
	m, err := manifest.Load(path)
	if err != nil {
		return err
	}
	ctx, err := m.BuildContext()
	if err != nil {
		return fmt.Errorf("building context from %s: %w", path, err)
	}
	r.ctx = ctx
	r.manifestPath = path
	return nil
}

// Start runs the read-eval-print loop, reading lines from the terminal and
// writing output to out.
func (r *REPL) Start(out io.Writer) {
	line := liner.NewLiner()
	defer line.Close()

	historyFile := filepath.Join(os.TempDir(), ".hindley_repl_history")
	if f, err := os.Open(historyFile); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}

	fmt.Fprintf(out, "%s %s\n", bold("hindley"), bold(r.version))
	fmt.Fprintln(out, dim("Type :help for commands, :quit to exit"))
	if r.manifestPath != "" {
		fmt.Fprintln(out, dim("Environment: "+r.manifestPath))
	}
	fmt.Fprintln(out)

	line.SetCompleter(func(input string) (c []string) {
		if strings.HasPrefix(input, ":") {
			for _, cmd := range []string{":help", ":list", ":infer", ":manifest", ":quit"} {
				if strings.HasPrefix(cmd, input) {
					c = append(c, cmd)
				}
			}
			return
		}
		for _, ex := range Examples {
			if strings.HasPrefix(ex.Name, input) {
				c = append(c, ex.Name)
			}
		}
		return
	})

	for {
		input, err := line.Prompt("hindley> ")
		if err == io.EOF {
			fmt.Fprintln(out, green("\nGoodbye!"))
			break
		}
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", red("Error"), err)
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		line.AppendHistory(input)
		r.history = append(r.history, input)

		if strings.HasPrefix(input, ":") {
			if input == ":quit" || input == ":q" {
				fmt.Fprintln(out, green("Goodbye!"))
				break
			}
			r.HandleCommand(input, out)
			continue
		}

		r.RunExample(input, out)
	}

	if f, err := os.Create(historyFile); err == nil {
		_, _ = line.WriteHistory(f)
		f.Close()
	}
}
