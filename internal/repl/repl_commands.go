package repl

import (
	"fmt"
	"io"
	"strings"
)

// HandleCommand dispatches a `:`-prefixed REPL command.
func (r *REPL) HandleCommand(input string, out io.Writer) {
	fields := strings.Fields(input)
	cmd := fields[0]
	args := fields[1:]

	switch cmd {
	case ":help", ":h":
		r.printHelp(out)

	case ":list", ":l":
		r.printExamples(out)

	case ":infer", ":i":
		if len(args) == 0 {
			fmt.Fprintln(out, yellow("Usage: :infer <example-name>"))
			return
		}
		r.RunExample(args[0], out)

	case ":manifest", ":m":
		if len(args) == 0 {
			if r.manifestPath == "" {
				fmt.Fprintln(out, dim("No manifest loaded; environment is empty."))
			} else {
				fmt.Fprintln(out, dim("Environment: "+r.manifestPath))
			}
			return
		}
		if err := r.LoadManifest(args[0]); err != nil {
			fmt.Fprintf(out, "%s: %v\n", red("Error"), err)
			return
		}
		fmt.Fprintf(out, "%s loaded %s\n", green("✓"), args[0])

	case ":history":
		for i, h := range r.history {
			fmt.Fprintf(out, "%3d  %s\n", i+1, h)
		}

	default:
		fmt.Fprintf(out, "%s: unknown command %q (try :help)\n", red("Error"), cmd)
	}
}

func (r *REPL) printHelp(out io.Writer) {
	fmt.Fprintln(out, bold("Commands:"))
	fmt.Fprintln(out, "  :help, :h                Show this help")
	fmt.Fprintln(out, "  :list, :l                List the named example expressions")
	fmt.Fprintln(out, "  :infer <name>, :i <name> Run inference on an example")
	fmt.Fprintln(out, "  :manifest <path>, :m     Load an environment manifest (YAML)")
	fmt.Fprintln(out, "  :history                 Show input history")
	fmt.Fprintln(out, "  :quit, :q                Exit")
	fmt.Fprintln(out)
	fmt.Fprintln(out, dim("Typing an example name directly also runs it, e.g. `identity`."))
}

func (r *REPL) printExamples(out io.Writer) {
	for _, ex := range Examples {
		fmt.Fprintf(out, "  %s\n      %s\n", cyan(ex.Name), dim(ex.Description))
	}
}
