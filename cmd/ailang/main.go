// Command ailang is a small driver for the hindley inference engine: it
// loads an environment manifest, runs the built-in example expressions
// against it, and can drop into an interactive REPL.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/sunholo/hindley/internal/infer"
	"github.com/sunholo/hindley/internal/manifest"
	"github.com/sunholo/hindley/internal/repl"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

var (
	red  = color.New(color.FgRed).SprintFunc()
	cyan = color.New(color.FgCyan).SprintFunc()
	bold = color.New(color.Bold).SprintFunc()
)

func main() {
	versionFlag := flag.Bool("version", false, "print version information")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("hindley %s (built %s)\n", bold(Version), BuildTime)
		return
	}

	if flag.NArg() == 0 {
		printUsage()
		os.Exit(1)
	}

	switch flag.Arg(0) {
	case "run":
		if flag.NArg() < 2 {
			fmt.Fprintf(os.Stderr, "%s: missing manifest path\nUsage: ailang run <manifest.yaml>\n", red("Error"))
			os.Exit(1)
		}
		runManifest(flag.Arg(1))

	case "repl":
		r := repl.New(Version)
		if flag.NArg() >= 2 {
			if err := r.LoadManifest(flag.Arg(1)); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
				os.Exit(1)
			}
		}
		r.Start(os.Stdout)

	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", red("Error"), flag.Arg(0))
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(bold("hindley") + " - a Hindley-Milner type inference engine")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s <manifest.yaml>   load an environment and run every built-in example\n", cyan("ailang run"))
	fmt.Printf("  %s [manifest.yaml]   start the interactive REPL\n", cyan("ailang repl"))
	fmt.Println("  ailang --version        print version information")
}

func runManifest(path string) {
	m, err := manifest.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
		os.Exit(1)
	}

	ctx, err := m.BuildContext()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: building context from %s: %v\n", red("Error"), path, err)
		os.Exit(1)
	}

	fmt.Printf("%s loaded %s (%d primitives, %d functions, %d types)\n",
		cyan("→"), path, len(m.Primitives), len(m.Functions), len(m.Types))
	fmt.Println()

	failures := 0
	for _, ex := range repl.Examples {
		run := ctx.Fresh()
		result := infer.InferExpr(run, ex.Build())

		if run.Sink().Failed() {
			failures++
			fmt.Printf("%s %s\n", red("✗"), ex.Name)
			for _, rep := range run.Sink().Reports {
				fmt.Printf("    [%s] %s: %s\n", rep.Code, rep.Span.Start.String(), rep.Message)
			}
			continue
		}
		fmt.Printf("%s %-26s : %s\n", "✓", ex.Name, result.String())
	}

	fmt.Println()
	if failures > 0 {
		fmt.Printf("%d/%d examples type-checked cleanly\n", len(repl.Examples)-failures, len(repl.Examples))
	} else {
		fmt.Printf("all %d examples type-checked cleanly\n", len(repl.Examples))
	}
}
