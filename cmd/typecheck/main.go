// Command typecheck is a minimal, library-style demonstration of
// internal/infer: it builds a handful of ASTs directly with internal/ast
// (no parser involved) and runs them through inference, printing the
// resulting principal type or the recorded diagnostics.
package main

import "fmt"

func main() {
	fmt.Println("hindley manual type inference demo")
	fmt.Println("===================================")
	DemoLetPolymorphism()
	DemoOccursCheck()
	DemoConstructorPattern()
}
