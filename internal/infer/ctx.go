// Package infer implements the inference context, unification,
// instantiation/generalization, and the inference rules for expressions,
// patterns, and type expressions (spec.md §4, components B-F).
package infer

import (
	"strconv"

	"github.com/sunholo/hindley/internal/ast"
	"github.com/sunholo/hindley/internal/errors"
	"github.com/sunholo/hindley/internal/types"
)

// counter is the process-wide (for one inference run) fresh-name source,
// shared across every Ctx cloned from a common ancestor.
type counter struct{ n int }

func (c *counter) next() string {
	name := "t" + strconv.Itoa(c.n)
	c.n++
	return name
}

// ErrorSink collects diagnostics recorded during an inference run.
type ErrorSink struct {
	Reports []*errors.Report
}

// Record appends a report to the sink.
func (s *ErrorSink) Record(r *errors.Report) { s.Reports = append(s.Reports, r) }

// Failed reports whether any diagnostic has been recorded.
func (s *ErrorSink) Failed() bool { return len(s.Reports) > 0 }

// binding is one (name -> scheme) entry in the environment, newest first.
type binding struct {
	name   string
	scheme *types.TypeScheme
	next   *binding
}

// ctorBinding is one registered data-constructor entry, newest first.
// Constructors live in a separate namespace from ordinary let/lambda
// bindings so that PatternIdentifier can tell "this name binds a fresh
// variable" from "this name matches an existing nullary constructor"
// (spec.md §4.F).
type ctorBinding struct {
	name   string
	arity  int
	scheme *types.TypeScheme
	next   *ctorBinding
}

// Ctx is the inference context: value-typed, extend returns
// a new Ctx sharing most state (spec.md §4.B). The fresh-name counter and
// error sink are process-wide for the run and shared by pointer.
type Ctx struct {
	env       *binding
	ctors     *ctorBinding
	typeNames map[string]bool
	level     int
	position  ast.Pos
	counter   *counter
	sink      *ErrorSink
}

// NewCtx creates an empty, level-0 context with a fresh counter and sink.
func NewCtx() *Ctx {
	return &Ctx{
		typeNames: map[string]bool{},
		counter:   &counter{},
		sink:      &ErrorSink{},
	}
}

// Fresh returns a context with the same environment, constructors, and
// type-name scope, but a clean error sink and fresh-name counter, at
// level 0. Callers that run one inference after another against a
// long-lived environment (a REPL, a batch runner) use this so that a
// failure in one run doesn't leak into the next run's diagnostics.
func (c *Ctx) Fresh() *Ctx {
	next := *c
	next.level = 0
	next.position = ast.Pos{}
	next.counter = &counter{}
	next.sink = &ErrorSink{}
	return &next
}

// Extend returns a new context with name bound to scheme; the most recent
// binding wins, and shadowing is allowed.
func (c *Ctx) Extend(name string, scheme *types.TypeScheme) *Ctx {
	next := *c
	next.env = &binding{name: name, scheme: scheme, next: c.env}
	return &next
}

// ExtendConstructor returns a new context with a data constructor registered
// under name, with the given field arity and instantiation scheme
// (spec.md §6).
func (c *Ctx) ExtendConstructor(name string, arity int, scheme *types.TypeScheme) *Ctx {
	next := *c
	next.ctors = &ctorBinding{name: name, arity: arity, scheme: scheme, next: c.ctors}
	return &next
}

// LookupConstructor finds a registered constructor by name.
func (c *Ctx) LookupConstructor(name string) (scheme *types.TypeScheme, arity int, ok bool) {
	for b := c.ctors; b != nil; b = b.next {
		if b.name == name {
			return b.scheme, b.arity, true
		}
	}
	return nil, 0, false
}

// ExtendTypes returns a new context with the given type-variable names
// added to scope.
func (c *Ctx) ExtendTypes(names ...string) *Ctx {
	next := *c
	merged := make(map[string]bool, len(c.typeNames)+len(names))
	for n := range c.typeNames {
		merged[n] = true
	}
	for _, n := range names {
		merged[n] = true
	}
	next.typeNames = merged
	return &next
}

// HasType reports whether name is a known in-scope type-variable name.
func (c *Ctx) HasType(name string) bool { return c.typeNames[name] }

// SetPosition returns a new context with the current source position updated.
func (c *Ctx) SetPosition(pos ast.Pos) *Ctx {
	next := *c
	next.position = pos
	return &next
}

// Position returns the context's current source position.
func (c *Ctx) Position() ast.Pos { return c.position }

// SetLevel returns a new context at the given generalization level.
func (c *Ctx) SetLevel(n int) *Ctx {
	next := *c
	next.level = n
	return &next
}

// Level returns the context's current generalization level.
func (c *Ctx) Level() int { return c.level }

// NewName returns a unique, monotonic display name ("t0", "t1", ...).
func (c *Ctx) NewName() string { return c.counter.next() }

// NewHole allocates a fresh Empty hole at the context's current level,
// using a freshly-generated display name.
func (c *Ctx) NewHole() *types.Hole {
	return types.NewHole(c.NewName(), c.level)
}

// Lookup finds the scheme bound to name, most-recent binding wins.
func (c *Ctx) Lookup(name string) (*types.TypeScheme, bool) {
	for b := c.env; b != nil; b = b.next {
		if b.name == name {
			return b.scheme, true
		}
	}
	return nil, false
}

// Error records a diagnostic with the current position and returns
// types.Error, the absorbing value callers substitute for the failing
// subterm so that cascading diagnostics are suppressed (spec.md §7).
func (c *Ctx) Error(code, message string) types.MonoType {
	c.sink.Record(errors.NewTypecheck(code, message, c.position))
	return types.Error
}

// Sink returns the context's (shared) error sink.
func (c *Ctx) Sink() *ErrorSink { return c.sink }
