// Package types implements the monomorphic type representation for the
// inference engine: named variables, tuples, arrows, mutable unification
// holes, and the absorbing error type. See DESIGN.md, component A.
package types

import (
	"strconv"
	"strings"
)

// MonoType is a type with no quantifiers: a tagged variant, one of
// NamedVariable, Tuple, Arrow, TypeApp, Hole, or ErrorType.
type MonoType interface {
	// isMonoType is unexported so MonoType is a closed variant set.
	isMonoType()
	String() string
}

// NamedVariable is either a free type variable or a primitive/user-declared
// type name; the system does not distinguish the two at this layer.
type NamedVariable struct {
	Name string
}

func (*NamedVariable) isMonoType()      {}
func (t *NamedVariable) String() string { return t.Name }

// Tuple is an ordered, fixed-arity product type.
type Tuple struct {
	Elems []MonoType
}

func (*Tuple) isMonoType() {}
func (t *Tuple) String() string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Arrow is a function type, printed fully parenthesized and right-associative.
type Arrow struct {
	Domain   MonoType
	Codomain MonoType
}

func (*Arrow) isMonoType() {}
func (t *Arrow) String() string {
	return "(" + t.Domain.String() + " -> " + t.Codomain.String() + ")"
}

// TypeApp is a type constructor applied to argument types, e.g. `List a`
// or `Map k v`. This completes the higher-kinded-application Open Question
// from spec.md §9 (SPEC_FULL.md §11.2) rather than leaving it unimplemented.
type TypeApp struct {
	Name string
	Args []MonoType
}

func (*TypeApp) isMonoType() {}
func (t *TypeApp) String() string {
	parts := make([]string, len(t.Args))
	for i, a := range t.Args {
		parts[i] = a.String()
	}
	if len(parts) == 0 {
		return t.Name
	}
	return t.Name + " " + strings.Join(parts, " ")
}

// Hole is a mutable unification cell, shared by identity. Two Holes are
// equal iff they wrap the same *cell (pointer identity), never structurally.
type Hole struct {
	cell *cell
}

func (*Hole) isMonoType() {}

func (t *Hole) String() string {
	if filled, ok := t.cell.filled(); ok {
		return filled.String()
	}
	level := t.cell.level()
	name := t.cell.name
	if level == 0 {
		return "^" + name
	}
	return "^" + strconv.Itoa(level) + "~" + name
}

// Ref returns the underlying HoleRef, for identity comparisons and as a map
// key during generalization.
func (t *Hole) Ref() *HoleRef { return (*HoleRef)(t.cell) }

// ErrorType is the absorbing type propagated when inference has already
// failed for a subterm; unifying against it always succeeds silently.
type ErrorType struct{}

func (ErrorType) isMonoType()    {}
func (ErrorType) String() string { return "ERROR" }

// Error is the single shared ErrorType value.
var Error MonoType = ErrorType{}
