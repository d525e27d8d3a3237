package types

import "strings"

// TypeScheme is a prenex scheme `forall a1 ... an. τ`. The quantifier
// names are ordered only for printing; the quantifier set is semantically
// unordered (spec.md §3).
type TypeScheme struct {
	Quantifiers []string
	Body        MonoType
}

// ToScheme wraps τ as the trivial scheme with an empty quantifier list.
func ToScheme(t MonoType) *TypeScheme {
	return &TypeScheme{Body: t}
}

func (s *TypeScheme) String() string {
	if len(s.Quantifiers) == 0 {
		return s.Body.String()
	}
	return "forall " + strings.Join(s.Quantifiers, " ") + ". " + s.Body.String()
}

// DeclSignature describes a single top-level declaration: either a
// function signature or a data-constructor signature (spec.md §3).
type DeclSignature struct {
	// Function fields (used when Constructor is nil).
	Name    string
	Args    []FuncArg
	Return  MonoType
	// Constructor fields (used when non-nil).
	Constructor *ConstructorSignature
}

// FuncArg is one (name, type) pair in a function's declared argument list.
type FuncArg struct {
	Name string
	Type MonoType
}

// ConstructorSignature is a data constructor's name and scheme, built per
// spec.md §6: for constructor K of T a1...an with fields f1...fm, the
// scheme is `forall a1...an. f1 -> ... -> fm -> T a1 ... an`.
type ConstructorSignature struct {
	Name   string
	Scheme *TypeScheme
}

// TypeSignature describes a user-declared algebraic data type: its name,
// parameter names, and constructor signatures.
type TypeSignature struct {
	Name         string
	Params       []string
	Constructors []ConstructorSignature
}

// BuildConstructorScheme constructs the scheme for a constructor with
// field types `fields`, belonging to type `typeName` applied to
// `params`, per spec.md §6.
func BuildConstructorScheme(typeName string, params []string, fields []MonoType) *TypeScheme {
	result := typeApplication(typeName, params)
	for i := len(fields) - 1; i >= 0; i-- {
		result = &Arrow{Domain: fields[i], Codomain: result}
	}
	quantifiers := make([]string, len(params))
	copy(quantifiers, params)
	return &TypeScheme{Quantifiers: quantifiers, Body: result}
}

// typeApplication renders `T a1 ... an` as a MonoType: NamedVariable for a
// nullary type, TypeApp otherwise.
func typeApplication(typeName string, params []string) MonoType {
	if len(params) == 0 {
		return &NamedVariable{Name: typeName}
	}
	args := make([]MonoType, len(params))
	for i, p := range params {
		args[i] = &NamedVariable{Name: p}
	}
	return &TypeApp{Name: typeName, Args: args}
}
