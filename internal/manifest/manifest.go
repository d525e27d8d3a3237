// Package manifest loads the ambient type environment a program is checked
// against: primitive type names, top-level function signatures, and
// algebraic data type declarations with their constructors (spec.md §6).
// A manifest is authored in YAML and turned into an *infer.Ctx ready to
// check a program's entry expression.
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sunholo/hindley/internal/infer"
	"github.com/sunholo/hindley/internal/lexer"
	"github.com/sunholo/hindley/internal/schema"
	"github.com/sunholo/hindley/internal/types"
)

// normalizeName applies the same input normalization as the lexer boundary
// (BOM-strip + Unicode NFC) to a single manifest-declared identifier, so a
// name written in NFD form in YAML still matches the same name referenced
// elsewhere (a type variable, a REPL-typed example) under NFC.
func normalizeName(s string) string {
	return string(lexer.Normalize([]byte(s)))
}

// SchemaVersion is the current manifest schema version.
const SchemaVersion = schema.ManifestV1

// TypeSpec is a YAML-friendly encoding of a type expression: exactly one
// of its fields is set. It has no source position of its own — a manifest
// describes the ambient environment, not a program under test.
type TypeSpec struct {
	Var   string      `yaml:"var,omitempty"`
	Unit  bool        `yaml:"unit,omitempty"`
	Tuple []TypeSpec  `yaml:"tuple,omitempty"`
	Arrow []TypeSpec  `yaml:"arrow,omitempty"` // curried right-to-left: [d1, d2, ..., codomain]
	App   *AppSpec    `yaml:"app,omitempty"`
}

// AppSpec is a type-constructor application `Ctor Args...`.
type AppSpec struct {
	Ctor string     `yaml:"ctor"`
	Args []TypeSpec `yaml:"args,omitempty"`
}

// normalize recursively normalizes every identifier this TypeSpec carries.
func (s *TypeSpec) normalize() {
	s.Var = normalizeName(s.Var)
	for i := range s.Tuple {
		s.Tuple[i].normalize()
	}
	for i := range s.Arrow {
		s.Arrow[i].normalize()
	}
	if s.App != nil {
		s.App.Ctor = normalizeName(s.App.Ctor)
		for i := range s.App.Args {
			s.App.Args[i].normalize()
		}
	}
}

// resolve converts a TypeSpec into a types.MonoType. params is the set of
// in-scope type-variable names for this declaration (a constructor's own
// type parameters); a Var outside that set is a manifest authoring error.
func (s TypeSpec) resolve(params map[string]bool) (types.MonoType, error) {
	switch {
	case s.Var != "":
		if !params[s.Var] {
			return nil, fmt.Errorf("type variable %q not declared in this signature's parameter list", s.Var)
		}
		return &types.NamedVariable{Name: s.Var}, nil

	case s.Unit:
		return &types.NamedVariable{Name: "()"}, nil

	case len(s.Tuple) > 0:
		elems := make([]types.MonoType, len(s.Tuple))
		for i, sub := range s.Tuple {
			resolved, err := sub.resolve(params)
			if err != nil {
				return nil, err
			}
			elems[i] = resolved
		}
		return &types.Tuple{Elems: elems}, nil

	case len(s.Arrow) > 0:
		if len(s.Arrow) < 2 {
			return nil, fmt.Errorf("arrow type needs at least a domain and a codomain")
		}
		parts := make([]types.MonoType, len(s.Arrow))
		for i, sub := range s.Arrow {
			resolved, err := sub.resolve(params)
			if err != nil {
				return nil, err
			}
			parts[i] = resolved
		}
		result := parts[len(parts)-1]
		for i := len(parts) - 2; i >= 0; i-- {
			result = &types.Arrow{Domain: parts[i], Codomain: result}
		}
		return result, nil

	case s.App != nil:
		if s.App.Ctor == "" {
			return nil, fmt.Errorf("type application missing a constructor name")
		}
		if len(s.App.Args) == 0 {
			return &types.NamedVariable{Name: s.App.Ctor}, nil
		}
		args := make([]types.MonoType, len(s.App.Args))
		for i, sub := range s.App.Args {
			resolved, err := sub.resolve(params)
			if err != nil {
				return nil, err
			}
			args[i] = resolved
		}
		return &types.TypeApp{Name: s.App.Ctor, Args: args}, nil
	}

	return nil, fmt.Errorf("empty type expression")
}

// FunctionDecl declares a top-level function's polymorphic type.
type FunctionDecl struct {
	Name   string     `yaml:"name"`
	Forall []string   `yaml:"forall,omitempty"`
	Type   TypeSpec   `yaml:"type"`
}

// ConstructorDecl declares one data constructor belonging to a TypeDecl.
type ConstructorDecl struct {
	Name   string     `yaml:"name"`
	Fields []TypeSpec `yaml:"fields,omitempty"`
}

// TypeDecl declares an algebraic data type and its constructors, per
// spec.md §6's scheme-construction formula.
type TypeDecl struct {
	Name         string            `yaml:"name"`
	Params       []string          `yaml:"params,omitempty"`
	Constructors []ConstructorDecl `yaml:"constructors"`
}

// Manifest is the ambient type environment a program is checked against.
type Manifest struct {
	Schema     string         `yaml:"schema"`
	Primitives []string       `yaml:"primitives,omitempty"`
	Functions  []FunctionDecl `yaml:"functions,omitempty"`
	Types      []TypeDecl     `yaml:"types,omitempty"`
}

// normalize applies normalizeName to every identifier the manifest
// declares, in place, once at the load boundary (lexer.Normalize's own
// doc comment: "Normalization is performed once at input to avoid
// repeated processing").
func (m *Manifest) normalize() {
	for i, name := range m.Primitives {
		m.Primitives[i] = normalizeName(name)
	}
	for i := range m.Functions {
		fn := &m.Functions[i]
		fn.Name = normalizeName(fn.Name)
		for j, q := range fn.Forall {
			fn.Forall[j] = normalizeName(q)
		}
		fn.Type.normalize()
	}
	for i := range m.Types {
		td := &m.Types[i]
		td.Name = normalizeName(td.Name)
		for j, p := range td.Params {
			td.Params[j] = normalizeName(p)
		}
		for k := range td.Constructors {
			ctor := &td.Constructors[k]
			ctor.Name = normalizeName(ctor.Name)
			for f := range ctor.Fields {
				ctor.Fields[f].normalize()
			}
		}
	}
}

// Load reads and parses a manifest from a YAML file and checks its schema
// version. It does not validate the declarations or build a context — call
// BuildContext for that.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if m.Schema == "" {
		m.Schema = SchemaVersion
	}
	if !schema.Accepts(m.Schema, SchemaVersion) {
		return nil, fmt.Errorf("unsupported schema version: %s (expected %s)", m.Schema, SchemaVersion)
	}
	m.normalize()
	return &m, nil
}

// BuildContext builds a fresh *infer.Ctx populated with every primitive,
// function signature, and constructor this manifest declares.
func (m *Manifest) BuildContext() (*infer.Ctx, error) {
	ctx := infer.NewCtx()

	primitiveNames := map[string]bool{}
	typeNames := make([]string, 0, len(m.Primitives)+len(m.Types))
	for _, name := range m.Primitives {
		if primitiveNames[name] {
			return nil, fmt.Errorf("duplicate primitive declaration: %s", name)
		}
		primitiveNames[name] = true
		typeNames = append(typeNames, name)
	}
	for _, td := range m.Types {
		typeNames = append(typeNames, td.Name)
	}
	ctx = ctx.ExtendTypes(typeNames...)

	seen := map[string]bool{}
	for _, fn := range m.Functions {
		if seen[fn.Name] {
			return nil, fmt.Errorf("duplicate function declaration: %s", fn.Name)
		}
		seen[fn.Name] = true

		params := make(map[string]bool, len(fn.Forall))
		for _, p := range fn.Forall {
			params[p] = true
		}
		body, err := fn.Type.resolve(params)
		if err != nil {
			return nil, fmt.Errorf("function %s: %w", fn.Name, err)
		}
		scheme := &types.TypeScheme{Quantifiers: fn.Forall, Body: body}
		ctx = ctx.Extend(fn.Name, scheme)
	}

	for _, td := range m.Types {
		params := make(map[string]bool, len(td.Params))
		for _, p := range td.Params {
			params[p] = true
		}
		for _, ctor := range td.Constructors {
			if seen[ctor.Name] {
				return nil, fmt.Errorf("duplicate constructor declaration: %s", ctor.Name)
			}
			seen[ctor.Name] = true

			fields := make([]types.MonoType, len(ctor.Fields))
			for i, f := range ctor.Fields {
				resolved, err := f.resolve(params)
				if err != nil {
					return nil, fmt.Errorf("constructor %s field %d: %w", ctor.Name, i, err)
				}
				fields[i] = resolved
			}
			scheme := types.BuildConstructorScheme(td.Name, td.Params, fields)
			ctx = ctx.ExtendConstructor(ctor.Name, len(fields), scheme)
		}
	}

	return ctx, nil
}
