package errors

import (
	"strings"
	"testing"

	"github.com/sunholo/hindley/internal/ast"
	"github.com/sunholo/hindley/internal/schema"
)

func TestNewTypecheck(t *testing.T) {
	pos := ast.Pos{File: "in.ml", Line: 3, Column: 7}
	r := NewTypecheck(TYP001, "unbound variable 'x'", pos)

	if r.Schema != schema.ErrorV1 {
		t.Errorf("Schema = %s, want %s", r.Schema, schema.ErrorV1)
	}
	if r.Phase != "typecheck" {
		t.Errorf("Phase = %s, want typecheck", r.Phase)
	}
	if r.Code != TYP001 {
		t.Errorf("Code = %s, want %s", r.Code, TYP001)
	}
	if r.Span == nil || r.Span.Start != pos {
		t.Errorf("Span.Start = %v, want %v", r.Span, pos)
	}
}

func TestWrapReportAndAsReport(t *testing.T) {
	r := NewTypecheck(TYP003, "type mismatch", ast.Pos{})
	err := WrapReport(r)

	got, ok := AsReport(err)
	if !ok {
		t.Fatal("AsReport did not find a Report in the chain")
	}
	if got != r {
		t.Errorf("AsReport returned a different Report than was wrapped")
	}
}

func TestWrapReportNil(t *testing.T) {
	if err := WrapReport(nil); err != nil {
		t.Errorf("WrapReport(nil) = %v, want nil", err)
	}
}

func TestReportErrorString(t *testing.T) {
	r := NewTypecheck(TYP004, "cyclic type", ast.Pos{})
	err := WrapReport(r)

	if got := err.Error(); !strings.HasPrefix(got, TYP004+":") {
		t.Errorf("Error() = %q, want prefix %q", got, TYP004+":")
	}
}

func TestReportToJSON(t *testing.T) {
	r := NewTypecheck(TYP002, "unbound type variable 'a'", ast.Pos{File: "in.ml", Line: 1, Column: 1})

	out, err := r.ToJSON(true)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	for _, want := range []string{`"schema"`, `"code":"TYP002"`, `"phase":"typecheck"`} {
		if !strings.Contains(out, want) {
			t.Errorf("ToJSON output missing %q: %s", want, out)
		}
	}
}
