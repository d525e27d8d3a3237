// Package errors provides the structured diagnostic type produced by the
// inference engine and the narrow TYP### taxonomy it belongs to
// (spec.md §7). Every diagnostic the engine emits is a *Report.
package errors

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/sunholo/hindley/internal/ast"
	"github.com/sunholo/hindley/internal/schema"
)

// Report is the canonical structured diagnostic. Phase is always
// "typecheck" in this engine — there is no parser, elaborator, linker, or
// runtime phase to distinguish it from.
type Report struct {
	Schema  string         `json:"schema"`          // Always schema.ErrorV1
	Code    string         `json:"code"`             // One of TYP001-TYP006
	Phase   string         `json:"phase"`            // Always "typecheck"
	Message string         `json:"message"`          // Human-readable message
	Span    *ast.Span      `json:"span,omitempty"`   // Source location, if known
	Data    map[string]any `json:"data,omitempty"`   // Structured data (sorted keys)
}

// ReportError wraps a Report as an error so it survives errors.As()
// unwrapping.
type ReportError struct {
	Rep *Report
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Rep == nil {
		return "unknown error"
	}
	return e.Rep.Code + ": " + e.Rep.Message
}

// AsReport attempts to extract a Report from an error chain.
func AsReport(err error) (*Report, bool) {
	var re *ReportError
	if errors.As(err, &re) {
		return re.Rep, true
	}
	return nil, false
}

// WrapReport wraps a Report as a ReportError.
func WrapReport(r *Report) error {
	if r == nil {
		return nil
	}
	return &ReportError{Rep: r}
}

// ToJSON converts a Report to JSON with sorted keys for deterministic
// output, compact or indented per the caller's choice.
func (r *Report) ToJSON(compact bool) (string, error) {
	sorted, err := schema.MarshalDeterministic(r)
	if err != nil {
		return "", err
	}
	if compact {
		return string(sorted), nil
	}
	var pretty []byte
	if pretty, err = indentJSON(sorted); err != nil {
		return "", err
	}
	return string(pretty), nil
}

func indentJSON(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// NewTypecheck builds a Report for a type-checking diagnostic at pos. code
// must be one of the TYP### constants in codes.go.
func NewTypecheck(code, message string, pos ast.Pos) *Report {
	return &Report{
		Schema:  schema.ErrorV1,
		Code:    code,
		Phase:   "typecheck",
		Message: message,
		Span:    &ast.Span{Start: pos, End: pos},
	}
}
