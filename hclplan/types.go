// SPDX-License-Identifier: MIT

package hclplan

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

const (
	blockTask     = "task"
	attrDependsOn = "depends_on"

	// diagWidth is the wrap width used when rendering diagnostics.
	diagWidth = 100
)

// ErrUnknownDependency is returned by Document.Builder when a task names a
// dependency that is not declared in the document.
var ErrUnknownDependency = errors.New("hclplan: unknown dependency")

// Document is a parsed plan file.
type Document struct {
	Filename string
	Tasks    []Task
}

// Task is one task block.
type Task struct {
	Name      string
	DependsOn []string
	Attrs     map[string]cty.Value
	Range     hcl.Range
}

// String returns the task name.
func (t Task) String() string { return t.Name }

// AttrsJSON renders Attrs as JSON values keyed by attribute name.
func (t Task) AttrsJSON() (map[string]json.RawMessage, error) {
	out := make(map[string]json.RawMessage, len(t.Attrs))
	for name, v := range t.Attrs {
		raw, err := ctyjson.Marshal(v, v.Type())
		if err != nil {
			return nil, fmt.Errorf("hclplan: task %q: attribute %q: %w", t.Name, name, err)
		}
		out[name] = raw
	}

	return out, nil
}

// ParseError carries the diagnostics of a failed Parse or Load together
// with the sources needed to render them with context.
type ParseError struct {
	Diags hcl.Diagnostics
	Files map[string]*hcl.File
}

// Error implements error.
func (e *ParseError) Error() string { return e.Diags.Error() }

// Unwrap exposes the diagnostics.
func (e *ParseError) Unwrap() error { return e.Diags }

// WriteText renders the diagnostics with source snippets.
func (e *ParseError) WriteText(w io.Writer) error {
	return hcl.NewDiagnosticTextWriter(w, e.Files, diagWidth, false).WriteDiagnostics(e.Diags)
}
