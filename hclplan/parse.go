// SPDX-License-Identifier: MIT

package hclplan

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: blockTask, LabelNames: []string{"name"}},
	},
}

// Parse decodes an HCL plan from src. filename is used in diagnostics only.
func Parse(src []byte, filename string) (*Document, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)

	return decode(parser, file, diags, filename)
}

// Load reads and decodes the plan file at path.
func Load(path string) (*Document, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)

	return decode(parser, file, diags, path)
}

func decode(parser *hclparse.Parser, file *hcl.File, diags hcl.Diagnostics, filename string) (*Document, error) {
	fail := func(d hcl.Diagnostics) error {
		return &ParseError{Diags: d, Files: parser.Files()}
	}
	if diags.HasErrors() {
		return nil, fail(diags)
	}

	content, moreDiags := file.Body.Content(fileSchema)
	diags = append(diags, moreDiags...)

	doc := &Document{Filename: filename}
	seen := make(map[string]hcl.Range, len(content.Blocks))
	for _, block := range content.Blocks {
		task, taskDiags := decodeTask(block)
		diags = append(diags, taskDiags...)
		if task.Name == "" {
			continue
		}
		if prev, dup := seen[task.Name]; dup {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate task",
				Detail:   fmt.Sprintf("A task named %q was already declared at %s.", task.Name, prev),
				Subject:  block.LabelRanges[0].Ptr(),
			})
			continue
		}
		seen[task.Name] = block.DefRange
		doc.Tasks = append(doc.Tasks, task)
	}

	diags = append(diags, checkDependencies(doc.Tasks, seen)...)
	if diags.HasErrors() {
		return nil, fail(diags)
	}

	return doc, nil
}

// decodeTask reads one task block. On errors the returned Task may be
// partially filled; an empty Name means the block is unusable.
func decodeTask(block *hcl.Block) (Task, hcl.Diagnostics) {
	task := Task{
		Name:  block.Labels[0],
		Range: block.DefRange,
		Attrs: map[string]cty.Value{},
	}

	var diags hcl.Diagnostics
	if task.Name == "" {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid task name",
			Detail:   "Task names must not be empty.",
			Subject:  block.LabelRanges[0].Ptr(),
		})
	}

	attrs, attrDiags := block.Body.JustAttributes()
	diags = append(diags, attrDiags...)
	for name, attr := range attrs {
		if name == attrDependsOn {
			diags = append(diags, gohcl.DecodeExpression(attr.Expr, nil, &task.DependsOn)...)
			continue
		}
		v, valDiags := attr.Expr.Value(nil)
		diags = append(diags, valDiags...)
		task.Attrs[name] = v
	}

	return task, diags
}

// checkDependencies reports every depends_on entry naming an undeclared task.
func checkDependencies(tasks []Task, declared map[string]hcl.Range) hcl.Diagnostics {
	var diags hcl.Diagnostics
	for _, t := range tasks {
		for _, dep := range t.DependsOn {
			if _, ok := declared[dep]; ok {
				continue
			}
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Unknown dependency",
				Detail:   fmt.Sprintf("Task %q depends on %q, which is not declared.", t.Name, dep),
				Subject:  t.Range.Ptr(),
			})
		}
	}

	return diags
}
