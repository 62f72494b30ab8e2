// SPDX-License-Identifier: MIT

package hclplan

import (
	"fmt"

	"github.com/katalvlaran/tierplan/plan"
)

// Builder returns a plan.Builder holding one node per task, in document
// order, and one edge dep → task per depends_on entry. Task names label
// cycle errors unless opts install another formatter.
func (d *Document) Builder(opts ...plan.Option) (*plan.Builder[Task], error) {
	opts = append([]plan.Option{plan.WithFormatter(Task.String)}, opts...)
	b := plan.NewBuilder[Task](opts...)

	handles := make(map[string]plan.NodeHandle[Task], len(d.Tasks))
	for _, t := range d.Tasks {
		handles[t.Name] = b.Node(t)
	}
	for _, t := range d.Tasks {
		for _, dep := range t.DependsOn {
			from, ok := handles[dep]
			if !ok {
				return nil, fmt.Errorf("%w: task %q depends on %q", ErrUnknownDependency, t.Name, dep)
			}
			b.Connect(from, handles[t.Name])
		}
	}

	return b, nil
}
