// SPDX-License-Identifier: MIT
// Package: tierplan/builder
//
// api.go - the Constructor type and the BuildPlan orchestrator.

package builder

import (
	"fmt"

	"github.com/katalvlaran/tierplan/plan"
)

// Constructor appends a fixture to b using the resolved builderConfig.
// Constructors validate their parameters before touching b and never panic.
type Constructor func(b *plan.Builder[string], cfg builderConfig) error

// BuildPlan creates a plan.Builder[string], resolves opts and applies every
// constructor in order. The first constructor error is returned wrapped as
// "BuildPlan: %w"; the partially filled Builder is discarded.
func BuildPlan(opts []BuilderOption, cons ...Constructor) (*plan.Builder[string], error) {
	cfg := newBuilderConfig(opts...)
	b := plan.NewBuilder[string](cfg.planOpts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildPlan: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return nil, fmt.Errorf("BuildPlan: %w", err)
		}
	}

	return b, nil
}

// addNodes registers n nodes labelled by cfg.idFn. Labels continue from
// b.Len(), so composed fixtures never reuse a label.
func addNodes(b *plan.Builder[string], cfg builderConfig, n int) []plan.NodeHandle[string] {
	out := make([]plan.NodeHandle[string], n)
	for i := range out {
		out[i] = b.Node(cfg.idFn(b.Len()))
	}

	return out
}
