// SPDX-License-Identifier: MIT
// Package: tierplan/builder
//
// impl_random_dag.go - RandomDAG(n, p).
//
// Erdős–Rényi over forward pairs: for i asc, j asc with i < j, the edge
// i → j is added with probability p. Edges only point to higher indices,
// so the result is always acyclic.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - 0 < p < 1 requires an RNG (else ErrNeedRandSource); p ∈ {0,1} is
//     deterministic and runs without one.
//
// Complexity: O(n²) Bernoulli trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/tierplan/plan"
)

const (
	methodRandomDAG      = "RandomDAG"
	minRandomDAGVertices = 1
	probMin              = 0.0
	probMax              = 1.0
)

// RandomDAG returns a Constructor sampling a random DAG over n nodes.
func RandomDAG(n int, p float64) Constructor {
	return func(b *plan.Builder[string], cfg builderConfig) error {
		if n < minRandomDAGVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomDAG, n, minRandomDAGVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", methodRandomDAG, p, probMin, probMax, ErrInvalidProbability)
		}
		stochastic := p > probMin && p < probMax
		if stochastic && cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomDAG, ErrNeedRandSource)
		}

		hs := addNodes(b, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				keep := p == probMax
				if stochastic {
					keep = cfg.rng.Float64() < p
				}
				if keep {
					b.Connect(hs[i], hs[j])
				}
			}
		}

		return nil
	}
}
