// SPDX-License-Identifier: MIT
// Package: tierplan/builder
//
// impl_chain.go - Chain(n) and Ring(n).
//
// Chain emits edges (i-1) → i for i = 1..n-1, giving n singleton tiers.
// Ring closes the chain with (n-1) → 0; Ring(1) is a self-loop. Every
// Ring is cyclic and is meant for failure-path tests.

package builder

import (
	"fmt"

	"github.com/katalvlaran/tierplan/plan"
)

const (
	methodChain   = "Chain"
	methodRing    = "Ring"
	minChainNodes = 1
	minRingNodes  = 1
)

// Chain returns a Constructor for a simple directed path of n nodes.
func Chain(n int) Constructor {
	return func(b *plan.Builder[string], cfg builderConfig) error {
		if n < minChainNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainNodes, ErrTooFewVertices)
		}
		hs := addNodes(b, cfg, n)
		for i := 1; i < n; i++ {
			b.Connect(hs[i-1], hs[i])
		}

		return nil
	}
}

// Ring returns a Constructor for a directed cycle of n nodes.
func Ring(n int) Constructor {
	return func(b *plan.Builder[string], cfg builderConfig) error {
		if n < minRingNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, n, minRingNodes, ErrTooFewVertices)
		}
		hs := addNodes(b, cfg, n)
		for i := 0; i < n; i++ {
			b.Connect(hs[i], hs[(i+1)%n])
		}

		return nil
	}
}
