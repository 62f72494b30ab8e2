// SPDX-License-Identifier: MIT
// Package: tierplan/builder
//
// impl_fan.go - FanOut(n), FanIn(n) and Diamond().

package builder

import (
	"fmt"

	"github.com/katalvlaran/tierplan/plan"
)

const (
	methodFanOut = "FanOut"
	methodFanIn  = "FanIn"
	minFanLeaves = 1
)

// FanOut returns a Constructor adding a root (first node) with edges to n
// leaves. Result: tiers [[root], [leaves...]].
func FanOut(n int) Constructor {
	return func(b *plan.Builder[string], cfg builderConfig) error {
		if n < minFanLeaves {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodFanOut, n, minFanLeaves, ErrTooFewVertices)
		}
		hs := addNodes(b, cfg, n+1)
		for _, leaf := range hs[1:] {
			b.Connect(hs[0], leaf)
		}

		return nil
	}
}

// FanIn returns a Constructor adding n sources followed by a sink they all
// feed. Result: tiers [[sources...], [sink]].
func FanIn(n int) Constructor {
	return func(b *plan.Builder[string], cfg builderConfig) error {
		if n < minFanLeaves {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodFanIn, n, minFanLeaves, ErrTooFewVertices)
		}
		hs := addNodes(b, cfg, n+1)
		sink := hs[n]
		for _, src := range hs[:n] {
			b.Connect(src, sink)
		}

		return nil
	}
}

// Diamond returns a Constructor for the four-node diamond
// 0 → 1, 0 → 2, 1 → 3, 2 → 3.
func Diamond() Constructor {
	return func(b *plan.Builder[string], cfg builderConfig) error {
		hs := addNodes(b, cfg, 4)
		b.Connect(hs[0], hs[1])
		b.Connect(hs[0], hs[2])
		b.Connect(hs[1], hs[3])
		b.Connect(hs[2], hs[3])

		return nil
	}
}
