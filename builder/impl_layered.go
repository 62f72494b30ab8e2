// SPDX-License-Identifier: MIT
// Package: tierplan/builder
//
// impl_layered.go - Layered(widths...).
//
// Nodes are added layer by layer; every node of layer k feeds every node of
// layer k+1. The built plan therefore has exactly len(widths) tiers with
// the given widths, which makes it the reference fixture for layering.

package builder

import (
	"fmt"

	"github.com/katalvlaran/tierplan/plan"
)

const (
	methodLayered = "Layered"
	minLayers     = 1
	minLayerWidth = 1
)

// Layered returns a Constructor for a fully connected layered DAG.
func Layered(widths ...int) Constructor {
	return func(b *plan.Builder[string], cfg builderConfig) error {
		if len(widths) < minLayers {
			return fmt.Errorf("%s: layers=%d < min=%d: %w", methodLayered, len(widths), minLayers, ErrTooFewVertices)
		}
		for k, w := range widths {
			if w < minLayerWidth {
				return fmt.Errorf("%s: width[%d]=%d < min=%d: %w", methodLayered, k, w, minLayerWidth, ErrTooFewVertices)
			}
		}

		var prev []plan.NodeHandle[string]
		for _, w := range widths {
			cur := addNodes(b, cfg, w)
			for _, tail := range prev {
				for _, head := range cur {
					b.Connect(tail, head)
				}
			}
			prev = cur
		}

		return nil
	}
}
