// SPDX-License-Identifier: MIT
// Package: tierplan/layer
//
// layer.go - longest-path tier assignment, grouping and validation.

package layer

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tierplan/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Table is passed in.
	ErrGraphNil = errors.New("layer: graph is nil")

	// ErrOrderInvalid indicates the order passed to Assign is not a
	// permutation of the table's ids or visits a node before one of its
	// predecessors.
	ErrOrderInvalid = errors.New("layer: order is not a topological order of the graph")

	// ErrEdgeNotForward indicates an edge whose head tier is not strictly
	// greater than its tail tier.
	ErrEdgeNotForward = errors.New("layer: edge does not cross to a later tier")
)

// unassigned marks ids Assign has not reached yet.
const unassigned = -1

// Assign computes the tier of every node in a single forward pass over
// order, which must be a topological order of t (as produced by
// dfs.TopologicalSort). The result is indexed by node id.
//
// Errors:
//   - ErrGraphNil for a nil table.
//   - ErrOrderInvalid (wrapped) if order has the wrong length, repeats or
//     misses an id, or places a node before one of its predecessors.
//
// Complexity: Time O(V + E), Space O(V).
func Assign[T any](t *core.Table[T], order []int) ([]int, error) {
	if t == nil {
		return nil, ErrGraphNil
	}
	n := t.Len()
	if len(order) != n {
		return nil, fmt.Errorf("%w: got %d ids for %d nodes", ErrOrderInvalid, len(order), n)
	}

	tiers := make([]int, n)
	for i := range tiers {
		tiers[i] = unassigned
	}

	for _, id := range order {
		if !t.HasNode(id) || tiers[id] != unassigned {
			return nil, fmt.Errorf("%w: id %d unknown or repeated", ErrOrderInvalid, id)
		}
		preds, err := t.Inbound(id)
		if err != nil {
			return nil, fmt.Errorf("layer: Assign: %w", err)
		}

		tier := 0
		for _, p := range preds {
			if tiers[p] == unassigned {
				return nil, fmt.Errorf("%w: node %d placed before predecessor %d", ErrOrderInvalid, id, p)
			}
			tier = max(tier, tiers[p]+1)
		}
		tiers[id] = tier
	}

	return tiers, nil
}

// Group buckets node ids by tier: the result has one slice per tier in
// ascending tier order, and ids inside a tier are ascending.
//
// Tier numbers are expected to be dense (0..k-1 all used), which Assign
// guarantees. Negative entries are ignored.
//
// Complexity: Time O(V), Space O(V).
func Group(tiers []int) [][]int {
	depth := 0
	for _, tier := range tiers {
		depth = max(depth, tier+1)
	}

	groups := make([][]int, depth)
	// ids are visited ascending, so each bucket fills in ascending order
	for id, tier := range tiers {
		if tier < 0 {
			continue
		}
		groups[tier] = append(groups[tier], id)
	}

	return groups
}

// Validate checks that every edge of t goes from a lower tier to a strictly
// higher one. It returns the first violating edge in Connect order.
//
// Complexity: Time O(E).
func Validate[T any](t *core.Table[T], tiers []int) error {
	if t == nil {
		return ErrGraphNil
	}
	if len(tiers) != t.Len() {
		return fmt.Errorf("%w: got %d tiers for %d nodes", ErrOrderInvalid, len(tiers), t.Len())
	}
	for _, e := range t.Edges() {
		if tiers[e.Tail] >= tiers[e.Head] {
			return fmt.Errorf("%w: %s (tiers %d → %d)", ErrEdgeNotForward, e, tiers[e.Tail], tiers[e.Head])
		}
	}

	return nil
}

// Width returns the size of the largest group, the maximum number of nodes
// that can run concurrently under a tier barrier.
func Width(groups [][]int) int {
	w := 0
	for _, g := range groups {
		w = max(w, len(g))
	}

	return w
}
