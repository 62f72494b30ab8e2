// SPDX-License-Identifier: MIT
// Package: tierplan/dfs
//
// reach.go - forward reachability.

package dfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/tierplan/core"
)

// Reachable returns, in ascending order, every node reachable from `from`
// by following one or more outbound edges. `from` itself is included only
// when it lies on a cycle.
//
// Errors:
//   - ErrGraphNil for a nil table.
//   - core.ErrNodeNotFound (wrapped) for an unknown start id.
//
// Complexity: Time O(V + E·log d), Memory O(V).
func Reachable[T any](t *core.Table[T], from int) ([]int, error) {
	if t == nil {
		return nil, ErrGraphNil
	}
	if !t.HasNode(from) {
		return nil, fmt.Errorf("dfs: Reachable(%d): %w", from, core.ErrNodeNotFound)
	}

	seen := make([]bool, t.Len())
	var out []int
	stack := []int{from}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		next, err := t.NeighborIDs(id)
		if err != nil {
			return nil, fmt.Errorf("dfs: Reachable(%d): %w", from, err)
		}
		for _, nb := range next {
			if seen[nb] {
				continue
			}
			seen[nb] = true
			out = append(out, nb)
			stack = append(stack, nb)
		}
	}
	sort.Ints(out)

	return out, nil
}
