// SPDX-License-Identifier: MIT
// Package: tierplan/core
//
// methods.go - node and edge lifecycle plus adjacency queries.
//
// Determinism:
//   - Ids are assigned in AddNode order; Inbound/Outbound/Edges preserve Connect order.
//   - NeighborIDs, StartNodes and SinkNodes return ascending ids.

package core

import (
	"fmt"
	"sort"
)

// AddNode appends a node carrying payload with empty edge lists and returns
// its id. The first node gets id 0; every call returns the previous Len().
//
// Complexity: O(1) amortized.
func (t *Table[T]) AddNode(payload T) int {
	id := len(t.nodes)
	t.nodes = append(t.nodes, node[T]{payload: payload})

	return id
}

// HasNode reports whether id names a node of this table.
func (t *Table[T]) HasNode(id int) bool {
	return id >= 0 && id < len(t.nodes)
}

// Payload returns the payload stored for id.
func (t *Table[T]) Payload(id int) (T, error) {
	if !t.HasNode(id) {
		var zero T
		return zero, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return t.nodes[id].payload, nil
}

// Connect records the edge tail→head: head is appended to tail's outbound
// list and tail to head's inbound list.
//
// Behavior highlights:
//   - Duplicate edges are kept; they only change edge-list cardinality.
//   - Self-loops are stored as given; the sorter rejects them as cycles.
//
// Errors:
//   - ErrNodeNotFound if either id is outside 0..Len()-1. Nothing is recorded then.
//
// Complexity: O(1) amortized.
func (t *Table[T]) Connect(tail, head int) error {
	// 1) Validate both endpoints before touching any list.
	if !t.HasNode(tail) {
		return fmt.Errorf("%w: tail %d (edge %d→%d)", ErrNodeNotFound, tail, tail, head)
	}
	if !t.HasNode(head) {
		return fmt.Errorf("%w: head %d (edge %d→%d)", ErrNodeNotFound, head, tail, head)
	}

	// 2) Record both directions and the edge catalog entry.
	t.nodes[tail].outbound = append(t.nodes[tail].outbound, head)
	t.nodes[head].inbound = append(t.nodes[head].inbound, tail)
	t.edges = append(t.edges, Edge{Tail: tail, Head: head})

	return nil
}

// Len returns the number of nodes.
func (t *Table[T]) Len() int { return len(t.nodes) }

// EdgeCount returns the number of recorded edges, duplicates included.
func (t *Table[T]) EdgeCount() int { return len(t.edges) }

// Inbound returns a copy of id's predecessor list in Connect order.
func (t *Table[T]) Inbound(id int) ([]int, error) {
	if !t.HasNode(id) {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return append([]int(nil), t.nodes[id].inbound...), nil
}

// Outbound returns a copy of id's successor list in Connect order.
func (t *Table[T]) Outbound(id int) ([]int, error) {
	if !t.HasNode(id) {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return append([]int(nil), t.nodes[id].outbound...), nil
}

// NeighborIDs returns the distinct successors of id in ascending order.
// Traversals use it so that visiting order depends only on creation ids.
//
// Complexity: O(d·log d) where d = OutDegree(id).
func (t *Table[T]) NeighborIDs(id int) ([]int, error) {
	out, err := t.Outbound(id)
	if err != nil {
		return nil, err
	}
	if len(out) < 2 {
		return out, nil
	}

	sort.Ints(out)
	// compact duplicates in place
	w := 1
	for r := 1; r < len(out); r++ {
		if out[r] != out[w-1] {
			out[w] = out[r]
			w++
		}
	}

	return out[:w], nil
}

// InDegree returns the number of inbound edges of id, or -1 for unknown ids.
func (t *Table[T]) InDegree(id int) int {
	if !t.HasNode(id) {
		return -1
	}

	return len(t.nodes[id].inbound)
}

// OutDegree returns the number of outbound edges of id, or -1 for unknown ids.
func (t *Table[T]) OutDegree(id int) int {
	if !t.HasNode(id) {
		return -1
	}

	return len(t.nodes[id].outbound)
}

// StartNodes returns, in ascending order, the ids with an empty inbound list.
func (t *Table[T]) StartNodes() []int {
	var ids []int
	for id := range t.nodes {
		if len(t.nodes[id].inbound) == 0 {
			ids = append(ids, id)
		}
	}

	return ids
}

// SinkNodes returns, in ascending order, the ids with an empty outbound list.
func (t *Table[T]) SinkNodes() []int {
	var ids []int
	for id := range t.nodes {
		if len(t.nodes[id].outbound) == 0 {
			ids = append(ids, id)
		}
	}

	return ids
}

// Edges returns a copy of the edge catalog in Connect order.
func (t *Table[T]) Edges() []Edge {
	return append([]Edge(nil), t.edges...)
}
