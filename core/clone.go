// SPDX-License-Identifier: MIT
// Package: tierplan/core
//
// clone.go - snapshots and summary statistics.

package core

// Clone returns a deep copy of the adjacency lists and edge catalog.
// Payloads are copied by value; payloads that are pointers or contain
// references keep sharing the referenced data.
//
// A clone is fully independent: later AddNode/Connect calls on either table
// are invisible to the other. Builders freeze their state this way before
// sorting, which is what makes repeated builds side-effect free.
//
// Complexity: O(V + E).
func (t *Table[T]) Clone() *Table[T] {
	clone := &Table[T]{
		nodes: make([]node[T], len(t.nodes)),
		edges: append(make([]Edge, 0, len(t.edges)), t.edges...),
	}
	for id, n := range t.nodes {
		clone.nodes[id] = node[T]{
			payload:  n.payload,
			inbound:  append([]int(nil), n.inbound...),
			outbound: append([]int(nil), n.outbound...),
		}
	}

	return clone
}

// Stats summarizes the shape of a table.
type Stats struct {
	Nodes          int // node count
	Edges          int // edge count, duplicates included
	StartNodes     int // nodes without predecessors
	SinkNodes      int // nodes without successors
	DuplicateEdges int // edges repeating an earlier tail→head pair
	SelfLoops      int // edges with tail == head
}

// Stats computes a Stats snapshot.
// Complexity: O(V + E) time, O(E) space for duplicate detection.
func (t *Table[T]) Stats() Stats {
	s := Stats{Nodes: len(t.nodes), Edges: len(t.edges)}
	for id := range t.nodes {
		if len(t.nodes[id].inbound) == 0 {
			s.StartNodes++
		}
		if len(t.nodes[id].outbound) == 0 {
			s.SinkNodes++
		}
	}

	seen := make(map[Edge]struct{}, len(t.edges))
	for _, e := range t.edges {
		if e.Tail == e.Head {
			s.SelfLoops++
		}
		if _, dup := seen[e]; dup {
			s.DuplicateEdges++
			continue
		}
		seen[e] = struct{}{}
	}

	return s
}
