// SPDX-License-Identifier: MIT
// Package: tierplan/dfs
//
// topological.go - cycle-safe topological sort with an explicit stack.
//
// Determinism:
//   - Start nodes and outbound neighbors are visited in ascending id order,
//     so identical tables always produce identical orders and errors.

package dfs

import (
	"errors"

	"github.com/katalvlaran/tierplan/core"
)

// frame is one explicit-stack entry: the node and the cursor into its
// ascending neighbor list.
type frame struct {
	id   int
	next []int
	pos  int
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter[T any] struct {
	table *core.Table[T]
	state []int   // White/Gray/Black per id
	slot  []int   // stack index of each Gray node
	stack []frame // current DFS path
	order []int   // post-order (finishing order)
}

// TopologicalSort computes a linear order of all node ids in t such that for
// every edge tail→head, tail appears before head.
//
// Implementation:
//   - Stage 1: reject nil (ErrGraphNil) and empty (ErrEmptyGraph) tables.
//   - Stage 2: collect start nodes. With none, the cycle is located anyway
//     and returned as a *CycleError whose Cause is ErrNoStartNodes, so the
//     error matches both sentinels.
//   - Stage 3: DFS from each start node in ascending id order. A Gray
//     neighbor is a back-edge and aborts the sort with *CycleError.
//   - Stage 4: DFS from any node still White. Such nodes are unreachable
//     from every start node, which means a cycle sits among them or their
//     ancestors; continuing the walk over them reports it.
//   - Stage 5: reverse the finishing order.
//
// The first cycle found aborts the sort; no partial order is returned.
//
// Complexity: Time O(V + E·log d), Memory O(V).
func TopologicalSort[T any](t *core.Table[T]) ([]int, error) {
	// 1. Validate input
	if t == nil {
		return nil, ErrGraphNil
	}
	n := t.Len()
	if n == 0 {
		return nil, ErrEmptyGraph
	}

	s := &topoSorter[T]{
		table: t,
		state: make([]int, n),
		slot:  make([]int, n),
		order: make([]int, 0, n),
	}

	// 2. Start nodes (ascending). Without any, every node has a predecessor
	//    and a cycle must exist; locate it so the error can name a node.
	starts := t.StartNodes()
	if len(starts) == 0 {
		return nil, s.locateCycle(ErrNoStartNodes)
	}

	// 3. Walk from every start node
	for _, id := range starts {
		if s.state[id] == White {
			if err := s.visit(id); err != nil {
				return nil, err
			}
		}
	}

	// 4. Sweep nodes the start nodes never reached
	if err := s.sweep(); err != nil {
		return nil, err
	}

	// 5. Reverse post-order in place
	Reverse(s.order)

	return s.order, nil
}

// sweep visits every node still White in ascending id order.
func (s *topoSorter[T]) sweep() error {
	for id := range s.state {
		if s.state[id] == White {
			if err := s.visit(id); err != nil {
				return err
			}
		}
	}

	return nil
}

// locateCycle runs the sweep over a table known to contain a cycle and
// returns the resulting *CycleError with cause attached.
func (s *topoSorter[T]) locateCycle(cause error) error {
	err := s.sweep()
	var ce *CycleError
	if errors.As(err, &ce) {
		ce.Cause = cause
		return ce
	}
	if err != nil {
		return err
	}

	return cause
}

// visit runs one iterative DFS tree rooted at root.
func (s *topoSorter[T]) visit(root int) error {
	if err := s.push(root); err != nil {
		return err
	}

	for len(s.stack) > 0 {
		top := &s.stack[len(s.stack)-1]

		// all neighbors processed: finish the node
		if top.pos == len(top.next) {
			s.state[top.id] = Black
			s.order = append(s.order, top.id)
			s.stack = s.stack[:len(s.stack)-1]
			continue
		}

		nb := top.next[top.pos]
		top.pos++

		switch s.state[nb] {
		case Gray:
			return s.cycleAt(nb)
		case Black:
			continue
		default:
			if err := s.push(nb); err != nil {
				return err
			}
		}
	}

	return nil
}

// push marks id Gray and places it on the stack with its sorted neighbors.
func (s *topoSorter[T]) push(id int) error {
	next, err := s.table.NeighborIDs(id)
	if err != nil {
		return err
	}
	s.state[id] = Gray
	s.slot[id] = len(s.stack)
	s.stack = append(s.stack, frame{id: id, next: next})

	return nil
}

// cycleAt builds the CycleError for a back-edge into the Gray node target.
// The cycle is the stack segment from target to the top, closed by target.
func (s *topoSorter[T]) cycleAt(target int) error {
	from := s.slot[target]
	path := make([]int, 0, len(s.stack)-from+1)
	for _, f := range s.stack[from:] {
		path = append(path, f.id)
	}
	path = append(path, target)

	return &CycleError{NodeID: target, Path: path}
}
