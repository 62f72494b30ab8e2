// SPDX-License-Identifier: MIT
// Package: tierplan/core
//
// types.go - node records, edge records, table options and sentinel errors.

package core

import (
	"errors"
	"fmt"
)

// ErrNodeNotFound indicates an operation referenced an id outside 0..Len()-1.
var ErrNodeNotFound = errors.New("core: node not found")

// Edge is a directed "must happen before" relationship: Tail runs before Head.
type Edge struct {
	// Tail is the id of the node that must finish first.
	Tail int

	// Head is the id of the node that depends on Tail.
	Head int
}

// String renders the edge as "tail→head".
func (e Edge) String() string {
	return fmt.Sprintf("%d→%d", e.Tail, e.Head)
}

// node is one arena slot: the payload plus both adjacency directions.
type node[T any] struct {
	payload  T
	inbound  []int // predecessors, in Connect order
	outbound []int // successors, in Connect order
}

// Table is the node arena. The zero value is not usable; call NewTable.
type Table[T any] struct {
	nodes []node[T]
	edges []Edge // every Connect call, in order
}

// TableOption configures a Table before first use.
type TableOption func(*tableConfig)

type tableConfig struct {
	nodeCap int
	edgeCap int
}

// WithCapacity pre-sizes the arena for the given number of nodes and edges.
// Panics on negative values.
func WithCapacity(nodes, edges int) TableOption {
	if nodes < 0 || edges < 0 {
		panic("core: WithCapacity(negative)")
	}
	return func(c *tableConfig) {
		c.nodeCap, c.edgeCap = nodes, edges
	}
}

// NewTable creates an empty Table.
// Complexity: O(1) plus the requested capacity.
func NewTable[T any](opts ...TableOption) *Table[T] {
	var cfg tableConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Table[T]{
		nodes: make([]node[T], 0, cfg.nodeCap),
		edges: make([]Edge, 0, cfg.edgeCap),
	}
}
