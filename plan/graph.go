// SPDX-License-Identifier: MIT
// Package: tierplan/plan
//
// graph.go - the immutable build result.

package plan

import (
	"sort"

	"github.com/katalvlaran/tierplan/bfs"
	"github.com/katalvlaran/tierplan/core"
	"github.com/katalvlaran/tierplan/dfs"
	"github.com/katalvlaran/tierplan/layer"
)

// Graph is the validated, tiered result of Builder.Build.
//
// Every tier holds nodes with no edge between them; every edge goes from a
// lower tier to a strictly higher one. Inside a tier, payloads are in
// ascending node-id (creation) order.
//
// A Graph never changes after Build and all accessors return fresh copies,
// so it is safe for concurrent readers.
type Graph[T any] struct {
	snap   *core.Table[T]
	owner  *token
	order  []int   // topological order, ids
	tierOf []int   // tier per id
	groups [][]int // ids per tier
	width  int
}

func newGraph[T any](snap *core.Table[T], owner *token, order, tiers []int, groups [][]int) *Graph[T] {
	return &Graph[T]{
		snap:   snap,
		owner:  owner,
		order:  order,
		tierOf: tiers,
		groups: groups,
		width:  layer.Width(groups),
	}
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph[T]) NodeCount() int { return g.snap.Len() }

// EdgeCount returns the number of edges, duplicates included.
func (g *Graph[T]) EdgeCount() int { return g.snap.EdgeCount() }

// TierCount returns the number of tiers (the critical-path length in nodes).
func (g *Graph[T]) TierCount() int { return len(g.groups) }

// Width returns the size of the widest tier.
func (g *Graph[T]) Width() int { return g.width }

// Tiers returns the payloads grouped by tier.
func (g *Graph[T]) Tiers() [][]T {
	out := make([][]T, len(g.groups))
	for i := range g.groups {
		out[i] = g.payloads(g.groups[i])
	}

	return out
}

// Tier returns the payloads of tier i, or nil when i is out of range.
func (g *Graph[T]) Tier(i int) []T {
	if i < 0 || i >= len(g.groups) {
		return nil
	}

	return g.payloads(g.groups[i])
}

// TierIDs returns the node ids grouped by tier.
func (g *Graph[T]) TierIDs() [][]int {
	out := make([][]int, len(g.groups))
	for i, grp := range g.groups {
		out[i] = append([]int(nil), grp...)
	}

	return out
}

// Order returns the payloads in topological order: every node appears after
// all of its predecessors.
func (g *Graph[T]) Order() []T { return g.payloads(g.order) }

// TierOf returns the tier of h. The boolean is false for handles of another
// Builder and for nodes registered after this Graph was built.
func (g *Graph[T]) TierOf(h NodeHandle[T]) (int, bool) {
	if !g.owns(h) {
		return 0, false
	}

	return g.tierOf[h.id], true
}

// Descendants returns the payloads of every node reachable from h, in
// ascending id order, h excluded. Nil for unknown handles.
func (g *Graph[T]) Descendants(h NodeHandle[T]) []T {
	if !g.owns(h) {
		return nil
	}
	ids, err := dfs.Reachable(g.snap, h.id)
	if err != nil {
		return nil
	}

	return g.payloads(ids)
}

// Ancestors returns the payloads of every node h transitively depends on,
// in ascending id order, h excluded. Nil for unknown handles.
func (g *Graph[T]) Ancestors(h NodeHandle[T]) []T {
	if !g.owns(h) {
		return nil
	}
	res, err := bfs.BFS(g.snap, h.id, bfs.WithDirection(bfs.Inbound))
	if err != nil {
		return nil
	}
	ids := append([]int(nil), res.Order[1:]...)
	sort.Ints(ids)

	return g.payloads(ids)
}

// Distance returns the minimum number of edges on a path from -> to, or
// false when to is not reachable from from.
func (g *Graph[T]) Distance(from, to NodeHandle[T]) (int, bool) {
	if !g.owns(from) || !g.owns(to) {
		return 0, false
	}
	res, err := bfs.BFS(g.snap, from.id)
	if err != nil {
		return 0, false
	}
	d, ok := res.Depth[to.id]

	return d, ok
}

func (g *Graph[T]) owns(h NodeHandle[T]) bool {
	return h.owner == g.owner && h.owner != nil && g.snap.HasNode(h.id)
}

func (g *Graph[T]) payloads(ids []int) []T {
	out := make([]T, len(ids))
	for i, id := range ids {
		out[i], _ = g.snap.Payload(id)
	}

	return out
}
