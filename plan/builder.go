// SPDX-License-Identifier: MIT
// Package: tierplan/plan
//
// builder.go - the mutable staging area and the Build pipeline.
//
// Build pipeline (each step runs on a frozen snapshot):
//  1. Clone the node table.
//  2. dfs.TopologicalSort: three-color DFS, ascending-id tie-break.
//  3. layer.Assign + layer.Validate + layer.Group: longest-path tiers, every
//     edge checked to point forward, ids ascending inside.
//  4. Materialize an immutable Graph.

package plan

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/tierplan/core"
	"github.com/katalvlaran/tierplan/dfs"
	"github.com/katalvlaran/tierplan/layer"
)

// Builder accumulates nodes and edges, then validates and layers them.
// A Builder is not safe for concurrent mutation.
type Builder[T any] struct {
	table *core.Table[T]
	owner *token
	cfg   config
}

// NewBuilder returns an empty Builder configured by opts.
func NewBuilder[T any](opts ...Option) *Builder[T] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Builder[T]{
		table: core.NewTable[T](core.WithCapacity(cfg.nodeCap, cfg.edgeCap)),
		owner: &token{},
		cfg:   cfg,
	}
}

// Node registers payload as a new node and returns its handle.
// Ids are assigned 0, 1, 2, ... in call order.
func (b *Builder[T]) Node(payload T) NodeHandle[T] {
	return NodeHandle[T]{id: b.table.AddNode(payload), owner: b.owner}
}

// Connect declares that tail happens before head. Duplicate edges are kept
// and self-loops are accepted here; Build reports them as cycles.
//
// Connect panics when either handle is the zero NodeHandle or belongs to a
// different Builder.
func (b *Builder[T]) Connect(tail, head NodeHandle[T]) {
	b.mustOwn("Connect", tail)
	b.mustOwn("Connect", head)
	if err := b.table.Connect(tail.id, head.id); err != nil {
		// unreachable for owned handles: ids are never removed
		panic(fmt.Sprintf("plan: Connect(%s, %s): %v", tail, head, err))
	}
}

// mustOwn panics when h was not produced by b.
func (b *Builder[T]) mustOwn(op string, h NodeHandle[T]) {
	switch {
	case !h.Valid():
		panic(fmt.Sprintf("plan: %s: zero NodeHandle", op))
	case h.owner != b.owner:
		panic(fmt.Sprintf("plan: %s: %s belongs to another Builder", op, h))
	}
}

// Len returns the number of registered nodes.
func (b *Builder[T]) Len() int { return b.table.Len() }

// EdgeCount returns the number of Connect calls recorded, duplicates included.
func (b *Builder[T]) EdgeCount() int { return b.table.EdgeCount() }

// Payload returns the payload of h. Panics on a foreign handle.
func (b *Builder[T]) Payload(h NodeHandle[T]) T {
	b.mustOwn("Payload", h)
	p, _ := b.table.Payload(h.id)

	return p
}

// Handles returns every handle in creation order.
func (b *Builder[T]) Handles() []NodeHandle[T] {
	out := make([]NodeHandle[T], b.table.Len())
	for id := range out {
		out[id] = NodeHandle[T]{id: id, owner: b.owner}
	}

	return out
}

// Inbound returns the predecessors of h in Connect order.
func (b *Builder[T]) Inbound(h NodeHandle[T]) []NodeHandle[T] {
	b.mustOwn("Inbound", h)
	ids, _ := b.table.Inbound(h.id)

	return b.handles(ids)
}

// Outbound returns the successors of h in Connect order.
func (b *Builder[T]) Outbound(h NodeHandle[T]) []NodeHandle[T] {
	b.mustOwn("Outbound", h)
	ids, _ := b.table.Outbound(h.id)

	return b.handles(ids)
}

func (b *Builder[T]) handles(ids []int) []NodeHandle[T] {
	out := make([]NodeHandle[T], len(ids))
	for i, id := range ids {
		out[i] = NodeHandle[T]{id: id, owner: b.owner}
	}

	return out
}

// Build validates the current nodes and edges and returns the tiered Graph.
// The Builder is left untouched, so Build may be repeated, including after
// more Node/Connect calls; an unchanged Builder yields identical graphs.
//
// Errors (always *BuildError):
//   - ErrEmptyGraph when no node was registered.
//   - ErrNoStartNodes when every node has a predecessor. The located cycle
//     is attached, so errors.Is(err, ErrCycleDetected) holds as well.
//   - ErrCycleDetected when the sort meets a back-edge.
//
// Complexity: O(V + E log E) time, O(V + E) space.
func (b *Builder[T]) Build() (*Graph[T], error) {
	log := b.cfg.logger
	snap := b.table.Clone()
	log.Debug("build.start", slog.Int("nodes", snap.Len()), slog.Int("edges", snap.EdgeCount()))

	order, err := dfs.TopologicalSort(snap)
	if err != nil {
		berr := b.buildError(snap, err)
		log.Warn("build.failed", slog.String("kind", berr.Kind.String()), slog.Any("error", berr))

		return nil, berr
	}
	log.Debug("build.sorted", slog.Any("order", order))

	tiers, err := layer.Assign(snap, order)
	if err != nil {
		// a sorted order is always a valid linearization
		return nil, fmt.Errorf("plan: build: %w", err)
	}
	if err := layer.Validate(snap, tiers); err != nil {
		return nil, fmt.Errorf("plan: build: %w", err)
	}
	groups := layer.Group(tiers)
	log.Debug("build.layered", slog.Int("tiers", len(groups)), slog.Int("width", layer.Width(groups)))

	return newGraph(snap, b.owner, order, tiers, groups), nil
}

// buildError classifies a sorter error and labels the cycle path.
func (b *Builder[T]) buildError(snap *core.Table[T], err error) *BuildError {
	berr := &BuildError{NodeID: -1, Err: err}

	var ce *dfs.CycleError
	switch {
	case errors.As(err, &ce):
		berr.Kind = KindCycleDetected
		if errors.Is(err, ErrNoStartNodes) {
			berr.Kind = KindNoStartNodes
		}
		berr.NodeID = ce.NodeID
		berr.Path = append([]int(nil), ce.Path...)
		if b.cfg.format != nil {
			berr.Labels = make([]string, len(ce.Path))
			for i, id := range ce.Path {
				p, _ := snap.Payload(id)
				berr.Labels[i] = b.cfg.format(p)
			}
		}
	case errors.Is(err, ErrNoStartNodes):
		berr.Kind = KindNoStartNodes
	default:
		berr.Kind = KindEmptyGraph
	}

	return berr
}
