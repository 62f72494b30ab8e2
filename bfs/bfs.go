// SPDX-License-Identifier: MIT
// Package: tierplan/bfs

package bfs

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/tierplan/core"
)

type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker[T any] struct {
	table   *core.Table[T]
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited []bool
	res     *Result
}

// BFS walks t breadth-first from start.
// Returns ErrGraphNil, ErrStartNodeNotFound, ErrOptionViolation, the
// context error on cancellation, or the first OnVisit error (wrapped).
//
// Complexity: O(V + E log E) time, O(V) space.
func BFS[T any](t *core.Table[T], start int, opts ...Option) (*Result, error) {
	if t == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !t.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNodeNotFound, start)
	}

	n := t.Len()
	w := &walker[T]{
		table:   t,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}
	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

func (w *walker[T]) enqueue(id, depth, parent int) {
	w.visited[id] = true
	w.res.Depth[id] = depth
	if parent >= 0 {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: depth})
}

func (w *walker[T]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.neighbors(item.id) {
			if !w.visited[nbr] {
				w.enqueue(nbr, next, item.id)
			}
		}
	}

	return nil
}

// neighbors returns the distinct ids adjacent to id in the walk direction,
// ascending.
func (w *walker[T]) neighbors(id int) []int {
	if w.opts.Direction == Outbound {
		ids, _ := w.table.NeighborIDs(id)
		return ids
	}

	ids, _ := w.table.Inbound(id)
	sort.Ints(ids)
	out := ids[:0]
	for _, v := range ids {
		if len(out) == 0 || v != out[len(out)-1] {
			out = append(out, v)
		}
	}

	return out
}
