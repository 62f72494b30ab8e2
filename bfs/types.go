// SPDX-License-Identifier: MIT
// Package: tierplan/bfs
//
// types.go - options, sentinels and the traversal result.

package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartNodeNotFound is returned when the start id is outside the table.
	ErrStartNodeNotFound = errors.New("bfs: start node not found")

	// ErrGraphNil is returned if a nil table pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Direction selects which edges the walk follows.
type Direction int

const (
	// Outbound follows tail → head: successors, dependents.
	Outbound Direction = iota
	// Inbound follows head → tail: predecessors, prerequisites.
	Inbound
)

// Option configures BFS behavior. Invalid values are recorded and surface
// as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks of one traversal.
type Options struct {
	// Ctx allows cancellation; checked once per dequeued node.
	Ctx context.Context

	// Direction of travel. Default Outbound.
	Direction Direction

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// OnVisit is called for every visited node. A non-nil error aborts the walk.
	OnVisit func(id, depth int) error

	err error
}

// DefaultOptions returns outbound, unlimited, background-context options
// with a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(int, int) error { return nil },
	}
}

// WithContext sets a context for cancellation. Nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDirection chooses Outbound or Inbound traversal.
func WithDirection(d Direction) Option {
	return func(o *Options) {
		switch d {
		case Outbound, Inbound:
			o.Direction = d
		default:
			o.err = fmt.Errorf("%w: unknown direction %d", ErrOptionViolation, d)
		}
	}
}

// WithMaxDepth limits the walk to d hops. 0 means no limit; negative is invalid.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnVisit registers a visit hook. Nil is ignored.
func WithOnVisit(fn func(id, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a traversal.
//   - Order:  visited ids in visit sequence, start first.
//   - Depth:  hop distance from the start per visited id.
//   - Parent: predecessor in the BFS tree per visited id except the start.
type Result struct {
	Order  []int
	Depth  map[int]int
	Parent map[int]int
}

// PathTo reconstructs the hop-shortest path from the start to dest.
func (r *Result) PathTo(dest int) ([]int, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
	}
	path := []int{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
