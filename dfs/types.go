// SPDX-License-Identifier: MIT
// Package: tierplan/dfs
//
// types.go - visitation colors, sentinel errors and the cycle error type.

package dfs

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Visitation states of a node during a walk.
const (
	White = iota // not visited yet
	Gray         // on the current DFS stack
	Black        // finished, all descendants explored
)

var (
	// ErrGraphNil is returned when a nil *core.Table is passed in.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrEmptyGraph is returned when sorting a table without nodes.
	ErrEmptyGraph = errors.New("dfs: graph has no nodes")

	// ErrNoStartNodes is returned when every node has a predecessor, which
	// is only possible when the whole graph sits on or behind cycles.
	ErrNoStartNodes = errors.New("dfs: no start nodes, graph may be cyclic")

	// ErrCycleDetected matches every *CycleError via errors.Is.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// CycleError reports the back-edge found by TopologicalSort.
type CycleError struct {
	// NodeID is the back-edge target: the in-progress node that closes the cycle.
	NodeID int

	// Path lists the cycle in edge order, starting and ending at NodeID.
	// A self-loop on n is reported as [n n].
	Path []int

	// Cause is ErrNoStartNodes when the sort found no start node before
	// locating the cycle, nil otherwise.
	Cause error
}

// Error implements error.
func (e *CycleError) Error() string {
	parts := make([]string, len(e.Path))
	for i, id := range e.Path {
		parts[i] = strconv.Itoa(id)
	}
	msg := fmt.Sprintf("cycle detected at node %d: %s", e.NodeID, strings.Join(parts, " → "))
	if e.Cause != nil {
		return e.Cause.Error() + ": " + msg
	}

	return "dfs: " + msg
}

// Unwrap exposes Cause to errors.Is and errors.As.
func (e *CycleError) Unwrap() error {
	return e.Cause
}

// Is makes errors.Is(err, ErrCycleDetected) hold for any *CycleError.
func (e *CycleError) Is(target error) bool {
	return target == ErrCycleDetected
}
