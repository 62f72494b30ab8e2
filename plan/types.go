// SPDX-License-Identifier: MIT
// Package: tierplan/plan
//
// types.go - handles, build errors and error kinds.

package plan

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/tierplan/dfs"
)

// Build failures. They alias the dfs sentinels, so errors.Is works with either name.
var (
	// ErrEmptyGraph is returned by Build when no node was registered.
	ErrEmptyGraph = dfs.ErrEmptyGraph

	// ErrNoStartNodes is returned by Build when every node has a predecessor.
	ErrNoStartNodes = dfs.ErrNoStartNodes

	// ErrCycleDetected is returned by Build when the edges contain a cycle.
	ErrCycleDetected = dfs.ErrCycleDetected
)

// token identifies one Builder. It has a field so that distinct tokens
// never share an address.
type token struct{ _ byte }

// NodeHandle is a comparable reference to a node of one Builder. Two handles
// are equal when they come from the same Builder and carry the same id, so a
// handle can key a map or set. The zero NodeHandle is invalid.
type NodeHandle[T any] struct {
	id    int
	owner *token
}

// ID returns the creation id of the node (0 for the first node).
func (h NodeHandle[T]) ID() int { return h.id }

// Valid reports whether h was returned by a Builder.
func (h NodeHandle[T]) Valid() bool { return h.owner != nil }

// String renders the handle as "node#<id>".
func (h NodeHandle[T]) String() string {
	if !h.Valid() {
		return "node#invalid"
	}

	return fmt.Sprintf("node#%d", h.id)
}

// ErrorKind classifies a BuildError.
type ErrorKind int

const (
	// KindEmptyGraph: Build called with zero registered nodes.
	KindEmptyGraph ErrorKind = iota + 1
	// KindNoStartNodes: every node has at least one predecessor.
	KindNoStartNodes
	// KindCycleDetected: the sort found a back-edge into an in-progress node.
	KindCycleDetected
)

// String implements fmt.Stringer.
func (k ErrorKind) String() string {
	switch k {
	case KindEmptyGraph:
		return "EmptyGraph"
	case KindNoStartNodes:
		return "NoStartNodes"
	case KindCycleDetected:
		return "CycleDetected"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// BuildError is the error returned by Builder.Build.
type BuildError struct {
	// Kind classifies the failure.
	Kind ErrorKind

	// NodeID is the node closing the cycle, or -1 when no node is involved.
	NodeID int

	// Path is the cycle in edge order (starting and ending at NodeID), if any.
	Path []int

	// Labels holds the formatted payloads of Path when the Builder has a
	// formatter (see WithFormatter), nil otherwise.
	Labels []string

	// Err is the underlying error (a dfs sentinel or *dfs.CycleError).
	Err error
}

// Error implements error.
func (e *BuildError) Error() string {
	var sb strings.Builder
	sb.WriteString("plan: build: ")
	sb.WriteString(e.Err.Error())
	if len(e.Labels) > 0 {
		sb.WriteString(" (")
		sb.WriteString(strings.Join(e.Labels, " → "))
		sb.WriteString(")")
	}

	return sb.String()
}

// Unwrap returns the underlying error so errors.Is matches the sentinels and
// errors.As can reach *dfs.CycleError.
func (e *BuildError) Unwrap() error { return e.Err }
