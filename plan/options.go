// SPDX-License-Identifier: MIT
// Package: tierplan/plan
//
// options.go - functional options for NewBuilder.
//
// Option constructors validate their arguments and panic on meaningless
// values; Build itself never panics.

package plan

import (
	"io"
	"log/slog"
)

// Option configures a Builder at construction time.
type Option func(*config)

type config struct {
	logger  *slog.Logger
	format  func(any) string
	nodeCap int
	edgeCap int
}

// defaultConfig discards logs and has no formatter.
func defaultConfig() config {
	return config{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithLogger sets the structured logger used for build diagnostics.
// Build emits Debug records per phase and a Warn record on failure.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("plan: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithFormatter installs a diagnostic formatter for payloads of type T. It
// is used to label the nodes of a cycle in BuildError and in log records.
// Payloads of another type are ignored. Panics on nil.
func WithFormatter[T any](fn func(T) string) Option {
	if fn == nil {
		panic("plan: WithFormatter(nil)")
	}
	return func(c *config) {
		c.format = func(v any) string {
			if p, ok := v.(T); ok {
				return fn(p)
			}
			return ""
		}
	}
}

// WithCapacity pre-sizes the node table. Panics on negative values.
func WithCapacity(nodes, edges int) Option {
	if nodes < 0 || edges < 0 {
		panic("plan: WithCapacity(negative)")
	}
	return func(c *config) {
		c.nodeCap, c.edgeCap = nodes, edges
	}
}
