// SPDX-License-Identifier: MIT
// Package: tierplan/builder
//
// options.go - functional options for BuildPlan.
//
// Option constructors validate and panic on meaningless inputs.
// Constructors themselves never panic.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/tierplan/plan"
)

// BuilderOption customizes fixture construction.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the label generator: node index -> payload.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithSymbolIDs labels nodes "A".."Z". Fixtures over 26 nodes panic.
func WithSymbolIDs() BuilderOption { return WithIDScheme(SymbolIDFn) }

// WithExcelColumnIDs labels nodes "A".."Z","AA","AB",...
func WithExcelColumnIDs() BuilderOption { return WithIDScheme(ExcelColumnIDFn) }

// WithPrefixIDs labels nodes prefix+index, e.g. "task0", "task1".
func WithPrefixIDs(prefix string) BuilderOption { return WithIDScheme(PrefixIDFn(prefix)) }

// WithRand provides an explicit RNG for RandomDAG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed seeds a fresh RNG; equal seeds give equal fixtures.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithPlanOptions forwards opts to plan.NewBuilder.
func WithPlanOptions(opts ...plan.Option) BuilderOption {
	return func(c *builderConfig) {
		c.planOpts = append(c.planOpts, opts...)
	}
}
