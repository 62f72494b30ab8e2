// SPDX-License-Identifier: MIT
// Package: tierplan/builder
//
// config.go - resolved configuration and deterministic defaults.
//
// Defaults:
//   - idFn     = DefaultIDFn ("0","1","2",...)
//   - rng      = nil (RandomDAG with 0 < p < 1 then fails with ErrNeedRandSource)
//   - planOpts = none

package builder

import (
	"math/rand"

	"github.com/katalvlaran/tierplan/plan"
)

// builderConfig is passed by value to constructors.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand
	planOpts []plan.Option
}

// newBuilderConfig applies opts over the defaults; later options win.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{idFn: DefaultIDFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
