// SPDX-License-Identifier: MIT
// Package: tierplan/builder
//
// errors.go - sentinel errors. Branch with errors.Is; constructors wrap them
// with "<Method>: <detail>: %w".

package builder

import "errors"

var (
	// ErrTooFewVertices reports a size parameter below the constructor minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability reports a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource reports a stochastic constructor run without WithSeed/WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed reports a fixture that could not be assembled (e.g. a nil Constructor).
	ErrConstructFailed = errors.New("builder: construction failed")
)
