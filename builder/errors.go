// SPDX-License-Identifier: MIT
// Package: lvhom/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Constructors attach context with %w: "Cycle: n=2 < min=3: <sentinel>".
//   • Constructors never panic; option constructors (WithX) may.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or an internal inconsistency.
var ErrConstructFailed = errors.New("builder: construction failed")
