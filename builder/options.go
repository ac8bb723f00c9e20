// SPDX-License-Identifier: MIT
// Package: lvhom/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes the resolved builderConfig.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithVertexOffset shifts every generated vertex id by off (>= 0).
// WithVertexOffset(1) reproduces the 1-based ids of the classic ball/sphere
// fixture files. Panics on a negative offset.
func WithVertexOffset(off int) BuilderOption {
	if off < 0 {
		panic("builder: WithVertexOffset(off<0)")
	}
	return func(c *builderConfig) {
		c.offset = off
	}
}

// WithValueScale multiplies every generated filtration value by k (> 0).
// Panics if k <= 0, which would break the face-before-coface order.
func WithValueScale(k float64) BuilderOption {
	if !(k > 0) {
		panic("builder: WithValueScale(k<=0)")
	}
	return func(c *builderConfig) {
		c.scale = k
	}
}
