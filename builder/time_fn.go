// SPDX-License-Identifier: MIT
// Package: lvhom/builder
//
// time_fn.go - entry-time distributions for stochastic constructors.
//
// A TimeFn draws the time at which an edge enters a random complex.
// Constructors clamp drawn times to ≥ 0 so that edges never precede their
// vertices, which always enter at 0.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// TimeFn draws one entry time from rng. It must consume a fixed number of
// draws per call so a seed reproduces the same complex.
type TimeFn func(rng *rand.Rand) float64

// DefaultTimeFn draws from U[0,1).
// Complexity: O(1).
func DefaultTimeFn(rng *rand.Rand) float64 {
	return rng.Float64()
}

// ConstantTimeFn returns a TimeFn that always yields t and draws nothing.
// Panics if t < 0 or t is NaN.
func ConstantTimeFn(t float64) TimeFn {
	if !(t >= 0) {
		panic(fmt.Sprintf("ConstantTimeFn: t must be ≥ 0, got %g", t))
	}

	return func(_ *rand.Rand) float64 {
		return t
	}
}

// UniformTimeFn returns a TimeFn sampling U[min, max).
// Panics unless 0 ≤ min ≤ max.
func UniformTimeFn(min, max float64) TimeFn {
	if !(min >= 0) || !(max >= min) {
		panic(fmt.Sprintf("UniformTimeFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		return min + rng.Float64()*(max-min)
	}
}

// ExponentialTimeFn returns a TimeFn sampling Exp(rate), mean 1/rate.
// Panics if rate ≤ 0.
func ExponentialTimeFn(rate float64) TimeFn {
	if !(rate > 0) {
		panic(fmt.Sprintf("ExponentialTimeFn: rate must be > 0, got %g", rate))
	}

	return func(rng *rand.Rand) float64 {
		return rng.ExpFloat64() / rate
	}
}

// NormalTimeFn returns a TimeFn sampling N(mean, stddev) clipped at 0.
// Panics if stddev < 0.
func NormalTimeFn(mean, stddev float64) TimeFn {
	if !(stddev >= 0) {
		panic(fmt.Sprintf("NormalTimeFn: stddev must be ≥ 0, got %g", stddev))
	}

	return func(rng *rand.Rand) float64 {
		return math.Max(0, rng.NormFloat64()*stddev+mean)
	}
}

// WithTimeFn sets the edge-time distribution of RandomClique.
// Panics on nil.
func WithTimeFn(fn TimeFn) BuilderOption {
	if fn == nil {
		panic("builder: WithTimeFn(nil)")
	}
	return func(c *builderConfig) {
		c.timeFn = fn
	}
}

// WithUniformTime is WithTimeFn(UniformTimeFn(min, max)).
func WithUniformTime(min, max float64) BuilderOption {
	return WithTimeFn(UniformTimeFn(min, max))
}

// WithExponentialTime is WithTimeFn(ExponentialTimeFn(rate)).
func WithExponentialTime(rate float64) BuilderOption {
	return WithTimeFn(ExponentialTimeFn(rate))
}
