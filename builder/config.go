// SPDX-License-Identifier: MIT
// Package: lvhom/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng    = nil  (pure/deterministic unless seeded)
//   • offset = 0    (vertex ids start at 0)
//   • scale  = 1.0  (values as documented per constructor)
//   • timeFn = DefaultTimeFn (U[0,1) edge times)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	rng    *rand.Rand
	offset int
	scale  float64
	timeFn TimeFn
}

const (
	defaultOffset = 0
	defaultScale  = 1.0
)

// newBuilderConfig applies opts over the defaults; last one wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:    nil,
		offset: defaultOffset,
		scale:  defaultScale,
		timeFn: DefaultTimeFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// vertex maps a constructor-local index to the emitted vertex id.
func (c builderConfig) vertex(i int) int { return c.offset + i }

// value scales a constructor-local time.
func (c builderConfig) value(t float64) float64 { return c.scale * t }
