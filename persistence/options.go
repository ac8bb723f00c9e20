// SPDX-License-Identifier: MIT
// Package: lvhom/persistence
//
// options.go - functional options for the pipeline.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs (nil
//     logger, unset policy). The pipeline itself never panics.
//   • Defaults: zap.NewNop(), matrix.Strict, a fresh uuid per run.

package persistence

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/lvhom/matrix"
)

// Option customizes one pipeline run.
type Option func(*config)

// config is the resolved set of knobs for one run.
type config struct {
	logger *zap.Logger
	policy matrix.FacePolicy
	runID  string
}

// newConfig applies opts over the defaults, last one wins.
func newConfig(opts ...Option) config {
	cfg := config{
		logger: zap.NewNop(),
		policy: matrix.Strict,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLogger routes stage diagnostics to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("persistence: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithFacePolicy selects Strict or Lenient handling of faces missing from
// the filtration. Panics on an invalid policy.
func WithFacePolicy(p matrix.FacePolicy) Option {
	if !p.Valid() {
		panic("persistence: WithFacePolicy(" + p.String() + ")")
	}
	return func(c *config) {
		c.policy = p
	}
}

// WithRunID tags every log line of the run with id instead of a random uuid.
// An empty id keeps the default.
func WithRunID(id string) Option {
	return func(c *config) {
		c.runID = id
	}
}
