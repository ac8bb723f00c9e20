// SPDX-License-Identifier: MIT
// Package: lvhom/builder
//
// validators.go - parameter checks shared by constructors.
//
// Each helper returns nil or an error of the form
// "<Method>: <param>=<got> ...: <sentinel>" so callers can branch with errors.Is.

package builder

import (
	"fmt"
	"math"
)

// validateMin ensures got ≥ min for the named size parameter.
// Complexity: O(1).
func validateMin(method, param string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability]; NaN fails.
// Complexity: O(1).
func validateProbability(method string, p float64) error {
	if math.IsNaN(p) || p < MinProbability || p > MaxProbability {
		return fmt.Errorf("%s: p=%v not in [%.1f,%.1f]: %w", method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}

// validateRand requires a seeded RNG for stochastic constructors.
func validateRand(method string, cfg builderConfig) error {
	if cfg.rng == nil {
		return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}

	return nil
}
