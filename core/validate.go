// SPDX-License-Identifier: MIT
// Package: lvhom/core
//
// validate.go - well-formedness checks for hand-built simplices.

package core

import (
	"fmt"
	"math"
)

// Validate checks that s is well-formed:
//   - Value is not NaN,
//   - Dim >= 0 and len(Vertices) == Dim+1,
//   - Vertices are non-negative, strictly ascending (sorted, no duplicates).
//
// Simplices built through NewSimplex always pass. Error priority follows the
// list order above.
// Complexity: O(Dim).
func Validate(s Simplex) error {
	if math.IsNaN(s.Value) {
		return ErrInvalidValue
	}
	if s.Dim < 0 {
		return fmt.Errorf("dim %d: %w", s.Dim, ErrNegativeDim)
	}
	if len(s.Vertices) == 0 {
		return ErrEmptySimplex
	}
	if len(s.Vertices) != s.Dim+1 {
		return fmt.Errorf("dim %d with %d vertices: %w", s.Dim, len(s.Vertices), ErrVertexCount)
	}
	if s.Vertices[0] < 0 {
		return fmt.Errorf("vertex %d: %w", s.Vertices[0], ErrNegativeVertex)
	}
	for i := 1; i < len(s.Vertices); i++ {
		prev, cur := s.Vertices[i-1], s.Vertices[i]
		if cur == prev {
			return fmt.Errorf("vertex %d: %w", cur, ErrDuplicateVertex)
		}
		if cur < prev {
			return fmt.Errorf("vertex %d after %d: %w", cur, prev, ErrUnsortedVertices)
		}
	}

	return nil
}

// ValidateAll runs Validate over fs and reports the first failure together
// with its position.
func ValidateAll(fs []Simplex) error {
	for i, s := range fs {
		if err := Validate(s); err != nil {
			return fmt.Errorf("simplex %d %v: %w", i, s.Vertices, err)
		}
	}

	return nil
}
