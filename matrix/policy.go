// SPDX-License-Identifier: MIT
// Package: lvhom/matrix
//
// policy.go - what Build does with a face it cannot find.

package matrix

import (
	"fmt"
	"strings"
)

// FacePolicy selects how Build treats a codimension-1 face that did not
// appear earlier in the filtration, and a vertex set that appears twice.
//
//   - Strict  - fail fast with ErrMissingFace / ErrDuplicateSimplex.
//   - Lenient - omit the missing incidence and let the later duplicate take
//     over the vertex-set index. The resulting matrix is well-formed but may
//     describe a complex that is not closed under faces.
//
// The zero value is deliberately invalid: callers must pick one.
type FacePolicy int

const (
	policyUnset FacePolicy = iota

	// Strict rejects filtrations that violate the closure property.
	Strict

	// Lenient reproduces the legacy silent omission of unseen faces.
	Lenient
)

// String returns "strict", "lenient" or "unset".
func (p FacePolicy) String() string {
	switch p {
	case Strict:
		return "strict"
	case Lenient:
		return "lenient"
	default:
		return "unset"
	}
}

// Valid reports whether p is Strict or Lenient.
func (p FacePolicy) Valid() bool { return p == Strict || p == Lenient }

// ParsePolicy maps "strict"/"lenient" (case-insensitive) to a FacePolicy.
func ParsePolicy(s string) (FacePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict":
		return Strict, nil
	case "lenient":
		return Lenient, nil
	}

	return policyUnset, fmt.Errorf("%q: %w", s, ErrUnknownPolicy)
}
