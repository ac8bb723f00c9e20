// SPDX-License-Identifier: MIT
// Package: lvhom/reduction
//
// errors.go - sentinel errors for the reduction engine.

package reduction

import "errors"

var (
	// ErrNotReduced is returned by Verify when two nonzero columns share a low.
	ErrNotReduced = errors.New("reduction: low function is not injective")

	// ErrNilMatrix indicates that Reduce or Verify received a nil matrix.
	ErrNilMatrix = errors.New("reduction: nil matrix")
)
