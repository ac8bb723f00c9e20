// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors return these sentinels (optionally wrapped with %w) and
// tests check them via errors.Is. No function panics on user input.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested size is negative.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a column index is outside [0, N).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Boundary was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrUnsortedColumn indicates a column whose rows are not strictly ascending.
	ErrUnsortedColumn = errors.New("matrix: column rows not strictly ascending")

	// ErrNotUpperTriangular indicates a row index r >= c in column c.
	ErrNotUpperTriangular = errors.New("matrix: entry on or below the diagonal")

	// ErrMissingFace is returned by Build under Strict when a codimension-1
	// face of a simplex did not appear earlier in the filtration.
	ErrMissingFace = errors.New("matrix: face missing from earlier filtration")

	// ErrDuplicateSimplex is returned by Build under Strict when the same
	// vertex set occurs twice in one filtration.
	ErrDuplicateSimplex = errors.New("matrix: duplicate simplex in filtration")

	// ErrUnknownPolicy indicates an unset or unrecognized FacePolicy.
	ErrUnknownPolicy = errors.New("matrix: unknown face policy")
)
