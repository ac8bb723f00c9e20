// SPDX-License-Identifier: MIT
// Package: lvhom/core
//
// errors.go - sentinel errors for malformed simplices.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (record number, offending vertex) is attached with %w at the
//     call site, never baked into the sentinel message.
//   • Validation never panics.

package core

import "errors"

var (
	// ErrEmptySimplex indicates a simplex without vertices (dimension -1).
	ErrEmptySimplex = errors.New("core: simplex has no vertices")

	// ErrNegativeDim indicates a declared dimension below zero.
	ErrNegativeDim = errors.New("core: negative dimension")

	// ErrVertexCount indicates that the number of vertices differs from Dim+1.
	ErrVertexCount = errors.New("core: vertex count does not match dimension")

	// ErrDuplicateVertex indicates the same vertex id occurs twice in one simplex.
	ErrDuplicateVertex = errors.New("core: duplicate vertex in simplex")

	// ErrNegativeVertex indicates a vertex id below zero.
	ErrNegativeVertex = errors.New("core: negative vertex id")

	// ErrUnsortedVertices indicates a hand-built VertexSet that is not ascending.
	ErrUnsortedVertices = errors.New("core: vertex set is not sorted")

	// ErrInvalidValue indicates a NaN filtration value, which has no place in
	// a total order.
	ErrInvalidValue = errors.New("core: filtration value is NaN")
)
