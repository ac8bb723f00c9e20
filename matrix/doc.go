// Package matrix offers the sparse boundary matrix over the two-element
// field GF(2) and its builder.
//
// The matrix package provides:
//
//   - Column: an ascending list of row indices holding a 1. Every other
//     entry is 0. Addition over GF(2) is the symmetric difference (Add).
//   - Boundary: an N×N column-major sparse matrix with Low (largest nonzero
//     row), Clone, Equal and a dense 0/1 rendering for diagnostics.
//   - Build: turns a filtration-ordered []core.Simplex into its boundary
//     matrix. Column c holds the rows of the codimension-1 faces of simplex c.
//
// Face policy:
//
//	A face that never appeared earlier in the filtration cannot be given a
//	row. Build makes the reaction explicit through FacePolicy: Strict fails
//	with ErrMissingFace, Lenient omits the incidence (legacy behavior) and
//	counts it in BuildStats.Omitted.
//
// Complexity:
//
//	Build runs in O(Σ (Dim+1)·Dim) time, i.e. linear in the total number of
//	vertex incidences, plus O(k log k) to sort each column of k entries.
//	Memory is O(N + nonzeros).
package matrix
