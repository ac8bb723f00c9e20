// SPDX-License-Identifier: MIT
// Package: lvhom/matrix
//
// build.go - boundary matrix construction from an ordered filtration.

package matrix

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvhom/core"
)

// BuildStats summarizes one Build call.
type BuildStats struct {
	Columns  int // N
	NonZeros int // recorded face incidences
	Omitted  int // faces dropped under Lenient
}

// Build converts a filtration-ordered sequence of simplices into its
// boundary matrix over GF(2).
//
// Algorithm:
//  1. Keep a map vertex-set key → column index, filled as simplices are
//     visited in order (a simplex is registered after its faces are looked
//     up, so it can never be its own face).
//  2. For simplex c enumerate its Dim+1 faces (remove one vertex at a time);
//     every face already in the map contributes its index as a row of c.
//  3. Sort the rows of c ascending.
//
// A face not in the map is handled by policy (see FacePolicy). The empty
// face of a 0-simplex is never looked up, so vertices always get a zero
// column.
//
// The input must already be in filtration order (core.SortFiltration); Build
// does not reorder it. With a valid order every row is < its column.
//
// Complexity: O(Σ (Dim+1)·Dim) time for face keys and lookups, plus column
// sorts; O(N + nonzeros) memory.
func Build(fs []core.Simplex, policy FacePolicy) (*Boundary, BuildStats, error) {
	if !policy.Valid() {
		return nil, BuildStats{}, fmt.Errorf("Build: %w", ErrUnknownPolicy)
	}

	m := &Boundary{cols: make([]Column, len(fs))}
	stats := BuildStats{Columns: len(fs)}
	index := make(map[string]int, len(fs))

	for c, s := range fs {
		if s.Dim > 0 {
			col := make(Column, 0, len(s.Vertices))
			for _, face := range s.Faces() {
				row, ok := index[face.Key()]
				if !ok {
					if policy == Strict {
						return nil, stats, fmt.Errorf("Build: column %d %v face %v: %w",
							c, s.Vertices, face, ErrMissingFace)
					}
					stats.Omitted++
					continue
				}
				col = append(col, row)
			}
			sort.Ints(col)
			if len(col) > 0 {
				m.cols[c] = col
			}
			stats.NonZeros += len(col)
		}

		key := s.Vertices.Key()
		if prev, dup := index[key]; dup && policy == Strict {
			return nil, stats, fmt.Errorf("Build: column %d %v repeats column %d: %w",
				c, s.Vertices, prev, ErrDuplicateSimplex)
		}
		index[key] = c
	}

	return m, stats, nil
}
