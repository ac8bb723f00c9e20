// SPDX-License-Identifier: MIT
// Package: lvhom/core
//
// simplex.go - Simplex and VertexSet.
//
// Design:
//   • A VertexSet is a sorted, duplicate-free []int; all constructors
//     normalize into this form so comparisons are plain slice walks.
//   • Simplex values are immutable after construction by convention: the
//     pipeline sorts them once and only reads them afterwards.

package core

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// VertexSet is the sorted, duplicate-free list of vertex ids of a simplex.
type VertexSet []int

// NewVertexSet copies ids, sorts them ascending and rejects duplicates or
// negative ids. An empty input yields ErrEmptySimplex.
// Complexity: O(k log k) for k ids.
func NewVertexSet(ids ...int) (VertexSet, error) {
	if len(ids) == 0 {
		return nil, ErrEmptySimplex
	}
	vs := make(VertexSet, len(ids))
	copy(vs, ids)
	sort.Ints(vs)
	if vs[0] < 0 {
		return nil, fmt.Errorf("vertex %d: %w", vs[0], ErrNegativeVertex)
	}
	for i := 1; i < len(vs); i++ {
		if vs[i] == vs[i-1] {
			return nil, fmt.Errorf("vertex %d: %w", vs[i], ErrDuplicateVertex)
		}
	}

	return vs, nil
}

// Key renders the set as a canonical string ("0,1,2") usable as a map key.
// Two sets have equal keys iff they contain the same ids.
func (vs VertexSet) Key() string {
	var sb strings.Builder
	for i, v := range vs {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}

	return sb.String()
}

// Without returns a copy of vs with the element at position i removed.
// The receiver is left untouched.
func (vs VertexSet) Without(i int) VertexSet {
	out := make(VertexSet, 0, len(vs)-1)
	out = append(out, vs[:i]...)

	return append(out, vs[i+1:]...)
}

// Simplex is one cell of a filtration.
//
// Fields:
//   - Dim      - dimension, len(Vertices)-1 (0 = point, 1 = edge, ...).
//   - Value    - filtration value: the time the simplex enters the complex.
//   - Vertices - sorted, duplicate-free vertex ids.
type Simplex struct {
	Dim      int
	Value    float64
	Vertices VertexSet
}

// NewSimplex builds a well-formed simplex entering at value.
// Vertices are normalized (sorted); duplicates, negatives and an empty list
// are rejected with the matching sentinel.
//
// Example:
//
//	tri, err := core.NewSimplex(2.0, 2, 0, 1) // {0,1,2}, Dim=2
func NewSimplex(value float64, vertices ...int) (Simplex, error) {
	if math.IsNaN(value) {
		return Simplex{}, ErrInvalidValue
	}
	vs, err := NewVertexSet(vertices...)
	if err != nil {
		return Simplex{}, err
	}

	return Simplex{Dim: len(vs) - 1, Value: value, Vertices: vs}, nil
}

// MustSimplex is NewSimplex for fixtures and examples; it panics on error.
func MustSimplex(value float64, vertices ...int) Simplex {
	s, err := NewSimplex(value, vertices...)
	if err != nil {
		panic(fmt.Sprintf("core: MustSimplex(%v, %v): %v", value, vertices, err))
	}

	return s
}

// Faces returns the codimension-1 faces of s, produced by removing vertex i
// for i = 0..Dim in that order. A 0-simplex yields a single empty face,
// which never matches a registered simplex.
// Complexity: O(Dim²) time and space.
func (s Simplex) Faces() []VertexSet {
	faces := make([]VertexSet, len(s.Vertices))
	for i := range s.Vertices {
		faces[i] = s.Vertices.Without(i)
	}

	return faces
}

// String renders the simplex for diagnostics: {val=1; dim=1; [0, 1]}.
func (s Simplex) String() string {
	var sb strings.Builder
	sb.WriteString("{val=")
	sb.WriteString(strconv.FormatFloat(s.Value, 'g', -1, 32))
	sb.WriteString("; dim=")
	sb.WriteString(strconv.Itoa(s.Dim))
	sb.WriteString("; [")
	for i, v := range s.Vertices {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteString("]}")

	return sb.String()
}

// CountByDim tallies simplices per dimension.
// Complexity: O(N).
func CountByDim(fs []Simplex) map[int]int {
	counts := make(map[int]int)
	for _, s := range fs {
		counts[s.Dim]++
	}

	return counts
}
