// SPDX-License-Identifier: MIT
// Package: lvhom/core
//
// order.go - the filtration order.
//
// Contract:
//   • Primary key:   Value ascending.
//   • Secondary key: Dim ascending (faces of equal value precede cofaces).
//   • Tertiary key:  lexicographic comparison of the sorted vertex sets.
//   • Deterministic: no randomness, ties resolve identically on every run.

package core

import "sort"

// CompareVertexSets compares two sorted vertex sets lexicographically.
// A proper prefix sorts before its extension. Returns -1, 0 or +1.
// Complexity: O(min(len(a), len(b))).
func CompareVertexSets(a, b VertexSet) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}

	return 0
}

// Compare orders two simplices by (Value, Dim, Vertices). Returns -1, 0 or +1.
// Zero means the two simplices are interchangeable for indexing purposes.
func Compare(a, b Simplex) int {
	switch {
	case a.Value < b.Value:
		return -1
	case a.Value > b.Value:
		return 1
	case a.Dim < b.Dim:
		return -1
	case a.Dim > b.Dim:
		return 1
	}

	return CompareVertexSets(a.Vertices, b.Vertices)
}

// Less reports whether a precedes b in filtration order.
func Less(a, b Simplex) bool {
	return Compare(a, b) < 0
}

// SortFiltration sorts fs in place into filtration order.
// The sort is stable, so exact duplicates keep their input order.
// Complexity: O(N log N) comparisons.
func SortFiltration(fs []Simplex) {
	sort.SliceStable(fs, func(i, j int) bool {
		return Less(fs[i], fs[j])
	})
}

// IsSorted reports whether fs is already in filtration order.
func IsSorted(fs []Simplex) bool {
	for i := 1; i < len(fs); i++ {
		if Less(fs[i], fs[i-1]) {
			return false
		}
	}

	return true
}
