// SPDX-License-Identifier: MIT
// Package: lvhom/barcode
//
// interval.go - the Interval value type and the Barcode multiset.

package barcode

import (
	"math"
	"sort"
	"strconv"
)

// Interval is one persistence pair (Dim, [Start, End)).
// End is +Inf for a feature that never dies; Start <= End always holds.
type Interval struct {
	Dim   int
	Start float64
	End   float64
}

// Infinite reports whether the feature never dies.
func (iv Interval) Infinite() bool { return math.IsInf(iv.End, 1) }

// Persistence returns End - Start (+Inf for infinite intervals).
func (iv Interval) Persistence() float64 { return iv.End - iv.Start }

// Alive reports whether the feature exists at time t: Start <= t < End.
func (iv Interval) Alive(t float64) bool { return iv.Start <= t && t < iv.End }

// String renders "dim start end", using the literal "inf" for an unbounded
// end. Values are printed with the shortest single-precision representation.
func (iv Interval) String() string {
	return strconv.Itoa(iv.Dim) + " " + FormatValue(iv.Start) + " " + FormatValue(iv.End)
}

// FormatValue prints a filtration value at single precision; +Inf is "inf".
func FormatValue(v float64) string {
	if math.IsInf(v, 1) {
		return "inf"
	}

	return strconv.FormatFloat(v, 'g', -1, 32)
}

// Compare orders intervals by (Start, Dim, End). Returns -1, 0 or +1.
func Compare(a, b Interval) int {
	switch {
	case a.Start < b.Start:
		return -1
	case a.Start > b.Start:
		return 1
	case a.Dim < b.Dim:
		return -1
	case a.Dim > b.Dim:
		return 1
	case a.End < b.End:
		return -1
	case a.End > b.End:
		return 1
	}

	return 0
}

// Barcode is the multiset of intervals of one filtration.
type Barcode []Interval

// Sort orders b in place by (Start, Dim, End).
func (b Barcode) Sort() {
	sort.SliceStable(b, func(i, j int) bool { return Compare(b[i], b[j]) < 0 })
}

// ByDim returns the intervals of dimension d, preserving order.
func (b Barcode) ByDim(d int) Barcode {
	var out Barcode
	for _, iv := range b {
		if iv.Dim == d {
			out = append(out, iv)
		}
	}

	return out
}

// Dims returns the distinct dimensions present, ascending.
func (b Barcode) Dims() []int {
	seen := map[int]bool{}
	var dims []int
	for _, iv := range b {
		if !seen[iv.Dim] {
			seen[iv.Dim] = true
			dims = append(dims, iv.Dim)
		}
	}
	sort.Ints(dims)

	return dims
}

// Betti returns, per dimension, the number of features alive at time t.
// Dimensions with no living feature are omitted.
// Complexity: O(len(b)).
func (b Barcode) Betti(t float64) map[int]int {
	out := make(map[int]int)
	for _, iv := range b {
		if iv.Alive(t) {
			out[iv.Dim]++
		}
	}

	return out
}

// Infinite returns the intervals that never die, preserving order. Their
// per-dimension counts are the Betti numbers of the final complex.
func (b Barcode) Infinite() Barcode {
	var out Barcode
	for _, iv := range b {
		if iv.Infinite() {
			out = append(out, iv)
		}
	}

	return out
}
