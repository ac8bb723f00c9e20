// SPDX-License-Identifier: MIT
// Package barcode_test verifies Interval and Barcode helpers.
package barcode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvhom/barcode"
)

// TestInterval_String renders finite and infinite ends.
func TestInterval_String(t *testing.T) {
	assert.Equal(t, "0 0 1", barcode.Interval{Dim: 0, Start: 0, End: 1}.String())
	assert.Equal(t, "1 0.5 inf", barcode.Interval{Dim: 1, Start: 0.5, End: inf}.String())
	assert.Equal(t, "2 0.1 0.2", barcode.Interval{Dim: 2, Start: float64(float32(0.1)), End: float64(float32(0.2))}.String())
}

// TestInterval_Predicates covers Infinite, Persistence and Alive.
func TestInterval_Predicates(t *testing.T) {
	iv := barcode.Interval{Dim: 1, Start: 1, End: 3}
	assert.False(t, iv.Infinite())
	assert.Equal(t, 2.0, iv.Persistence())
	assert.True(t, iv.Alive(1))
	assert.False(t, iv.Alive(3), "the end is exclusive")

	forever := barcode.Interval{Start: 0, End: inf}
	assert.True(t, forever.Infinite())
	assert.True(t, forever.Alive(1e9))
}

// TestBarcode_SortKeepsTies sorts by (start, dim, end) and keeps duplicates.
func TestBarcode_SortKeepsTies(t *testing.T) {
	b := barcode.Barcode{
		{Dim: 1, Start: 1, End: 2},
		{Dim: 0, Start: 0, End: inf},
		{Dim: 0, Start: 0, End: 1},
		{Dim: 0, Start: 1, End: 4},
		{Dim: 0, Start: 0, End: 1},
	}
	b.Sort()
	assert.Equal(t, barcode.Barcode{
		{Dim: 0, Start: 0, End: 1},
		{Dim: 0, Start: 0, End: 1},
		{Dim: 0, Start: 0, End: inf},
		{Dim: 0, Start: 1, End: 4},
		{Dim: 1, Start: 1, End: 2},
	}, b)
}

// TestBarcode_Queries covers ByDim, Dims, Infinite and Betti.
func TestBarcode_Queries(t *testing.T) {
	b := barcode.Barcode{
		{Dim: 0, Start: 0, End: 1},
		{Dim: 0, Start: 0, End: 1},
		{Dim: 0, Start: 0, End: inf},
		{Dim: 1, Start: 1, End: 2},
	}
	assert.Len(t, b.ByDim(0), 3)
	assert.Equal(t, []int{0, 1}, b.Dims())
	assert.Equal(t, barcode.Barcode{{Dim: 0, Start: 0, End: inf}}, b.Infinite())

	assert.Equal(t, map[int]int{0: 3}, b.Betti(0))
	assert.Equal(t, map[int]int{0: 1, 1: 1}, b.Betti(1.5))
	assert.Equal(t, map[int]int{0: 1}, b.Betti(2))
	assert.Empty(t, barcode.Barcode{}.Betti(0))
}
