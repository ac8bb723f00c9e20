// SPDX-License-Identifier: MIT
// Package reduction_test verifies the column sweep and its invariants.
package reduction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/katalvlaran/lvhom/matrix"
	"github.com/katalvlaran/lvhom/reduction"
)

// triangleBoundary is the boundary matrix of the filled triangle:
// vertices 0..2, edges {0,1},{0,2},{1,2} at 3..5, triangle at 6.
func triangleBoundary(t *testing.T) *matrix.Boundary {
	t.Helper()
	m, err := matrix.FromColumns([]matrix.Column{
		nil, nil, nil, {0, 1}, {0, 2}, {1, 2}, {3, 4, 5},
	})
	require.NoError(t, err)
	return m
}

// TestReduce_FilledTriangle checks the reduced columns and the stats.
func TestReduce_FilledTriangle(t *testing.T) {
	m := triangleBoundary(t)
	stats := reduction.Reduce(m)

	// Column 5 = {1,2} + {0,2} + {0,1} = 0: the edge closing the loop is a birth.
	want := []matrix.Column{nil, nil, nil, {0, 1}, {0, 2}, nil, {3, 4, 5}}
	for j, w := range want {
		col, err := m.Column(j)
		require.NoError(t, err)
		assert.Equal(t, w, col, "column %d", j)
	}
	assert.Equal(t, reduction.Stats{Columns: 7, Additions: 2, Pivots: 3, Zero: 4}, stats)
	assert.InDelta(t, 2.0/7.0, stats.AverageAdditions(), 1e-12)
	assert.NoError(t, reduction.Verify(m))
}

// TestReduce_Idempotent checks a second pass is a no-op.
func TestReduce_Idempotent(t *testing.T) {
	m := triangleBoundary(t)
	reduction.Reduce(m)
	before := m.Clone()

	stats := reduction.Reduce(m)
	assert.Zero(t, stats.Additions)
	assert.True(t, before.Equal(m))
}

// TestReduce_Empty handles N = 0 and nil.
func TestReduce_Empty(t *testing.T) {
	m, err := matrix.NewBoundary(0)
	require.NoError(t, err)
	assert.Equal(t, reduction.Stats{}, reduction.Reduce(m))
	assert.Equal(t, reduction.Stats{}, reduction.Reduce(nil))
	assert.Zero(t, reduction.Stats{}.AverageAdditions())
}

// TestVerify_DetectsClash reports the two offending columns.
func TestVerify_DetectsClash(t *testing.T) {
	m := triangleBoundary(t)
	err := reduction.Verify(m)
	require.ErrorIs(t, err, reduction.ErrNotReduced)
	assert.Contains(t, err.Error(), "columns 4 and 5")

	assert.ErrorIs(t, reduction.Verify(nil), reduction.ErrNilMatrix)
}

// upperTriangularGen draws random strictly upper-triangular GF(2) matrices.
func upperTriangularGen() *rapid.Generator[*matrix.Boundary] {
	return rapid.Custom(func(t *rapid.T) *matrix.Boundary {
		n := rapid.IntRange(0, 14).Draw(t, "n")
		cols := make([]matrix.Column, n)
		for c := 1; c < n; c++ {
			for r := 0; r < c; r++ {
				if rapid.IntRange(0, 3).Draw(t, "bit") == 0 {
					cols[c] = append(cols[c], r)
				}
			}
		}
		m, err := matrix.FromColumns(cols)
		if err != nil {
			t.Fatal(err)
		}
		return m
	})
}

// TestReduce_Properties checks injectivity, idempotence, conservation of
// columns and that reduction never raises a column's low.
func TestReduce_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := upperTriangularGen().Draw(t, "m")
		orig := m.Clone()

		stats := reduction.Reduce(m)
		if err := reduction.Verify(m); err != nil {
			t.Fatalf("not reduced: %v", err)
		}
		if stats.Pivots+stats.Zero != stats.Columns || stats.Zero != m.ZeroColumns() {
			t.Fatalf("column accounting broken: %+v", stats)
		}
		for c := 0; c < m.Size(); c++ {
			if m.Low(c) > orig.Low(c) {
				t.Fatalf("column %d low grew from %d to %d", c, orig.Low(c), m.Low(c))
			}
		}

		again := m.Clone()
		if s := reduction.Reduce(again); s.Additions != 0 || !again.Equal(m) {
			t.Fatalf("second reduction changed the matrix (%d additions)", s.Additions)
		}
	})
}
