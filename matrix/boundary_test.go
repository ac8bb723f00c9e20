// SPDX-License-Identifier: MIT
// Package matrix_test verifies the Boundary container.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvhom/matrix"
)

// TestNewBoundary_Shape checks allocation and bad shapes.
func TestNewBoundary_Shape(t *testing.T) {
	m, err := matrix.NewBoundary(3)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Size())
	assert.Equal(t, 3, m.ZeroColumns())
	assert.Equal(t, 0, m.NonZeros())

	_, err = matrix.NewBoundary(-1)
	assert.ErrorIs(t, err, matrix.ErrBadShape)

	empty, err := matrix.NewBoundary(0)
	require.NoError(t, err)
	assert.Equal(t, "", empty.String())
}

// TestBoundary_ColumnAccess covers range checks and ownership transfer.
func TestBoundary_ColumnAccess(t *testing.T) {
	m, err := matrix.NewBoundary(3)
	require.NoError(t, err)

	require.NoError(t, m.SetColumn(2, matrix.Column{0, 1}))
	col, err := m.Column(2)
	require.NoError(t, err)
	assert.Equal(t, matrix.Column{0, 1}, col)
	assert.Equal(t, 1, m.Low(2))
	assert.Equal(t, -1, m.Low(0))
	assert.Equal(t, -1, m.Low(9))

	_, err = m.Column(3)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.SetColumn(-1, nil), matrix.ErrOutOfRange)

	var nilM *matrix.Boundary
	_, err = nilM.Column(0)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	assert.Equal(t, 0, nilM.Size())
}

// TestFromColumns_Validation rejects unsorted and lower-triangular input.
func TestFromColumns_Validation(t *testing.T) {
	_, err := matrix.FromColumns([]matrix.Column{nil, {0}, {1, 0}})
	assert.ErrorIs(t, err, matrix.ErrUnsortedColumn)

	_, err = matrix.FromColumns([]matrix.Column{nil, {1}})
	assert.ErrorIs(t, err, matrix.ErrNotUpperTriangular)

	m, err := matrix.FromColumns([]matrix.Column{nil, nil, {0, 1}})
	require.NoError(t, err)
	assert.Equal(t, 2, m.NonZeros())
}

// TestBoundary_CloneEqual checks deep copies are independent.
func TestBoundary_CloneEqual(t *testing.T) {
	m, err := matrix.FromColumns([]matrix.Column{nil, nil, {0, 1}})
	require.NoError(t, err)

	c := m.Clone()
	assert.True(t, m.Equal(c))

	col, _ := c.Column(2)
	col[0] = 1
	assert.False(t, m.Equal(c), "mutating the clone must not leak into the original")

	other, _ := matrix.NewBoundary(2)
	assert.False(t, m.Equal(other))
}

// TestBoundary_String renders the dense grid row by row.
func TestBoundary_String(t *testing.T) {
	m, err := matrix.FromColumns([]matrix.Column{nil, nil, {0, 1}})
	require.NoError(t, err)
	assert.Equal(t, "0 0 1\n0 0 1\n0 0 0\n", m.String())
	assert.Equal(t, [][]uint8{{0, 0, 1}, {0, 0, 1}, {0, 0, 0}}, m.Dense())
}

// TestBoundary_SetColumnValidates keeps the matrix strictly upper-triangular.
func TestBoundary_SetColumnValidates(t *testing.T) {
	m, err := matrix.NewBoundary(3)
	require.NoError(t, err)

	assert.ErrorIs(t, m.SetColumn(1, matrix.Column{1}), matrix.ErrNotUpperTriangular)
	assert.ErrorIs(t, m.SetColumn(2, matrix.Column{1, 0}), matrix.ErrUnsortedColumn)
	assert.Equal(t, 0, m.NonZeros(), "rejected columns must not be stored")
}

// TestBoundary_AddColumn sums in place and leaves the source untouched.
func TestBoundary_AddColumn(t *testing.T) {
	m, err := matrix.FromColumns([]matrix.Column{nil, nil, nil, {0, 1}, {0, 2}, {1, 2}})
	require.NoError(t, err)

	m.AddColumn(5, 4)
	col, err := m.Column(5)
	require.NoError(t, err)
	assert.Equal(t, matrix.Column{0, 1}, col)
	assert.Equal(t, 1, m.Low(5))

	m.AddColumn(5, 3)
	assert.Equal(t, -1, m.Low(5))
	src, err := m.Column(4)
	require.NoError(t, err)
	assert.Equal(t, matrix.Column{0, 2}, src)
	assert.Equal(t, 4, m.NonZeros())
}
