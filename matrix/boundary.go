// SPDX-License-Identifier: MIT
// Package: lvhom/matrix
//
// boundary.go - the column-major sparse N×N matrix over GF(2).
//
// Design:
//   • Columns are stored by value in a slice sized once (N never changes).
//   • Mutation happens only through SetColumn, which takes ownership of the
//     passed column; the reduction engine relies on this to move the result
//     of Add back into its slot without copying.
//   • Read access (Column) returns the stored slice; callers must treat it
//     as read-only.

package matrix

import (
	"fmt"
	"strings"
)

// Boundary is a square sparse matrix over GF(2), stored by column.
type Boundary struct {
	cols []Column
}

// NewBoundary allocates an n×n zero matrix.
// Returns ErrBadShape for n < 0. n == 0 is a valid empty matrix.
func NewBoundary(n int) (*Boundary, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewBoundary(%d): %w", n, ErrBadShape)
	}

	return &Boundary{cols: make([]Column, n)}, nil
}

// FromColumns builds a matrix from explicit columns (copied). Every column
// must be strictly ascending and strictly above the diagonal.
func FromColumns(cols []Column) (*Boundary, error) {
	m := &Boundary{cols: make([]Column, len(cols))}
	for j, col := range cols {
		if err := checkColumn(j, col); err != nil {
			return nil, err
		}
		m.cols[j] = col.Clone()
	}

	return m, nil
}

// checkColumn validates ordering and strict upper-triangularity of column j.
func checkColumn(j int, col Column) error {
	for k, r := range col {
		if k > 0 && r <= col[k-1] {
			return fmt.Errorf("column %d: %w", j, ErrUnsortedColumn)
		}
		if r < 0 || r >= j {
			return fmt.Errorf("column %d row %d: %w", j, r, ErrNotUpperTriangular)
		}
	}

	return nil
}

// Size returns N, the number of rows and of columns.
func (m *Boundary) Size() int {
	if m == nil {
		return 0
	}

	return len(m.cols)
}

// Column returns column j. The slice is shared with the matrix.
// Returns ErrOutOfRange for an invalid j.
func (m *Boundary) Column(j int) (Column, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if j < 0 || j >= len(m.cols) {
		return nil, fmt.Errorf("Column(%d): %w", j, ErrOutOfRange)
	}

	return m.cols[j], nil
}

// SetColumn replaces column j and takes ownership of col. The column must
// be strictly ascending with every row below j (ErrUnsortedColumn,
// ErrNotUpperTriangular); on error the matrix is unchanged.
func (m *Boundary) SetColumn(j int, col Column) error {
	if m == nil {
		return ErrNilMatrix
	}
	if j < 0 || j >= len(m.cols) {
		return fmt.Errorf("SetColumn(%d): %w", j, ErrOutOfRange)
	}
	if err := checkColumn(j, col); err != nil {
		return err
	}
	m.cols[j] = col

	return nil
}

// AddColumn replaces column dst with the GF(2) sum of columns dst and src.
// It is the reduction hot path: no validation, the indices must lie in
// [0, Size()) and src < dst keeps the matrix strictly upper-triangular.
// Complexity: O(len(dst) + len(src)).
func (m *Boundary) AddColumn(dst, src int) {
	m.cols[dst] = Add(m.cols[dst], m.cols[src])
}

// Low returns the largest nonzero row of column j, or -1 if the column is
// zero or j is out of range.
func (m *Boundary) Low(j int) int {
	if m == nil || j < 0 || j >= len(m.cols) {
		return -1
	}

	return m.cols[j].Low()
}

// NonZeros counts the 1-entries of the matrix.
// Complexity: O(N).
func (m *Boundary) NonZeros() int {
	if m == nil {
		return 0
	}
	n := 0
	for _, c := range m.cols {
		n += len(c)
	}

	return n
}

// ZeroColumns counts the columns that are the zero vector.
func (m *Boundary) ZeroColumns() int {
	if m == nil {
		return 0
	}
	n := 0
	for _, c := range m.cols {
		if c.Empty() {
			n++
		}
	}

	return n
}

// Clone returns a deep copy of m.
// Complexity: O(N + nonzeros).
func (m *Boundary) Clone() *Boundary {
	if m == nil {
		return nil
	}
	out := &Boundary{cols: make([]Column, len(m.cols))}
	for j, c := range m.cols {
		out.cols[j] = c.Clone()
	}

	return out
}

// Equal reports whether m and other have the same size and entries.
func (m *Boundary) Equal(other *Boundary) bool {
	if m.Size() != other.Size() {
		return false
	}
	for j := 0; j < m.Size(); j++ {
		if !m.cols[j].Equal(other.cols[j]) {
			return false
		}
	}

	return true
}

// Dense expands the matrix into rows of 0/1 bytes, row-major.
// Intended for small matrices in tests and diagnostics.
// Complexity: O(N²) memory.
func (m *Boundary) Dense() [][]uint8 {
	n := m.Size()
	out := make([][]uint8, n)
	for i := range out {
		out[i] = make([]uint8, n)
	}
	for j := 0; j < n; j++ {
		for _, r := range m.cols[j] {
			out[r][j] = 1
		}
	}

	return out
}

// String renders the dense 0/1 grid, one matrix row per line, entries
// separated by a single space.
func (m *Boundary) String() string {
	var sb strings.Builder
	for _, row := range m.Dense() {
		for j, v := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte('0' + v)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
