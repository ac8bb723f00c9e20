// SPDX-License-Identifier: MIT
// Package: lvhom/reduction
//
// reduce.go - the column sweep.

package reduction

import (
	"fmt"

	"github.com/katalvlaran/lvhom/matrix"
)

// unowned marks a row that is not yet the low of any finalized column.
const unowned = -1

// Stats summarizes one Reduce call.
//
// Fields:
//   - Columns   - N.
//   - Additions - column additions performed.
//   - Pivots    - nonzero columns after reduction (deaths).
//   - Zero      - zero columns after reduction (births).
type Stats struct {
	Columns   int
	Additions int
	Pivots    int
	Zero      int
}

// AverageAdditions returns Additions / Columns (0 for an empty matrix).
func (s Stats) AverageAdditions() float64 {
	if s.Columns == 0 {
		return 0
	}

	return float64(s.Additions) / float64(s.Columns)
}

// Reduce rewrites m in place until its low function is injective over the
// nonzero columns, and reports what it did.
//
// The owner table (row → finalized column) is allocated once with N slots.
// Each addition goes through Boundary.AddColumn, which stores the fresh
// matrix.Add result in the slot, so no column is ever aliased.
//
// Reducing an already reduced matrix performs zero additions.
// A nil matrix yields zero Stats.
func Reduce(m *matrix.Boundary) Stats {
	n := m.Size()
	stats := Stats{Columns: n}
	owner := make([]int, n)
	for i := range owner {
		owner[i] = unowned
	}

	for c := 0; c < n; c++ {
		low := m.Low(c)
		for low >= 0 && owner[low] != unowned {
			m.AddColumn(c, owner[low])
			stats.Additions++
			low = m.Low(c)
		}

		if low < 0 {
			stats.Zero++
			continue
		}
		owner[low] = c
		stats.Pivots++
	}

	return stats
}

// Verify checks that the low function of m is injective over its nonzero
// columns. The error names the two columns that share a low.
// Complexity: O(N) time and memory.
func Verify(m *matrix.Boundary) error {
	if m == nil {
		return ErrNilMatrix
	}
	n := m.Size()
	owner := make([]int, n)
	for i := range owner {
		owner[i] = unowned
	}
	for c := 0; c < n; c++ {
		low := m.Low(c)
		if low < 0 {
			continue
		}
		if p := owner[low]; p != unowned {
			return fmt.Errorf("columns %d and %d share low %d: %w", p, c, low, ErrNotReduced)
		}
		owner[low] = c
	}

	return nil
}
