// SPDX-License-Identifier: MIT
// Package: lvhom/barcode
//
// extract.go - reading birth/death pairs off a reduced matrix.

package barcode

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvhom/core"
	"github.com/katalvlaran/lvhom/matrix"
)

// noBirth marks a column that is not a birth in the dim table.
const noBirth = -1

// Extract reads the persistence intervals of a reduced matrix m whose
// columns correspond, in order, to the simplices fs.
//
// Bookkeeping lives in three arrays of length N allocated once up front:
// start and dim are set for every zero column (a birth), end defaults to
// +Inf and is overwritten at row r when a nonzero column has low r.
// One interval is emitted per birth column, then sorted by (Start, Dim, End).
//
// Errors:
//   - ErrNilMatrix     - m is nil.
//   - ErrSizeMismatch  - len(fs) != m.Size().
//
// A low that points at a nonzero column cannot happen for the boundary
// matrix of a closed complex. It can for a Lenient build of a non-closed
// one; such a death has no birth to end and is dropped.
//
// Complexity: O(N log N) (the final sort), O(N) memory.
func Extract(m *matrix.Boundary, fs []core.Simplex) (Barcode, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	n := m.Size()
	if len(fs) != n {
		return nil, fmt.Errorf("Extract: %d simplices, %d columns: %w", len(fs), n, ErrSizeMismatch)
	}

	start := make([]float64, n)
	end := make([]float64, n)
	dim := make([]int, n)
	births := 0
	for c := 0; c < n; c++ {
		end[c] = math.Inf(1)
		dim[c] = noBirth
		if m.Low(c) < 0 {
			start[c] = fs[c].Value
			dim[c] = fs[c].Dim
			births++
		}
	}

	for c := 0; c < n; c++ {
		r := m.Low(c)
		if r < 0 {
			continue
		}
		end[r] = fs[c].Value
	}

	out := make(Barcode, 0, births)
	for c := 0; c < n; c++ {
		if dim[c] == noBirth {
			continue
		}
		out = append(out, Interval{Dim: dim[c], Start: start[c], End: end[c]})
	}
	out.Sort()

	return out, nil
}
