// SPDX-License-Identifier: MIT
// Package: lvhom/matrix
//
// column.go - one sparse GF(2) column and column addition.

package matrix

// Column lists, strictly ascending, the row indices whose entry is 1.
type Column []int

// Empty reports whether the column is the zero vector.
func (c Column) Empty() bool { return len(c) == 0 }

// Low returns the largest row index with a nonzero entry, or -1 when the
// column is zero.
// Complexity: O(1).
func (c Column) Low() int {
	if len(c) == 0 {
		return -1
	}

	return c[len(c)-1]
}

// Clone returns an independent copy of c (nil for the zero column).
func (c Column) Clone() Column {
	if len(c) == 0 {
		return nil
	}
	out := make(Column, len(c))
	copy(out, c)

	return out
}

// Equal reports whether a and b hold the same rows.
func (c Column) Equal(other Column) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if c[i] != other[i] {
			return false
		}
	}

	return true
}

// Add returns a + b over GF(2): the rows present in exactly one operand.
// Both inputs must be strictly ascending; the result is too. Neither input
// is modified, so the caller owns the returned column outright.
//
// Algorithm: a single merge of the two sorted sequences. Equal heads cancel,
// the smaller head carries over, and whatever remains of either sequence
// after the other is exhausted is appended unchanged.
//
// Complexity: O(len(a) + len(b)) time, one allocation.
func Add(a, b Column) Column {
	out := make(Column, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			i++
			j++
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		default:
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	if len(out) == 0 {
		return nil
	}

	return out
}
