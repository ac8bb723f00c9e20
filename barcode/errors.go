// SPDX-License-Identifier: MIT
// Package: lvhom/barcode
//
// errors.go - sentinel errors for interval extraction.

package barcode

import "errors"

var (
	// ErrSizeMismatch indicates the simplex sequence and the matrix differ in length.
	ErrSizeMismatch = errors.New("barcode: simplex count does not match matrix size")

	// ErrNilMatrix indicates that Extract received a nil matrix.
	ErrNilMatrix = errors.New("barcode: nil matrix")
)
