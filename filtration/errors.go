// SPDX-License-Identifier: MIT
// Package: lvhom/filtration
//
// errors.go - sentinel errors for the loader and writers.

package filtration

import "errors"

var (
	// ErrMalformedRecord indicates a record with a non-numeric token or a
	// vertex count different from dim+1.
	ErrMalformedRecord = errors.New("filtration: malformed record")

	// ErrUnknownFormat indicates an unsupported barcode output format.
	ErrUnknownFormat = errors.New("filtration: unknown output format")
)
