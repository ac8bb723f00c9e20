// SPDX-License-Identifier: MIT
// Package: lvhom/builder
//
// impl_complete.go - Complete(n, maxDim).
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); maxDim ≥ 0 (else ErrTooFewVertices).
//   • Emits every subset of {0..n-1} of size 1..min(maxDim+1, n); a
//     d-simplex enters at value d.
//
// Complexity: O(Σ_{k≤maxDim+1} C(n,k)·k).

package builder

// Complete returns a Constructor emitting the clique complex of K_n
// truncated at dimension maxDim (its maxDim-skeleton).
func Complete(n, maxDim int) Constructor {
	return func(c *Complex, cfg builderConfig) error {
		if err := validateMin(MethodComplete, "n", n, MinCompleteNodes); err != nil {
			return err
		}
		if err := validateMin(MethodComplete, "maxDim", maxDim, 0); err != nil {
			return err
		}
		size := maxDim + 1
		if size > n {
			size = n
		}
		return addSubsets(c, cfg, n, size, func(k int) float64 { return float64(k - 1) })
	}
}
