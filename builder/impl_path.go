// SPDX-License-Identifier: MIT
// Package: lvhom/builder
//
// impl_path.go - Path(n).
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Vertices 0..n-1 enter at value 0.
//   - Edge {i-1, i} enters at value i for i = 1..n-1, so components merge
//     one at a time.
//
// Complexity:
//   - Time: O(n) simplices.
//   - Space: O(1) extra.

package builder

import "fmt"

// Path returns a Constructor emitting the path P_n with staggered edge
// times. Its barcode holds n-1 finite H0 intervals [0,i) for i = 1..n-1 and
// one infinite H0 class.
func Path(n int) Constructor {
	return func(c *Complex, cfg builderConfig) error {
		if err := validateMin(MethodPath, "n", n, MinPathNodes); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := c.Add(cfg.value(0), cfg.vertex(i)); err != nil {
				return fmt.Errorf("%s: vertex %d: %w", MethodPath, i, err)
			}
		}
		for i := 1; i < n; i++ {
			u, v := cfg.vertex(i-1), cfg.vertex(i)
			if err := c.Add(cfg.value(float64(i)), u, v); err != nil {
				return fmt.Errorf("%s: edge %d-%d: %w", MethodPath, u, v, err)
			}
		}

		return nil
	}
}
