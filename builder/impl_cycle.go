// SPDX-License-Identifier: MIT
// Package: lvhom/builder
//
// impl_cycle.go - Cycle(n).
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Vertices 0..n-1 at value 0; edges {i, (i+1)%n} at value 1, i = 0..n-1.
//
// Complexity: O(n).

package builder

import "fmt"

// Cycle returns a Constructor emitting an n-vertex ring. Its barcode holds
// n-1 finite H0 intervals [0,1), one infinite H0 and one infinite H1 class.
func Cycle(n int) Constructor {
	return func(c *Complex, cfg builderConfig) error {
		if err := validateMin(MethodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := c.Add(cfg.value(0), cfg.vertex(i)); err != nil {
				return fmt.Errorf("%s: vertex %d: %w", MethodCycle, i, err)
			}
		}
		for i := 0; i < n; i++ {
			u, v := cfg.vertex(i), cfg.vertex((i+1)%n)
			if err := c.Add(cfg.value(1), u, v); err != nil {
				return fmt.Errorf("%s: edge %d-%d: %w", MethodCycle, u, v, err)
			}
		}
		return nil
	}
}
