// SPDX-License-Identifier: MIT
// Package: lvhom/builder
//
// impl_wheel.go - Wheel(n), the cone over a ring filled in late.
//
// Definition:
//   • Wₙ = Cₙ₋₁ + hub, i.e. a ring of n-1 vertices plus a hub vertex.
//   • Therefore n ≥ 4 (the ring must be a valid Cycle: n-1 ≥ 3).
//
// Contract:
//   • Ring vertices 0..n-2 and the hub n-1 enter at 0; ring edges at 1
//     (exactly as Cycle(n-1)); spokes {i, hub} at 2; triangles
//     {i, i+1, hub} at 3.
//   • The ring's loop is born at 1 and filled at 3: one finite H1 interval
//     [1,3). The finished complex is a disc.
//
// Complexity:
//   • Time: O(n) simplices.
//   • Space: O(1) extra.

package builder

import "fmt"

// Wheel returns a Constructor emitting a filtered wheel on n vertices.
func Wheel(n int) Constructor {
	return func(c *Complex, cfg builderConfig) error {
		if err := validateMin(MethodWheel, "n", n, MinWheelNodes); err != nil {
			return err
		}
		rim := n - 1
		if err := Cycle(rim)(c, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", MethodWheel, rim, err)
		}

		hub := cfg.vertex(rim)
		if err := c.Add(cfg.value(0), hub); err != nil {
			return fmt.Errorf("%s: hub: %w", MethodWheel, err)
		}
		for i := 0; i < rim; i++ {
			if err := c.Add(cfg.value(2), cfg.vertex(i), hub); err != nil {
				return fmt.Errorf("%s: spoke %d: %w", MethodWheel, i, err)
			}
		}
		for i := 0; i < rim; i++ {
			u, v := cfg.vertex(i), cfg.vertex((i+1)%rim)
			if err := c.Add(cfg.value(3), u, v, hub); err != nil {
				return fmt.Errorf("%s: triangle %d-%d: %w", MethodWheel, u, v, err)
			}
		}

		return nil
	}
}
