// SPDX-License-Identifier: MIT
// Package: lvhom/builder
//
// impl_ball.go - Ball(n) and Sphere(n).
//
// Contract:
//   • n ≥ 0 (else ErrTooFewVertices).
//   • Vertices 0..n+1 (shifted by WithVertexOffset).
//   • A simplex on k vertices enters at value k (scaled by WithValueScale),
//     so every face precedes its cofaces strictly.
//   • Ball emits every non-empty subset (the full (n+1)-simplex, contractible);
//     Sphere omits the single top subset, leaving its boundary, an n-sphere.
//
// Complexity: O(2^(n+2)·n) time and output size.

package builder

// Ball returns a Constructor emitting every face of the simplex on n+2
// vertices. Its homology is a single infinite H0 class.
func Ball(n int) Constructor {
	return func(c *Complex, cfg builderConfig) error {
		if err := validateMin(MethodBall, "n", n, MinBallDim); err != nil {
			return err
		}
		return addSubsets(c, cfg, n+2, n+2, func(k int) float64 { return float64(k) })
	}
}

// Sphere returns a Constructor emitting the boundary of the simplex on n+2
// vertices. Its infinite intervals are one in H0 and one in Hn (two in H0
// when n = 0).
func Sphere(n int) Constructor {
	return func(c *Complex, cfg builderConfig) error {
		if err := validateMin(MethodSphere, "n", n, MinBallDim); err != nil {
			return err
		}
		return addSubsets(c, cfg, n+2, n+1, func(k int) float64 { return float64(k) })
	}
}
