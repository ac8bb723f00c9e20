// SPDX-License-Identifier: MIT
// Package: lvhom/builder
//
// impl_random_clique.go - RandomClique(n, p, maxDim).
//
// Contract:
//   • n ≥ 1, maxDim ≥ 0 (else ErrTooFewVertices); 0 ≤ p ≤ 1 (else
//     ErrInvalidProbability); cfg.rng != nil (else ErrNeedRandSource).
//   • Vertices enter at 0. Each pair {i<j}, visited in lexicographic order,
//     becomes an edge with probability p and draws its time from cfg.timeFn
//     (U[0,1) unless WithTimeFn is given). Negative draws are clamped to 0;
//     a NaN draw fails with ErrConstructFailed.
//   • Every clique of size ≤ maxDim+1 enters at the latest time among its
//     edges, so faces never come after cofaces.
//
// Determinism: one keep draw plus the TimeFn draws per pair, in fixed order;
// reproducible per seed.
// Complexity: O(n²) draws plus the clique enumeration (exponential in maxDim).

package builder

import (
	"fmt"
	"math"
)

// RandomClique returns a Constructor emitting a seeded random flag complex.
func RandomClique(n int, p float64, maxDim int) Constructor {
	return func(c *Complex, cfg builderConfig) error {
		if err := validateMin(MethodRandomClique, "n", n, MinCompleteNodes); err != nil {
			return err
		}
		if err := validateMin(MethodRandomClique, "maxDim", maxDim, 0); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomClique, p); err != nil {
			return err
		}
		if err := validateRand(MethodRandomClique, cfg); err != nil {
			return err
		}

		// present[i][j] (i<j) marks kept pairs; edge[i][j] is their time.
		present := make([][]bool, n)
		edge := make([][]float64, n)
		for i := range edge {
			present[i] = make([]bool, n)
			edge[i] = make([]float64, n)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				keep := cfg.rng.Float64() < p
				t := cfg.timeFn(cfg.rng)
				if math.IsNaN(t) {
					return fmt.Errorf("%s: edge %d-%d drew NaN time: %w", MethodRandomClique, i, j, ErrConstructFailed)
				}
				if keep {
					present[i][j] = true
					edge[i][j] = math.Max(0, t)
				}
			}
		}

		for i := 0; i < n; i++ {
			if err := c.Add(cfg.value(0), cfg.vertex(i)); err != nil {
				return fmt.Errorf("%s: vertex %d: %w", MethodRandomClique, i, err)
			}
		}
		if maxDim == 0 {
			return nil
		}

		// Depth-first extension of cliques by larger vertices only.
		var extend func(clique []int, t float64) error
		extend = func(clique []int, t float64) error {
			if len(clique) >= 2 {
				verts := make([]int, len(clique))
				for k, v := range clique {
					verts[k] = cfg.vertex(v)
				}
				if err := c.Add(cfg.value(t), verts...); err != nil {
					return fmt.Errorf("%s: clique %v: %w", MethodRandomClique, verts, err)
				}
			}
			if len(clique) == maxDim+1 {
				return nil
			}
			last := clique[len(clique)-1]
			for v := last + 1; v < n; v++ {
				tv := t
				ok := true
				for _, u := range clique {
					if !present[u][v] {
						ok = false
						break
					}
					tv = math.Max(tv, edge[u][v])
				}
				if !ok {
					continue
				}
				if err := extend(append(clique, v), tv); err != nil {
					return err
				}
			}
			return nil
		}
		for i := 0; i < n; i++ {
			if err := extend([]int{i}, 0); err != nil {
				return err
			}
		}
		return nil
	}
}
