// SPDX-License-Identifier: MIT
// Package: lvhom/builder
//
// helpers.go - subset enumeration shared by constructors.

package builder

// forEachSubset calls fn for every k-subset of {0..n-1} in lexicographic
// order. The slice passed to fn is reused between calls; fn must copy it to
// keep it. Stops early and returns the first error from fn.
// Complexity: O(C(n,k)·k).
func forEachSubset(n, k int, fn func(idx []int) error) error {
	if k <= 0 || k > n {
		return nil
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		if err := fn(idx); err != nil {
			return err
		}
		// Advance the rightmost index that still has room.
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return nil
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// addSubsets adds every k-subset of the n constructor vertices for
// k = 1..maxSize, each at value(k).
func addSubsets(c *Complex, cfg builderConfig, n, maxSize int, value func(k int) float64) error {
	for k := 1; k <= maxSize; k++ {
		t := cfg.value(value(k))
		err := forEachSubset(n, k, func(idx []int) error {
			verts := make([]int, len(idx))
			for i, v := range idx {
				verts[i] = cfg.vertex(v)
			}
			return c.Add(t, verts...)
		})
		if err != nil {
			return err
		}
	}

	return nil
}
