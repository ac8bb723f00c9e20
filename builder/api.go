// SPDX-License-Identifier: MIT
// Package: lvhom/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   • One orchestrator: Build(opts, cons...). Resolves cfg, runs cons in
//     order against a shared Complex, returns its sorted filtration.
//   • Constructors are declared in impl_*.go.
//   • Determinism: same inputs/options/seed and constructor order ⇒
//     identical filtrations.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvhom/core"
)

// Complex accumulates simplices emitted by constructors. A vertex set is
// stored once; re-adding it keeps the smaller value.
type Complex struct {
	simplices []core.Simplex
	index     map[string]int
}

// newComplex returns an empty accumulator.
func newComplex() *Complex {
	return &Complex{index: make(map[string]int)}
}

// Add inserts the simplex on vertices entering at value. Vertices may be
// unsorted; malformed sets are rejected with core sentinels.
func (c *Complex) Add(value float64, vertices ...int) error {
	s, err := core.NewSimplex(value, vertices...)
	if err != nil {
		return err
	}
	key := s.Vertices.Key()
	if i, ok := c.index[key]; ok {
		if value < c.simplices[i].Value {
			c.simplices[i].Value = value
		}
		return nil
	}
	c.index[key] = len(c.simplices)
	c.simplices = append(c.simplices, s)

	return nil
}

// Len returns the number of distinct simplices added so far.
func (c *Complex) Len() int { return len(c.simplices) }

// Filtration returns a sorted copy of the accumulated simplices.
func (c *Complex) Filtration() []core.Simplex {
	out := make([]core.Simplex, len(c.simplices))
	copy(out, c.simplices)
	core.SortFiltration(out)

	return out
}

// Constructor adds a family of simplices to c using the resolved config.
// Constructors validate parameters first and return sentinel errors; they
// never panic.
type Constructor func(c *Complex, cfg builderConfig) error

// Build resolves opts and applies every constructor in order to one shared
// Complex, returning the sorted filtration.
//
// Errors are wrapped once as "Build: %w"; callers branch with errors.Is
// against ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource and
// ErrConstructFailed.
//
// Complexity: Σ cost of the constructors plus O(N log N) for the final sort.
func Build(opts []BuilderOption, cons ...Constructor) ([]core.Simplex, error) {
	cfg := newBuilderConfig(opts...)
	c := newComplex()
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(c, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return c.Filtration(), nil
}
