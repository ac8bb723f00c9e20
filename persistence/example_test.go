package persistence_test

import (
	"fmt"

	"github.com/katalvlaran/lvhom/core"
	"github.com/katalvlaran/lvhom/persistence"
)

// ExampleComputeIntervals computes the barcode of a hollow triangle given
// out of order: three components merge at 1 and one loop is born.
func ExampleComputeIntervals() {
	fs := []core.Simplex{
		core.MustSimplex(1, 1, 2),
		core.MustSimplex(1, 0, 2),
		core.MustSimplex(0, 0),
		core.MustSimplex(1, 0, 1),
		core.MustSimplex(0, 2),
		core.MustSimplex(0, 1),
	}
	bars, err := persistence.ComputeIntervals(fs)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, iv := range bars {
		fmt.Println(iv)
	}

	// Output:
	// 0 0 1
	// 0 0 1
	// 0 0 inf
	// 1 1 inf
}
