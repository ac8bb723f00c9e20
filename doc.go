// Package lvhom computes persistent homology of simplicial filtrations over
// the two-element field GF(2).
//
// What is lvhom?
//
//	A small, batch-oriented library and CLI that turns a filtration (a list
//	of simplices, each entering at a real value) into its barcode:
//		• core/        - Simplex, VertexSet and the filtration order
//		• matrix/      - sparse GF(2) boundary matrix and its builder
//		• reduction/   - left-to-right column reduction
//		• barcode/     - intervals, Betti numbers, interval extraction
//		• persistence/ - the end-to-end pipeline with logging and a run report
//		• filtration/  - text loader and text/YAML writers
//		• builder/     - synthetic filtrations (ball, sphere, cycle, ...)
//		• config/      - CLI configuration (file, env, flags)
//		• cmd/lvhom    - the command-line tool
//
// Quick example, the boundary of a triangle:
//
//	    2
//	   / \
//	  0───1
//
//	fs := []core.Simplex{
//		core.MustSimplex(0, 0), core.MustSimplex(0, 1), core.MustSimplex(0, 2),
//		core.MustSimplex(1, 0, 1), core.MustSimplex(1, 0, 2), core.MustSimplex(1, 1, 2),
//	}
//	b, _ := persistence.ComputeIntervals(fs)
//	// 0 0 inf, 0 0 1, 0 0 1, 1 1 inf
//
//	go install github.com/katalvlaran/lvhom/cmd/lvhom@latest
package lvhom
