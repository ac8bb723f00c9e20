// Package persistence computes the persistent homology of a simplicial
// filtration over GF(2).
//
// 🚀 Pipeline:
//
//	simplices ─▶ validate ─▶ sort (core) ─▶ build (matrix) ─▶ reduce (reduction) ─▶ extract (barcode)
//
// Each stage consumes the full output of the previous one; there is no
// streaming. The whole run is synchronous and single-threaded.
//
// ⚙️ Usage:
//
//	bars, err := persistence.ComputeIntervals(simplices,
//	    persistence.WithFacePolicy(matrix.Strict),
//	    persistence.WithLogger(logger),
//	)
//
// Observability goes through the *zap.Logger passed with WithLogger
// (zap.NewNop() by default). Compute additionally returns a Report with
// per-stage timings and sizes.
package persistence
