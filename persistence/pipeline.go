// SPDX-License-Identifier: MIT
// Package: lvhom/persistence
//
// pipeline.go - ordering → build → reduce → extract.

package persistence

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvhom/barcode"
	"github.com/katalvlaran/lvhom/core"
	"github.com/katalvlaran/lvhom/matrix"
	"github.com/katalvlaran/lvhom/reduction"
)

// Report describes one run: sizes and wall-clock time of every stage.
type Report struct {
	RunID     string
	Policy    matrix.FacePolicy
	Simplices int
	ByDim     map[int]int
	Build     matrix.BuildStats
	Reduction reduction.Stats
	Intervals int

	SortTime    time.Duration
	BuildTime   time.Duration
	ReduceTime  time.Duration
	ExtractTime time.Duration
}

// Result bundles the barcode with its Report.
type Result struct {
	Barcode barcode.Barcode
	Report  Report
}

// ComputeIntervals returns the persistence intervals of the filtration
// described by simplices, in (Start, Dim, End) order.
//
// The input slice is neither reordered nor modified. Every simplex must be
// well-formed (core.Validate); the first malformed one aborts the run.
func ComputeIntervals(simplices []core.Simplex, opts ...Option) (barcode.Barcode, error) {
	res, err := Compute(simplices, opts...)
	if err != nil {
		return nil, err
	}

	return res.Barcode, nil
}

// Compute runs the full pipeline and also returns the run Report.
//
// Errors:
//   - core sentinels (ErrVertexCount, ErrDuplicateVertex, ...) for malformed input.
//   - matrix.ErrMissingFace / matrix.ErrDuplicateSimplex under matrix.Strict.
//
// Complexity: dominated by reduction, worst case O(N³).
func Compute(simplices []core.Simplex, opts ...Option) (Result, error) {
	cfg := newConfig(opts...)
	if cfg.runID == "" {
		cfg.runID = uuid.NewString()
	}
	log := cfg.logger.With(zap.String("run_id", cfg.runID))
	rep := Report{RunID: cfg.runID, Policy: cfg.policy, Simplices: len(simplices)}

	if err := core.ValidateAll(simplices); err != nil {
		log.Error("invalid filtration", zap.Error(err))
		return Result{}, fmt.Errorf("persistence: %w", err)
	}
	rep.ByDim = core.CountByDim(simplices)
	for d, n := range rep.ByDim {
		log.Debug("simplices of dimension", zap.Int("dim", d), zap.Int("count", n))
	}

	t0 := time.Now()
	fs := make([]core.Simplex, len(simplices))
	copy(fs, simplices)
	core.SortFiltration(fs)
	rep.SortTime = time.Since(t0)
	log.Info("filtration sorted", zap.Int("simplices", len(fs)), zap.Duration("took", rep.SortTime))

	t0 = time.Now()
	m, bstats, err := matrix.Build(fs, cfg.policy)
	rep.BuildTime = time.Since(t0)
	rep.Build = bstats
	if err != nil {
		log.Error("boundary matrix rejected", zap.Stringer("policy", cfg.policy), zap.Error(err))
		return Result{Report: rep}, fmt.Errorf("persistence: %w", err)
	}
	if bstats.Omitted > 0 {
		log.Warn("faces missing from filtration were omitted",
			zap.Int("omitted", bstats.Omitted), zap.Stringer("policy", cfg.policy))
	}
	log.Info("boundary matrix built",
		zap.Int("size", bstats.Columns),
		zap.Int("non_zeros", bstats.NonZeros),
		zap.Duration("took", rep.BuildTime))

	t0 = time.Now()
	rep.Reduction = reduction.Reduce(m)
	rep.ReduceTime = time.Since(t0)
	log.Info("matrix reduced",
		zap.Int("additions", rep.Reduction.Additions),
		zap.Float64("avg_additions", rep.Reduction.AverageAdditions()),
		zap.Int("pivots", rep.Reduction.Pivots),
		zap.Duration("took", rep.ReduceTime))

	t0 = time.Now()
	bars, err := barcode.Extract(m, fs)
	rep.ExtractTime = time.Since(t0)
	if err != nil {
		log.Error("interval extraction failed", zap.Error(err))
		return Result{Report: rep}, fmt.Errorf("persistence: %w", err)
	}
	rep.Intervals = len(bars)
	log.Info("intervals extracted", zap.Int("intervals", len(bars)), zap.Duration("took", rep.ExtractTime))

	return Result{Barcode: bars, Report: rep}, nil
}
