// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package contour solves highest-density credible levels on binned 2D
// weight grids, traces iso-weight contour polygons with marching
// squares, and filters scatter points against those polygons.
package contour

import (
	"fmt"
	"log/slog"
	"math"
	"sort"

	"cogentcore.org/core/base/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var (
	ErrNoMass   = errors.New("contour: weight grid has no mass")
	ErrDims     = errors.New("contour: grid dimensions do not match coordinate lengths")
	ErrFraction = errors.New("contour: mass fraction must be in (0, 1)")
)

// DefaultFractions returns the default credible mass fractions,
// corresponding to the 0.5, 1, 1.5 and 2 sigma levels of a 2D
// Gaussian: 1 - exp(-k^2/2) for each k.
func DefaultFractions() []float64 {
	ks := []float64{0.5, 1, 1.5, 2}
	fs := make([]float64, len(ks))
	for i, k := range ks {
		fs[i] = 1 - math.Exp(-0.5*k*k)
	}
	return fs
}

// Levels computes highest-density weight thresholds on grid for the
// given credible mass fractions. For each fraction m, the threshold is
// the smallest grid value t such that the cells with weight above t
// hold less than m of the total mass: cells at or above t together
// hold at least m. Larger fractions therefore produce lower
// thresholds. The returned thresholds are sorted ascending regardless
// of the order of fractions. Duplicate thresholds, which arise when
// the grid is too coarse to separate two fractions, are reported with
// a warning but still returned.
func Levels(grid *mat.Dense, fractions []float64) ([]float64, error) {
	for _, m := range fractions {
		if m <= 0 || m >= 1 {
			return nil, fmt.Errorf("%w: got %g", ErrFraction, m)
		}
	}
	rows, cols := grid.Dims()
	flat := make([]float64, 0, rows*cols)
	for i := range rows {
		flat = append(flat, grid.RawRowView(i)...)
	}
	sort.Float64s(flat)
	cum := make([]float64, len(flat))
	floats.CumSum(cum, flat)
	total := cum[len(cum)-1]
	if total <= 0 {
		return nil, ErrNoMass
	}
	levels := make([]float64, len(fractions))
	for i, m := range fractions {
		target := (1 - m) * total
		j := sort.Search(len(cum), func(k int) bool { return cum[k] > target })
		if j >= len(flat) {
			j = len(flat) - 1
		}
		levels[i] = flat[j]
	}
	sort.Float64s(levels)
	for i := 1; i < len(levels); i++ {
		if levels[i] == levels[i-1] {
			slog.Warn("contour: duplicate credible-level threshold; grid may be too coarse", "threshold", levels[i])
		}
	}
	return levels, nil
}

// LevelBounds brackets ascending thresholds for use as filled-band
// boundaries: a leading zero and a trailing bound just above max, so
// every grid value falls in exactly one band.
func LevelBounds(levels []float64, max float64) []float64 {
	bounds := make([]float64, 0, len(levels)+2)
	bounds = append(bounds, 0)
	bounds = append(bounds, levels...)
	return append(bounds, max*(1+1e-4))
}
