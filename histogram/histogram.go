// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package histogram computes 1D and 2D binned statistics, quantiles,
// kernel density estimates, and hexagonal bins from raw sample data,
// for use in pair plots and other distributional visualizations.
package histogram

import (
	"fmt"
	"slices"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32/minmax"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var (
	ErrNoData    = errors.New("histogram: no data values")
	ErrZeroRange = errors.New("histogram: data has zero range, bin width is undefined")
	ErrBins      = errors.New("histogram: number of bins must be at least 1")
	ErrLengths   = errors.New("histogram: x and y must have the same length")
)

const (
	// DefaultBins is the default number of bins for 1D histograms.
	DefaultBins = 20

	// DefaultBins2D is the default number of bins per axis for 2D histograms.
	DefaultBins2D = 32
)

// Hist is a 1D histogram: evenly-spaced bin centers with associated
// bin weights (counts). Centers and Weights always have the same length.
type Hist struct {
	// Centers are the bin center positions, strictly increasing and
	// evenly spaced at Width intervals.
	Centers []float64

	// Weights are the per-bin counts. They sum to the number of
	// input values.
	Weights []float64

	// Width is the bin width, (max - min) / nbins.
	Width float64

	// Range is the observed data range that the bins span.
	Range minmax.F64
}

// Bin computes a 1D histogram of vals using nbins equal-width bins
// spanning the observed data range. The returned centers are the bin
// edges shifted by half a bin width, so len(Centers) == nbins.
// A zero data range is an error: the bin width would be undefined,
// and that is reported rather than silently corrected.
func Bin(vals []float64, nbins int) (*Hist, error) {
	if nbins < 1 {
		return nil, ErrBins
	}
	if len(vals) == 0 {
		return nil, ErrNoData
	}
	mn, mx := floats.Min(vals), floats.Max(vals)
	if mn == mx {
		return nil, ErrZeroRange
	}
	h := &Hist{Width: (mx - mn) / float64(nbins)}
	h.Range.Set(mn, mx)
	h.Centers = centers(mn, mx, nbins)
	h.Weights = make([]float64, nbins)
	for _, v := range vals {
		h.Weights[binIndex(v, mn, h.Width, nbins)]++
	}
	return h, nil
}

// Hist2D is a 2D histogram: bin centers along each axis plus a weight
// grid. The grid rows index the y (second) axis and the columns index
// the x (first) axis, so Weights has dimensions
// (len(YCenters), len(XCenters)).
type Hist2D struct {
	// XCenters are the bin centers along the first (x) axis.
	XCenters []float64

	// YCenters are the bin centers along the second (y) axis.
	YCenters []float64

	// Weights is the per-bin count grid, with rows indexed by y bin
	// and columns by x bin.
	Weights *mat.Dense

	// XWidth and YWidth are the bin widths along each axis.
	XWidth, YWidth float64

	// XRange and YRange are the observed data ranges.
	XRange, YRange minmax.F64
}

// Bin2D computes a 2D histogram of the paired samples (xs[i], ys[i])
// using nx bins along x and ny bins along y, each spanning the observed
// range of its axis. The weight grid is indexed [y bin, x bin].
func Bin2D(xs, ys []float64, nx, ny int) (*Hist2D, error) {
	if nx < 1 || ny < 1 {
		return nil, ErrBins
	}
	if len(xs) == 0 || len(ys) == 0 {
		return nil, ErrNoData
	}
	if len(xs) != len(ys) {
		return nil, ErrLengths
	}
	xmn, xmx := floats.Min(xs), floats.Max(xs)
	ymn, ymx := floats.Min(ys), floats.Max(ys)
	if xmn == xmx {
		return nil, fmt.Errorf("x axis: %w", ErrZeroRange)
	}
	if ymn == ymx {
		return nil, fmt.Errorf("y axis: %w", ErrZeroRange)
	}
	h := &Hist2D{
		XWidth: (xmx - xmn) / float64(nx),
		YWidth: (ymx - ymn) / float64(ny),
	}
	h.XRange.Set(xmn, xmx)
	h.YRange.Set(ymn, ymx)
	h.XCenters = centers(xmn, xmx, nx)
	h.YCenters = centers(ymn, ymx, ny)
	h.Weights = mat.NewDense(ny, nx, nil)
	for i, x := range xs {
		xi := binIndex(x, xmn, h.XWidth, nx)
		yi := binIndex(ys[i], ymn, h.YWidth, ny)
		h.Weights.Set(yi, xi, h.Weights.At(yi, xi)+1)
	}
	return h, nil
}

// centers returns nbins evenly spaced bin centers over [mn, mx]:
// the bin edges shifted by half a bin width.
func centers(mn, mx float64, nbins int) []float64 {
	w := (mx - mn) / float64(nbins)
	if nbins == 1 {
		return []float64{mn + 0.5*w}
	}
	return floats.Span(make([]float64, nbins), mn+0.5*w, mx-0.5*w)
}

// binIndex returns the bin holding v. Bins are half-open on the right
// except the last, which also includes the maximum value, so that all
// input values are counted.
func binIndex(v, mn, width float64, nbins int) int {
	bi := int((v - mn) / width)
	return max(0, min(bi, nbins-1))
}

// Quantiles returns the quantile values of vals at the given percentile
// ranks (0 to 100), using linear interpolation between order statistics
// on a sorted copy of the data: rank p maps to fractional position
// (n-1)p/100, so the median of an odd-length sample is the middle value
// exactly. vals need not be sorted; it is not modified.
func Quantiles(vals, ranks []float64) ([]float64, error) {
	if len(vals) == 0 {
		return nil, ErrNoData
	}
	for _, p := range ranks {
		if p < 0 || p > 100 {
			return nil, fmt.Errorf("histogram: percentile rank %g out of range [0, 100]", p)
		}
	}
	sorted := slices.Clone(vals)
	slices.Sort(sorted)
	qs := make([]float64, len(ranks))
	n := len(sorted)
	for i, p := range ranks {
		h := float64(n-1) * p / 100
		lo := int(h)
		if lo >= n-1 {
			qs[i] = sorted[n-1]
			continue
		}
		frac := h - float64(lo)
		qs[i] = sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
	}
	return qs, nil
}
