// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package histogram

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// Hexes is a hexagonal binning of paired samples: the centers of the
// occupied pointy-top hexagonal cells and the sample count of each.
// The hexagons form a regular grid in axis-normalized coordinates, so
// in data coordinates they are stretched by the axis ranges, with
// horizontal center spacing DX and vertical row spacing DY.
type Hexes struct {
	// X and Y are the hexagon center positions in data coordinates.
	X, Y []float64

	// Counts are the per-hexagon sample counts, parallel to X and Y.
	// Only occupied hexagons are included.
	Counts []float64

	// DX is the horizontal distance between hexagon centers within a
	// row, in x data units.
	DX float64

	// DY is the vertical distance between hexagon rows, in y data units.
	DY float64
}

// HexBin bins the paired samples (xs[i], ys[i]) into a grid of
// pointy-top hexagons, nbins across the x range. Binning is done in
// normalized coordinates so the hexagons tile regularly regardless of
// the relative axis scales. Only occupied hexagons are returned,
// ordered by row then column.
func HexBin(xs, ys []float64, nbins int) (*Hexes, error) {
	if nbins < 1 {
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
	xspan, yspan := xmx-xmn, ymx-ymn
	size := 1 / (sqrt3 * float64(nbins))
	counts := map[[2]int]float64{}
	for i, x := range xs {
		u := (x - xmn) / xspan
		v := (ys[i] - ymn) / yspan
		q, r := hexRound((sqrt3/3*u-v/3)/size, 2*v/(3*size))
		counts[[2]int{q, r}]++
	}
	keys := make([][2]int, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b [2]int) int {
		if a[1] != b[1] {
			return a[1] - b[1]
		}
		return a[0] - b[0]
	})
	hx := &Hexes{
		X:      make([]float64, len(keys)),
		Y:      make([]float64, len(keys)),
		Counts: make([]float64, len(keys)),
		DX:     sqrt3 * size * xspan,
		DY:     1.5 * size * yspan,
	}
	for i, k := range keys {
		q, r := float64(k[0]), float64(k[1])
		hx.X[i] = xmn + size*(sqrt3*q+sqrt3/2*r)*xspan
		hx.Y[i] = ymn + size*1.5*r*yspan
		hx.Counts[i] = counts[k]
	}
	return hx, nil
}

var sqrt3 = math.Sqrt(3)

// hexRound rounds fractional axial hexagon coordinates to the nearest
// hexagon using cube coordinate rounding.
func hexRound(q, r float64) (int, int) {
	x, z := q, r
	y := -x - z
	rx, ry, rz := math.Round(x), math.Round(y), math.Round(z)
	dx, dy, dz := math.Abs(rx-x), math.Abs(ry-y), math.Abs(rz-z)
	switch {
	case dx > dy && dx > dz:
		rx = -ry - rz
	case dy > dz:
		// y is derived, nothing to fix
	default:
		rz = -rx - ry
	}
	return int(rx), int(rz)
}
