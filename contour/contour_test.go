// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestDefaultFractions(t *testing.T) {
	fs := DefaultFractions()
	require.Equal(t, 4, len(fs))
	assert.InDelta(t, 0.1175, fs[0], 1e-4)
	assert.InDelta(t, 0.3935, fs[1], 1e-4)
	assert.InDelta(t, 0.6753, fs[2], 1e-4)
	assert.InDelta(t, 0.8647, fs[3], 1e-4)
	for i := 1; i < len(fs); i++ {
		assert.Greater(t, fs[i], fs[i-1])
	}
}

func TestLevels(t *testing.T) {
	grid := mat.NewDense(1, 5, []float64{3, 1, 5, 2, 4})
	levels, err := Levels(grid, []float64{0.2, 0.9})
	require.NoError(t, err)
	// total mass 15: the top cell alone holds 1/3 >= 0.2, and the
	// cells at or above 2 hold 14/15 >= 0.9
	assert.Equal(t, []float64{2, 5}, levels)

	// larger fractions give lower thresholds, output always ascending
	levels, err = Levels(grid, []float64{0.9, 0.2})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 5}, levels)
}

func TestLevelsExtremes(t *testing.T) {
	grid := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	levels, err := Levels(grid, []float64{0.999})
	require.NoError(t, err)
	assert.Equal(t, 1.0, levels[0], "near-total mass reaches down to the smallest cell")

	levels, err = Levels(grid, []float64{0.001})
	require.NoError(t, err)
	assert.Equal(t, 4.0, levels[0], "near-zero mass stays at the peak cell")
}

func TestLevelsUniform(t *testing.T) {
	// a flat grid collapses every fraction onto the same threshold,
	// which warns but still returns the full set
	grid := mat.NewDense(2, 2, []float64{1, 1, 1, 1})
	levels, err := Levels(grid, DefaultFractions())
	require.NoError(t, err)
	require.Equal(t, 4, len(levels))
	for _, lv := range levels {
		assert.Equal(t, 1.0, lv)
	}
}

func TestLevelsErrors(t *testing.T) {
	zero := mat.NewDense(3, 3, nil)
	_, err := Levels(zero, []float64{0.5})
	assert.ErrorIs(t, err, ErrNoMass)

	grid := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	_, err = Levels(grid, []float64{0})
	assert.ErrorIs(t, err, ErrFraction)
	_, err = Levels(grid, []float64{1})
	assert.ErrorIs(t, err, ErrFraction)
}

func TestLevelBounds(t *testing.T) {
	bounds := LevelBounds([]float64{2, 5}, 10)
	require.Equal(t, 4, len(bounds))
	assert.Equal(t, 0.0, bounds[0])
	assert.Equal(t, []float64{2, 5}, bounds[1:3])
	assert.Greater(t, bounds[3], 10.0)
}

// bump returns an n x n zero grid with ones at the given (row, col)
// cells, with unit cell coordinates.
func bump(n int, cells ...[2]int) (xs, ys []float64, grid *mat.Dense) {
	xs = make([]float64, n)
	ys = make([]float64, n)
	for i := range n {
		xs[i] = float64(i)
		ys[i] = float64(i)
	}
	grid = mat.NewDense(n, n, nil)
	for _, c := range cells {
		grid.Set(c[0], c[1], 1)
	}
	return xs, ys, grid
}

func TestTraceClosed(t *testing.T) {
	xs, ys, grid := bump(3, [2]int{1, 1})
	polys, err := Trace(xs, ys, grid, 0.5)
	require.NoError(t, err)
	require.Equal(t, 1, len(polys))
	p := polys[0]
	assert.True(t, p.Closed)
	require.Equal(t, 5, len(p.X))
	assert.Equal(t, p.X[0], p.X[4], "the first point repeats to close the ring")
	assert.Equal(t, p.Y[0], p.Y[4])

	// a diamond of edge midpoints around the center cell
	want := map[[2]float64]bool{
		{1, 0.5}: true, {0.5, 1}: true, {1, 1.5}: true, {1.5, 1}: true,
	}
	for i := range p.X {
		assert.True(t, want[[2]float64{p.X[i], p.Y[i]}], "unexpected vertex (%g, %g)", p.X[i], p.Y[i])
	}
}

func TestTraceOpen(t *testing.T) {
	// values increase along x only, so the contour is a vertical line
	// running off both grid edges
	xs := []float64{0, 1, 2}
	ys := []float64{0, 1, 2}
	grid := mat.NewDense(3, 3, []float64{
		0, 1, 2,
		0, 1, 2,
		0, 1, 2,
	})
	polys, err := Trace(xs, ys, grid, 0.5)
	require.NoError(t, err)
	require.Equal(t, 1, len(polys))
	p := polys[0]
	assert.False(t, p.Closed)
	require.Equal(t, 3, len(p.X))
	for i := range p.X {
		assert.Equal(t, 0.5, p.X[i])
	}
}

func TestTraceDisjoint(t *testing.T) {
	xs, ys, grid := bump(5, [2]int{1, 1}, [2]int{3, 3})
	polys, err := Trace(xs, ys, grid, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 2, len(polys), "two separated modes trace two polygons")
	for _, p := range polys {
		assert.True(t, p.Closed)
	}
}

func TestTraceDims(t *testing.T) {
	grid := mat.NewDense(3, 3, nil)
	_, err := Trace([]float64{0, 1}, []float64{0, 1, 2}, grid, 0.5)
	assert.ErrorIs(t, err, ErrDims)
}

func TestContains(t *testing.T) {
	p := Polygon{
		X:      []float64{1, 0.5, 1, 1.5, 1},
		Y:      []float64{0.5, 1, 1.5, 1, 0.5},
		Closed: true,
	}
	assert.True(t, p.Contains(1, 1))
	assert.True(t, p.Contains(1, 0.5), "boundary vertex counts as inside")
	assert.True(t, p.Contains(0.75, 0.75), "boundary edge point counts as inside")
	assert.False(t, p.Contains(0, 0))
	assert.False(t, p.Contains(2, 2))
	assert.False(t, p.Contains(1, 2))
}

func TestFilterOutside(t *testing.T) {
	p := Polygon{
		X:      []float64{1, 0.5, 1, 1.5, 1},
		Y:      []float64{0.5, 1, 1.5, 1, 0.5},
		Closed: true,
	}
	xs := []float64{0, 1, 2, 1, 0.1}
	ys := []float64{0, 1, 2, 0.5, 1.9}
	fx, fy, err := FilterOutside(xs, ys, []Polygon{p})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2, 0.1}, fx, "inside and boundary points are removed, order kept")
	assert.Equal(t, []float64{0, 2, 1.9}, fy)

	fx, fy, err = FilterOutside(xs, ys, nil)
	require.NoError(t, err)
	assert.Equal(t, xs, fx, "no polygons filters nothing")
	assert.Equal(t, ys, fy)

	_, _, err = FilterOutside(xs, ys[:2], nil)
	assert.ErrorIs(t, err, ErrDims)
}
