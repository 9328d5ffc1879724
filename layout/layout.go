// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layout computes the canvas geometry of a triangular pair
// plot grid: per-cell bounding boxes, the overall canvas size, and
// the placement of the optional auxiliary panel. Geometry is a pure
// function of the grid dimension and fixed padding constants, fully
// independent of the data being plotted.
package layout

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
)

// Layout constants, in abstract canvas units prior to scaling.
const (
	// CellSize is the width and height of every cell.
	CellSize = 40

	// CellPad is the padding between adjacent cells.
	CellPad = 1

	// PadTop, PadLeft, PadRight, PadBottom are the outer canvas margins.
	PadTop    = 20
	PadLeft   = 20
	PadRight  = 0
	PadBottom = 10

	// AuxPadEven and AuxPadOdd are the extra horizontal padding between
	// the main grid and the auxiliary panel, for even and odd grid
	// dimensions respectively.
	AuxPadEven = 20
	AuxPadOdd  = 5
)

var ErrUpperTriangle = errors.New("layout: upper-triangle cells are not allocated")

// Grid is the geometry of an n x n triangular pair plot grid.
// Only cells on or below the diagonal exist.
type Grid struct {
	// N is the number of variables, and thus of grid rows and columns.
	N int

	// Scale is the uniform display multiplier applied to all geometry.
	Scale float32
}

// NewGrid returns a grid for n variables at unit scale.
func NewGrid(n int) *Grid {
	return &Grid{N: n, Scale: 1}
}

func (g *Grid) scale() float32 {
	if g.Scale <= 0 {
		return 1
	}
	return g.Scale
}

// NumCells returns the number of allocated cells for an n-variable
// grid: the triangular number n(n+1)/2.
func NumCells(n int) int {
	return n * (n + 1) / 2
}

// CellIndex returns the 1-based sequential index of the cell at the
// given 1-based row and column, counting lower-triangle cells in
// row-major order: (1,1) is 1, (2,1) is 2, (2,2) is 3, and so on.
// It is only defined for col <= row.
func CellIndex(row, col int) int {
	return row*(row-1)/2 + col
}

// Cell returns the scaled bounding box of the cell at the given
// 1-based row and column. Cells above the diagonal are never
// allocated, so requesting one is an error.
func (g *Grid) Cell(row, col int) (math32.Box2, error) {
	if row < 1 || row > g.N || col < 1 || col > g.N {
		return math32.Box2{}, fmt.Errorf("layout: cell (%d, %d) out of range for %d variables", row, col, g.N)
	}
	if col > row {
		return math32.Box2{}, fmt.Errorf("%w: (%d, %d)", ErrUpperTriangle, row, col)
	}
	s := g.scale()
	x := float32((col-1)*(CellSize+CellPad) + PadLeft)
	y := float32((row-1)*(CellSize+CellPad) + PadTop)
	return math32.B2(x*s, y*s, (x+CellSize)*s, (y+CellSize)*s), nil
}

// Canvas returns the scaled overall canvas size.
func (g *Grid) Canvas() math32.Vector2 {
	s := g.scale()
	w := float32(PadLeft + (CellSize+CellPad)*g.N + PadRight)
	h := float32(PadTop + (CellSize+CellPad)*g.N + PadBottom)
	return math32.Vec2(w*s, h*s)
}

// AuxBand returns the 1-based diagonal band that the auxiliary panel
// is placed beside: the floor of the mean of rows 1..n.
func (g *Grid) AuxBand() int {
	return (g.N + 1) / 2
}

// Auxiliary returns the scaled bounding box of the auxiliary panel:
// one cell height tall, aligned with the [Grid.AuxBand] diagonal row,
// spanning from just right of that diagonal cell to the canvas edge.
// The second return is false when no horizontal space remains, in
// which case no auxiliary panel can be placed.
func (g *Grid) Auxiliary() (math32.Box2, bool) {
	b := g.AuxBand()
	pad := AuxPadOdd
	if g.N%2 == 0 {
		pad = AuxPadEven
	}
	x := float32((b-1)*(CellSize+CellPad) + PadLeft + CellSize + pad)
	w := float32(PadLeft + (CellSize+CellPad)*g.N + PadRight)
	if x >= w {
		return math32.Box2{}, false
	}
	y := float32((b-1)*(CellSize+CellPad) + PadTop)
	s := g.scale()
	return math32.B2(x*s, y*s, w*s, (y+CellSize)*s), true
}

// ShowXAxis reports whether the cell at the given 1-based row shows
// x tick labels and an x axis title: only the bottom row does, so
// columns share one set of x labels.
func (g *Grid) ShowXAxis(row int) bool {
	return row == g.N
}

// ShowYAxis reports whether the cell at the given 1-based row and
// column shows y tick labels and a y axis title: only the first
// column, excluding the top diagonal cell whose vertical axis is a
// count rather than a variable.
func (g *Grid) ShowYAxis(row, col int) bool {
	return col == 1 && row > 1
}
