// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pairplot

import (
	"math"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/math32/minmax"
	"cogentcore.org/pairplot/contour"
	"cogentcore.org/pairplot/histogram"
	"cogentcore.org/pairplot/layout"
	"gonum.org/v1/gonum/mat"
)

// Item is one visualization layer within a panel, in data
// coordinates. The set of kinds is closed: [Hist1D], [Density1D],
// [VLine], [Band], [Heatmap], [Contours], [Scatter], [HexBins],
// [Surface], and [Label]. [Figure.Render] dispatches each kind to the
// corresponding [Renderer] method.
type Item interface {
	item()
}

// Hist1D is a 1D histogram bar layer on a diagonal panel.
type Hist1D struct {
	// Hist is the binned histogram to draw as bars.
	Hist *histogram.Hist

	// Style is the effective merged style for this layer.
	Style Style
}

// Density1D is a smooth kernel density curve on a diagonal panel.
type Density1D struct {
	// X and Y are the curve points.
	X, Y []float64

	Style Style
}

// VLine is a vertical reference line on a diagonal panel, such as a
// percentile marker, spanning the panel's full height.
type VLine struct {
	// X is the line position in data coordinates.
	X float64

	Style Style
}

// Band is a shaded vertical band on a diagonal panel between two
// x positions, such as the span between the outer percentiles.
type Band struct {
	// X0 and X1 are the band edges in data coordinates.
	X0, X1 float64

	Style Style
}

// Heatmap is the binned 2D density image layer. Masked bins hold NaN
// and are not drawn.
type Heatmap struct {
	// Hist is the 2D histogram; its weight grid may be masked.
	Hist *histogram.Hist2D

	// Bounds are optional filled-band boundaries bracketing the
	// credible thresholds, for banded rather than continuous
	// coloring; nil means continuous.
	Bounds []float64

	Style Style
}

// Contours is the credible-region contour ring layer: all traced
// polygons for all levels, outermost (lowest) level first.
type Contours struct {
	// Levels are the ascending weight thresholds.
	Levels []float64

	// Polys holds the traced polygons for each level, parallel
	// to Levels.
	Polys [][]contour.Polygon

	Style Style
}

// Scatter is a sample point overlay on a 2D panel. When filtering is
// enabled the points inside the outermost credible contour have been
// removed.
type Scatter struct {
	// X and Y are the point positions.
	X, Y []float64

	Style Style
}

// HexBins is a hexagonal binning layer on a 2D panel.
type HexBins struct {
	// Hexes are the occupied hexagon centers and counts.
	Hexes *histogram.Hexes

	Style Style
}

// Surface is the raised 3D surface rendering of the binned 2D
// density, substituted for the heatmap in surface mode.
type Surface struct {
	// Hist is the 2D histogram providing the surface heights.
	Hist *histogram.Hist2D

	Style Style
}

// Label is a free text annotation at a data position.
type Label struct {
	// Text is the annotation text.
	Text string

	// X and Y are the anchor position in data coordinates.
	X, Y float64

	Style Style
}

func (*Hist1D) item()    {}
func (*Density1D) item() {}
func (*VLine) item()     {}
func (*Band) item()      {}
func (*Heatmap) item()   {}
func (*Contours) item()  {}
func (*Scatter) item()   {}
func (*HexBins) item()   {}
func (*Surface) item()   {}
func (*Label) item()     {}

// Panel is one subplot cell: its canvas geometry, pinned axis
// limits, axis furniture flags, and visualization layers.
type Panel struct {
	// Row and Col are the 1-based grid position, with Col <= Row.
	// Both are zero for the auxiliary panel.
	Row, Col int

	// Index is the 1-based sequential cell index in row-major
	// lower-triangle order, or zero for the auxiliary panel.
	Index int

	// Box is the panel bounding box in scaled canvas units.
	Box math32.Box2

	// XVar and YVar are the plotted column names. YVar is empty on
	// diagonal panels, whose vertical axis is bin weight.
	XVar, YVar string

	// Title is the panel title text, shown on diagonal panels.
	Title string

	// XLabel and YLabel are the axis titles, empty when the axis
	// policy hides them for this cell.
	XLabel, YLabel string

	// ShowXTicks and ShowYTicks are whether tick labels are drawn.
	ShowXTicks, ShowYTicks bool

	// XLim and YLim are the pinned axis limits shared across the
	// panel's column and row.
	XLim, YLim minmax.F64

	// Diagonal is whether this is a 1D marginal panel.
	Diagonal bool

	// Aux is whether this is the auxiliary lens or bonus panel.
	Aux bool

	// Items are the visualization layers, drawn in order.
	Items []Item
}

// Add appends a visualization layer to the panel.
func (pn *Panel) Add(it Item) {
	pn.Items = append(pn.Items, it)
}

// Renderer is the external drawing backend. The figure drives it
// with one call per panel and one call per item, in order; all
// geometry has been computed, so a renderer only translates data
// coordinates to its own device coordinates within each panel box.
type Renderer interface {
	// Start is called once before any panels, with the figure.
	Start(fg *Figure)

	// Panel is called at the start of each panel, before its items.
	Panel(fg *Figure, pn *Panel)

	Hist1D(pn *Panel, it *Hist1D)
	Density1D(pn *Panel, it *Density1D)
	VLine(pn *Panel, it *VLine)
	Band(pn *Panel, it *Band)
	Heatmap(pn *Panel, it *Heatmap)
	Contours(pn *Panel, it *Contours)
	Scatter(pn *Panel, it *Scatter)
	HexBins(pn *Panel, it *HexBins)
	Surface(pn *Panel, it *Surface)
	Label(pn *Panel, it *Label)

	// PanelDone is called after the panel's items.
	PanelDone(fg *Figure, pn *Panel)

	// Done is called once after all panels.
	Done(fg *Figure)
}

// LegendEntry pairs a series name with the series' base style, for
// renderers that draw a legend.
type LegendEntry struct {
	// Name is the series name.
	Name string

	// Style is the series base style, carrying its default color.
	Style Style
}

// Figure is the composed output of a pair plot: the grid geometry
// plus every panel with its layers, ready to drive a [Renderer].
type Figure struct {
	// Names are the plotted column names, in grid order.
	Names []string

	// Grid is the triangular grid geometry.
	Grid *layout.Grid

	// Size is the scaled overall canvas size.
	Size math32.Vector2

	// Legend holds one entry per named series, in series order.
	Legend []LegendEntry

	// Panels are the allocated panels in cell index order, with the
	// auxiliary panel (if any) last.
	Panels []*Panel
}

// Panel returns the panel at the given 1-based row and column, or
// nil if it is not allocated.
func (fg *Figure) Panel(row, col int) *Panel {
	for _, pn := range fg.Panels {
		if pn.Row == row && pn.Col == col && !pn.Aux {
			return pn
		}
	}
	return nil
}

// Auxiliary returns the auxiliary panel, or nil if none.
func (fg *Figure) Auxiliary() *Panel {
	for _, pn := range fg.Panels {
		if pn.Aux {
			return pn
		}
	}
	return nil
}

// Translate shifts all panel geometry by the given offset, for
// embedding the figure as a sub-layout within a larger canvas.
func (fg *Figure) Translate(offset math32.Vector2) {
	for _, pn := range fg.Panels {
		pn.Box = pn.Box.Translate(offset)
	}
}

// Append merges another figure's panels into this one, offset by the
// given amount, growing the canvas to cover both. It composes
// separately built figures onto a single canvas.
func (fg *Figure) Append(sub *Figure, offset math32.Vector2) {
	sub.Translate(offset)
	fg.Panels = append(fg.Panels, sub.Panels...)
	fg.Legend = append(fg.Legend, sub.Legend...)
	fg.Size.SetMax(offset.Add(sub.Size))
}

// Render drives the renderer over every panel and item in order.
func (fg *Figure) Render(r Renderer) {
	r.Start(fg)
	for _, pn := range fg.Panels {
		r.Panel(fg, pn)
		for _, it := range pn.Items {
			switch it := it.(type) {
			case *Hist1D:
				r.Hist1D(pn, it)
			case *Density1D:
				r.Density1D(pn, it)
			case *VLine:
				r.VLine(pn, it)
			case *Band:
				r.Band(pn, it)
			case *Heatmap:
				r.Heatmap(pn, it)
			case *Contours:
				r.Contours(pn, it)
			case *Scatter:
				r.Scatter(pn, it)
			case *HexBins:
				r.HexBins(pn, it)
			case *Surface:
				r.Surface(pn, it)
			case *Label:
				r.Label(pn, it)
			}
		}
		r.PanelDone(fg, pn)
	}
	r.Done(fg)
}

// MaskedWeights returns a copy of the weight grid with every cell at
// or below the given threshold set to NaN, so the heatmap leaves the
// sparse region blank for the scatter overlay.
func MaskedWeights(w *mat.Dense, threshold float64) *mat.Dense {
	rows, cols := w.Dims()
	m := mat.NewDense(rows, cols, nil)
	for i := range rows {
		for j := range cols {
			v := w.At(i, j)
			if v <= threshold {
				v = math.NaN()
			}
			m.Set(i, j, v)
		}
	}
	return m
}
