// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pairplot composes pair plots (corner plots): triangular
// grids of subplots showing all pairwise relationships among a set of
// sample columns alongside their 1D marginal distributions, as used
// to inspect posterior samples and other multi-dimensional data.
// Diagonal panels carry histograms, density curves, and percentile
// markers; lower-triangle panels carry 2D histogram heatmaps,
// credible-region contours, and scatter overlays. The package
// computes all statistics and geometry and emits a [Figure] of draw
// items that an external [Renderer] turns into actual graphics.
package pairplot

import (
	"fmt"
	"log/slog"
	"slices"
	"unicode"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32/minmax"
	"cogentcore.org/pairplot/contour"
	"cogentcore.org/pairplot/histogram"
	"cogentcore.org/pairplot/layout"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// LimitPad is the factor by which pinned axis limits are widened
// around their midpoint, so data does not touch the panel edges.
const LimitPad = 1.05

// PairPlot builds a pair plot figure from one or more data series.
// Add series with [PairPlot.AddSeries], then call [PairPlot.Figure].
// For the common single-series case, use [Plot].
type PairPlot struct {
	// Options is the configuration for the whole plot.
	Options Options

	// Series are the overlaid data series, sharing grid geometry
	// and axis limits.
	Series []*Series
}

// New returns a PairPlot with default options.
func New() *PairPlot {
	pp := &PairPlot{}
	pp.Options.Defaults()
	return pp
}

// AddSeries adds a data series. The data can be anything accepted by
// [AsTabular]: a [Tabular] value such as [Table], a map from column
// name to float64 slice, or any type with a registered adapter.
func (pp *PairPlot) AddSeries(name string, data any) (*Series, error) {
	dt, err := AsTabular(data)
	if err != nil {
		return nil, errors.Log(err)
	}
	sr := NewSeries(name, dt)
	pp.Series = append(pp.Series, sr)
	return sr, nil
}

// Plot builds a pair plot figure of the given data with the given
// options (nil for defaults). The plotted variables are the columns
// of the first series, in table order.
func Plot(data any, opts *Options) (*Figure, error) {
	pp := New()
	if opts != nil {
		pp.Options = *opts
	}
	if _, err := pp.AddSeries("", data); err != nil {
		return nil, err
	}
	return pp.Figure()
}

// Figure computes the full figure: validated inputs, pinned axis
// limits, the triangular grid of panels with their visualization
// layers, and the optional auxiliary panel. Input validation failures
// abort with an error before any computation; degenerate data in
// individual columns is reported with warnings and those layers are
// omitted, so one bad column does not take down the whole plot.
func (pp *PairPlot) Figure() (*Figure, error) {
	o := &pp.Options
	o.Update()
	if len(pp.Series) == 0 {
		return nil, errors.Log(errors.New("pairplot: no data series added"))
	}
	names := pp.Series[0].Data.ColumnNames()
	if len(names) == 0 {
		return nil, errors.Log(ErrNoData)
	}
	if err := pp.checkLabels(names); err != nil {
		return nil, err
	}
	cols := pp.copyColumns(names)
	limits := pp.limits(names, cols)

	n := len(names)
	grid := layout.NewGrid(n)
	grid.Scale = o.Scale
	fg := &Figure{Names: names, Grid: grid, Size: grid.Canvas()}
	for row := 1; row <= n; row++ {
		for col := 1; col <= row; col++ {
			pn := pp.panel(grid, row, col, names, limits)
			if pn.Diagonal {
				pp.diagonal(pn, cols)
			} else {
				pp.offDiagonal(pn, cols)
			}
			fg.Panels = append(fg.Panels, pn)
		}
	}
	pp.auxiliary(fg, names, cols, limits)
	for si, sr := range pp.Series {
		if sr.Name != "" {
			fg.Legend = append(fg.Legend, LegendEntry{Name: sr.Name, Style: sr.style(si, &o.Styles.Appearance)})
		}
	}
	return fg, nil
}

// panel allocates the panel for one grid cell, with its geometry,
// pinned limits, and axis furniture per the shared-axis policy.
func (pp *PairPlot) panel(grid *layout.Grid, row, col int, names []string, limits map[string]minmax.F64) *Panel {
	o := &pp.Options
	surface := o.Surface.Resolve(false)
	xv := names[col-1]
	pn := &Panel{
		Row:      row,
		Col:      col,
		Index:    layout.CellIndex(row, col),
		Box:      errors.Log1(grid.Cell(row, col)),
		XVar:     xv,
		Diagonal: row == col,
	}
	pn.XLim = limits[xv]
	if pn.Diagonal {
		pn.Title = pp.label(xv)
	} else {
		yv := names[row-1]
		pn.YVar = yv
		pn.YLim = limits[yv]
	}
	pn.ShowXTicks = grid.ShowXAxis(row) || surface
	pn.ShowYTicks = grid.ShowYAxis(row, col) || surface
	if pn.ShowXTicks {
		pn.XLabel = pp.label(xv)
	}
	if pn.ShowYTicks && !pn.Diagonal {
		pn.YLabel = pp.label(pn.YVar)
	}
	return pn
}

// label returns the display label for a column: the configured
// override if present, the column name otherwise.
func (pp *PairPlot) label(name string) string {
	if lbl, ok := pp.Options.Labels[name]; ok {
		return lbl
	}
	return name
}

// checkLabels validates that every label override names a plotted
// column, and warns about non-ASCII labels, which some renderers
// mishandle without escaping.
func (pp *PairPlot) checkLabels(names []string) error {
	for key, lbl := range pp.Options.Labels {
		if !slices.Contains(names, key) {
			return errors.Log(fmt.Errorf("%w: label override for %q", ErrColumnName, key))
		}
		for _, r := range lbl {
			if r > unicode.MaxASCII {
				slog.Warn("pairplot: non-ASCII label may need renderer escaping", "column", key, "label", lbl)
				break
			}
		}
	}
	return nil
}

// copyColumns copies and cleans every plotted column of every series.
// A series missing a column, or holding no plottable values in it,
// is skipped in the affected cells with a warning.
func (pp *PairPlot) copyColumns(names []string) []map[string]Values {
	cols := make([]map[string]Values, len(pp.Series))
	for si, sr := range pp.Series {
		cols[si] = make(map[string]Values, len(names))
		for _, nm := range names {
			vr, err := sr.Data.Column(nm)
			if err != nil {
				slog.Warn("pairplot: series is missing a column", "series", sr.Name, "column", nm)
				continue
			}
			vals, err := CopyValues(vr)
			if err != nil {
				slog.Warn("pairplot: column has no plottable values", "series", sr.Name, "column", nm, "err", err)
				continue
			}
			cols[si][nm] = vals
		}
	}
	return cols
}

// limits computes the pinned axis range for every column: the union
// of the extrema across all series, widened by [LimitPad]. Every cell
// in a column or row uses the same pinned range, which keeps the grid
// visually comparable.
func (pp *PairPlot) limits(names []string, cols []map[string]Values) map[string]minmax.F64 {
	lims := make(map[string]minmax.F64, len(names))
	for _, nm := range names {
		var rng minmax.F64
		rng.SetInfinity()
		for si := range cols {
			if vals, ok := cols[si][nm]; ok {
				Range(vals, &rng)
			}
		}
		if !rng.IsValid() {
			rng.Set(0, 0)
		}
		mid, half := rng.Midpoint(), 0.5*LimitPad*rng.Range()
		rng.Set(mid-half, mid+half)
		lims[nm] = rng
	}
	return lims
}

// diagonal fills a diagonal panel: per series, the 1D histogram,
// the optional density curve, and the percentile lines and band.
// The panel y range is the padded maximum bar height across series.
func (pp *PairPlot) diagonal(pn *Panel, cols []map[string]Values) {
	o := &pp.Options
	// ranks are applied in ascending order however they were given,
	// so the band spans low to high and the title offsets stay positive
	ranks := slices.Clone(o.Percentiles)
	slices.Sort(ranks)
	ymax := 0.0
	for si, sr := range pp.Series {
		vals, ok := cols[si][pn.XVar]
		if !ok {
			continue
		}
		h, err := histogram.Bin(vals, o.Bins)
		if err != nil {
			slog.Warn("pairplot: cannot bin column", "series", sr.Name, "column", pn.XVar, "err", err)
			continue
		}
		pn.Add(&Hist1D{Hist: h, Style: sr.style(si, &o.Styles.Appearance, &o.Styles.Hist)})
		ymax = max(ymax, floats.Max(h.Weights))

		if layerOn(sr.Density, o.Density, false) {
			xs, ys, err := histogram.Density(vals, histogram.DefaultDensityPoints)
			if err != nil {
				slog.Warn("pairplot: cannot compute density", "series", sr.Name, "column", pn.XVar, "err", err)
			} else {
				// scale the unit-mass density curve to histogram counts
				scale := float64(len(vals)) * h.Width
				for i := range ys {
					ys[i] *= scale
				}
				pn.Add(&Density1D{X: xs, Y: ys, Style: sr.style(si, &o.Styles.Appearance, &o.Styles.Density)})
				ymax = max(ymax, floats.Max(ys))
			}
		}

		if len(ranks) > 0 {
			qs, err := histogram.Quantiles(vals, ranks)
			if err != nil {
				slog.Warn("pairplot: cannot compute percentiles", "series", sr.Name, "column", pn.XVar, "err", err)
				continue
			}
			pst := sr.style(si, &o.Styles.Appearance, &o.Styles.Percentiles)
			if len(qs) >= 2 {
				pn.Add(&Band{X0: qs[0], X1: qs[len(qs)-1], Style: pst})
			}
			for _, q := range qs {
				pn.Add(&VLine{X: q, Style: pst})
			}
			if si == 0 && len(qs) == 3 {
				pn.Title = statTitle(pp.label(pn.XVar), qs)
			}
		}
	}
	pn.YLim.Set(0, ymax*LimitPad)
}

// statTitle formats the median and error title for a diagonal panel
// from ascending low, median, high percentile values.
func statTitle(label string, qs []float64) string {
	lo, med, hi := qs[0], qs[1], qs[2]
	return fmt.Sprintf("%s = %.3g +%.3g / -%.3g", label, med, hi-med, med-lo)
}

// offDiagonal fills a lower-triangle panel: per series, the 2D
// histogram heatmap (masked against the outermost credible level when
// scatter is shown), the credible contour rings, the hex bins, and
// the filtered scatter overlay. In surface mode the heatmap and
// contours are replaced by a raised surface.
func (pp *PairPlot) offDiagonal(pn *Panel, cols []map[string]Values) {
	o := &pp.Options
	for si, sr := range pp.Series {
		xs, okx := cols[si][pn.XVar]
		ys, oky := cols[si][pn.YVar]
		if !okx || !oky {
			continue
		}
		if len(xs) != len(ys) {
			slog.Warn("pairplot: column lengths differ within a series", "series", sr.Name, "x", pn.XVar, "y", pn.YVar)
			continue
		}
		h2, err := histogram.Bin2D(xs, ys, o.Bins2D, o.Bins2D)
		if err != nil {
			slog.Warn("pairplot: cannot bin pair", "series", sr.Name, "x", pn.XVar, "y", pn.YVar, "err", err)
			continue
		}
		surface := layerOn(sr.Surface, o.Surface, false)
		scatter := layerOn(sr.Scatter, o.Scatter, true)
		filter := layerOn(sr.FilterScatter, o.FilterScatter, true)
		contours := layerOn(sr.Contours, o.Contours, true) && !surface
		heatmap := layerOn(sr.Heatmap, o.Heatmap, true) && !surface
		hexbin := layerOn(sr.HexBin, o.HexBin, false)

		var levels []float64
		if contours || scatter {
			levels, err = contour.Levels(h2.Weights, o.Fractions)
			if err != nil {
				slog.Warn("pairplot: cannot solve credible levels", "series", sr.Name, "x", pn.XVar, "y", pn.YVar, "err", err)
			}
		}
		var outer []contour.Polygon
		if len(levels) > 0 && (contours || filter) {
			outer = errors.Log1(contour.Trace(h2.XCenters, h2.YCenters, h2.Weights, levels[0]))
		}

		if surface {
			pn.Add(&Surface{Hist: h2, Style: sr.style(si, &o.Styles.Appearance, &o.Styles.Hist2D)})
		}
		if heatmap {
			mh := *h2
			if scatter && len(levels) > 0 {
				mh.Weights = MaskedWeights(h2.Weights, levels[0])
			}
			var bounds []float64
			if contours && len(levels) > 0 {
				bounds = contour.LevelBounds(levels, mat.Max(h2.Weights))
			}
			pn.Add(&Heatmap{Hist: &mh, Bounds: bounds, Style: sr.style(si, &o.Styles.Appearance, &o.Styles.Hist2D)})
		}
		if hexbin {
			hx, err := histogram.HexBin(xs, ys, o.Bins2D)
			if err != nil {
				slog.Warn("pairplot: cannot hex bin pair", "series", sr.Name, "x", pn.XVar, "y", pn.YVar, "err", err)
			} else {
				pn.Add(&HexBins{Hexes: hx, Style: sr.style(si, &o.Styles.Appearance, &o.Styles.Hist2D)})
			}
		}
		if contours && len(levels) > 0 {
			ct := &Contours{Levels: levels, Polys: make([][]contour.Polygon, len(levels)), Style: sr.style(si, &o.Styles.Appearance, &o.Styles.Contour)}
			ct.Polys[0] = outer
			for li := 1; li < len(levels); li++ {
				ct.Polys[li] = errors.Log1(contour.Trace(h2.XCenters, h2.YCenters, h2.Weights, levels[li]))
			}
			pn.Add(ct)
		}
		if scatter {
			sx, sy := []float64(xs), []float64(ys)
			if filter && len(outer) > 0 {
				sx, sy, err = contour.FilterOutside(sx, sy, outer)
				if err != nil {
					errors.Log(err)
				}
			}
			pn.Add(&Scatter{X: sx, Y: sy, Style: sr.style(si, &o.Styles.Appearance, &o.Styles.Scatter)})
		}
	}
}

// auxiliary adds the lens or bonus panel beside the grid diagonal,
// when configured and when the grid leaves room for one. A lens names
// one column (shown as an enlarged marginal) or two (shown as an
// enlarged joint panel); lens takes precedence over bonus. A lens
// naming unknown columns is omitted without error.
func (pp *PairPlot) auxiliary(fg *Figure, names []string, cols []map[string]Values, limits map[string]minmax.F64) {
	o := &pp.Options
	if len(o.Lens) == 0 && o.Bonus == nil {
		return
	}
	box, ok := fg.Grid.Auxiliary()
	if !ok {
		return
	}
	pn := &Panel{Aux: true, Box: box, ShowXTicks: true, ShowYTicks: true}
	switch {
	case len(o.Lens) > 0:
		for _, nm := range o.Lens {
			if !slices.Contains(names, nm) {
				return
			}
		}
		switch len(o.Lens) {
		case 1:
			nm := o.Lens[0]
			pn.Diagonal = true
			pn.XVar = nm
			pn.XLim = limits[nm]
			pn.Title = pp.label(nm)
			pn.XLabel = pp.label(nm)
			pp.diagonal(pn, cols)
		case 2:
			xv, yv := o.Lens[0], o.Lens[1]
			pn.XVar, pn.YVar = xv, yv
			pn.XLim, pn.YLim = limits[xv], limits[yv]
			pn.XLabel, pn.YLabel = pp.label(xv), pp.label(yv)
			pp.offDiagonal(pn, cols)
		default:
			slog.Warn("pairplot: lens takes one or two column names", "lens", o.Lens)
			return
		}
	default:
		o.Bonus(pn)
	}
	fg.Panels = append(fg.Panels, pn)
}

// layerOn resolves a layer toggle: the per-series setting overrides
// the option setting, which overrides the built-in default.
func layerOn(series, opt DefaultOffOn, def bool) bool {
	return series.Resolve(opt.Resolve(def))
}
