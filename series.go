// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pairplot

import (
	"cogentcore.org/core/colors"
)

// Series is one data source overlaid on the shared grid: its own
// sample table, its own set of visualization layers, and its own
// style overrides. All series share the grid geometry and the pinned
// axis limits, which are computed across every series together.
type Series struct {
	// Name identifies the series, for legends and diagnostics.
	Name string

	// Data is the tabular sample source.
	Data Tabular

	// Per-layer toggles for this series, overriding the
	// corresponding [Options] toggles when not Default.
	Heatmap, Contours, Scatter, FilterScatter, Density, HexBin, Surface DefaultOffOn

	// Override is the explicit call-site style override bag, the
	// highest-precedence layer of the style merge.
	Override Style

	// Stylers are styling functions applied to the effective style
	// of every layer in this series, after the merge.
	Stylers Stylers
}

// NewSeries returns a series with the given name and data.
func NewSeries(name string, data Tabular) *Series {
	return &Series{Name: name, Data: data}
}

// defaultStyle returns the base style for the i-th series, with all
// colors set to the i-th spaced distinct color so overlaid series
// remain distinguishable by default.
func (sr *Series) defaultStyle(i int) *Style {
	st := NewStyle()
	clr := colors.Uniform(colors.Spaced(i))
	st.Line.Color = clr
	st.Point.Color = clr
	st.Fill.Color = clr
	return st
}

// style computes the effective style for one layer kind: series
// defaults, then the given layers in order (the appearance bag, the
// per-kind option bag, and any per-cell computed style), then the
// explicit series override, then the series styler functions.
func (sr *Series) style(i int, layers ...*Style) Style {
	st := sr.defaultStyle(i)
	MergeStyles(st, layers...)
	MergeStyles(st, &sr.Override)
	sr.Stylers.Run(st)
	return *st
}
