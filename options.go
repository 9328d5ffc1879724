// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pairplot

import (
	"os"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/pairplot/contour"
	"cogentcore.org/pairplot/histogram"
	"github.com/pelletier/go-toml/v2"
)

// Options is the configuration surface for a pair plot. The zero
// value means "all defaults"; see [Options.Defaults] for the
// effective values. Layer toggles are tri-state so that an
// unconfigured option can still fall back to its per-layer default.
type Options struct {

	// Bins is the number of bins for 1D histograms. Default is 20.
	Bins int

	// Bins2D is the number of bins per axis for 2D histograms.
	// Default is 32.
	Bins2D int

	// Percentiles are the percentile ranks marked with reference
	// lines on the diagonal panels and used for the median and error
	// panel titles. Rank order does not matter. Default is 15, 50, 84.
	// Set to an empty non-nil slice to disable.
	Percentiles []float64

	// Fractions are the credible mass fractions that set the contour
	// levels. Default is the 0.5 through 2 sigma equivalents; see
	// [contour.DefaultFractions].
	Fractions []float64

	// Heatmap toggles the 2D binned density image. Default is on.
	Heatmap DefaultOffOn

	// Contours toggles credible-region contour rings on the 2D
	// panels. Default is on.
	Contours DefaultOffOn

	// Scatter toggles the sample scatter overlay on the 2D panels.
	// Default is on.
	Scatter DefaultOffOn

	// FilterScatter culls scatter points inside the outermost
	// credible contour, where the heatmap already shows the density.
	// Default is on.
	FilterScatter DefaultOffOn

	// Density toggles the smooth kernel density curve on the
	// diagonal panels. Default is off.
	Density DefaultOffOn

	// HexBin toggles hexagonal binning on the 2D panels. Default
	// is off.
	HexBin DefaultOffOn

	// Surface switches the 2D panels to a raised 3D surface
	// rendering mode, which disables contour rings and shows full
	// axis formatting on every panel. Default is off.
	Surface DefaultOffOn

	// Labels maps column names to display labels, which may be plain
	// text or renderer-specific markup. Columns without an entry use
	// their name.
	Labels map[string]string

	// Lens names one column, or a pair of columns, to show enlarged
	// in the auxiliary panel beside the grid diagonal. Takes
	// precedence over Bonus.
	Lens []string

	// Bonus is a callback that draws arbitrary content into the
	// auxiliary panel, by appending items to it. Ignored when Lens
	// is set.
	Bonus func(pn *Panel) `toml:"-" json:"-"`

	// Scale is the uniform display multiplier for all canvas
	// geometry. Default is 1.
	Scale float32

	// Styles are the per-layer-kind style options, merged over the
	// built-in defaults for every cell. Not saved to TOML.
	Styles StyleOptions `toml:"-" json:"-"`
}

// StyleOptions are per-layer-kind partial styles, applied to that
// kind of layer in every cell the kind appears in.
type StyleOptions struct {

	// Appearance applies to every layer of every kind, before the
	// kind-specific styles below.
	Appearance Style

	// Hist styles the 1D histogram bars on the diagonal.
	Hist Style

	// Hist2D styles the 2D heatmap, hex bin, and surface layers.
	Hist2D Style

	// Contour styles the credible-region contour rings.
	Contour Style

	// Scatter styles the sample scatter overlay.
	Scatter Style

	// Density styles the kernel density curve on the diagonal.
	Density Style

	// Percentiles styles the percentile reference lines and the
	// band between the outermost pair.
	Percentiles Style
}

// NewOptions returns options with all defaults applied.
func NewOptions() *Options {
	o := &Options{}
	o.Defaults()
	return o
}

func (o *Options) Defaults() {
	o.Bins = histogram.DefaultBins
	o.Bins2D = histogram.DefaultBins2D
	o.Percentiles = []float64{15, 50, 84}
	o.Fractions = contour.DefaultFractions()
	o.Scale = 1
}

// Update fills in any unset options with their defaults.
func (o *Options) Update() {
	if o.Bins <= 0 {
		o.Bins = histogram.DefaultBins
	}
	if o.Bins2D <= 0 {
		o.Bins2D = histogram.DefaultBins2D
	}
	if o.Percentiles == nil {
		o.Percentiles = []float64{15, 50, 84}
	}
	if o.Fractions == nil {
		o.Fractions = contour.DefaultFractions()
	}
	if o.Scale <= 0 {
		o.Scale = 1
	}
}

// Save saves the options to the given TOML file. The style bags and
// the bonus callback are code-level configuration and are not saved.
func (o *Options) Save(filename string) error {
	b, err := toml.Marshal(o)
	if err != nil {
		return errors.Log(err)
	}
	return errors.Log(os.WriteFile(filename, b, 0666))
}

// Open loads the options from the given TOML file.
func (o *Options) Open(filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return errors.Log(err)
	}
	return errors.Log(toml.Unmarshal(b, o))
}
