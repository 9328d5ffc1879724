// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pairplot

import (
	"image"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/styles/units"
	"github.com/jinzhu/copier"
)

// Style contains the styling properties for one visualization layer
// of one panel. Styles are partial: zero-valued fields mean "not set"
// and are filled in from lower-precedence layers by [MergeStyles].
type Style struct {

	// On specifies whether to plot this layer, for cases where it
	// can be turned off.
	On DefaultOffOn

	// ColorMap is the name of the color map used by heatmap, hex bin,
	// and surface layers, passed through to the renderer.
	ColorMap string

	// Alpha is an opacity multiplier applied to the whole layer,
	// with zero meaning unset (fully opaque).
	Alpha float32

	// Line has style properties for drawing lines.
	Line LineStyle

	// Point has style properties for drawing points.
	Point PointStyle

	// Fill has style properties for filled regions.
	Fill FillStyle

	// Text has style properties for rendering text.
	Text TextStyle
}

// NewStyle returns a new Style object with defaults applied.
func NewStyle() *Style {
	st := &Style{}
	st.Defaults()
	return st
}

func (st *Style) Defaults() {
	st.Line.Defaults()
	st.Point.Defaults()
	st.Text.Defaults()
}

// LineStyle has style properties for drawing lines.
type LineStyle struct {
	// Color is the stroke color image.
	Color image.Image

	// Width is the line width, with dots defaulting to 1.
	Width units.Value

	// Dashes are the dashes of the stroke. Each pair of values
	// specifies the amount to paint and then the amount to skip.
	Dashes []float32
}

func (ls *LineStyle) Defaults() {
	ls.Color = colors.Uniform(colors.Black)
	ls.Width = units.Dp(1)
}

// PointStyle has style properties for drawing scatter points.
type PointStyle struct {
	// Color is the marker color image.
	Color image.Image

	// Size is the marker size, with dots defaulting to 3.
	Size units.Value
}

func (ps *PointStyle) Defaults() {
	ps.Color = colors.Uniform(colors.Black)
	ps.Size = units.Dp(3)
}

// FillStyle has style properties for filled regions.
type FillStyle struct {
	// Color is the fill color image.
	Color image.Image
}

// TextStyle has style properties for rendering titles and labels.
type TextStyle struct {
	// Color is the text color image.
	Color image.Image

	// Size is the font size, with dots defaulting to 12.
	Size units.Value
}

func (ts *TextStyle) Defaults() {
	ts.Color = colors.Uniform(colors.Black)
	ts.Size = units.Dp(12)
}

// Stylers is a list of styling functions that set Style properties.
// These are called in the order added.
type Stylers []func(s *Style)

// Add adds a styling function to the list.
func (st *Stylers) Add(f func(s *Style)) {
	*st = append(*st, f)
}

// Run runs the list of styling functions on given [Style] object.
func (st *Stylers) Run(s *Style) {
	for _, f := range *st {
		f(s)
	}
}

// MergeStyles overlays the given partial style layers onto dst in
// order, with later layers taking precedence per field and zero-valued
// fields leaving the lower layers in place. This is the single merge
// path for all layered configuration: every cell's effective style is
// defaults, then per-kind options, then per-cell computed values, then
// explicit series overrides. Nil layers are skipped. It returns dst.
func MergeStyles(dst *Style, layers ...*Style) *Style {
	for _, ly := range layers {
		if ly == nil {
			continue
		}
		errors.Log(copier.CopyWithOption(dst, ly, copier.Option{IgnoreEmpty: true, DeepCopy: true}))
	}
	return dst
}

// DefaultOffOn specifies whether to use the default value for a bool
// option, or to override the default and set Off or On.
type DefaultOffOn int32

const (
	// Default means use the default value.
	Default DefaultOffOn = iota

	// Off means to override the default and turn Off.
	Off

	// On means to override the default and turn On.
	On
)

// Resolve returns the effective boolean value given the default.
func (d DefaultOffOn) Resolve(def bool) bool {
	switch d {
	case Off:
		return false
	case On:
		return true
	}
	return def
}

func (d DefaultOffOn) String() string {
	switch d {
	case Off:
		return "Off"
	case On:
		return "On"
	}
	return "Default"
}
