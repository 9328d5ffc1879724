// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pairplot

import (
	"testing"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/styles/units"
	"github.com/stretchr/testify/assert"
)

func TestMergeStyles(t *testing.T) {
	dst := NewStyle()
	kind := &Style{ColorMap: "viridis", Alpha: 0.5}
	computed := &Style{Alpha: 0.8}
	override := &Style{Line: LineStyle{Color: colors.Uniform(colors.Red)}}

	MergeStyles(dst, kind, computed, override)

	assert.Equal(t, "viridis", dst.ColorMap, "set fields flow through from earlier layers")
	assert.Equal(t, float32(0.8), dst.Alpha, "later layers win per field")
	assert.Equal(t, colors.Uniform(colors.Red), dst.Line.Color)
	assert.Equal(t, units.Dp(1), dst.Line.Width, "unset fields keep the default")
	assert.Equal(t, units.Dp(3), dst.Point.Size)
}

func TestMergeStylesNil(t *testing.T) {
	dst := NewStyle()
	MergeStyles(dst, nil, &Style{On: On}, nil)
	assert.Equal(t, On, dst.On)
}

func TestMergeStylesZeroKept(t *testing.T) {
	dst := NewStyle()
	dst.ColorMap = "plasma"
	MergeStyles(dst, &Style{})
	assert.Equal(t, "plasma", dst.ColorMap, "an all-zero layer changes nothing")
}

func TestDefaultOffOn(t *testing.T) {
	assert.True(t, Default.Resolve(true))
	assert.False(t, Default.Resolve(false))
	assert.False(t, Off.Resolve(true))
	assert.True(t, On.Resolve(false))

	assert.Equal(t, "Default", Default.String())
	assert.Equal(t, "Off", Off.String())
	assert.Equal(t, "On", On.String())
}

func TestStylers(t *testing.T) {
	var st Stylers
	st.Add(func(s *Style) { s.ColorMap = "magma" })
	st.Add(func(s *Style) { s.Alpha = 0.25 })
	s := NewStyle()
	st.Run(s)
	assert.Equal(t, "magma", s.ColorMap)
	assert.Equal(t, float32(0.25), s.Alpha)
}
