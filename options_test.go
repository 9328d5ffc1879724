// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pairplot

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsDefaults(t *testing.T) {
	o := NewOptions()
	assert.Equal(t, 20, o.Bins)
	assert.Equal(t, 32, o.Bins2D)
	assert.Equal(t, []float64{15, 50, 84}, o.Percentiles)
	assert.Equal(t, 4, len(o.Fractions))
	assert.Equal(t, float32(1), o.Scale)
}

func TestOptionsUpdate(t *testing.T) {
	o := &Options{Bins: 10}
	o.Update()
	assert.Equal(t, 10, o.Bins, "explicit settings are kept")
	assert.Equal(t, 32, o.Bins2D, "unset options get defaults")
	assert.Equal(t, []float64{15, 50, 84}, o.Percentiles)

	o = &Options{Percentiles: []float64{}}
	o.Update()
	assert.Empty(t, o.Percentiles, "an empty non-nil slice disables percentiles")
}

func TestOptionsTOML(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "options.toml")
	o := NewOptions()
	o.Bins = 25
	o.Scatter = Off
	o.Labels = map[string]string{"a": "alpha"}
	o.Lens = []string{"a", "b"}
	require.NoError(t, o.Save(fn))

	got := &Options{}
	require.NoError(t, got.Open(fn))
	assert.Equal(t, 25, got.Bins)
	assert.Equal(t, Off, got.Scatter)
	assert.Equal(t, map[string]string{"a": "alpha"}, got.Labels)
	assert.Equal(t, []string{"a", "b"}, got.Lens)
}
