// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pairplot

import (
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/core/base/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable(t *testing.T) {
	dt := NewTable("samples")
	dt.SetColumn("a", 1, 2, 3).SetColumn("b", 4, 5, 6)

	assert.Equal(t, []string{"a", "b"}, dt.ColumnNames())
	assert.Equal(t, 2, dt.NumColumns())
	nm, err := metadata.GetFromData[string](dt.Meta, "Name")
	require.NoError(t, err)
	assert.Equal(t, "samples", nm)

	col, err := dt.Column("b")
	require.NoError(t, err)
	assert.Equal(t, 3, col.Len())
	assert.Equal(t, 5.0, col.Float1D(1))

	_, err = dt.Column("missing")
	assert.ErrorIs(t, err, ErrColumnName)

	// setting an existing column replaces it in place
	dt.SetColumn("a", 9, 9)
	assert.Equal(t, []string{"a", "b"}, dt.ColumnNames())
}

func TestCopyValues(t *testing.T) {
	vals, err := CopyValues(Values{1, math.NaN(), 3})
	require.NoError(t, err)
	assert.Equal(t, Values{1, 3}, vals, "NaNs are skipped")

	_, err = CopyValues(Values{1, math.Inf(1)})
	assert.ErrorIs(t, err, ErrInfinity)

	_, err = CopyValues(Values{math.NaN(), math.NaN()})
	assert.ErrorIs(t, err, ErrNoData)

	_, err = CopyValues(nil)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestAsTabular(t *testing.T) {
	dt := NewTable().SetColumn("x", 1, 2)
	got, err := AsTabular(dt)
	require.NoError(t, err)
	assert.Equal(t, Tabular(dt), got, "a Table passes through unchanged")

	got, err = AsTabular(map[string][]float64{"b": {3, 4}, "a": {1, 2}})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got.ColumnNames(), "map columns are ordered by name")
	col, err := got.Column("b")
	require.NoError(t, err)
	assert.Equal(t, 4.0, col.Float1D(1))

	got, err = AsTabular(map[string]Values{"y": {5}, "x": {6}})
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, got.ColumnNames())

	_, err = AsTabular(42)
	assert.ErrorIs(t, err, ErrNotTabular)
}

type sliceSource struct {
	names []string
	data  [][]float64
}

func TestRegisterAdapter(t *testing.T) {
	RegisterAdapter(func(data any) (Tabular, bool) {
		src, ok := data.(*sliceSource)
		if !ok {
			return nil, false
		}
		dt := NewTable()
		for i, nm := range src.names {
			dt.SetColumn(nm, src.data[i]...)
		}
		return dt, true
	})
	got, err := AsTabular(&sliceSource{names: []string{"u", "v"}, data: [][]float64{{1}, {2}}})
	require.NoError(t, err)
	assert.Equal(t, []string{"u", "v"}, got.ColumnNames())
}

func TestCSVRoundTrip(t *testing.T) {
	dt := NewTable()
	dt.SetColumn("a", 1, 2.5, math.NaN())
	dt.SetColumn("b", -1, 0, 1e6)

	var buf bytes.Buffer
	require.NoError(t, dt.WriteCSV(&buf))

	got := NewTable()
	require.NoError(t, got.ReadCSV(&buf))
	assert.Equal(t, []string{"a", "b"}, got.ColumnNames())
	a := got.Columns.At("a")
	assert.Equal(t, 1.0, a[0])
	assert.Equal(t, 2.5, a[1])
	assert.True(t, math.IsNaN(a[2]), "blank cells read back as NaN")
	b := got.Columns.At("b")
	assert.Equal(t, Values{-1, 0, 1e6}, b)
}

func TestCSVFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "samples.csv")
	dt := NewTable().SetColumn("x", 1, 2, 3)
	require.NoError(t, dt.SaveCSV(fn))

	got := NewTable()
	require.NoError(t, got.OpenCSV(fn))
	assert.Equal(t, Values{1, 2, 3}, got.Columns.At("x"))
}

func TestReadCSVNonNumeric(t *testing.T) {
	dt := NewTable()
	require.NoError(t, dt.ReadCSV(strings.NewReader("a,b\n1,x\n2,3\n")))
	b := dt.Columns.At("b")
	assert.True(t, math.IsNaN(b[0]), "non-numeric cells become NaN")
	assert.Equal(t, 3.0, b[1])
}
