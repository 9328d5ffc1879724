// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pairplot

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"maps"
	"math"
	"os"
	"slices"
	"strconv"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/keylist"
	"cogentcore.org/core/base/metadata"
)

var (
	ErrNotTabular = errors.New("pairplot: data source is not tabular")
	ErrColumnName = errors.New("pairplot: column name not found")
)

// Tabular is the minimal tabular data source for pair plotting:
// an ordered set of column names with numeric read access to each
// column. [Table] implements it; other sample containers are adapted
// via [RegisterAdapter].
type Tabular interface {
	// ColumnNames returns the ordered column names.
	ColumnNames() []string

	// Column returns the named column, or an error if no such
	// column exists.
	Column(name string) (Valuer, error)
}

// Table is an ordered collection of named sample columns,
// the concrete tabular input for pair plotting.
type Table struct {
	// Columns is the ordered list of columns, keyed by name.
	Columns keylist.List[string, Values]

	// Meta is the metadata for the table, with standard Name
	// and Doc keys.
	Meta metadata.Data
}

// NewTable returns a new empty table with the given optional name.
func NewTable(name ...string) *Table {
	dt := &Table{}
	if len(name) > 0 {
		dt.Meta.Set("Name", name[0])
	}
	return dt
}

// SetColumn sets the named column to the given values, adding it
// in order if not already present. It returns the table for chaining.
func (dt *Table) SetColumn(name string, vals ...float64) *Table {
	dt.Columns.Set(name, Values(vals))
	return dt
}

// ColumnNames returns the ordered column names.
func (dt *Table) ColumnNames() []string {
	return dt.Columns.Keys
}

// NumColumns returns the number of columns.
func (dt *Table) NumColumns() int {
	return dt.Columns.Len()
}

// Column returns the named column, or an error if not present.
func (dt *Table) Column(name string) (Valuer, error) {
	vals, ok := dt.Columns.AtTry(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnName, name)
	}
	return vals, nil
}

//////// CSV

// SaveCSV writes the table to the given comma-separated-values file,
// with column names as the header row.
func (dt *Table) SaveCSV(filename string) error {
	fp, err := os.Create(filename)
	if err != nil {
		return errors.Log(err)
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	if err := dt.WriteCSV(bw); err != nil {
		return err
	}
	return bw.Flush()
}

// OpenCSV reads the table from the given comma-separated-values file,
// replacing any existing columns. The first row must hold the column
// names.
func (dt *Table) OpenCSV(filename string) error {
	fp, err := os.Open(filename)
	if err != nil {
		return errors.Log(err)
	}
	defer fp.Close()
	return dt.ReadCSV(bufio.NewReader(fp))
}

// WriteCSV writes the table in comma-separated-values format,
// with column names as the header row. NaN values are written as
// empty cells.
func (dt *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(dt.Columns.Keys); err != nil {
		return err
	}
	rows := 0
	for _, vals := range dt.Columns.Values {
		rows = max(rows, len(vals))
	}
	rec := make([]string, dt.NumColumns())
	for ri := range rows {
		for ci, vals := range dt.Columns.Values {
			rec[ci] = ""
			if ri < len(vals) && !math.IsNaN(vals[ri]) {
				rec[ci] = strconv.FormatFloat(vals[ri], 'g', -1, 64)
			}
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV reads comma-separated-values data into the table, replacing
// any existing columns. The first record holds the column names.
// Cells that do not parse as numbers become NaN, which downstream
// computations skip.
func (dt *Table) ReadCSV(r io.Reader) error {
	cr := csv.NewReader(r)
	recs, err := cr.ReadAll()
	if err != nil {
		return errors.Log(err)
	}
	if len(recs) == 0 {
		return ErrNoData
	}
	dt.Columns.Reset()
	names := recs[0]
	cols := make([]Values, len(names))
	for _, rec := range recs[1:] {
		for ci := range names {
			v := math.NaN()
			if ci < len(rec) {
				if f, err := strconv.ParseFloat(rec[ci], 64); err == nil {
					v = f
				}
			}
			cols[ci] = append(cols[ci], v)
		}
	}
	for ci, nm := range names {
		dt.Columns.Set(nm, cols[ci])
	}
	return nil
}

//////// Adapters

// Adapter converts an arbitrary sample container into [Tabular] form,
// reporting false if it does not recognize the value. Adapters extend
// the set of inputs accepted by [Plot] beyond tables: anything
// exposing named numeric sequences can be plotted once an adapter
// for it is registered.
type Adapter func(data any) (Tabular, bool)

var adapters []Adapter

// RegisterAdapter adds an adapter to the registry consulted by
// [AsTabular], after those already registered.
func RegisterAdapter(a Adapter) {
	adapters = append(adapters, a)
}

// AsTabular converts data to [Tabular] form: directly if it already
// implements the interface, otherwise through the first registered
// adapter that recognizes it. A map from name to float64 slice is
// recognized by default, with columns ordered by sorted name.
func AsTabular(data any) (Tabular, error) {
	if dt, ok := data.(Tabular); ok {
		return dt, nil
	}
	for _, a := range adapters {
		if dt, ok := a(data); ok {
			return dt, nil
		}
	}
	return nil, fmt.Errorf("%w: %T", ErrNotTabular, data)
}

func init() {
	RegisterAdapter(func(data any) (Tabular, bool) {
		var m map[string][]float64
		switch d := data.(type) {
		case map[string][]float64:
			m = d
		case map[string]Values:
			m = make(map[string][]float64, len(d))
			for nm, vals := range d {
				m[nm] = vals
			}
		default:
			return nil, false
		}
		dt := NewTable()
		for _, nm := range slices.Sorted(maps.Keys(m)) {
			dt.SetColumn(nm, m[nm]...)
		}
		return dt, true
	})
}
