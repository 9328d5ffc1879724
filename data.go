// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from github.com/gonum/plot:
// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pairplot

import (
	"math"
	"strconv"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32/minmax"
)

var (
	ErrInfinity = errors.New("pairplot: infinite data point")
	ErrNoData   = errors.New("pairplot: no data points")
)

// Valuer is the data interface for sample columns, supporting either
// float64 or string representations. It is satisfied by the
// tensor.Tensor interface, so a tensor can be used directly as a
// column source.
type Valuer interface {
	// Len returns the number of values.
	Len() int

	// Float1D(i int) returns float64 value at given index.
	Float1D(i int) float64

	// String1D(i int) returns string value at given index.
	String1D(i int) string
}

// Values provides a minimal implementation of the Valuer interface
// using a slice of float64.
type Values []float64

func (vs Values) Len() int {
	return len(vs)
}

func (vs Values) Float1D(i int) float64 {
	return vs[i]
}

func (vs Values) String1D(i int) string {
	return strconv.FormatFloat(vs[i], 'g', -1, 64)
}

// CheckFloats returns an error if any of the arguments are Infinity,
// or if there are no non-NaN data points available for plotting.
func CheckFloats(fs ...float64) error {
	n := 0
	for _, f := range fs {
		switch {
		case math.IsNaN(f):
		case math.IsInf(f, 0):
			return ErrInfinity
		default:
			n++
		}
	}
	if n == 0 {
		return ErrNoData
	}
	return nil
}

// CopyValues returns a Values that is a copy of the values
// from data, or an error if there are no values, or if one of
// the copied values is an Infinity.
// NaN values are skipped in the copying process.
func CopyValues(data Valuer) (Values, error) {
	if data == nil {
		return nil, ErrNoData
	}
	cpy := make(Values, 0, data.Len())
	for i := 0; i < data.Len(); i++ {
		v := data.Float1D(i)
		if math.IsNaN(v) {
			continue
		}
		if err := CheckFloats(v); err != nil {
			return nil, err
		}
		cpy = append(cpy, v)
	}
	if len(cpy) == 0 {
		return nil, ErrNoData
	}
	return cpy, nil
}

// Range updates given Range with values from data, skipping NaNs.
func Range(data Valuer, rng *minmax.F64) {
	for i := 0; i < data.Len(); i++ {
		v := data.Float1D(i)
		if math.IsNaN(v) {
			continue
		}
		rng.FitValInRange(v)
	}
}
