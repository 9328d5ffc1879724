// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package histogram

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DefaultDensityPoints is the default number of evaluation points
// for kernel density estimates.
const DefaultDensityPoints = 201

// Density computes a Gaussian kernel density estimate of vals,
// evaluated at n evenly spaced points spanning the data range extended
// by three bandwidths on each side, so the curve tails reach zero.
// The bandwidth follows Silverman's rule of thumb. The returned ys
// integrate to approximately 1 over the returned xs.
func Density(vals []float64, n int) (xs, ys []float64, err error) {
	if len(vals) == 0 {
		return nil, nil, ErrNoData
	}
	if n < 2 {
		n = DefaultDensityPoints
	}
	mn, mx := floats.Min(vals), floats.Max(vals)
	if mn == mx {
		return nil, nil, ErrZeroRange
	}
	h := Bandwidth(vals)
	xs = floats.Span(make([]float64, n), mn-3*h, mx+3*h)
	ys = make([]float64, n)
	norm := 1 / (float64(len(vals)) * h * math.Sqrt(2*math.Pi))
	for i, x := range xs {
		sum := 0.0
		for _, v := range vals {
			u := (x - v) / h
			sum += math.Exp(-0.5 * u * u)
		}
		ys[i] = sum * norm
	}
	return xs, ys, nil
}

// Bandwidth returns the Silverman rule-of-thumb kernel bandwidth
// for vals: 1.06 times the sample standard deviation times n^(-1/5).
func Bandwidth(vals []float64) float64 {
	sd := stat.StdDev(vals, nil)
	if sd == 0 {
		sd = 1
	}
	return 1.06 * sd * math.Pow(float64(len(vals)), -0.2)
}
