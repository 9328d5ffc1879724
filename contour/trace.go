// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contour

import (
	"gonum.org/v1/gonum/mat"
)

// Polygon is a traced contour path in data coordinates. A closed ring
// repeats its first point at the end; paths that run off the edge of
// the grid are open and do not.
type Polygon struct {
	// X and Y are the path vertex positions, parallel slices.
	X, Y []float64

	// Closed is whether the path is a closed ring.
	Closed bool
}

type point struct {
	x, y float64
}

type segment struct {
	a, b point
}

// Trace extracts the iso-weight contour paths of grid at the given
// level using marching squares with linear interpolation along cell
// edges. xs and ys are the grid column and row coordinates: xs must
// have len equal to the grid column count and ys to the row count.
// Cells at or above level are inside the contour. Saddle cells are
// disambiguated by the cell center average.
func Trace(xs, ys []float64, grid *mat.Dense, level float64) ([]Polygon, error) {
	rows, cols := grid.Dims()
	if len(xs) != cols || len(ys) != rows {
		return nil, ErrDims
	}
	var segs []segment
	for yi := range rows - 1 {
		for xi := range cols - 1 {
			segs = cellSegments(segs, xs, ys, grid, xi, yi, level)
		}
	}
	return chain(segs), nil
}

// cellSegments appends the contour line segments crossing the cell
// with lower-left grid corner (yi, xi) to segs.
func cellSegments(segs []segment, xs, ys []float64, grid *mat.Dense, xi, yi int, level float64) []segment {
	v00 := grid.At(yi, xi)     // lower left
	v01 := grid.At(yi, xi+1)   // lower right
	v11 := grid.At(yi+1, xi+1) // upper right
	v10 := grid.At(yi+1, xi)   // upper left

	idx := 0
	if v00 >= level {
		idx |= 1
	}
	if v01 >= level {
		idx |= 2
	}
	if v11 >= level {
		idx |= 4
	}
	if v10 >= level {
		idx |= 8
	}
	if idx == 0 || idx == 15 {
		return segs
	}

	x0, x1 := xs[xi], xs[xi+1]
	y0, y1 := ys[yi], ys[yi+1]
	bottom := func() point { return point{cross(x0, x1, v00, v01, level), y0} }
	top := func() point { return point{cross(x0, x1, v10, v11, level), y1} }
	left := func() point { return point{x0, cross(y0, y1, v00, v10, level)} }
	right := func() point { return point{x1, cross(y0, y1, v01, v11, level)} }

	switch idx {
	case 1, 14:
		segs = append(segs, segment{left(), bottom()})
	case 2, 13:
		segs = append(segs, segment{bottom(), right()})
	case 3, 12:
		segs = append(segs, segment{left(), right()})
	case 4, 11:
		segs = append(segs, segment{right(), top()})
	case 6, 9:
		segs = append(segs, segment{bottom(), top()})
	case 7, 8:
		segs = append(segs, segment{left(), top()})
	case 5:
		if (v00+v01+v11+v10)/4 >= level {
			segs = append(segs, segment{bottom(), right()}, segment{left(), top()})
		} else {
			segs = append(segs, segment{left(), bottom()}, segment{right(), top()})
		}
	case 10:
		if (v00+v01+v11+v10)/4 >= level {
			segs = append(segs, segment{left(), bottom()}, segment{right(), top()})
		} else {
			segs = append(segs, segment{bottom(), right()}, segment{left(), top()})
		}
	}
	return segs
}

// cross linearly interpolates the coordinate where the value crosses
// level between two grid points. Adjacent cells compute the shared
// edge crossing from the same inputs, so the results match exactly
// and segment chaining can compare points for equality.
func cross(p0, p1, v0, v1, level float64) float64 {
	if v1 == v0 {
		return p0
	}
	return p0 + (level-v0)*(p1-p0)/(v1-v0)
}

// chain links the unordered cell segments into polyline paths. A path
// whose ends meet becomes a closed ring, retaining the repeated first
// point that closes it.
func chain(segs []segment) []Polygon {
	ends := make(map[point][]int, 2*len(segs))
	for i, s := range segs {
		ends[s.a] = append(ends[s.a], i)
		ends[s.b] = append(ends[s.b], i)
	}
	used := make([]bool, len(segs))
	var polys []Polygon
	for i := range segs {
		if used[i] {
			continue
		}
		used[i] = true
		if segs[i].a == segs[i].b { // zero length, level hit a corner exactly
			continue
		}
		path := []point{segs[i].a, segs[i].b}
		path = extend(path, ends, segs, used)
		path = reverse(path)
		path = extend(path, ends, segs, used)
		closed := len(path) > 2 && path[0] == path[len(path)-1]
		p := Polygon{X: make([]float64, len(path)), Y: make([]float64, len(path)), Closed: closed}
		for j, pt := range path {
			p.X[j] = pt.x
			p.Y[j] = pt.y
		}
		polys = append(polys, p)
	}
	return polys
}

// extend grows path forward from its last point by consuming unused
// segments sharing an endpoint, until none connect or the path closes.
func extend(path []point, ends map[point][]int, segs []segment, used []bool) []point {
	for {
		last := path[len(path)-1]
		next := -1
		for _, i := range ends[last] {
			if !used[i] {
				next = i
				break
			}
		}
		if next < 0 {
			return path
		}
		used[next] = true
		if segs[next].a == last {
			path = append(path, segs[next].b)
		} else {
			path = append(path, segs[next].a)
		}
		if path[len(path)-1] == path[0] {
			return path
		}
	}
}

func reverse(path []point) []point {
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
