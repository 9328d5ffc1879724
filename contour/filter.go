// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contour

import (
	"math"
)

// Contains reports whether the point (x, y) is inside the polygon
// under the even-odd rule, treating the path as closed even if it was
// traced open. Points exactly on the boundary count as inside, so
// filtering against a contour never leaves boundary points behind.
func (p *Polygon) Contains(x, y float64) bool {
	n := len(p.X)
	if n < 3 {
		return false
	}
	inside := false
	j := n - 1
	for i := range n {
		xi, yi := p.X[i], p.Y[i]
		xj, yj := p.X[j], p.Y[j]
		if onSegment(x, y, xi, yi, xj, yj) {
			return true
		}
		if (yi > y) != (yj > y) && x < xi+(y-yi)*(xj-xi)/(yj-yi) {
			inside = !inside
		}
		j = i
	}
	return inside
}

// onSegment reports whether (px, py) lies on the segment from
// (x1, y1) to (x2, y2), within a small tolerance scaled to the
// segment size.
func onSegment(px, py, x1, y1, x2, y2 float64) bool {
	eps := 1e-12 * (math.Abs(x2-x1) + math.Abs(y2-y1) + 1)
	cross := (x2-x1)*(py-y1) - (y2-y1)*(px-x1)
	if math.Abs(cross) > eps {
		return false
	}
	return px >= min(x1, x2)-eps && px <= max(x1, x2)+eps &&
		py >= min(y1, y2)-eps && py <= max(y1, y2)+eps
}

// FilterOutside returns the points from (xs, ys) that fall outside
// every polygon in polys. It is used to scatter only the samples
// beyond the outermost contour. The inputs are not modified; with no
// polygons, copies of the full inputs are returned.
func FilterOutside(xs, ys []float64, polys []Polygon) (fx, fy []float64, err error) {
	if len(xs) != len(ys) {
		return nil, nil, ErrDims
	}
	fx = make([]float64, 0, len(xs))
	fy = make([]float64, 0, len(ys))
	for i, x := range xs {
		y := ys[i]
		outside := true
		for pi := range polys {
			if polys[pi].Contains(x, y) {
				outside = false
				break
			}
		}
		if outside {
			fx = append(fx, x)
			fy = append(fy, y)
		}
	}
	return fx, fy, nil
}
