// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package graphkit

// Polyline returns the straight path through pts.
func Polyline(pts []Point) Path {
	if len(pts) == 0 {
		return nil
	}
	path := make(Path, 0, len(pts))
	path = append(path, MoveTo(pts[0]))
	for _, p := range pts[1:] {
		path = append(path, LineTo(p))
	}
	return path
}

// Smooth returns a Catmull-Rom spline through pts expressed as cubic Bézier
// segments. Every input point is an anchor of the result, in order.
//
// The tangent at each point is the delta between its two neighbours; the
// first and last points use the delta to their single neighbour instead.
// Control points sit granularity/6 of that delta away from the anchor, so a
// granularity of 1 gives the uniform Catmull-Rom curve and 0 gives the
// polyline. Negative granularity is treated as 0.
//
// Fewer than three points cannot be smoothed and yield Polyline(pts).
func Smooth(pts []Point, granularity float64) Path {
	if len(pts) < 3 {
		return Polyline(pts)
	}
	k := max(granularity, 0) / 6

	last := len(pts) - 1
	tangent := func(i int) Point {
		switch i {
		case 0:
			return pts[1].Sub(pts[0])
		case last:
			return pts[last].Sub(pts[last-1])
		}
		return pts[i+1].Sub(pts[i-1])
	}

	path := make(Path, 0, len(pts))
	path = append(path, MoveTo(pts[0]))
	for i := 0; i < last; i++ {
		c0 := pts[i].Add(tangent(i).Mul(k))
		c1 := pts[i+1].Sub(tangent(i + 1).Mul(k))
		path = append(path, CubicTo(c0, c1, pts[i+1]))
	}
	return path
}
