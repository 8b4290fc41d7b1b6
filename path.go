// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
 * Copyright (c) 2014 Kurt Jung (Gmail: kurt.w.jung)
 *
 * Permission to use, copy, modify, and distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package graphkit

import (
	"strconv"
	"strings"
)

// Segment describes a single curve or position segment of a path. Cmd is an
// absolute SVG path command (see http://www.w3.org/TR/SVG/paths.html): 'M'
// (moveto: x, y), 'L' (lineto: x, y), 'C' (cubic Bézier curve: cx0, cy0,
// cx1, cy1, x1, y1) or 'Z' (closepath).
type Segment struct {
	Cmd byte
	Arg [6]float64
}

// MoveTo returns a segment that starts a new subpath at p.
func MoveTo(p Point) Segment {
	return Segment{Cmd: 'M', Arg: [6]float64{p.X, p.Y}}
}

// LineTo returns a straight segment ending at p.
func LineTo(p Point) Segment {
	return Segment{Cmd: 'L', Arg: [6]float64{p.X, p.Y}}
}

// CubicTo returns a cubic Bézier segment with control points c0 and c1
// ending at p.
func CubicTo(c0, c1, p Point) Segment {
	return Segment{Cmd: 'C', Arg: [6]float64{c0.X, c0.Y, c1.X, c1.Y, p.X, p.Y}}
}

// Anchor returns the on-curve end point of the segment. ok is false for
// segments without one, such as 'Z'.
func (s Segment) Anchor() (p Point, ok bool) {
	switch s.Cmd {
	case 'M', 'L':
		return Point{s.Arg[0], s.Arg[1]}, true
	case 'C':
		return Point{s.Arg[4], s.Arg[5]}, true
	}
	return Point{}, false
}

// Controls returns the two control points of a 'C' segment.
func (s Segment) Controls() (c0, c1 Point, ok bool) {
	if s.Cmd != 'C' {
		return
	}
	return Point{s.Arg[0], s.Arg[1]}, Point{s.Arg[2], s.Arg[3]}, true
}

func (s Segment) argCount() int {
	switch s.Cmd {
	case 'M', 'L':
		return 2
	case 'C':
		return 6
	}
	return 0
}

// Path is an ordered sequence of absolute segments.
type Path []Segment

// Anchors returns the on-curve points of the path in order.
func (p Path) Anchors() []Point {
	pts := make([]Point, 0, len(p))
	for _, s := range p {
		if a, ok := s.Anchor(); ok {
			pts = append(pts, a)
		}
	}
	return pts
}

// String formats the path as SVG path data.
func (p Path) String() string {
	var sb strings.Builder
	for j, s := range p {
		if j > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(s.Cmd)
		for i := 0; i < s.argCount(); i++ {
			if i == 0 {
				sb.WriteByte(' ')
			} else if i%2 == 0 {
				sb.WriteByte(' ')
			} else {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.FormatFloat(s.Arg[i], 'g', -1, 64))
		}
	}
	return sb.String()
}
