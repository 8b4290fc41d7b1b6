// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package graphkit

import (
	"fmt"
	"math"
)

// Matrix is a 2D affine transformation. A point (x, y) maps to
// (A*x + C*y + E, B*x + D*y + F).
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transformation.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Translate returns a transformation that moves points by (tx, ty).
func Translate(tx, ty float64) Matrix {
	return Matrix{A: 1, D: 1, E: tx, F: ty}
}

// Scale returns a transformation that scales about the origin.
func Scale(sx, sy float64) Matrix {
	return Matrix{A: sx, D: sy}
}

// Apply transforms p.
func (m Matrix) Apply(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// Multiply returns the transformation that applies m and then n.
func (m Matrix) Multiply(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.B*n.C,
		B: m.A*n.B + m.B*n.D,
		C: m.C*n.A + m.D*n.C,
		D: m.C*n.B + m.D*n.D,
		E: m.E*n.A + m.F*n.C + n.E,
		F: m.E*n.B + m.F*n.D + n.F,
	}
}

// Determinant returns A*D - B*C.
func (m Matrix) Determinant() float64 {
	return m.A*m.D - m.B*m.C
}

// Invert returns the inverse transformation.
func (m Matrix) Invert() (Matrix, error) {
	det := m.Determinant()
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Matrix{}, ErrSingularMatrix
	}
	return Matrix{
		A: m.D / det,
		B: -m.B / det,
		C: -m.C / det,
		D: m.A / det,
		E: (m.C*m.F - m.D*m.E) / det,
		F: (m.B*m.E - m.A*m.F) / det,
	}, nil
}

// Transform maps between value space and the screen space of a drawing
// rectangle. Value-space Y grows upwards while screen-space Y grows
// downwards. The zero value is not usable; build one with NewTransform.
type Transform struct {
	X, Y AxisRange
	Rect Rect

	toScreen Matrix
	toValue  Matrix
}

// NewTransform builds the transform that projects [x.Min, x.Max] onto the
// rectangle's width and [y.Min, y.Max] onto its height.
func NewTransform(x, y AxisRange, rect Rect) (Transform, error) {
	for _, c := range [...]struct {
		what   string
		extent float64
	}{
		{"x axis", x.Span()},
		{"y axis", y.Span()},
		{"drawing rect width", rect.W},
		{"drawing rect height", rect.H},
	} {
		if !(c.extent > 0) || math.IsInf(c.extent, 0) {
			return Transform{}, &DegenerateRangeError{What: c.what, Extent: c.extent}
		}
	}

	sx := rect.W / x.Span()
	sy := rect.H / y.Span()
	m := Translate(-x.Min, -y.Min).
		Multiply(Scale(sx, -sy)).
		Multiply(Translate(rect.Left(), rect.Bottom()))
	inv, err := m.Invert()
	if err != nil {
		return Transform{}, fmt.Errorf("value to screen transform: %w", err)
	}
	return Transform{X: x, Y: y, Rect: rect, toScreen: m, toValue: inv}, nil
}

// ToScreen converts a value-space point to screen space.
func (t Transform) ToScreen(p Point) Point {
	return t.toScreen.Apply(p)
}

// ToValue converts a screen-space point to value space.
func (t Transform) ToValue(p Point) Point {
	return t.toValue.Apply(p)
}

// ToScreenAll converts every point of a value-space series.
func (t Transform) ToScreenAll(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = t.toScreen.Apply(p)
	}
	return out
}

// Matrix returns the value to screen transformation.
func (t Transform) Matrix() Matrix {
	return t.toScreen
}

// ToScreen converts p from value space to the screen space of rect.
func ToScreen(p Point, x, y AxisRange, rect Rect) (Point, error) {
	t, err := NewTransform(x, y, rect)
	if err != nil {
		return Point{}, err
	}
	return t.ToScreen(p), nil
}

// ToValue converts p from the screen space of rect to value space. It is the
// inverse of ToScreen.
func ToValue(p Point, x, y AxisRange, rect Rect) (Point, error) {
	t, err := NewTransform(x, y, rect)
	if err != nil {
		return Point{}, err
	}
	return t.ToValue(p), nil
}
