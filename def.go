// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package graphkit

import (
	"fmt"
	"math"
	"time"
)

const (
	// XAxisLayerKey names the layer holding the X axis line, tick marks and
	// labels.
	XAxisLayerKey = "xAxis"

	// YAxisLayerKey names the layer holding the Y axis line, tick marks and
	// labels.
	YAxisLayerKey = "yAxis"
)

const (
	// AxisDataPointSize is the length, in screen units, of a tick mark drawn
	// across an axis line.
	AxisDataPointSize = 5.0

	// AxisDataPointPadding is the gap between the end of a tick mark and its
	// label.
	AxisDataPointPadding = 3.0

	// DefaultPadding is the inset between the host bounds and the drawing
	// rectangle on each side.
	DefaultPadding = 10.0

	// DefaultGranularity gives uniform Catmull-Rom smoothing.
	DefaultGranularity = 1.0

	// DefaultBarWidth is the screen width of a bar when the delegate does not
	// supply one.
	DefaultBarWidth = 10.0
)

// Axis identifies one of the two chart axes.
type Axis int

const (
	// AxisX is the horizontal axis.
	AxisX Axis = iota
	// AxisY is the vertical axis.
	AxisY
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// Other returns the perpendicular axis.
func (a Axis) Other() Axis {
	if a == AxisX {
		return AxisY
	}
	return AxisX
}

// GraphType classifies how a series is drawn.
type GraphType int

const (
	// GraphTypeLine draws the series as a connected line.
	GraphTypeLine GraphType = iota
	// GraphTypeBar draws one bar per point.
	GraphTypeBar
	// GraphTypeStacked is reserved. Stacked composition is not implemented
	// and series of this type are rejected when loaded.
	GraphTypeStacked
)

func (t GraphType) String() string {
	switch t {
	case GraphTypeLine:
		return "line"
	case GraphTypeBar:
		return "bar"
	case GraphTypeStacked:
		return "stacked"
	}
	return fmt.Sprintf("GraphType(%d)", int(t))
}

// Implemented reports whether series of this type can be laid out.
func (t GraphType) Implemented() bool {
	return t == GraphTypeLine || t == GraphTypeBar
}

// Point fields X and Y specify the horizontal and vertical coordinates of a
// point, either in value space or in screen space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// XY returns the X and Y components of the receiver point.
func (p Point) XY() (float64, float64) {
	return p.X, p.Y
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Mul(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Coord returns the component of p along axis a.
func (p Point) Coord(a Axis) float64 {
	if a == AxisY {
		return p.Y
	}
	return p.X
}

func (p Point) finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// SeriesIndex addresses one point within one series. It is only meaningful
// for the reload cycle in which it was produced.
type SeriesIndex struct {
	Series int
	Point  int
}

// IndexFor returns the SeriesIndex of point within series.
func IndexFor(point, series int) SeriesIndex {
	return SeriesIndex{Series: series, Point: point}
}

func (idx SeriesIndex) String() string {
	return fmt.Sprintf("[%d,%d]", idx.Series, idx.Point)
}

// Series is one ordered collection of value-space points together with its
// display style. A zero Width or AnimationDuration means no override.
type Series struct {
	Index             int
	Type              GraphType
	Points            []Point
	Width             float64
	AnimationDuration time.Duration
	Curved            bool
}

// Bounds returns the smallest and largest coordinates of the series along
// each axis. ok is false for an empty series.
func (s Series) Bounds() (minPt, maxPt Point, ok bool) {
	if len(s.Points) == 0 {
		return
	}
	minPt, maxPt = s.Points[0], s.Points[0]
	for _, p := range s.Points[1:] {
		minPt.X = math.Min(minPt.X, p.X)
		minPt.Y = math.Min(minPt.Y, p.Y)
		maxPt.X = math.Max(maxPt.X, p.X)
		maxPt.Y = math.Max(maxPt.Y, p.Y)
	}
	return minPt, maxPt, true
}

// AxisRange is the display interval and tick layout for one axis.
// Precision is the number of decimal places needed to tell neighbouring ticks
// apart.
type AxisRange struct {
	Min, Max     float64
	TickInterval float64
	TickCount    int
	Ticks        []float64
	Precision    int
}

// Span returns Max - Min.
func (r AxisRange) Span() float64 {
	return r.Max - r.Min
}

// Contains reports whether v lies within [Min, Max].
func (r AxisRange) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Rect is an axis-aligned rectangle in screen space. X and Y locate the
// top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return !(r.W > 0) || !(r.H > 0)
}

// Inset shrinks the rectangle by dx on the left and right and by dy on the
// top and bottom.
func (r Rect) Inset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W - 2*dx, H: r.H - 2*dy}
}

// DrawingRect returns the rectangle that value space is projected into for
// a host view with the given bounds and padding.
func DrawingRect(bounds Rect, xPadding, yPadding float64) Rect {
	return bounds.Inset(xPadding, yPadding)
}
