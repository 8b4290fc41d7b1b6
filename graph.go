// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package graphkit

import (
	"fmt"
	"image/color"
	"math"
	"sync/atomic"
)

// Tick is one labelled reference position along an axis. Pos lies on the
// axis line, Mark is the tick mark drawn across it and LabelAt is where the
// label is anchored.
type Tick struct {
	Value   float64
	Label   string
	Pos     Point
	Mark    [2]Point
	LabelAt Point
}

// Layout is the immutable result of one reload: everything a renderer needs
// to draw the graph. Screen-space values are relative to the bounds passed to
// SetBounds.
type Layout struct {
	Series    []Series
	X, Y      AxisRange
	Rect      Rect
	Transform Transform

	// Points holds the screen-space points of each series and Paths the line
	// geometry through them. Paths is nil for bar series.
	Points [][]Point
	Paths  []Path

	// Bars holds the screen-space bar rectangles of each bar series.
	Bars [][]Rect

	XTicks, YTicks []Tick
	Layers         []Layer

	// axisAt is the screen position of each axis line: the Y coordinate of
	// the X axis and the X coordinate of the Y axis.
	axisAt [2]float64
	opts   Options
	colors []color.Color
}

// Curved reports whether the path of series is smoothed.
func (l *Layout) Curved(series int) bool {
	return series >= 0 && series < len(l.Series) && l.Series[series].Curved
}

// Color returns the delegate's colour for series, or nil.
func (l *Layout) Color(series int) color.Color {
	if series < 0 || series >= len(l.colors) {
		return nil
	}
	return l.colors[series]
}

// Ticks returns the ticks of axis.
func (l *Layout) Ticks(axis Axis) []Tick {
	if axis == AxisY {
		return l.YTicks
	}
	return l.XTicks
}

// AxisLine returns the end points of an axis line. The X axis is drawn at
// y=0 and the Y axis at x=0 when zero is in range, otherwise along the
// lower edge of the range. ok is false when the axis is hidden.
func (l *Layout) AxisLine(axis Axis) (from, to Point, ok bool) {
	at := l.axisAt[axis]
	if axis == AxisX {
		from, to = Pt(l.Rect.Left(), at), Pt(l.Rect.Right(), at)
	} else {
		from, to = Pt(at, l.Rect.Bottom()), Pt(at, l.Rect.Top())
	}
	return from, to, l.opts.displayAxis(axis)
}

// Graph lays out the series of a data source inside a rectangle. Reload and
// SetBounds must not be called concurrently; Layout may be called from any
// goroutine.
type Graph struct {
	source   DataSource
	delegate any
	opts     Options
	bounds   Rect

	store  Store
	layout atomic.Pointer[Layout]
}

// New returns a graph over source. delegate may be nil or implement any of
// SeriesColorer, TickLabeler, SeriesWidther, SeriesAnimator and SeriesCurver.
// Nothing is laid out until Reload is called.
func New(source DataSource, delegate any, opts Options) *Graph {
	return &Graph{source: source, delegate: delegate, opts: opts}
}

// SetDataSource replaces the data source used by the next reload.
func (g *Graph) SetDataSource(source DataSource) {
	g.source = source
}

// SetDelegate replaces the delegate used by the next reload.
func (g *Graph) SetDelegate(delegate any) {
	g.delegate = delegate
}

// SetOptions replaces the options used by the next reload.
func (g *Graph) SetOptions(opts Options) {
	g.opts = opts
}

// Options returns the options used by the next reload.
func (g *Graph) Options() Options {
	return g.opts
}

// Bounds returns the host bounds.
func (g *Graph) Bounds() Rect {
	return g.bounds
}

// SetBounds sets the host bounds. If data has been loaded the previous
// layout's ranges, tick labels and series are placed in the new bounds; the
// data source and delegate are not queried and options set since the last
// reload are not applied.
func (g *Graph) SetBounds(bounds Rect) error {
	g.bounds = bounds
	prev := g.layout.Load()
	if prev == nil {
		return nil
	}
	l, err := prev.place(bounds)
	if err != nil {
		Logger().Warn("graphkit: relayout failed", "err", err)
		return err
	}
	g.layout.Store(l)
	return nil
}

// Reload queries the data source and delegate and replaces the layout. On
// error the previous layout is kept.
func (g *Graph) Reload() error {
	if err := g.opts.Validate(); err != nil {
		return fmt.Errorf("reload: %w", err)
	}
	if g.source == nil {
		return fmt.Errorf("reload: %w", newDataSourceError(-1, -1, "no data source"))
	}
	src := capsOf(g.source)
	snap, err := src.load()
	if err != nil {
		Logger().Warn("graphkit: reload rejected", "err", err)
		return fmt.Errorf("reload: %w", err)
	}
	resolved, err := g.resolve(snap, src, delegateCapsOf(g.delegate))
	if err != nil {
		Logger().Warn("graphkit: reload rejected", "err", err)
		return fmt.Errorf("reload: %w", err)
	}
	l, err := resolved.place(g.bounds)
	if err != nil {
		Logger().Warn("graphkit: reload rejected", "err", err)
		return fmt.Errorf("reload: %w", err)
	}
	g.store.current.Store(snap)
	g.layout.Store(l)
	Logger().Debug("graphkit: reloaded",
		"series", snap.NumberOfSeries(),
		"x", [2]float64{l.X.Min, l.X.Max},
		"y", [2]float64{l.Y.Min, l.Y.Max},
		"rect", l.Rect)
	return nil
}

// Layout returns the current layout, or nil before the first successful
// reload.
func (g *Graph) Layout() *Layout {
	return g.layout.Load()
}

// NumberOfSeries returns the number of series loaded by the last reload.
func (g *Graph) NumberOfSeries() int {
	return g.store.Snapshot().NumberOfSeries()
}

// NumberOfPoints returns the number of points of series loaded by the last
// reload.
func (g *Graph) NumberOfPoints(series int) int {
	return g.store.Snapshot().NumberOfPoints(series)
}

// ConvertPointToScreenSpace converts a value-space point using the current
// layout.
func (g *Graph) ConvertPointToScreenSpace(p Point) (Point, error) {
	l := g.layout.Load()
	if l == nil {
		return Point{}, ErrNotLoaded
	}
	return l.Transform.ToScreen(p), nil
}

// ConvertPointToValueSpace converts a screen-space point using the current
// layout.
func (g *Graph) ConvertPointToValueSpace(p Point) (Point, error) {
	l := g.layout.Load()
	if l == nil {
		return Point{}, ErrNotLoaded
	}
	return l.Transform.ToValue(p), nil
}

// resolve computes the bounds-independent part of a layout: axis ranges,
// tick labels, decorated series and colours. It is the only step that calls
// the data source's tick hints and the delegate.
func (g *Graph) resolve(snap *Snapshot, src sourceCaps, dlg delegateCaps) (*Layout, error) {
	l := &Layout{opts: g.opts}
	for _, axis := range [...]Axis{AxisX, AxisY} {
		lo, hi, _ := snap.Extent(axis)
		r, err := ComputeRange(lo, hi, src.axisOptions(axis, l.opts.axisOptions(axis)))
		if err != nil {
			return nil, fmt.Errorf("%v axis: %w", axis, err)
		}
		ticks := make([]Tick, len(r.Ticks))
		for i, v := range r.Ticks {
			ticks[i] = Tick{Value: v, Label: dlg.label(v, axis, r.Precision)}
		}
		if axis == AxisX {
			l.X, l.XTicks = r, ticks
		} else {
			l.Y, l.YTicks = r, ticks
		}
	}

	n := snap.NumberOfSeries()
	l.Series = make([]Series, n)
	l.colors = make([]color.Color, n)
	for i, s := range snap.Series() {
		l.Series[i] = dlg.decorate(s)
		l.colors[i] = dlg.color(i)
	}
	return l, nil
}

// place returns a copy of l with its geometry laid out inside bounds.
func (l *Layout) place(bounds Rect) (*Layout, error) {
	p := &Layout{
		Series: l.Series,
		X:      l.X,
		Y:      l.Y,
		opts:   l.opts,
		colors: l.colors,
	}

	var err error
	p.Rect = DrawingRect(bounds, p.opts.XPadding, p.opts.YPadding)
	p.Transform, err = NewTransform(p.X, p.Y, p.Rect)
	if err != nil {
		return nil, err
	}

	origin := p.Transform.ToScreen(Pt(
		clamp(0, p.X.Min, p.X.Max),
		clamp(0, p.Y.Min, p.Y.Max),
	))
	p.axisAt = [2]float64{origin.Y, origin.X}

	n := len(p.Series)
	p.Points = make([][]Point, n)
	p.Paths = make([]Path, n)
	p.Bars = make([][]Rect, n)
	for i, s := range p.Series {
		p.Points[i] = p.Transform.ToScreenAll(s.Points)
		switch {
		case s.Type == GraphTypeBar:
			p.Bars[i] = p.bars(s, p.Points[i])
		case s.Curved:
			p.Paths[i] = Smooth(p.Points[i], p.opts.Granularity)
		default:
			p.Paths[i] = Polyline(p.Points[i])
		}
	}

	p.XTicks = p.placeTicks(AxisX, l.XTicks)
	p.YTicks = p.placeTicks(AxisY, l.YTicks)
	p.Layers = layerList(p.opts, p.Series)
	return p, nil
}

// placeTicks positions labelled ticks along axis.
func (l *Layout) placeTicks(axis Axis, labelled []Tick) []Tick {
	ticks := make([]Tick, len(labelled))
	for i, t := range labelled {
		if axis == AxisX {
			x := l.Transform.ToScreen(Pt(t.Value, 0)).X
			t.Pos = Pt(x, l.axisAt[AxisX])
			t.Mark = [2]Point{t.Pos, t.Pos.Add(Pt(0, AxisDataPointSize))}
			t.LabelAt = t.Pos.Add(Pt(0, AxisDataPointSize+AxisDataPointPadding))
		} else {
			y := l.Transform.ToScreen(Pt(0, t.Value)).Y
			t.Pos = Pt(l.axisAt[AxisY], y)
			t.Mark = [2]Point{t.Pos, t.Pos.Sub(Pt(AxisDataPointSize, 0))}
			t.LabelAt = t.Pos.Sub(Pt(AxisDataPointSize+AxisDataPointPadding, 0))
		}
		ticks[i] = t
	}
	return ticks
}

// bars returns one rectangle per point, centred on the point along the
// ordered axis and extending from the baseline to the point along the other
// axis.
func (l *Layout) bars(s Series, pts []Point) []Rect {
	width := floatIf(s.Width > 0, s.Width, l.opts.BarWidth)
	rects := make([]Rect, len(pts))
	for i, p := range pts {
		if l.opts.OrderedAxis == AxisX {
			base := l.axisAt[AxisX]
			rects[i] = Rect{
				X: p.X - width/2,
				Y: math.Min(p.Y, base),
				W: width,
				H: math.Abs(base - p.Y),
			}
		} else {
			base := l.axisAt[AxisY]
			rects[i] = Rect{
				X: math.Min(p.X, base),
				Y: p.Y - width/2,
				W: math.Abs(p.X - base),
				H: width,
			}
		}
	}
	return rects
}
