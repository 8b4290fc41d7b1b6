// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package graphkit

import (
	"math"
	"sync/atomic"
)

// DataSource supplies the value-space points of a graph.
type DataSource interface {
	PointCount(series int) int
	PointAt(idx SeriesIndex) Point
}

// SeriesCounter is implemented by data sources with more than one series.
// Sources without it have exactly one series.
type SeriesCounter interface {
	SeriesCount() int
}

// AxisTickIntervaler is implemented by data sources that place axis ticks
// at a fixed interval. It takes precedence over AxisTickCounter.
type AxisTickIntervaler interface {
	AxisTickInterval(axis Axis) float64
}

// AxisTickCounter is implemented by data sources that want a fixed number of
// evenly spaced ticks on an axis.
type AxisTickCounter interface {
	AxisTickCount(axis Axis) int
}

// SeriesTyper is implemented by data sources that mix line and bar series.
// Sources without it only have line series.
type SeriesTyper interface {
	SeriesType(series int) GraphType
}

// sourceCaps records which optional interfaces a data source implements. It
// is resolved once per load.
type sourceCaps struct {
	src      DataSource
	counter  SeriesCounter
	interval AxisTickIntervaler
	ticks    AxisTickCounter
	typer    SeriesTyper
}

func capsOf(src DataSource) sourceCaps {
	c := sourceCaps{src: src}
	c.counter, _ = src.(SeriesCounter)
	c.interval, _ = src.(AxisTickIntervaler)
	c.ticks, _ = src.(AxisTickCounter)
	c.typer, _ = src.(SeriesTyper)
	return c
}

// axisOptions fills the tick hints of opts from the data source.
func (c sourceCaps) axisOptions(axis Axis, opts AxisOptions) AxisOptions {
	if c.interval != nil {
		opts.Interval = c.interval.AxisTickInterval(axis)
	}
	if c.ticks != nil {
		opts.Count = c.ticks.AxisTickCount(axis)
	}
	return opts
}

// Snapshot is the immutable result of loading a data source.
type Snapshot struct {
	series []Series
}

// Load reads every point of src into a new snapshot.
func Load(src DataSource) (*Snapshot, error) {
	if src == nil {
		return nil, newDataSourceError(-1, -1, "no data source")
	}
	return capsOf(src).load()
}

func (c sourceCaps) load() (*Snapshot, error) {
	n := 1
	if c.counter != nil {
		n = c.counter.SeriesCount()
	}
	if n < 0 {
		return nil, newDataSourceError(-1, -1, "negative series count %d", n)
	}

	counts := make([]int, n)
	for s := range counts {
		counts[s] = c.src.PointCount(s)
		if counts[s] < 0 {
			return nil, newDataSourceError(s, -1, "negative point count %d", counts[s])
		}
	}

	series := make([]Series, n)
	for s := range series {
		typ := GraphTypeLine
		if c.typer != nil {
			typ = c.typer.SeriesType(s)
		}
		if !typ.Implemented() {
			err := newDataSourceError(s, -1, "unsupported graph type %v", typ)
			if typ == GraphTypeStacked {
				err.Err = ErrStackedUnsupported
			}
			return nil, err
		}

		pts := make([]Point, counts[s])
		for i := range pts {
			p, err := c.pointAt(counts, IndexFor(i, s))
			if err != nil {
				return nil, err
			}
			pts[i] = p
		}
		series[s] = Series{Index: s, Type: typ, Points: pts}
	}
	return &Snapshot{series: series}, nil
}

// pointAt reads one point, refusing indices outside the declared counts.
func (c sourceCaps) pointAt(counts []int, idx SeriesIndex) (Point, error) {
	if idx.Series < 0 || idx.Series >= len(counts) ||
		idx.Point < 0 || idx.Point >= counts[idx.Series] {
		return Point{}, newDataSourceError(idx.Series, idx.Point, "index out of bounds")
	}
	p := c.src.PointAt(idx)
	if !p.finite() {
		return Point{}, newDataSourceError(idx.Series, idx.Point, "non-finite value (%g, %g)", p.X, p.Y)
	}
	return p, nil
}

// NumberOfSeries returns the number of series in the snapshot.
func (s *Snapshot) NumberOfSeries() int {
	if s == nil {
		return 0
	}
	return len(s.series)
}

// NumberOfPoints returns the number of points in series, or 0 if there is no
// such series.
func (s *Snapshot) NumberOfPoints(series int) int {
	if s == nil || series < 0 || series >= len(s.series) {
		return 0
	}
	return len(s.series[series].Points)
}

// Series returns the loaded series. The slice must not be modified.
func (s *Snapshot) Series() []Series {
	if s == nil {
		return nil
	}
	return s.series
}

// Point returns the value-space point at idx.
func (s *Snapshot) Point(idx SeriesIndex) (Point, error) {
	if idx.Series < 0 || idx.Series >= s.NumberOfSeries() ||
		idx.Point < 0 || idx.Point >= s.NumberOfPoints(idx.Series) {
		return Point{}, newDataSourceError(idx.Series, idx.Point, "index out of bounds")
	}
	return s.series[idx.Series].Points[idx.Point], nil
}

// Extent returns the smallest and largest coordinate along axis over every
// point of every series. ok is false when the snapshot has no points.
func (s *Snapshot) Extent(axis Axis) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, series := range s.Series() {
		for _, p := range series.Points {
			v := p.Coord(axis)
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
			ok = true
		}
	}
	if !ok {
		return 0, 0, false
	}
	return lo, hi, true
}

// Store holds the most recently loaded snapshot. A failed reload leaves the
// previous snapshot in place.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// Reload loads src and, on success, replaces the current snapshot.
func (st *Store) Reload(src DataSource) (*Snapshot, error) {
	snap, err := Load(src)
	if err != nil {
		return nil, err
	}
	st.current.Store(snap)
	return snap, nil
}

// Snapshot returns the current snapshot, or nil before the first successful
// reload.
func (st *Store) Snapshot() *Snapshot {
	return st.current.Load()
}
