// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package graphkit_test

import (
	"image/color"
	"time"

	graphkit "github.com/kofi-q/graphkit-go"
)

// testDataSource implements every optional data source capability through
// closures; a nil closure falls back to the default behaviour.
type testDataSource struct {
	numberOfSeries         func() int
	numberOfPointsInSeries func(series int) int
	pointForIndex          func(idx graphkit.SeriesIndex) graphkit.Point
	typeForSeries          func(series int) graphkit.GraphType
	tickInterval           func(axis graphkit.Axis) float64
	tickCount              func(axis graphkit.Axis) int
}

func (ds *testDataSource) SeriesCount() int {
	if ds.numberOfSeries == nil {
		return 1
	}
	return ds.numberOfSeries()
}

func (ds *testDataSource) PointCount(series int) int {
	return ds.numberOfPointsInSeries(series)
}

func (ds *testDataSource) PointAt(idx graphkit.SeriesIndex) graphkit.Point {
	return ds.pointForIndex(idx)
}

func (ds *testDataSource) SeriesType(series int) graphkit.GraphType {
	if ds.typeForSeries == nil {
		return graphkit.GraphTypeLine
	}
	return ds.typeForSeries(series)
}

func (ds *testDataSource) AxisTickInterval(axis graphkit.Axis) float64 {
	if ds.tickInterval == nil {
		return 0
	}
	return ds.tickInterval(axis)
}

func (ds *testDataSource) AxisTickCount(axis graphkit.Axis) int {
	if ds.tickCount == nil {
		return 0
	}
	return ds.tickCount(axis)
}

// pointsSource serves fixed series and implements only the required
// interface plus SeriesCounter.
type pointsSource [][]graphkit.Point

func (ps pointsSource) SeriesCount() int          { return len(ps) }
func (ps pointsSource) PointCount(series int) int { return len(ps[series]) }
func (ps pointsSource) PointAt(idx graphkit.SeriesIndex) graphkit.Point {
	return ps[idx.Series][idx.Point]
}

// singleSource has no SeriesCounter and so exactly one series.
type singleSource []graphkit.Point

func (s singleSource) PointCount(int) int                               { return len(s) }
func (s singleSource) PointAt(idx graphkit.SeriesIndex) graphkit.Point { return s[idx.Point] }

type testDelegate struct {
	curve    map[int]bool
	width    map[int]float64
	duration map[int]time.Duration
	labels   func(v float64, axis graphkit.Axis) string
}

func (d *testDelegate) SeriesColor(series int) color.Color {
	return color.NRGBA{R: uint8(series), A: 0xff}
}

func (d *testDelegate) TickLabel(v float64, axis graphkit.Axis) string {
	return d.labels(v, axis)
}

func (d *testDelegate) SeriesWidth(series int) float64 {
	return d.width[series]
}

func (d *testDelegate) SeriesAnimationDuration(series int) time.Duration {
	return d.duration[series]
}

func (d *testDelegate) CurveSeries(series int) bool {
	return d.curve[series]
}
