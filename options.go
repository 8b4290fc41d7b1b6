// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package graphkit

import (
	"fmt"
	"math"
)

// Options configures how a Graph scales its axes and where it draws.
type Options struct {
	// Set the lowest value on the axis based on the lowest data point. When
	// false the axis always includes zero.
	ScaleXAxisToValues bool
	ScaleYAxisToValues bool

	// Round up & down the highest and lowest points on an axis to a pretty
	// number.
	RoundXAxis bool
	RoundYAxis bool

	// Show lines at x=0 and y=0.
	DisplayXAxis bool
	DisplayYAxis bool

	// It may be useful to not display a zero label on the axis (eg. a graph
	// with bisecting axes).
	DisplayZeroAxisLabel bool

	// Padding between the outer bounds of the view and the outer edge of the
	// axis.
	XPadding float64
	YPadding float64

	// OrderedAxis is the axis bars are spread along; they grow along the
	// other one.
	OrderedAxis Axis

	Granularity float64
	BarWidth    float64
}

// DefaultOptions returns the options a Graph starts with.
func DefaultOptions() Options {
	return Options{
		ScaleXAxisToValues:   true,
		ScaleYAxisToValues:   true,
		RoundXAxis:           true,
		RoundYAxis:           true,
		DisplayXAxis:         true,
		DisplayYAxis:         true,
		DisplayZeroAxisLabel: true,
		XPadding:             DefaultPadding,
		YPadding:             DefaultPadding,
		OrderedAxis:          AxisX,
		Granularity:          DefaultGranularity,
		BarWidth:             DefaultBarWidth,
	}
}

// Validate reports the first option that cannot be used.
func (o Options) Validate() error {
	for _, f := range [...]struct {
		name string
		v    float64
	}{
		{"x padding", o.XPadding},
		{"y padding", o.YPadding},
		{"granularity", o.Granularity},
		{"bar width", o.BarWidth},
	} {
		if f.v < 0 || math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("invalid %s %v", f.name, f.v)
		}
	}
	if o.OrderedAxis != AxisX && o.OrderedAxis != AxisY {
		return fmt.Errorf("invalid ordered axis %v", o.OrderedAxis)
	}
	return nil
}

// axisOptions returns the scaling options for one axis. Tick hints are left
// for the data source to fill.
func (o Options) axisOptions(axis Axis) AxisOptions {
	if axis == AxisY {
		return AxisOptions{
			ScaleToValues: o.ScaleYAxisToValues,
			Round:         o.RoundYAxis,
			DisplayZero:   o.DisplayZeroAxisLabel,
		}
	}
	return AxisOptions{
		ScaleToValues: o.ScaleXAxisToValues,
		Round:         o.RoundXAxis,
		DisplayZero:   o.DisplayZeroAxisLabel,
	}
}

func (o Options) displayAxis(axis Axis) bool {
	if axis == AxisY {
		return o.DisplayYAxis
	}
	return o.DisplayXAxis
}
