// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package graphkit

// Adapted from Nice Numbers for Graph Labels by Paul Heckbert from "Graphics
// Gems", Academic Press, 1990

// Paul Heckbert	2 Dec 88

// https://github.com/erich666/GraphicsGems

// LICENSE

// This code repository predates the concept of Open Source, and predates most
// licenses along such lines. As such, the official license truly is:

// EULA: The Graphics Gems code is copyright-protected. In other words, you
// cannot claim the text of the code as your own and resell it. Using the code
// is permitted in any program, product, or library, non-commercial or
// commercial. Giving credit is not required, though is a nice gesture. The
// code comes as-is, and if there are any flaws or problems with any Gems code,
// nobody involved with Gems - authors, editors, publishers, or webmasters -
// are to be held responsible. Basically, don't be a jerk, and remember that
// anything free comes with no guarantee.

import (
	"fmt"
	"math"
)

// Acceptable number of ticks on a rounded axis, inclusive.
const (
	MinTicks = 4
	MaxTicks = 8

	// DefaultTickCount is used when the axis is neither rounded nor given an
	// explicit interval or count.
	DefaultTickCount = 5

	// tickLimit bounds the number of ticks an explicit hint may produce.
	tickLimit = 10000

	// degenerateExpand is the fraction of a non-zero value added on each side
	// when every data point has the same coordinate.
	degenerateExpand = 0.1

	// minRelSpan is the smallest span, relative to the magnitude of its
	// ends, that is laid out as is. Narrower spans are widened like a
	// degenerate one.
	minRelSpan = 1e-12
)

var stepMultipliers = [...]float64{1, 2, 5, 10}

// TickmarkPrecision returns an appropriate precision value for label
// formatting.
func TickmarkPrecision(div float64) int {
	if !(div > 0) || math.IsInf(div, 0) {
		return 0
	}
	return int(math.Max(-math.Floor(math.Log10(div)), 0))
}

// AxisOptions controls how ComputeRange turns raw data extrema into an
// AxisRange. Interval and Count are explicit tick hints; zero means unset.
// When both are set, Interval wins.
type AxisOptions struct {
	ScaleToValues bool
	Round         bool
	DisplayZero   bool
	Interval      float64
	Count         int
}

// DefaultAxisOptions scales to the data, rounds to nice numbers and keeps
// the zero tick.
func DefaultAxisOptions() AxisOptions {
	return AxisOptions{
		ScaleToValues: true,
		Round:         true,
		DisplayZero:   true,
	}
}

// ComputeRange computes the display range and ticks for an axis whose data
// spans [rawMin, rawMax]. A rounded range always contains the raw range and
// never has zero extent.
func ComputeRange(rawMin, rawMax float64, opts AxisOptions) (AxisRange, error) {
	for _, v := range [...]float64{rawMin, rawMax, opts.Interval} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return AxisRange{}, fmt.Errorf("%w: non-finite value %v", ErrInvalidRange, v)
		}
	}
	if rawMin > rawMax {
		return AxisRange{}, fmt.Errorf("%w: min %g exceeds max %g", ErrInvalidRange, rawMin, rawMax)
	}
	if opts.Interval < 0 || opts.Count < 0 {
		return AxisRange{}, fmt.Errorf("%w: negative tick interval %g or count %d",
			ErrInvalidRange, opts.Interval, opts.Count)
	}
	if opts.Count > tickLimit {
		return AxisRange{}, fmt.Errorf("%w: tick count %d exceeds %d", ErrInvalidRange, opts.Count, tickLimit)
	}

	lo, hi := rawMin, rawMax
	if !opts.ScaleToValues {
		lo = math.Min(lo, 0)
		hi = math.Max(hi, 0)
	}
	if hi-lo <= minRelSpan*math.Max(math.Abs(lo), math.Abs(hi)) {
		mid := lo + (hi-lo)/2
		delta := math.Abs(mid) * degenerateExpand
		if delta == 0 {
			delta = 1
		}
		lo = math.Min(lo, mid-delta)
		hi = math.Max(hi, mid+delta)
	}

	r := AxisRange{Min: lo, Max: hi}
	var step float64
	if opts.Round {
		step = niceStep(lo, hi)
		r.Min, r.Max = roundOut(lo, hi, step)
	}

	switch {
	case opts.Interval > 0:
		if n := multiplesCount(r.Min, r.Max, opts.Interval); n > tickLimit {
			return AxisRange{}, fmt.Errorf("%w: tick interval %g gives %g ticks over [%g, %g], limit %d",
				ErrInvalidRange, opts.Interval, n, r.Min, r.Max, tickLimit)
		}
		r.TickInterval = opts.Interval
		r.Ticks = multiplesWithin(r.Min, r.Max, opts.Interval)
	case opts.Count > 0:
		r.Ticks, r.TickInterval = evenTicks(r.Min, r.Max, opts.Count)
	case step > 0:
		r.TickInterval = step
		r.Ticks = multiplesWithin(r.Min, r.Max, step)
	default:
		r.Ticks, r.TickInterval = evenTicks(r.Min, r.Max, DefaultTickCount)
	}
	r.Precision = TickmarkPrecision(r.TickInterval)

	if !opts.DisplayZero {
		r.Ticks = dropZero(r.Ticks)
	}
	r.TickCount = len(r.Ticks)
	return r, nil
}

// niceStep picks the smallest 1, 2 or 5 times a power of ten that gives the
// rounded range between MinTicks and MaxTicks ticks. The decade below the
// span's own order of magnitude is tried first so that narrow spans are not
// left with a single interval.
func niceStep(lo, hi float64) float64 {
	mag := math.Pow10(int(math.Floor(math.Log10(hi - lo))))

	var best float64
	bestMiss := math.MaxInt
	for _, scale := range [...]float64{mag / 10, mag} {
		for _, m := range stepMultipliers {
			step := m * scale
			n := tickCount(lo, hi, step)
			if n >= MinTicks && n <= MaxTicks {
				return step
			}
			miss := MinTicks - n
			if n > MaxTicks {
				miss = n - MaxTicks
			}
			if miss < bestMiss {
				best, bestMiss = step, miss
			}
		}
	}
	return best
}

func tickCount(lo, hi, step float64) int {
	return int(math.Ceil(hi/step)-math.Floor(lo/step)) + 1
}

// roundOut floors lo and ceils hi to multiples of step, correcting for
// floating point error so that the result never excludes the input.
func roundOut(lo, hi, step float64) (float64, float64) {
	min := math.Floor(lo/step) * step
	if min > lo {
		min -= step
	}
	max := math.Ceil(hi/step) * step
	if max < hi {
		max += step
	}
	return min, max
}

// multiplesBounds returns the first and last multiplier k with k*step in
// [min, max].
func multiplesBounds(min, max, step float64) (first, last float64) {
	eps := step * 1e-9
	return math.Ceil((min - eps) / step), math.Floor((max + eps) / step)
}

// multiplesCount returns how many multiples of step lie in [min, max].
func multiplesCount(min, max, step float64) float64 {
	first, last := multiplesBounds(min, max, step)
	return math.Max(last-first+1, 0)
}

// multiplesWithin returns every multiple of step in [min, max], clamped to
// the range. At most tickLimit+1 multiples are visited; multiples that round
// onto their predecessor are dropped.
func multiplesWithin(min, max, step float64) []float64 {
	eps := step * 1e-9
	first, _ := multiplesBounds(min, max, step)
	n := int(math.Min(multiplesCount(min, max, step), tickLimit+1))
	ticks := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		v := snapZero((first+float64(i))*step, eps)
		v = math.Max(min, math.Min(max, v))
		if k := len(ticks); k > 0 && v <= ticks[k-1] {
			continue
		}
		ticks = append(ticks, v)
	}
	return ticks
}

// evenTicks spreads count ticks over [min, max] including both ends.
func evenTicks(min, max float64, count int) ([]float64, float64) {
	if count == 1 {
		return []float64{min}, 0
	}
	interval := (max - min) / float64(count-1)
	ticks := make([]float64, count)
	for i := range ticks {
		ticks[i] = snapZero(min+float64(i)*interval, interval*1e-9)
	}
	ticks[count-1] = max
	return ticks, interval
}

func snapZero(v, eps float64) float64 {
	if math.Abs(v) <= eps {
		return 0
	}
	return v
}

func dropZero(ticks []float64) []float64 {
	out := ticks[:0:0]
	for _, t := range ticks {
		if t != 0 {
			out = append(out, t)
		}
	}
	return out
}
