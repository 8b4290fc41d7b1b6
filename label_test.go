// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package graphkit_test

import (
	"math"
	"math/rand/v2"
	"testing"

	graphkit "github.com/kofi-q/graphkit-go"
	"github.com/stretchr/testify/require"
)

func TestComputeRangeZeroBased(t *testing.T) {
	opts := graphkit.DefaultAxisOptions()
	opts.ScaleToValues = false

	r, err := graphkit.ComputeRange(3, 47, opts)
	require.NoError(t, err)

	require.Equal(t, 0.0, r.Min)
	require.Equal(t, 50.0, r.Max)
	require.Equal(t, 10.0, r.TickInterval)
	require.Equal(t, []float64{0, 10, 20, 30, 40, 50}, r.Ticks)
	require.Equal(t, 6, r.TickCount)
	require.Equal(t, 0, r.Precision)
}

func TestComputeRangeScaledToValues(t *testing.T) {
	r, err := graphkit.ComputeRange(17, 83, graphkit.DefaultAxisOptions())
	require.NoError(t, err)

	require.Equal(t, 0.0, r.Min)
	require.Equal(t, 100.0, r.Max)
	require.Equal(t, 20.0, r.TickInterval)
	require.Equal(t, []float64{0, 20, 40, 60, 80, 100}, r.Ticks)
}

func TestComputeRangeNegativeNotScaled(t *testing.T) {
	opts := graphkit.DefaultAxisOptions()
	opts.ScaleToValues = false

	r, err := graphkit.ComputeRange(-30, -12, opts)
	require.NoError(t, err)

	require.LessOrEqual(t, r.Min, -30.0)
	require.Equal(t, 0.0, r.Max)
	require.Contains(t, r.Ticks, 0.0)
}

func TestComputeRangeUnrounded(t *testing.T) {
	opts := graphkit.DefaultAxisOptions()
	opts.Round = false

	r, err := graphkit.ComputeRange(3, 47, opts)
	require.NoError(t, err)

	require.Equal(t, 3.0, r.Min)
	require.Equal(t, 47.0, r.Max)
	require.Equal(t, graphkit.DefaultTickCount, r.TickCount)
	require.Equal(t, 11.0, r.TickInterval)
	require.Equal(t, []float64{3, 14, 25, 36, 47}, r.Ticks)
}

func TestComputeRangeExplicitInterval(t *testing.T) {
	opts := graphkit.DefaultAxisOptions()
	opts.ScaleToValues = false
	opts.Interval = 15
	opts.Count = 3

	r, err := graphkit.ComputeRange(3, 47, opts)
	require.NoError(t, err)

	require.Equal(t, 15.0, r.TickInterval)
	require.Equal(t, []float64{0, 15, 30, 45}, r.Ticks)
	require.Equal(t, 4, r.TickCount)
}

func TestComputeRangeExplicitCount(t *testing.T) {
	opts := graphkit.DefaultAxisOptions()
	opts.ScaleToValues = false
	opts.Count = 3

	r, err := graphkit.ComputeRange(3, 47, opts)
	require.NoError(t, err)

	require.Equal(t, []float64{0, 25, 50}, r.Ticks)
	require.Equal(t, 25.0, r.TickInterval)

	opts.Count = 1
	r, err = graphkit.ComputeRange(3, 47, opts)
	require.NoError(t, err)
	require.Equal(t, []float64{0}, r.Ticks)
}

func TestComputeRangeHideZero(t *testing.T) {
	opts := graphkit.DefaultAxisOptions()
	opts.DisplayZero = false

	r, err := graphkit.ComputeRange(-8, 9, opts)
	require.NoError(t, err)

	require.NotContains(t, r.Ticks, 0.0)
	require.Equal(t, len(r.Ticks), r.TickCount)
	require.Equal(t, -10.0, r.Min)
	require.Equal(t, 10.0, r.Max)
}

func TestComputeRangeDegenerate(t *testing.T) {
	r, err := graphkit.ComputeRange(5, 5, graphkit.DefaultAxisOptions())
	require.NoError(t, err)
	require.Greater(t, r.Max, r.Min)
	require.LessOrEqual(t, r.Min, 5.0)
	require.GreaterOrEqual(t, r.Max, 5.0)

	r, err = graphkit.ComputeRange(0, 0, graphkit.DefaultAxisOptions())
	require.NoError(t, err)
	require.Greater(t, r.Max, r.Min)

	opts := graphkit.DefaultAxisOptions()
	opts.Round = false
	r, err = graphkit.ComputeRange(0, 0, opts)
	require.NoError(t, err)
	require.Equal(t, -1.0, r.Min)
	require.Equal(t, 1.0, r.Max)

	r, err = graphkit.ComputeRange(-20, -20, opts)
	require.NoError(t, err)
	require.Equal(t, -22.0, r.Min)
	require.Equal(t, -18.0, r.Max)
}

func TestComputeRangeInvalid(t *testing.T) {
	opts := graphkit.DefaultAxisOptions()

	_, err := graphkit.ComputeRange(10, 1, opts)
	require.ErrorIs(t, err, graphkit.ErrInvalidRange)

	_, err = graphkit.ComputeRange(math.NaN(), 1, opts)
	require.ErrorIs(t, err, graphkit.ErrInvalidRange)

	_, err = graphkit.ComputeRange(0, math.Inf(1), opts)
	require.ErrorIs(t, err, graphkit.ErrInvalidRange)

	opts.Interval = -1
	_, err = graphkit.ComputeRange(0, 1, opts)
	require.ErrorIs(t, err, graphkit.ErrInvalidRange)

	opts.Interval = 1e-9
	_, err = graphkit.ComputeRange(0, 1000, opts)
	require.ErrorIs(t, err, graphkit.ErrInvalidRange)
}

func TestComputeRangeProperties(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 2000; i++ {
		exp := rng.IntN(12) - 6
		scale := math.Pow10(exp)
		a := (rng.Float64()*2 - 1) * 1000 * scale
		b := a + rng.Float64()*1000*scale
		if rng.IntN(10) == 0 {
			b = a
		}

		opts := graphkit.DefaultAxisOptions()
		opts.ScaleToValues = rng.IntN(2) == 0
		opts.DisplayZero = rng.IntN(2) == 0

		r, err := graphkit.ComputeRange(a, b, opts)
		require.NoError(t, err)

		require.LessOrEqual(t, r.Min, a, "range %v for raw (%g, %g)", r, a, b)
		require.GreaterOrEqual(t, r.Max, b, "range %v for raw (%g, %g)", r, a, b)
		require.Greater(t, r.Max, r.Min)

		if opts.DisplayZero {
			require.GreaterOrEqual(t, r.TickCount, graphkit.MinTicks, "raw (%g, %g)", a, b)
			require.LessOrEqual(t, r.TickCount, graphkit.MaxTicks, "raw (%g, %g)", a, b)
		}
		for j, tick := range r.Ticks {
			require.GreaterOrEqual(t, tick, r.Min)
			require.LessOrEqual(t, tick, r.Max)
			if j > 0 {
				require.Greater(t, tick, r.Ticks[j-1])
			}
		}
	}
}

func TestComputeRangeNarrowSpan(t *testing.T) {
	for _, raw := range [][2]float64{
		{1, math.Nextafter(1, 2)},
		{1e15, 1e15 + 0.125},
		{-3e8, -3e8 + 1e-8},
		{1, 1 + 1e-11},
	} {
		r, err := graphkit.ComputeRange(raw[0], raw[1], graphkit.DefaultAxisOptions())
		require.NoError(t, err, "raw %v", raw)

		require.LessOrEqual(t, r.Min, raw[0], "raw %v", raw)
		require.GreaterOrEqual(t, r.Max, raw[1], "raw %v", raw)
		require.GreaterOrEqual(t, r.TickCount, graphkit.MinTicks, "raw %v", raw)
		require.LessOrEqual(t, r.TickCount, graphkit.MaxTicks, "raw %v", raw)
		for j := 1; j < len(r.Ticks); j++ {
			require.Greater(t, r.Ticks[j], r.Ticks[j-1], "raw %v", raw)
		}
	}

	r, err := graphkit.ComputeRange(1, math.Nextafter(1, 2), graphkit.DefaultAxisOptions())
	require.NoError(t, err)
	require.InDelta(t, 0.9, r.Min, 1e-12)
	require.InDelta(t, 1.1, r.Max, 1e-12)
	require.Equal(t, 0.05, r.TickInterval)
}

func TestComputeRangeIntervalTooFine(t *testing.T) {
	opts := graphkit.DefaultAxisOptions()
	opts.Interval = 1e-3

	_, err := graphkit.ComputeRange(1e13, 1e13+1, opts)
	require.ErrorIs(t, err, graphkit.ErrInvalidRange)

	opts.Interval = 1e12
	r, err := graphkit.ComputeRange(1e13, 1e13+1, opts)
	require.NoError(t, err)
	require.Equal(t, []float64{9e12, 1e13, 1.1e13}, r.Ticks)

	opts = graphkit.DefaultAxisOptions()
	opts.Count = 20000
	_, err = graphkit.ComputeRange(0, 1, opts)
	require.ErrorIs(t, err, graphkit.ErrInvalidRange)
}

func TestTickmarkPrecision(t *testing.T) {
	require.Equal(t, 2, graphkit.TickmarkPrecision(0.05))
	require.Equal(t, 0, graphkit.TickmarkPrecision(20))
	require.Equal(t, 0, graphkit.TickmarkPrecision(0))
	require.Equal(t, 0, graphkit.TickmarkPrecision(math.Inf(1)))
}
