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

func axisRange(min, max float64) graphkit.AxisRange {
	return graphkit.AxisRange{Min: min, Max: max}
}

func TestToScreen(t *testing.T) {
	rect := graphkit.Rect{X: 0, Y: 0, W: 200, H: 100}

	p, err := graphkit.ToScreen(graphkit.Pt(25, 50), axisRange(0, 50), axisRange(0, 100), rect)
	require.NoError(t, err)
	require.InDelta(t, 100, p.X, 1e-12)
	require.InDelta(t, 50, p.Y, 1e-12)

	tr, err := graphkit.NewTransform(axisRange(0, 50), axisRange(0, 100), rect)
	require.NoError(t, err)

	// Value-space maxima map to the top-right corner.
	top := tr.ToScreen(graphkit.Pt(50, 100))
	require.InDelta(t, 200, top.X, 1e-12)
	require.InDelta(t, 0, top.Y, 1e-12)

	bottom := tr.ToScreen(graphkit.Pt(0, 0))
	require.InDelta(t, 0, bottom.X, 1e-12)
	require.InDelta(t, 100, bottom.Y, 1e-12)
}

func TestToScreenOffsetRect(t *testing.T) {
	rect := graphkit.DrawingRect(graphkit.Rect{W: 220, H: 120}, 10, 10)
	require.Equal(t, graphkit.Rect{X: 10, Y: 10, W: 200, H: 100}, rect)

	p, err := graphkit.ToScreen(graphkit.Pt(-10, 20), axisRange(-20, 20), axisRange(-40, 60), rect)
	require.NoError(t, err)
	require.InDelta(t, 60, p.X, 1e-12)
	require.InDelta(t, 50, p.Y, 1e-12)

	v, err := graphkit.ToValue(p, axisRange(-20, 20), axisRange(-40, 60), rect)
	require.NoError(t, err)
	require.InDelta(t, -10, v.X, 1e-12)
	require.InDelta(t, 20, v.Y, 1e-12)
}

func TestTransformRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for i := 0; i < 1000; i++ {
		xMin := rng.Float64()*2000 - 1000
		yMin := rng.Float64()*2000 - 1000
		x := axisRange(xMin, xMin+0.01+rng.Float64()*1000)
		y := axisRange(yMin, yMin+0.01+rng.Float64()*1000)
		rect := graphkit.Rect{
			X: rng.Float64() * 100,
			Y: rng.Float64() * 100,
			W: 1 + rng.Float64()*2000,
			H: 1 + rng.Float64()*2000,
		}
		tr, err := graphkit.NewTransform(x, y, rect)
		require.NoError(t, err)

		p := graphkit.Pt(rng.Float64()*4000-2000, rng.Float64()*4000-2000)
		back := tr.ToValue(tr.ToScreen(p))
		require.InDelta(t, p.X, back.X, 1e-9)
		require.InDelta(t, p.Y, back.Y, 1e-9)
	}
}

func TestTransformDegenerate(t *testing.T) {
	rect := graphkit.Rect{W: 200, H: 100}

	_, err := graphkit.NewTransform(axisRange(5, 5), axisRange(0, 1), rect)
	require.ErrorIs(t, err, graphkit.ErrDegenerateRange)
	var dre *graphkit.DegenerateRangeError
	require.ErrorAs(t, err, &dre)
	require.Equal(t, "x axis", dre.What)

	_, err = graphkit.ToScreen(graphkit.Pt(1, 1), axisRange(0, 1), axisRange(2, 2), rect)
	require.ErrorAs(t, err, &dre)
	require.Equal(t, "y axis", dre.What)

	_, err = graphkit.ToValue(graphkit.Pt(1, 1), axisRange(0, 1), axisRange(0, 1), graphkit.Rect{W: 10})
	require.ErrorAs(t, err, &dre)
	require.Equal(t, "drawing rect height", dre.What)

	_, err = graphkit.NewTransform(axisRange(0, math.Inf(1)), axisRange(0, 1), rect)
	require.ErrorIs(t, err, graphkit.ErrDegenerateRange)
}

func TestMatrix(t *testing.T) {
	m := graphkit.Translate(3, 4).Multiply(graphkit.Scale(2, -1))
	p := m.Apply(graphkit.Pt(1, 1))
	require.Equal(t, graphkit.Pt(8, -5), p)

	inv, err := m.Invert()
	require.NoError(t, err)
	require.Equal(t, graphkit.Pt(1, 1), inv.Apply(p))

	require.Equal(t, graphkit.Identity(), graphkit.Scale(2, 4).Multiply(graphkit.Scale(0.5, 0.25)))

	_, err = graphkit.Scale(0, 1).Invert()
	require.ErrorIs(t, err, graphkit.ErrSingularMatrix)
}
