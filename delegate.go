// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package graphkit

import (
	"image/color"
	"time"
)

// A delegate customises how series and labels are presented. It may be any
// value; the interfaces below are optional and each one a delegate
// implements is picked up on reload.

// SeriesColorer supplies the stroke or fill colour of a series.
type SeriesColorer interface {
	SeriesColor(series int) color.Color
}

// TickLabeler formats the label drawn next to a tick.
type TickLabeler interface {
	TickLabel(value float64, axis Axis) string
}

// SeriesWidther supplies the line width of a line series or the bar width of
// a bar series.
type SeriesWidther interface {
	SeriesWidth(series int) float64
}

// SeriesAnimator supplies how long a series takes to draw in.
type SeriesAnimator interface {
	SeriesAnimationDuration(series int) time.Duration
}

// SeriesCurver reports whether a line series is smoothed.
type SeriesCurver interface {
	CurveSeries(series int) bool
}

type delegateCaps struct {
	colorer  SeriesColorer
	labeler  TickLabeler
	widther  SeriesWidther
	animator SeriesAnimator
	curver   SeriesCurver
}

func delegateCapsOf(d any) delegateCaps {
	var c delegateCaps
	if d == nil {
		return c
	}
	c.colorer, _ = d.(SeriesColorer)
	c.labeler, _ = d.(TickLabeler)
	c.widther, _ = d.(SeriesWidther)
	c.animator, _ = d.(SeriesAnimator)
	c.curver, _ = d.(SeriesCurver)
	return c
}

// decorate returns s with the delegate's per-series overrides applied.
func (c delegateCaps) decorate(s Series) Series {
	if c.widther != nil {
		s.Width = c.widther.SeriesWidth(s.Index)
	}
	if c.animator != nil {
		s.AnimationDuration = c.animator.SeriesAnimationDuration(s.Index)
	}
	if c.curver != nil {
		s.Curved = s.Type == GraphTypeLine && c.curver.CurveSeries(s.Index)
	}
	return s
}

func (c delegateCaps) color(series int) color.Color {
	if c.colorer == nil {
		return nil
	}
	return c.colorer.SeriesColor(series)
}

func (c delegateCaps) label(value float64, axis Axis, precision int) string {
	if c.labeler != nil {
		return c.labeler.TickLabel(value, axis)
	}
	return formatTick(value, precision)
}
