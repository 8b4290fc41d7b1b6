// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package graphkit

import (
	"errors"
	"fmt"
)

var (
	// ErrDataSource is matched by every *DataSourceError.
	ErrDataSource = errors.New("data source contract violation")

	// ErrDegenerateRange is matched by every *DegenerateRangeError.
	ErrDegenerateRange = errors.New("degenerate range")

	// ErrInvalidRange reports axis extrema or tick hints that cannot describe
	// an axis.
	ErrInvalidRange = errors.New("invalid axis range")

	// ErrSingularMatrix reports a transformation matrix with no inverse.
	ErrSingularMatrix = errors.New("singular transformation matrix")

	// ErrNotLoaded reports a conversion requested before the first
	// successful reload.
	ErrNotLoaded = errors.New("graph has not been loaded")

	// ErrStackedUnsupported reports a series of the reserved stacked type.
	ErrStackedUnsupported = errors.New("stacked graphs are not implemented")
)

// DataSourceError reports malformed counts, out-of-range indices or unusable
// values supplied by a DataSource.
type DataSourceError struct {
	Index  SeriesIndex // Point is -1 when the error concerns a whole series
	Reason string
	Err    error
}

func (e *DataSourceError) Error() string {
	msg := "data source"
	switch {
	case e.Index.Series < 0:
	case e.Index.Point < 0:
		msg += fmt.Sprintf(" series %d", e.Index.Series)
	default:
		msg += " point " + e.Index.String()
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DataSourceError) Unwrap() error {
	return e.Err
}

func (e *DataSourceError) Is(target error) bool {
	return target == ErrDataSource
}

func newDataSourceError(series, point int, reason string, args ...any) *DataSourceError {
	return &DataSourceError{
		Index:  SeriesIndex{Series: series, Point: point},
		Reason: fmt.Sprintf(reason, args...),
	}
}

// DegenerateRangeError reports an axis range or drawing rectangle with zero
// extent reaching the coordinate transform.
type DegenerateRangeError struct {
	What   string // "x axis", "y axis", "drawing rect width" or "drawing rect height"
	Extent float64
}

func (e *DegenerateRangeError) Error() string {
	return fmt.Sprintf("%s has degenerate extent %g", e.What, e.Extent)
}

func (e *DegenerateRangeError) Is(target error) bool {
	return target == ErrDegenerateRange
}
