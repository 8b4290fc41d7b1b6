// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package datafile reads tabular files into graph data sources.
//
// The first row of a table holds column headers. The first column holds the
// X value of each row and every further column is a series named by its
// header whose Y values are read from that column. A blank cell omits the
// row from that series only.
package datafile

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
	graphkit "github.com/kofi-q/graphkit-go"
)

// ErrFormat is matched by every error reporting malformed table content.
var ErrFormat = errors.New("malformed table")

// Table is a graphkit.DataSource over parsed rows.
type Table struct {
	xName  string
	names  []string
	types  []graphkit.GraphType
	points [][]graphkit.Point

	rows    int
	missing bitset.BitSet // row*len(names) + series
}

var (
	_ graphkit.DataSource    = (*Table)(nil)
	_ graphkit.SeriesCounter = (*Table)(nil)
	_ graphkit.SeriesTyper   = (*Table)(nil)
)

// NewTable builds a table from records. records[0] is the header row.
func NewTable(records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no header row", ErrFormat)
	}
	header := trimAll(records[0])
	if len(header) < 2 {
		return nil, fmt.Errorf("%w: need an X column and at least one series column, got %d columns",
			ErrFormat, len(header))
	}

	t := &Table{
		xName:  header[0],
		names:  header[1:],
		types:  make([]graphkit.GraphType, len(header)-1),
		points: make([][]graphkit.Point, len(header)-1),
	}
	for i, name := range t.names {
		if name == "" {
			t.names[i] = "series" + strconv.Itoa(i)
		}
	}

	for r, rec := range records[1:] {
		rec = trimAll(rec)
		if blankRow(rec) {
			continue
		}
		line := r + 2
		if len(rec) > len(header) {
			return nil, fmt.Errorf("%w: row %d has %d cells, header has %d",
				ErrFormat, line, len(rec), len(header))
		}
		x, err := parseCell(rec[0])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d column %q: %v", ErrFormat, line, t.xName, err)
		}
		for s := range t.names {
			var cell string
			if s+1 < len(rec) {
				cell = rec[s+1]
			}
			if cell == "" {
				t.missing.Set(uint(t.rows*len(t.names) + s))
				continue
			}
			y, err := parseCell(cell)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d column %q: %v", ErrFormat, line, t.names[s], err)
			}
			t.points[s] = append(t.points[s], graphkit.Pt(x, y))
		}
		t.rows++
	}
	return t, nil
}

// Open reads path as CSV or as a workbook depending on its extension. sheet
// is only used for workbooks.
func Open(path, sheet string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return OpenCSV(path)
	case ".xlsx", ".xlsm":
		return OpenXLSX(path, sheet)
	}
	return nil, fmt.Errorf("%w: unsupported file type %q", ErrFormat, filepath.Ext(path))
}

// XName returns the header of the X column.
func (t *Table) XName() string {
	return t.xName
}

// Names returns the series names in order.
func (t *Table) Names() []string {
	return t.names
}

// Rows returns the number of non-blank data rows.
func (t *Table) Rows() int {
	return t.rows
}

// Missing reports whether series has no value in data row row.
func (t *Table) Missing(row, series int) bool {
	if row < 0 || row >= t.rows || series < 0 || series >= len(t.names) {
		return false
	}
	return t.missing.Test(uint(row*len(t.names) + series))
}

// MissingCount returns the number of blank cells over all series.
func (t *Table) MissingCount() int {
	return int(t.missing.Count())
}

// SeriesByName returns the index of the series with the given header.
func (t *Table) SeriesByName(name string) (int, bool) {
	for i, n := range t.names {
		if n == name {
			return i, true
		}
	}
	return -1, false
}

// SetSeriesType sets how the named series is drawn.
func (t *Table) SetSeriesType(name string, typ graphkit.GraphType) error {
	i, ok := t.SeriesByName(name)
	if !ok {
		return fmt.Errorf("no series named %q", name)
	}
	t.types[i] = typ
	return nil
}

func (t *Table) SeriesCount() int {
	return len(t.names)
}

func (t *Table) SeriesType(series int) graphkit.GraphType {
	return t.types[series]
}

func (t *Table) PointCount(series int) int {
	return len(t.points[series])
}

func (t *Table) PointAt(idx graphkit.SeriesIndex) graphkit.Point {
	return t.points[idx.Series][idx.Point]
}

func parseCell(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
}

func trimAll(rec []string) []string {
	out := make([]string, len(rec))
	for i, s := range rec {
		out[i] = strings.TrimSpace(s)
	}
	return out
}

func blankRow(rec []string) bool {
	for _, s := range rec {
		if s != "" {
			return false
		}
	}
	return true
}
