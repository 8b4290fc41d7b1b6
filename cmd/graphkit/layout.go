// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	graphkit "github.com/kofi-q/graphkit-go"
	"github.com/kofi-q/graphkit-go/datafile"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
)

func newLayoutCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "layout FILE",
		Short: "Print the axis ranges and screen positions of a chart.",
		Long: `Lay out the series in FILE and print the computed axes and every
point in both value space and screen space.

Examples:
  # Axes and points of a CSV file laid out in 640x400
  graphkit layout temps.csv

  # Read the second sheet of a workbook and draw "sales" as bars
  graphkit layout --sheet Q2 --bars sales report.xlsx`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, tbl, err := loadGraph(cfg, args[0], cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return printLayout(cmd.OutOrStdout(), g.Layout(), tbl)
		},
	}
}

// printLayout writes the axis table followed by the point table.
func printLayout(w io.Writer, l *graphkit.Layout, tbl *datafile.Table) error {
	axes := tablewriter.NewWriter(w)
	axes.Header([]string{"Axis", "Min", "Max", "Interval", "Ticks"})
	axes.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})
	var data [][]string
	for _, axis := range [...]graphkit.Axis{graphkit.AxisX, graphkit.AxisY} {
		r := l.X
		if axis == graphkit.AxisY {
			r = l.Y
		}
		labels := make([]string, 0, len(r.Ticks))
		for _, t := range l.Ticks(axis) {
			labels = append(labels, t.Label)
		}
		data = append(data, []string{
			axis.String(),
			formatFloat(r.Min),
			formatFloat(r.Max),
			formatFloat(r.TickInterval),
			strings.Join(labels, " "),
		})
	}
	if err := axes.Bulk(data); err != nil {
		return err
	}
	if err := axes.Render(); err != nil {
		return err
	}

	points := tablewriter.NewWriter(w)
	points.Header([]string{"Series", "Type", "Point", tbl.XName(), "Value", "Screen X", "Screen Y"})
	points.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})
	data = data[:0]
	for i, s := range l.Series {
		kind := s.Type.String()
		if l.Curved(i) {
			kind = "curve"
		}
		for j, p := range s.Points {
			sp := l.Points[i][j]
			data = append(data, []string{
				tbl.Names()[i],
				kind,
				strconv.Itoa(j),
				formatFloat(p.X),
				formatFloat(p.Y),
				fmt.Sprintf("%.2f", sp.X),
				fmt.Sprintf("%.2f", sp.Y),
			})
		}
	}
	if err := points.Bulk(data); err != nil {
		return err
	}
	return points.Render()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
