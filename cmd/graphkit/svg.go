// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"html"
	"image/color"
	"io"
	"os"

	graphkit "github.com/kofi-q/graphkit-go"
	"github.com/spf13/cobra"
)

func newSVGCmd(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "svg FILE",
		Short: "Render a chart as SVG.",
		Long: `Lay out the series in FILE and render axes, ticks, labels, lines and
bars as an SVG document.

Examples:
  # Smoothed lines written to a file
  graphkit svg --curve -o temps.svg temps.csv

  # Horizontal bars
  graphkit svg --bars sales --ordered-axis y report.xlsx > sales.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, _, err := loadGraph(cfg, args[0], cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if cfg.Output == "" || cfg.Output == "-" {
				return writeSVG(cmd.OutOrStdout(), g.Layout(), g.Bounds())
			}

			f, err := os.Create(cfg.Output)
			if err != nil {
				return err
			}
			if err := writeSVG(f, g.Layout(), g.Bounds()); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.ErrOrStderr(), "Wrote SVG to %s\n", cfg.Output)
			return err
		},
	}
	cmd.Flags().StringP("output", "o", "", "File to write the SVG to (default stdout)")
	return cmd
}

// writeSVG draws the layers of l in order, skipping hidden ones.
func writeSVG(w io.Writer, l *graphkit.Layout, bounds graphkit.Rect) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="%g %g %g %g">`+"\n",
		bounds.W, bounds.H, bounds.X, bounds.Y, bounds.W, bounds.H)

	for _, layer := range l.Layers {
		if !layer.Visible {
			continue
		}
		fmt.Fprintf(bw, `<g id="%s">`+"\n", layer.Key)
		switch layer.Key {
		case graphkit.XAxisLayerKey:
			writeAxis(bw, l, graphkit.AxisX)
		case graphkit.YAxisLayerKey:
			writeAxis(bw, l, graphkit.AxisY)
		default:
			writeSeries(bw, l, layer.Series)
		}
		bw.WriteString("</g>\n")
	}
	bw.WriteString("</svg>\n")
	return bw.Flush()
}

func writeAxis(w io.Writer, l *graphkit.Layout, axis graphkit.Axis) {
	from, to, _ := l.AxisLine(axis)
	fmt.Fprintf(w, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="black"/>`+"\n",
		from.X, from.Y, to.X, to.Y)

	anchor, baseline := "middle", "hanging"
	if axis == graphkit.AxisY {
		anchor, baseline = "end", "middle"
	}
	for _, t := range l.Ticks(axis) {
		fmt.Fprintf(w, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="black"/>`+"\n",
			t.Mark[0].X, t.Mark[0].Y, t.Mark[1].X, t.Mark[1].Y)
		fmt.Fprintf(w, `<text x="%.2f" y="%.2f" font-size="10" text-anchor="%s" dominant-baseline="%s">%s</text>`+"\n",
			t.LabelAt.X, t.LabelAt.Y, anchor, baseline, html.EscapeString(t.Label))
	}
}

func writeSeries(w io.Writer, l *graphkit.Layout, series int) {
	fill := hexColor(l.Color(series))
	if bars := l.Bars[series]; bars != nil {
		for _, r := range bars {
			fmt.Fprintf(w, `<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"/>`+"\n",
				r.X, r.Y, r.W, r.H, fill)
		}
		return
	}
	width := l.Series[series].Width
	if width <= 0 {
		width = 2
	}
	fmt.Fprintf(w, `<path d="%s" fill="none" stroke="%s" stroke-width="%g"/>`+"\n",
		l.Paths[series], fill, width)
}

func hexColor(c color.Color) string {
	if c == nil {
		return "black"
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}
