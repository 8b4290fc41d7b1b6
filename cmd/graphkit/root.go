// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"strings"

	fcolor "github.com/fatih/color"
	graphkit "github.com/kofi-q/graphkit-go"
	"github.com/kofi-q/graphkit-go/datafile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// config holds the resolved settings from the config file, environment and
// flags.
type config struct {
	Width       float64  `mapstructure:"width"`
	Height      float64  `mapstructure:"height"`
	Sheet       string   `mapstructure:"sheet"`
	Curve       bool     `mapstructure:"curve"`
	Bars        []string `mapstructure:"bars"`
	Granularity float64  `mapstructure:"granularity"`
	BarWidth    float64  `mapstructure:"bar-width"`
	ScaleX      bool     `mapstructure:"scale-x"`
	ScaleY      bool     `mapstructure:"scale-y"`
	RoundX      bool     `mapstructure:"round-x"`
	RoundY      bool     `mapstructure:"round-y"`
	XAxis       bool     `mapstructure:"x-axis"`
	YAxis       bool     `mapstructure:"y-axis"`
	ZeroLabel   bool     `mapstructure:"zero-label"`
	XPadding    float64  `mapstructure:"x-padding"`
	YPadding    float64  `mapstructure:"y-padding"`
	OrderedAxis string   `mapstructure:"ordered-axis"`
	Output      string   `mapstructure:"output"`
	Verbose     bool     `mapstructure:"verbose"`
}

// options converts the CLI settings into graph options.
func (c *config) options() (graphkit.Options, error) {
	opts := graphkit.DefaultOptions()
	opts.ScaleXAxisToValues = c.ScaleX
	opts.ScaleYAxisToValues = c.ScaleY
	opts.RoundXAxis = c.RoundX
	opts.RoundYAxis = c.RoundY
	opts.DisplayXAxis = c.XAxis
	opts.DisplayYAxis = c.YAxis
	opts.DisplayZeroAxisLabel = c.ZeroLabel
	opts.XPadding = c.XPadding
	opts.YPadding = c.YPadding
	opts.Granularity = c.Granularity
	opts.BarWidth = c.BarWidth

	switch strings.ToLower(c.OrderedAxis) {
	case "", "x":
		opts.OrderedAxis = graphkit.AxisX
	case "y":
		opts.OrderedAxis = graphkit.AxisY
	default:
		return opts, fmt.Errorf("invalid ordered axis %q: must be x or y", c.OrderedAxis)
	}
	return opts, opts.Validate()
}

// palette holds the series colours, reused cyclically.
var palette = []color.NRGBA{
	{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
	{R: 0x8c, G: 0x56, B: 0x4b, A: 0xff},
}

// style is the graph delegate used by every command.
type style struct {
	curve bool
}

func (s style) SeriesColor(series int) color.Color {
	return palette[series%len(palette)]
}

func (s style) CurveSeries(int) bool {
	return s.curve
}

var warn = fcolor.New(fcolor.FgYellow).SprintFunc()

// loadGraph reads the table at path and lays it out with the resolved
// settings.
func loadGraph(cfg *config, path string, stderr io.Writer) (*graphkit.Graph, *datafile.Table, error) {
	tbl, err := datafile.Open(path, cfg.Sheet)
	if err != nil {
		return nil, nil, err
	}
	for _, name := range cfg.Bars {
		if err := tbl.SetSeriesType(name, graphkit.GraphTypeBar); err != nil {
			return nil, nil, err
		}
	}
	if n := tbl.MissingCount(); n > 0 {
		_, _ = fmt.Fprintln(stderr, warn(fmt.Sprintf("warning: %s: skipped %d blank cells", path, n)))
	}

	opts, err := cfg.options()
	if err != nil {
		return nil, nil, err
	}
	g := graphkit.New(tbl, style{curve: cfg.Curve}, opts)
	if err := g.SetBounds(graphkit.Rect{W: cfg.Width, H: cfg.Height}); err != nil {
		return nil, nil, err
	}
	if err := g.Reload(); err != nil {
		return nil, nil, err
	}
	return g, tbl, nil
}

// newRootCmd builds the command tree around v. Every flag is bound to v so
// that the config file and GRAPHKIT_* environment variables can supply it.
func newRootCmd(v *viper.Viper) *cobra.Command {
	cfg := &config{}

	root := &cobra.Command{
		Use:           "graphkit",
		Short:         "Lay out and render charts from CSV and spreadsheet data.",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := readConfig(v); err != nil {
				return err
			}
			if err := v.Unmarshal(cfg); err != nil {
				return fmt.Errorf("unable to unmarshal config: %w", err)
			}
			if cfg.Verbose {
				graphkit.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(),
					&slog.HandlerOptions{Level: slog.LevelDebug})))
			}
			return nil
		},
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	def := graphkit.DefaultOptions()
	flags := root.PersistentFlags()
	flags.String("config", "", "Path to config file")
	flags.Float64("width", 640, "Width of the chart")
	flags.Float64("height", 400, "Height of the chart")
	flags.String("sheet", "", "Worksheet to read from a workbook (default first sheet)")
	flags.Bool("curve", false, "Smooth line series")
	flags.StringSlice("bars", nil, "Series to draw as bars")
	flags.Float64("granularity", def.Granularity, "Curve smoothing strength")
	flags.Float64("bar-width", def.BarWidth, "Width of each bar")
	flags.Bool("scale-x", def.ScaleXAxisToValues, "Fit the X axis to the data instead of including zero")
	flags.Bool("scale-y", def.ScaleYAxisToValues, "Fit the Y axis to the data instead of including zero")
	flags.Bool("round-x", def.RoundXAxis, "Round the X axis to nice numbers")
	flags.Bool("round-y", def.RoundYAxis, "Round the Y axis to nice numbers")
	flags.Bool("x-axis", def.DisplayXAxis, "Draw the X axis line")
	flags.Bool("y-axis", def.DisplayYAxis, "Draw the Y axis line")
	flags.Bool("zero-label", def.DisplayZeroAxisLabel, "Label the zero tick")
	flags.Float64("x-padding", def.XPadding, "Horizontal padding around the plot area")
	flags.Float64("y-padding", def.YPadding, "Vertical padding around the plot area")
	flags.String("ordered-axis", def.OrderedAxis.String(), "Axis bars are spread along: x or y")
	flags.BoolP("verbose", "v", false, "Log layout details to stderr")
	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}

	layout := newLayoutCmd(cfg)
	svg := newSVGCmd(cfg)
	if err := v.BindPFlags(svg.Flags()); err != nil {
		panic(err)
	}
	root.AddCommand(layout, svg)
	return root
}

// readConfig reads the config file if one is present.
func readConfig(v *viper.Viper) error {
	if configFile := v.GetString("config"); configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(".graphkit")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}
	v.SetEnvPrefix("GRAPHKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}
	return nil
}
