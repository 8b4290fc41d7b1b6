// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	graphkit "github.com/kofi-q/graphkit-go"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

const temps = `day,low,high
1,-3,4
2,,6
3,1,9
4,2,7
`

func writeTemps(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "temps.csv")
	require.NoError(t, os.WriteFile(path, []byte(temps), 0o600))
	return path
}

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Cleanup(func() { graphkit.SetLogger(nil) })

	var out, errOut bytes.Buffer
	root := newRootCmd(viper.New())
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func TestLayoutCommand(t *testing.T) {
	out, stderr, err := run(t, "layout", writeTemps(t))
	require.NoError(t, err)

	require.Contains(t, strings.ToLower(out), "interval")
	require.Contains(t, out, "low")
	require.Contains(t, out, "high")
	require.Contains(t, stderr, "skipped 1 blank cells")
}

func TestSVGCommand(t *testing.T) {
	path := writeTemps(t)
	dst := filepath.Join(t.TempDir(), "temps.svg")

	_, stderr, err := run(t, "svg", "--bars", "high", "-o", dst, path)
	require.NoError(t, err)
	require.Contains(t, stderr, "Wrote SVG to")

	b, err := os.ReadFile(dst)
	require.NoError(t, err)
	svg := string(b)
	require.True(t, strings.HasPrefix(svg, "<svg"))
	require.Contains(t, svg, `<g id="xAxis">`)
	require.Contains(t, svg, `<g id="series0">`)
	require.Contains(t, svg, `<path d="M `)
	require.Contains(t, svg, "<rect ")
	require.NotContains(t, svg, " C ")
}

func TestSVGCommandConfigFile(t *testing.T) {
	path := writeTemps(t)
	conf := filepath.Join(t.TempDir(), "graphkit.yaml")
	require.NoError(t, os.WriteFile(conf, []byte("curve: true\ny-axis: false\n"), 0o600))

	out, _, err := run(t, "svg", "--config", conf, path)
	require.NoError(t, err)
	require.Contains(t, out, " C ")
	require.NotContains(t, out, `<g id="yAxis">`)
}

func TestCommandErrors(t *testing.T) {
	path := writeTemps(t)

	_, _, err := run(t, "layout", "--bars", "mean", path)
	require.Error(t, err)

	_, _, err = run(t, "layout", "--ordered-axis", "z", path)
	require.Error(t, err)

	_, _, err = run(t, "layout", "--width", "5", path)
	require.ErrorIs(t, err, graphkit.ErrDegenerateRange)

	_, _, err = run(t, "layout", filepath.Join(t.TempDir(), "absent.csv"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfigOptions(t *testing.T) {
	cfg := &config{
		ScaleX:      true,
		RoundY:      true,
		XAxis:       true,
		XPadding:    4,
		YPadding:    6,
		Granularity: 0.5,
		BarWidth:    3,
		OrderedAxis: "Y",
	}
	opts, err := cfg.options()
	require.NoError(t, err)
	require.True(t, opts.ScaleXAxisToValues)
	require.False(t, opts.ScaleYAxisToValues)
	require.False(t, opts.RoundXAxis)
	require.True(t, opts.RoundYAxis)
	require.False(t, opts.DisplayYAxis)
	require.Equal(t, graphkit.AxisY, opts.OrderedAxis)
	require.Equal(t, 4.0, opts.XPadding)
	require.Equal(t, 0.5, opts.Granularity)

	cfg.Granularity = -1
	_, err = cfg.options()
	require.Error(t, err)
}

func TestHexColor(t *testing.T) {
	require.Equal(t, "black", hexColor(nil))
	require.Equal(t, "#1f77b4", hexColor(palette[0]))
}
