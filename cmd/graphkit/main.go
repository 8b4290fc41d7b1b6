// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command graphkit lays out and renders charts from CSV files and
// spreadsheets.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd(viper.New()).Execute(); err != nil {
		red := color.New(color.FgRed).SprintFunc()
		_, _ = fmt.Fprintln(os.Stderr, red("Error:"), err)
		os.Exit(1)
	}
}
