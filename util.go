// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package graphkit

import (
	"fmt"
	"math"
	"strconv"
)

func sprintf(fmtStr string, args ...interface{}) string {
	return fmt.Sprintf(fmtStr, args...)
}

// floatIf returns a if cnd is true, otherwise b
func floatIf(cnd bool, a, b float64) float64 {
	if cnd {
		return a
	}
	return b
}

// clamp limits v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// formatTick formats a tick value with the given number of decimals,
// avoiding a "-0" label.
func formatTick(v float64, precision int) string {
	s := strconv.FormatFloat(v, 'f', precision, 64)
	if z, err := strconv.ParseFloat(s, 64); err == nil && z == 0 && s[0] == '-' {
		return s[1:]
	}
	return s
}
