// SPDX-License-Identifier: MIT

package core

import "math"

// SaturatingAdd returns a+b clamped to [math.MinInt64, math.MaxInt64].
func SaturatingAdd(a, b int64) int64 {
	if b > 0 && a > math.MaxInt64-b {
		return math.MaxInt64
	}
	if b < 0 && a < math.MinInt64-b {
		return math.MinInt64
	}

	return a + b
}

// SaturatingSub returns a-b clamped to [math.MinInt64, math.MaxInt64].
func SaturatingSub(a, b int64) int64 {
	if b < 0 && a > math.MaxInt64+b {
		return math.MaxInt64
	}
	if b > 0 && a < math.MinInt64+b {
		return math.MinInt64
	}

	return a - b
}
