// SPDX-License-Identifier: MIT
// Package: grid
//
// Purpose:
//   - Scaling statistics consumed by heatmap renderers.
//   - MinMax feeds a sequential ramp t = (v-min)/(max-min).
//   - MaxAbs feeds a diverging ramp a = |v|/maxAbs (negative vs positive hue).
//
// Fallbacks keep renderers free of divide-by-zero guards:
//   - MinMax of a nil grid is (0, 1).
//   - MaxAbs of an all-zero (or nil) grid is 1.

package grid

// Fallback values returned when a statistic is undefined.
const (
	fallbackMin    = 0
	fallbackMax    = 1
	fallbackMaxAbs = 1
)

// MinMax returns the smallest and largest values in g.
// Complexity: O(r*c), single deterministic pass.
func MinMax(g *Grid) (lo, hi int) {
	if g == nil || len(g.data) == 0 {
		return fallbackMin, fallbackMax
	}
	lo, hi = g.data[0], g.data[0]
	for _, v := range g.data[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	return lo, hi
}

// MaxAbs returns max |v| over g, or 1 when every value is zero.
// Complexity: O(r*c).
func MaxAbs(g *Grid) int {
	if g == nil {
		return fallbackMaxAbs
	}
	m := 0
	for _, v := range g.data {
		if v < 0 {
			v = -v
		}
		if v > m {
			m = v
		}
	}
	if m == 0 {
		return fallbackMaxAbs
	}

	return m
}

// Stats bundles the scaling statistics of an image/kernel pair.
type Stats struct {
	ImageMin     int // smallest image value
	ImageMax     int // largest image value
	KernelMaxAbs int // largest |kernel| value (≥ 1)
}

// StatsOf computes Stats for an image/kernel pair.
func StatsOf(image, kernel *Grid) Stats {
	lo, hi := MinMax(image)

	return Stats{ImageMin: lo, ImageMax: hi, KernelMaxAbs: MaxAbs(kernel)}
}
