package mathx

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Clamp saturates v into [lo, hi]. Callers guarantee lo <= hi.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Between reports lo <= v && v <= hi.
func Between[T constraints.Ordered](v, lo, hi T) bool {
	return v >= lo && v <= hi
}

// Finite reports whether f is neither NaN nor infinite.
func Finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Percent returns v as a percentage of full scale, saturated to [0, 100].
func Percent(v, full float64) float64 {
	if full <= 0 {
		return 0
	}
	return Clamp(v/full*100, 0, 100)
}

// Round rounds f to the given number of decimal places.
func Round(f float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(f*p) / p
}
