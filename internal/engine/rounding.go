package engine

import (
	"math"
)

// Round rounds to the given number of decimal places using
// half-away-from-zero semantics. Non-finite inputs round to 0.
func Round(v float64, places int) float64 {
	if !isFinite(v) {
		return 0
	}
	if places < 0 {
		places = 0
	}
	shift := math.Pow(10, float64(places))
	return math.Round(v*shift) / shift
}
