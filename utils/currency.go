package utils

import "math"

// Round2 rounds to currency precision. Applied at render time only; running
// cart totals stay unrounded to avoid compounding error.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// ToPaise converts a rupee amount to minor units.
func ToPaise(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
