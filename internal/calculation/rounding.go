package calculation

import "math"

// RoundCurrency rounds to the nearest whole currency unit. Halves round
// toward positive infinity (2.5 -> 3, -2.5 -> -2), matching how the
// calculator has always displayed figures. NaN and infinities pass through.
func RoundCurrency(v float64) float64 {
	r := math.Floor(v)
	if v-r >= 0.5 {
		r++
	}
	return r
}

// monthly converts an unrounded annual figure to a rounded monthly one.
func monthly(annual float64) float64 {
	return RoundCurrency(annual / 12)
}
