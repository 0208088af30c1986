package units

import (
	"math"

	"github.com/shopspring/decimal"
)

// Round rounds value to the given number of decimal places, half away from zero.
// The rounding happens on the shortest decimal representation of value, so 2.675 rounds to 2.68
// even though its binary approximation is slightly below that.
// Negative places round to tens, hundreds, and so on.
func Round(value float64, places int32) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return value
	}

	return decimal.NewFromFloat(value).Round(places).InexactFloat64()
}

// RoundSignificant rounds x to the given number of significant digits, e.g. 9.37 -> 9.4 for two
// digits and 1234 -> 1200.
func RoundSignificant(x float64, digits int) float64 {
	if x == 0 || digits <= 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}

	exponent := int32(math.Floor(math.Log10(math.Abs(x)))) + 1 - int32(digits) //nolint:gosec // small

	return Round(x, -exponent)
}

// significantDecimals returns how many decimal places are needed to show digits significant
// digits of x. Values with at least as many integer digits need none.
func significantDecimals(x float64, digits int) int {
	if x == 0 {
		return digits - 1
	}

	decimals := digits - 1 - int(math.Floor(math.Log10(math.Abs(x))))
	if decimals < 0 {
		return 0
	}

	return decimals
}

// roundToNearestTen is round(n/10)*10.
func roundToNearestTen(n float64) float64 {
	return Round(n/10, 0) * 10 //nolint:mnd // granularity
}

// roundToNearestFifty rounds through doubled hundreds: round(n/100*2)/2*100.
// 162 -> 150, 180 -> 200.
func roundToNearestFifty(n float64) float64 {
	return Round(n/100*2, 0) / 2 * 100 //nolint:mnd // granularity
}
