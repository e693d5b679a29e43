// Package calc holds the pure numeric derivation functions. Nothing here
// touches storage or logs; undefined cases (missing operand, zero
// denominator) resolve to a nil result, never an error or a NaN.
package calc

import (
	"math"

	"github.com/shopspring/decimal"
)

// Round2 rounds to 2 decimal places, half away from zero.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// Ratio returns numerator/denominator, or nil when either operand is
// missing or the denominator is zero.
func Ratio(num, den *float64) *float64 {
	if num == nil || den == nil || *den == 0 {
		return nil
	}
	r := *num / *den
	return &r
}

// RatioPct returns the ratio as a percentage rounded to 2 decimal places.
func RatioPct(num, den *float64) *float64 {
	r := Ratio(num, den)
	if r == nil {
		return nil
	}
	pct := Round2(*r * 100)
	return &pct
}

// Pct expresses part/whole as a rounded percentage for always-present
// operands; zero whole yields 0 rather than a missing value since margin
// columns are mandatory.
func Pct(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return Round2(part / whole * 100)
}

// YoYGrowth returns the year-over-year percentage change between a value
// and its prior-year counterpart, rounded to 2 decimal places. Nil when
// either operand is missing or the prior value is zero.
func YoYGrowth(current, previous *float64) *float64 {
	if current == nil || previous == nil || *previous == 0 {
		return nil
	}
	g := Round2((*current - *previous) / math.Abs(*previous) * 100)
	return &g
}
