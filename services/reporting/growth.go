package reporting

import (
	"github.com/shopspring/decimal"
)

var half = decimal.NewFromFloat(0.5)

// roundHalfUp rounds ties toward positive infinity, so -12.25 becomes -12.2
func roundHalfUp(d decimal.Decimal, places int32) float64 {
	return d.Shift(places).Add(half).Floor().Shift(-places).InexactFloat64()
}

// Round1 rounds to one decimal, ties toward positive infinity
func Round1(v float64) float64 {
	return roundHalfUp(decimal.NewFromFloat(v), 1)
}

// Money rounds to two decimals
func Money(v float64) float64 {
	return roundHalfUp(decimal.NewFromFloat(v), 2)
}

// Growth is the percentage change from previous to current.
// No baseline and no current value is 0; no baseline with a current value is 100.
func Growth(previous, current float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	p := decimal.NewFromFloat(previous)
	c := decimal.NewFromFloat(current)
	return roundHalfUp(c.Sub(p).Div(p).Mul(decimal.NewFromInt(100)), 1)
}

// SafeDivide returns 0 when the denominator is 0
func SafeDivide(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

// Percentage is numerator/denominator*100 at one decimal, 0 on a zero denominator
func Percentage(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	n := decimal.NewFromFloat(numerator)
	d := decimal.NewFromFloat(denominator)
	return roundHalfUp(n.Div(d).Mul(decimal.NewFromInt(100)), 1)
}

// Progress is round(min(current/target*100, 100)), clamped to [0, 100]
func Progress(current, target float64) int {
	if target <= 0 || current <= 0 {
		return 0
	}
	pct := decimal.NewFromFloat(current).Div(decimal.NewFromFloat(target)).Mul(decimal.NewFromInt(100))
	if pct.GreaterThan(decimal.NewFromInt(100)) {
		return 100
	}
	return int(pct.Round(0).IntPart())
}

func AverageOrderValue(revenue float64, orders int64) float64 {
	return Money(SafeDivide(revenue, float64(orders)))
}

func RevenuePerUser(revenue float64, customers int64) float64 {
	return Money(SafeDivide(revenue, float64(customers)))
}

// ConversionRate is orders per session as a percentage
func ConversionRate(orders, sessions int64) float64 {
	return Percentage(float64(orders), float64(sessions))
}
