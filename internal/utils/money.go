package utils

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Round rounds v to the given number of decimal places, half away from zero
// on the shortest decimal representation of v.
func Round(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	f, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return f
}

// Round2 rounds a money amount to cents
func Round2(v float64) float64 {
	return Round(v, 2)
}

// FormatMoney renders v as sign, currency symbol, then two decimals: -$12.30
func FormatMoney(v float64, currency string) string {
	sign := ""
	if v < 0 {
		sign = "-"
	}
	return fmt.Sprintf("%s%s%.2f", sign, currency, math.Abs(v))
}
