// Package mathutil provides common decimal helpers for money arithmetic.
package mathutil

import (
	"github.com/iwvelando/unit-economics/pkg/constants"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(constants.PercentageMultiplier)

// FromFloat converts a configured amount into a decimal using the shortest
// representation of the float, so 3.2 becomes exactly 3.2.
func FromFloat(val float64) decimal.Decimal {
	return decimal.NewFromFloat(val)
}

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for making logical comparisons.
func Round(val decimal.Decimal) decimal.Decimal {
	return val.Round(constants.CurrencyPlaces)
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tol decimal.Decimal) bool {
	return val1.Sub(val2).Abs().LessThanOrEqual(tol)
}

// Sum adds values in order. An empty list sums to zero.
func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// ApplyMarkup returns cost × (1 + markup/100).
func ApplyMarkup(cost decimal.Decimal, markup float64) decimal.Decimal {
	factor := decimal.NewFromInt(1).Add(FromFloat(markup).Div(hundred))
	return cost.Mul(factor)
}

