// Package format renders money amounts, percentages and counts for display.
package format

import (
	"strconv"
	"strings"

	"github.com/iwvelando/unit-economics/pkg/constants"
	"github.com/iwvelando/unit-economics/pkg/mathutil"
	"github.com/shopspring/decimal"
)

// NotApplicable is shown for percentages and counts that have no value.
const NotApplicable = "N/A"

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
func Currency(amount decimal.Decimal) string {
	formatted := formatPositiveCurrency(amount.Abs())
	if mathutil.Round(amount).IsNegative() {
		return "-$" + formatted
	}
	return "$" + formatted
}

// Percent renders a percentage with one decimal place, or N/A when undefined.
func Percent(p mathutil.Percent) string {
	value, ok := p.Value()
	if !ok {
		return NotApplicable
	}
	return value.StringFixed(constants.PercentPlaces) + "%"
}

// Count renders a whole number with thousands separators.
func Count(n int64) string {
	if n < 0 {
		return "-" + groupThousands(strconv.FormatInt(-n, 10))
	}
	return groupThousands(strconv.FormatInt(n, 10))
}

func formatPositiveCurrency(value decimal.Decimal) string {
	formatted := value.StringFixed(constants.CurrencyPlaces)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	return groupThousands(intPart) + "." + decPart
}

func groupThousands(intPart string) string {
	if len(intPart) <= 3 {
		return intPart
	}
	var builder strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			builder.WriteByte(',')
		}
		builder.WriteRune(digit)
	}
	return builder.String()
}
