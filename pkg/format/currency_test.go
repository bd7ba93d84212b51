package format

import (
	"testing"

	"github.com/iwvelando/unit-economics/pkg/mathutil"
	"github.com/shopspring/decimal"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		expected string
	}{
		{"Zero", "0", "$0.00"},
		{"Small", "9.36", "$9.36"},
		{"Rounded half up", "24.915", "$24.92"},
		{"Thousands", "1684.8", "$1,684.80"},
		{"Millions", "1234567.891", "$1,234,567.89"},
		{"Negative", "-1234.5", "-$1,234.50"},
		{"Negative rounding to zero", "-0.001", "$0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Currency(decimal.RequireFromString(tt.amount))
			if result != tt.expected {
				t.Errorf("Currency(%s) = %q, expected %q", tt.amount, result, tt.expected)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name     string
		percent  mathutil.Percent
		expected string
	}{
		{"Defined", mathutil.PercentOf(decimal.RequireFromString("374.4"), decimal.RequireFromString("1684.8")), "22.2%"},
		{"Whole", mathutil.NewPercent(decimal.NewFromInt(40)), "40.0%"},
		{"Negative", mathutil.NewPercent(decimal.RequireFromString("-12.34")), "-12.3%"},
		{"Undefined", mathutil.PercentOf(decimal.NewFromInt(1), decimal.Zero), NotApplicable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Percent(tt.percent); result != tt.expected {
				t.Errorf("Percent() = %q, expected %q", result, tt.expected)
			}
		})
	}
}

func TestCount(t *testing.T) {
	tests := map[int64]string{
		0:       "0",
		12:      "12",
		1234:    "1,234",
		-98765:  "-98,765",
		1000000: "1,000,000",
	}

	for input, expected := range tests {
		if result := Count(input); result != expected {
			t.Errorf("Count(%d) = %q, expected %q", input, result, expected)
		}
	}
}
