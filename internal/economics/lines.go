package economics

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iwvelando/unit-economics/pkg/mathutil"
	"github.com/shopspring/decimal"
)

// LineKind tells an exporter whether a line carries an amount or a percentage.
type LineKind string

const (
	LineAmount  LineKind = "amount"
	LinePercent LineKind = "percent"
)

// Stable keys of the statement lines.
const (
	KeyTotalRevenue    = "revenue.total"
	KeyTotalCOGS       = "cogs.total"
	KeyGrossProfit     = "gross.profit"
	KeyGrossMargin     = "gross.margin"
	KeyTotalFixedCosts = "fixed.total"
	KeyOperatingProfit = "operating.profit"
	KeyNetMargin       = "operating.margin"
)

// Line is one named figure of the income statement.
type Line struct {
	Key     string           `json:"key"`
	Label   string           `json:"label"`
	Kind    LineKind         `json:"kind"`
	Amount  decimal.Decimal  `json:"amount"`
	Percent mathutil.Percent `json:"percent"`
}

// RevenueKey returns the line key of a channel's revenue.
func RevenueKey(ch Channel) string {
	return "revenue." + string(ch)
}

// FixedCostKey returns the line key of a fixed-cost category.
func FixedCostKey(category string) string {
	return "fixed." + category
}

// Lines flattens the statement into ordered, stably named lines: channel
// revenues, totals, every fixed-cost category and the operating result.
func (s IncomeStatement) Lines() []Line {
	lines := make([]Line, 0, len(s.Channels)+len(s.FixedCosts)+8)
	for _, ch := range s.Channels {
		lines = append(lines, amountLine(RevenueKey(ch.Channel), ch.Channel.Label()+" Revenue", ch.Sales))
	}
	lines = append(lines,
		amountLine(KeyTotalRevenue, "Total Revenue", s.TotalRevenue),
		amountLine(KeyTotalCOGS, "Total COGS", s.TotalCOGS),
		amountLine(KeyGrossProfit, "Gross Profit", s.GrossProfit),
		percentLine(KeyGrossMargin, "Gross Margin", s.GrossMargin),
	)
	for _, cost := range s.FixedCosts {
		lines = append(lines, amountLine(FixedCostKey(cost.Category), CategoryLabel(cost.Category), cost.Amount))
	}
	lines = append(lines,
		amountLine(KeyTotalFixedCosts, "Total Fixed Expenses", s.TotalFixedCosts),
		amountLine(KeyOperatingProfit, "Operating Profit", s.OperatingProfit),
		percentLine(KeyNetMargin, "Net Margin", s.NetMargin),
	)
	return lines
}

// Line returns the line with the given key. An unknown key yields a
// zero-valued amount line rather than an error.
func (s IncomeStatement) Line(key string) Line {
	for _, line := range s.Lines() {
		if line.Key == key {
			return line
		}
	}
	return Line{Key: key, Label: key, Kind: LineAmount, Amount: decimal.Zero}
}

// CategoryLabel capitalizes the first letter of a fixed-cost category.
func CategoryLabel(category string) string {
	trimmed := strings.TrimSpace(category)
	if trimmed == "" {
		return trimmed
	}
	r, size := utf8.DecodeRuneInString(trimmed)
	return string(unicode.ToUpper(r)) + trimmed[size:]
}

func amountLine(key, label string, amount decimal.Decimal) Line {
	return Line{Key: key, Label: label, Kind: LineAmount, Amount: amount}
}

func percentLine(key, label string, percent mathutil.Percent) Line {
	return Line{Key: key, Label: label, Kind: LinePercent, Amount: percent.OrZero(), Percent: percent}
}
