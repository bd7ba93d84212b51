// Package output provides utilities for formatting and displaying unit
// economics reports.
package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/unit-economics/internal/economics"
	"github.com/iwvelando/unit-economics/pkg/constants"
	"github.com/iwvelando/unit-economics/pkg/format"
	"github.com/iwvelando/unit-economics/pkg/mathutil"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CsvFileName is the suggested download name of the CSV statement.
const CsvFileName = "income_statement.csv"

// PrettyFormat outputs a human-readable rather than machine-readable report.
func PrettyFormat(w io.Writer, report economics.Report) {
	p := message.NewPrinter(language.English)

	wholesale := report.Wholesale
	_, _ = p.Fprintf(w, "--- Wholesale ---\n")
	_, _ = p.Fprintf(w, "Cost per unit     | %s\n", format.Currency(wholesale.CostPerUnit))
	_, _ = p.Fprintf(w, "Price per unit    | %s\n", format.Currency(wholesale.PricePerUnit))
	_, _ = p.Fprintf(w, "Order cost        | %s\n", format.Currency(wholesale.TotalOrderCost))
	_, _ = p.Fprintf(w, "Order price       | %s\n", format.Currency(wholesale.TotalOrderPrice))
	_, _ = p.Fprintf(w, "Profit per order  | %s (%s)\n", format.Currency(wholesale.Profit), format.Percent(wholesale.ProfitMargin))
	_, _ = p.Fprintf(w, "Orders per month  | %d\n", wholesale.OrderVolume)
	_, _ = p.Fprintf(w, "Monthly sales     | %s\n", format.Currency(wholesale.MonthlySales))
	_, _ = p.Fprintf(w, "Monthly profit    | %s\n\n", format.Currency(wholesale.MonthlyProfit))

	custom := report.Custom
	_, _ = p.Fprintf(w, "--- Custom Packages (%s) ---\n", custom.Decoration.Label())
	_, _ = p.Fprintf(w, "Tier       | Qty   | Cost/Package | Price/Package | Profit     | Margin | Units/Month\n")
	_, _ = p.Fprintf(w, "____       | ___   | ____________ | _____________ | ______     | ______ | ___________\n")
	for _, tier := range custom.Tiers {
		units := format.Count(int64(tier.MonthlyUnits))
		if tier.FallbackUnits {
			units += " *"
		}
		_, _ = p.Fprintf(w, "%-10s | %-5d | %12s | %13s | %10s | %6s | %s\n",
			tier.Tier.Name, tier.Tier.Quantity,
			format.Currency(tier.CostPerPackage), format.Currency(tier.PricePerPackage),
			format.Currency(tier.Profit), format.Percent(tier.ProfitMargin), units)
	}
	_, _ = p.Fprintf(w, "Monthly sales %s, cost %s, profit %s across %s packages\n\n",
		format.Currency(custom.TotalMonthlySales), format.Currency(custom.TotalMonthlyCost),
		format.Currency(custom.TotalMonthlyProfit), format.Count(custom.TotalMonthlyUnits))

	retail := report.Retail
	_, _ = p.Fprintf(w, "--- Retail Multipacks ---\n")
	_, _ = p.Fprintf(w, "Package              | Pairs | Cost/Package | Price/Package | Profit     | Margin | Units/Month\n")
	_, _ = p.Fprintf(w, "_______              | _____ | ____________ | _____________ | ______     | ______ | ___________\n")
	for _, pkg := range retail.Packages {
		units := format.Count(int64(pkg.Volume))
		if !pkg.VolumeMatched {
			units += " *"
		}
		_, _ = p.Fprintf(w, "%-20s | %-5d | %12s | %13s | %10s | %6s | %s\n",
			pkg.Package.Name, pkg.Package.Pairs,
			format.Currency(pkg.TotalCostPerPackage), format.Currency(pkg.PricePerPackage),
			format.Currency(pkg.Profit), format.Percent(pkg.ProfitMargin), units)
	}
	_, _ = p.Fprintf(w, "Monthly sales %s, cost %s, profit %s across %s packages\n\n",
		format.Currency(retail.TotalMonthlySales), format.Currency(retail.TotalMonthlyCost),
		format.Currency(retail.TotalMonthlyProfit), format.Count(retail.TotalVolume))

	stmt := report.Statement
	_, _ = p.Fprintf(w, "--- Monthly Income Statement ---\n")
	for _, line := range stmt.Lines() {
		_, _ = p.Fprintf(w, "%-26s | %s\n", line.Label, lineValue(line, format.Currency))
	}
	_, _ = p.Fprintf(w, "\n")

	_, _ = p.Fprintf(w, "--- Channel Mix ---\n")
	_, _ = p.Fprintf(w, "Channel          | Revenue      | Share  | Profit       | Share\n")
	_, _ = p.Fprintf(w, "_______          | _______      | _____  | ______       | _____\n")
	for _, share := range ChannelMix(stmt) {
		_, _ = p.Fprintf(w, "%-16s | %12s | %6s | %12s | %s\n",
			share.Channel.Label(),
			format.Currency(share.Revenue), format.Percent(share.RevenueShare),
			format.Currency(share.Profit), format.Percent(share.ProfitShare))
	}
	_, _ = p.Fprintf(w, "\n")

	_, _ = p.Fprintf(w, "--- Breakeven (units per month to cover %s fixed costs) ---\n", format.Currency(stmt.TotalFixedCosts))
	for _, point := range stmt.Breakevens {
		value := format.NotApplicable
		if point.Breakeven.Reachable {
			value = format.Count(point.Breakeven.Units) + " " + point.Channel.UnitLabel()
		}
		_, _ = p.Fprintf(w, "%-16s | %s\n", point.Channel.Label(), value)
	}

	if hasEstimates(report) {
		_, _ = p.Fprintf(w, "\n* units not found in the sales plan or volume list\n")
	}
}

// CsvFormat outputs the income statement in comma-separated value format,
// one section per block of the statement.
func CsvFormat(w io.Writer, stmt economics.IncomeStatement) error {
	cw := csv.NewWriter(w)
	for _, record := range csvRecords(stmt) {
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// CsvString returns the CSV rendering of the income statement.
func CsvString(stmt economics.IncomeStatement) (string, error) {
	var buf bytes.Buffer
	if err := CsvFormat(&buf, stmt); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// JSONFormat outputs the complete report as indented JSON.
func JSONFormat(w io.Writer, report economics.Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

// ChannelShare is one channel's slice of the revenue and profit mix.
type ChannelShare struct {
	Channel      economics.Channel `json:"channel"`
	Revenue      decimal.Decimal   `json:"revenue"`
	RevenueShare mathutil.Percent  `json:"revenueShare"`
	Profit       decimal.Decimal   `json:"profit"`
	ProfitShare  mathutil.Percent  `json:"profitShare"`
}

// ChannelMix returns each channel's share of total revenue and of operating
// profit, in the order of the statement's distributions. A share is undefined
// when its total is zero; profit shares turn negative when operating profit is
// a loss.
func ChannelMix(stmt economics.IncomeStatement) []ChannelShare {
	profits := make(map[economics.Channel]decimal.Decimal, len(stmt.ProfitDistribution))
	for _, entry := range stmt.ProfitDistribution {
		profits[entry.Channel] = entry.Value
	}

	mix := make([]ChannelShare, 0, len(stmt.RevenueDistribution))
	for _, entry := range stmt.RevenueDistribution {
		profit := profits[entry.Channel]
		mix = append(mix, ChannelShare{
			Channel:      entry.Channel,
			Revenue:      entry.Value,
			RevenueShare: mathutil.PercentOf(entry.Value, stmt.TotalRevenue),
			Profit:       profit,
			ProfitShare:  mathutil.PercentOf(profit, stmt.OperatingProfit),
		})
	}
	return mix
}

func csvRecords(stmt economics.IncomeStatement) [][]string {
	blank := []string{}
	records := [][]string{
		{"Monthly Income Statement"},
		{"Revenue", "Amount"},
	}

	for _, line := range stmt.Lines() {
		value := lineValue(line, csvAmount)
		switch {
		case line.Key == economics.KeyTotalRevenue:
			records = append(records, []string{line.Label, value}, blank, []string{"COGS", "Amount"})
		case line.Key == economics.KeyTotalCOGS:
			records = append(records, []string{line.Label, value}, blank)
		case line.Key == economics.KeyGrossMargin:
			records = append(records, []string{line.Label, value}, blank, []string{"Fixed Expenses", "Amount"})
		case line.Key == economics.KeyTotalFixedCosts:
			records = append(records, []string{line.Label, value}, blank)
		default:
			records = append(records, []string{line.Label, value})
		}
	}
	return records
}

func csvAmount(amount decimal.Decimal) string {
	return amount.StringFixed(constants.CurrencyPlaces)
}

func lineValue(line economics.Line, amount func(decimal.Decimal) string) string {
	if line.Kind == economics.LinePercent {
		return format.Percent(line.Percent)
	}
	return amount(line.Amount)
}

func hasEstimates(report economics.Report) bool {
	for _, tier := range report.Custom.Tiers {
		if tier.FallbackUnits {
			return true
		}
	}
	for _, pkg := range report.Retail.Packages {
		if !pkg.VolumeMatched {
			return true
		}
	}
	return false
}

// Summary returns a one-line summary of the statement, used in logs.
func Summary(stmt economics.IncomeStatement) string {
	parts := []string{
		"revenue " + format.Currency(stmt.TotalRevenue),
		"gross " + format.Currency(stmt.GrossProfit) + " (" + format.Percent(stmt.GrossMargin) + ")",
		"operating " + format.Currency(stmt.OperatingProfit) + " (" + format.Percent(stmt.NetMargin) + ")",
	}
	return strings.Join(parts, ", ")
}
