package economics

import (
	"github.com/iwvelando/unit-economics/pkg/mathutil"
	"github.com/shopspring/decimal"
)

// CustomTierResult holds the figures for one custom-package tier.
type CustomTierResult struct {
	Tier              CustomPackageTier `json:"tier"`
	DecorationCost    decimal.Decimal   `json:"decorationCost"`
	CostPerUnit       decimal.Decimal   `json:"costPerUnit"`
	CostPerPackage    decimal.Decimal   `json:"costPerPackage"`
	PricePerPackage   decimal.Decimal   `json:"pricePerPackage"`
	Profit            decimal.Decimal   `json:"profit"`
	ProfitMargin      mathutil.Percent  `json:"profitMargin"`
	MonthlyUnits      int               `json:"monthlyUnits"`
	FallbackUnits     bool              `json:"fallbackUnits,omitempty"`
	MonthlySalesValue decimal.Decimal   `json:"monthlySalesValue"`
	MonthlyCost       decimal.Decimal   `json:"monthlyCost"`
	MonthlyProfit     decimal.Decimal   `json:"monthlyProfit"`
}

// CustomPackageResult holds every tier plus the channel aggregates.
type CustomPackageResult struct {
	Decoration         DecorationMethod   `json:"decoration"`
	Tiers              []CustomTierResult `json:"tiers"`
	TotalMonthlyUnits  int64              `json:"totalMonthlyUnits"`
	TotalMonthlySales  decimal.Decimal    `json:"totalMonthlySales"`
	TotalMonthlyCost   decimal.Decimal    `json:"totalMonthlyCost"`
	TotalMonthlyProfit decimal.Decimal    `json:"totalMonthlyProfit"`
}

// DecorationCost returns the per-unit decoration cost of the tier under the
// given method. Embroidery and woven labels add to the printing cost.
func (t CustomPackageTier) DecorationCost(method DecorationMethod) decimal.Decimal {
	cost := mathutil.FromFloat(t.PrintingCost)
	normalized, _ := ParseDecorationMethod(string(method))
	switch normalized {
	case DecorationEmbroidery:
		cost = cost.Add(mathutil.FromFloat(t.EmbroideryAdditional))
	case DecorationWovenLabel:
		cost = cost.Add(mathutil.FromFloat(t.WovenLabelAdditional))
	}
	return cost
}

// CalculateCustomTier prices one tier and applies the monthly sales plan.
func CalculateCustomTier(tier CustomPackageTier, method DecorationMethod, plan SalesPlan) CustomTierResult {
	decorationCost := tier.DecorationCost(method)
	costPerUnit := mathutil.FromFloat(tier.BaseSockCost).Add(decorationCost)
	costPerPackage := costPerUnit.Mul(decimal.NewFromInt(int64(tier.Quantity))).
		Add(mathutil.FromFloat(tier.ShippingCost))
	pricePerPackage := mathutil.ApplyMarkup(costPerPackage, tier.Markup)
	profit := pricePerPackage.Sub(costPerPackage)

	units, matched := plan.UnitsFor(tier.Quantity)
	monthly := decimal.NewFromInt(int64(units))

	return CustomTierResult{
		Tier:              tier,
		DecorationCost:    decorationCost,
		CostPerUnit:       costPerUnit,
		CostPerPackage:    costPerPackage,
		PricePerPackage:   pricePerPackage,
		Profit:            profit,
		ProfitMargin:      mathutil.PercentOf(profit, pricePerPackage),
		MonthlyUnits:      units,
		FallbackUnits:     !matched,
		MonthlySalesValue: pricePerPackage.Mul(monthly),
		MonthlyCost:       costPerPackage.Mul(monthly),
		MonthlyProfit:     profit.Mul(monthly),
	}
}

// CalculateCustomPackages prices every tier independently and sums the
// monthly figures in tier order.
func CalculateCustomPackages(ch CustomChannel) CustomPackageResult {
	method, _ := ParseDecorationMethod(string(ch.Decoration))
	result := CustomPackageResult{
		Decoration:         method,
		Tiers:              make([]CustomTierResult, 0, len(ch.Tiers)),
		TotalMonthlySales:  decimal.Zero,
		TotalMonthlyCost:   decimal.Zero,
		TotalMonthlyProfit: decimal.Zero,
	}

	for _, tier := range ch.Tiers {
		tierResult := CalculateCustomTier(tier, method, ch.SalesPlan)
		result.Tiers = append(result.Tiers, tierResult)
		result.TotalMonthlyUnits += int64(tierResult.MonthlyUnits)
		result.TotalMonthlySales = result.TotalMonthlySales.Add(tierResult.MonthlySalesValue)
		result.TotalMonthlyCost = result.TotalMonthlyCost.Add(tierResult.MonthlyCost)
		result.TotalMonthlyProfit = result.TotalMonthlyProfit.Add(tierResult.MonthlyProfit)
	}

	return result
}

// Totals returns the custom-package channel's monthly contribution; its unit
// count is the number of packages sold.
func (r CustomPackageResult) Totals() ChannelTotals {
	return ChannelTotals{
		Channel: ChannelCustomPackage,
		Sales:   r.TotalMonthlySales,
		Cost:    r.TotalMonthlyCost,
		Profit:  r.TotalMonthlyProfit,
		Units:   r.TotalMonthlyUnits,
	}
}
