package economics

import (
	"github.com/iwvelando/unit-economics/pkg/mathutil"
	"github.com/shopspring/decimal"
)

// ChannelTotals is one channel's contribution to the monthly statement.
type ChannelTotals struct {
	Channel Channel         `json:"channel"`
	Sales   decimal.Decimal `json:"sales"`
	Cost    decimal.Decimal `json:"cost"`
	Profit  decimal.Decimal `json:"profit"`
	Units   int64           `json:"units"`
}

// WholesaleResult holds per-order and monthly wholesale figures.
type WholesaleResult struct {
	CostPerUnit     decimal.Decimal  `json:"costPerUnit"`
	PricePerUnit    decimal.Decimal  `json:"pricePerUnit"`
	TotalOrderCost  decimal.Decimal  `json:"totalOrderCost"`
	TotalOrderPrice decimal.Decimal  `json:"totalOrderPrice"`
	Profit          decimal.Decimal  `json:"profit"`
	ProfitMargin    mathutil.Percent `json:"profitMargin"`
	OrderVolume     int              `json:"orderVolume"`
	MonthlySales    decimal.Decimal  `json:"monthlySales"`
	MonthlyCost     decimal.Decimal  `json:"monthlyCost"`
	MonthlyProfit   decimal.Decimal  `json:"monthlyProfit"`
}

// CalculateWholesale prices one minimum-size order and scales it by the
// monthly order volume.
func CalculateWholesale(ch WholesaleChannel) WholesaleResult {
	costPerUnit := mathutil.Sum(
		mathutil.FromFloat(ch.Materials),
		mathutil.FromFloat(ch.Labor),
		mathutil.FromFloat(ch.Overhead),
		mathutil.FromFloat(ch.Packaging),
		mathutil.FromFloat(ch.Shipping),
	)
	pricePerUnit := mathutil.ApplyMarkup(costPerUnit, ch.Markup)

	minOrder := decimal.NewFromInt(int64(ch.MinOrder))
	totalOrderCost := costPerUnit.Mul(minOrder)
	totalOrderPrice := pricePerUnit.Mul(minOrder)
	profit := totalOrderPrice.Sub(totalOrderCost)

	volume := decimal.NewFromInt(int64(ch.OrderVolume))
	return WholesaleResult{
		CostPerUnit:     costPerUnit,
		PricePerUnit:    pricePerUnit,
		TotalOrderCost:  totalOrderCost,
		TotalOrderPrice: totalOrderPrice,
		Profit:          profit,
		ProfitMargin:    mathutil.PercentOf(profit, totalOrderPrice),
		OrderVolume:     ch.OrderVolume,
		MonthlySales:    totalOrderPrice.Mul(volume),
		MonthlyCost:     totalOrderCost.Mul(volume),
		MonthlyProfit:   profit.Mul(volume),
	}
}

// Totals returns the wholesale channel's monthly contribution; its unit
// count is the number of orders.
func (r WholesaleResult) Totals() ChannelTotals {
	return ChannelTotals{
		Channel: ChannelWholesale,
		Sales:   r.MonthlySales,
		Cost:    r.MonthlyCost,
		Profit:  r.MonthlyProfit,
		Units:   int64(r.OrderVolume),
	}
}
