package economics

import (
	"github.com/iwvelando/unit-economics/pkg/mathutil"
	"github.com/shopspring/decimal"
)

// FixedCostLine is one fixed-cost category as it appears on the statement.
type FixedCostLine struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// DistributionEntry is one channel's slice of revenue or profit. The share
// percentage is left to the presentation layer.
type DistributionEntry struct {
	Channel Channel         `json:"channel"`
	Value   decimal.Decimal `json:"value"`
}

// Breakeven is the number of channel units needed each month to cover the
// fixed costs. It is not reachable when the channel sells nothing or makes
// no profit per unit.
type Breakeven struct {
	Units     int64 `json:"units"`
	Reachable bool  `json:"reachable"`
}

// BreakevenPoint pairs a channel with its breakeven count.
type BreakevenPoint struct {
	Channel   Channel   `json:"channel"`
	Breakeven Breakeven `json:"breakeven"`
}

// IncomeStatement is the blended monthly statement across all channels.
type IncomeStatement struct {
	Channels            []ChannelTotals     `json:"channels"`
	TotalRevenue        decimal.Decimal     `json:"totalRevenue"`
	TotalCOGS           decimal.Decimal     `json:"totalCogs"`
	GrossProfit         decimal.Decimal     `json:"grossProfit"`
	GrossMargin         mathutil.Percent    `json:"grossMargin"`
	FixedCosts          []FixedCostLine     `json:"fixedCosts"`
	TotalFixedCosts     decimal.Decimal     `json:"totalFixedCosts"`
	OperatingProfit     decimal.Decimal     `json:"operatingProfit"`
	NetMargin           mathutil.Percent    `json:"netMargin"`
	RevenueDistribution []DistributionEntry `json:"revenueDistribution"`
	ProfitDistribution  []DistributionEntry `json:"profitDistribution"`
	Breakevens          []BreakevenPoint    `json:"breakevens"`
}

// Total returns the sum of every amount in the schedule, zero-valued
// categories included.
func (s FixedCostSchedule) Total() decimal.Decimal {
	total := decimal.Zero
	for _, cost := range s {
		total = total.Add(mathutil.FromFloat(cost.Amount))
	}
	return total
}

// BuildIncomeStatement consolidates the three channel results with the fixed
// cost schedule.
func BuildIncomeStatement(wholesale WholesaleResult, custom CustomPackageResult, retail RetailResult, fixed FixedCostSchedule) IncomeStatement {
	channels := []ChannelTotals{wholesale.Totals(), custom.Totals(), retail.Totals()}

	stmt := IncomeStatement{
		Channels:            channels,
		TotalRevenue:        decimal.Zero,
		TotalCOGS:           decimal.Zero,
		FixedCosts:          make([]FixedCostLine, 0, len(fixed)),
		RevenueDistribution: make([]DistributionEntry, 0, len(channels)),
		ProfitDistribution:  make([]DistributionEntry, 0, len(channels)),
		Breakevens:          make([]BreakevenPoint, 0, len(channels)),
	}

	for _, ch := range channels {
		stmt.TotalRevenue = stmt.TotalRevenue.Add(ch.Sales)
		stmt.TotalCOGS = stmt.TotalCOGS.Add(ch.Cost)
		stmt.RevenueDistribution = append(stmt.RevenueDistribution, DistributionEntry{Channel: ch.Channel, Value: ch.Sales})
		stmt.ProfitDistribution = append(stmt.ProfitDistribution, DistributionEntry{Channel: ch.Channel, Value: ch.Profit})
	}
	stmt.GrossProfit = stmt.TotalRevenue.Sub(stmt.TotalCOGS)
	stmt.GrossMargin = mathutil.PercentOf(stmt.GrossProfit, stmt.TotalRevenue)

	for _, cost := range fixed {
		stmt.FixedCosts = append(stmt.FixedCosts, FixedCostLine{
			Category: cost.Category,
			Amount:   mathutil.FromFloat(cost.Amount),
		})
	}
	stmt.TotalFixedCosts = fixed.Total()
	stmt.OperatingProfit = stmt.GrossProfit.Sub(stmt.TotalFixedCosts)
	stmt.NetMargin = mathutil.PercentOf(stmt.OperatingProfit, stmt.TotalRevenue)

	for _, ch := range channels {
		stmt.Breakevens = append(stmt.Breakevens, BreakevenPoint{
			Channel:   ch.Channel,
			Breakeven: CalculateBreakeven(stmt.TotalFixedCosts, ch.Profit, ch.Units),
		})
	}

	return stmt
}

// CalculateBreakeven returns ceil(fixedCosts / (profit / units)), the number
// of units whose average profit covers the fixed costs.
func CalculateBreakeven(fixedCosts, profit decimal.Decimal, units int64) Breakeven {
	if units <= 0 || !profit.IsPositive() {
		return Breakeven{}
	}
	if !fixedCosts.IsPositive() {
		return Breakeven{Units: 0, Reachable: true}
	}
	needed := fixedCosts.Mul(decimal.NewFromInt(units)).Div(profit).Ceil()
	return Breakeven{Units: needed.IntPart(), Reachable: true}
}

// Channel returns the totals for one channel, zero-valued when absent.
func (s IncomeStatement) Channel(ch Channel) ChannelTotals {
	for _, totals := range s.Channels {
		if totals.Channel == ch {
			return totals
		}
	}
	return ChannelTotals{Channel: ch}
}

// Breakeven returns the breakeven count for one channel.
func (s IncomeStatement) Breakeven(ch Channel) Breakeven {
	for _, point := range s.Breakevens {
		if point.Channel == ch {
			return point.Breakeven
		}
	}
	return Breakeven{}
}
