package economics

import (
	"go.uber.org/zap"
)

// Report is everything derived from one model.
type Report struct {
	Wholesale WholesaleResult     `json:"wholesale"`
	Custom    CustomPackageResult `json:"customPackages"`
	Retail    RetailResult        `json:"retail"`
	Statement IncomeStatement     `json:"statement"`
}

// Engine evaluates models. It holds no state besides its logger, so a single
// Engine can be shared freely.
type Engine struct {
	logger *zap.Logger
}

// NewEngine creates a new engine with the given logger.
// If logger is nil, it will use a no-op logger to prevent panics.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger}
}

// Evaluate runs the three channel calculators and the income statement for
// one model.
func (e *Engine) Evaluate(m Model) Report {
	wholesale := CalculateWholesale(m.Wholesale)
	custom := CalculateCustomPackages(m.Custom)
	retail := CalculateRetail(m.Retail)
	statement := BuildIncomeStatement(wholesale, custom, retail, m.FixedCosts)

	for _, totals := range statement.Channels {
		e.logger.Debug("channel evaluated",
			zap.String("op", "economics.Evaluate"),
			zap.String("channel", string(totals.Channel)),
			zap.String("sales", totals.Sales.String()),
			zap.String("cost", totals.Cost.String()),
			zap.String("profit", totals.Profit.String()),
			zap.Int64("units", totals.Units),
		)
	}
	for _, tier := range custom.Tiers {
		if tier.FallbackUnits {
			e.logger.Warn("custom package quantity has no sales bucket, using fallback units",
				zap.String("op", "economics.Evaluate"),
				zap.String("tier", tier.Tier.Name),
				zap.Int("quantity", tier.Tier.Quantity),
				zap.Int("units", tier.MonthlyUnits),
			)
		}
	}
	for _, pkg := range retail.Packages {
		if !pkg.VolumeMatched {
			e.logger.Warn("retail package has no monthly volume, treating as zero",
				zap.String("op", "economics.Evaluate"),
				zap.String("package", pkg.Package.Name),
			)
		}
	}
	e.logger.Debug("income statement built",
		zap.String("op", "economics.Evaluate"),
		zap.String("totalRevenue", statement.TotalRevenue.String()),
		zap.String("operatingProfit", statement.OperatingProfit.String()),
	)

	return Report{
		Wholesale: wholesale,
		Custom:    custom,
		Retail:    retail,
		Statement: statement,
	}
}
