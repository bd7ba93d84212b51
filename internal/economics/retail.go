package economics

import (
	"github.com/iwvelando/unit-economics/pkg/mathutil"
	"github.com/shopspring/decimal"
)

// VolumeIndex maps a retail package name to its monthly unit volume.
type VolumeIndex map[string]int

// NewVolumeIndex indexes volumes by name. When a name repeats, the first
// entry wins.
func NewVolumeIndex(volumes []MonthlyVolume) VolumeIndex {
	index := make(VolumeIndex, len(volumes))
	for _, v := range volumes {
		if _, exists := index[v.Name]; exists {
			continue
		}
		index[v.Name] = v.Units
	}
	return index
}

// Units returns the volume for a package name, zero when it has none.
func (idx VolumeIndex) Units(name string) (int, bool) {
	units, ok := idx[name]
	return units, ok
}

// RetailPackageResult holds the figures for one retail package.
type RetailPackageResult struct {
	Package             RetailPackage    `json:"package"`
	TotalCostPerPackage decimal.Decimal  `json:"totalCostPerPackage"`
	PricePerPackage     decimal.Decimal  `json:"pricePerPackage"`
	Profit              decimal.Decimal  `json:"profit"`
	ProfitMargin        mathutil.Percent `json:"profitMargin"`
	Volume              int              `json:"volume"`
	VolumeMatched       bool             `json:"volumeMatched"`
	MonthlySales        decimal.Decimal  `json:"monthlySales"`
	MonthlyCost         decimal.Decimal  `json:"monthlyCost"`
	MonthlyProfit       decimal.Decimal  `json:"monthlyProfit"`
}

// RetailResult holds every retail package plus the channel aggregates.
type RetailResult struct {
	Packages           []RetailPackageResult `json:"packages"`
	TotalVolume        int64                 `json:"totalVolume"`
	TotalMonthlySales  decimal.Decimal       `json:"totalMonthlySales"`
	TotalMonthlyCost   decimal.Decimal       `json:"totalMonthlyCost"`
	TotalMonthlyProfit decimal.Decimal       `json:"totalMonthlyProfit"`
}

// CalculateRetailPackage prices one package at the given monthly volume.
func CalculateRetailPackage(pkg RetailPackage, volume int, matched bool) RetailPackageResult {
	totalCost := mathutil.FromFloat(pkg.CostPerPair).Mul(decimal.NewFromInt(int64(pkg.Pairs))).
		Add(mathutil.FromFloat(pkg.Packaging)).
		Add(mathutil.FromFloat(pkg.ShippingCost))
	price := mathutil.ApplyMarkup(totalCost, pkg.Markup)
	profit := price.Sub(totalCost)
	units := decimal.NewFromInt(int64(volume))

	return RetailPackageResult{
		Package:             pkg,
		TotalCostPerPackage: totalCost,
		PricePerPackage:     price,
		Profit:              profit,
		ProfitMargin:        mathutil.PercentOf(profit, price),
		Volume:              volume,
		VolumeMatched:       matched,
		MonthlySales:        price.Mul(units),
		MonthlyCost:         totalCost.Mul(units),
		MonthlyProfit:       profit.Mul(units),
	}
}

// CalculateRetail prices every package, looks up its monthly volume by name
// and sums the monthly figures in package order. A package without a volume
// entry sells nothing.
func CalculateRetail(ch RetailChannel) RetailResult {
	index := NewVolumeIndex(ch.Volumes)
	result := RetailResult{
		Packages:           make([]RetailPackageResult, 0, len(ch.Packages)),
		TotalMonthlySales:  decimal.Zero,
		TotalMonthlyCost:   decimal.Zero,
		TotalMonthlyProfit: decimal.Zero,
	}

	for _, pkg := range ch.Packages {
		volume, matched := index.Units(pkg.Name)
		pkgResult := CalculateRetailPackage(pkg, volume, matched)
		result.Packages = append(result.Packages, pkgResult)
		result.TotalVolume += int64(volume)
		result.TotalMonthlySales = result.TotalMonthlySales.Add(pkgResult.MonthlySales)
		result.TotalMonthlyCost = result.TotalMonthlyCost.Add(pkgResult.MonthlyCost)
		result.TotalMonthlyProfit = result.TotalMonthlyProfit.Add(pkgResult.MonthlyProfit)
	}

	return result
}

// Totals returns the retail channel's monthly contribution; its unit count
// is the number of packages sold.
func (r RetailResult) Totals() ChannelTotals {
	return ChannelTotals{
		Channel: ChannelRetailMultipack,
		Sales:   r.TotalMonthlySales,
		Cost:    r.TotalMonthlyCost,
		Profit:  r.TotalMonthlyProfit,
		Units:   r.TotalVolume,
	}
}
