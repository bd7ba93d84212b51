// Package economics computes per-unit economics for the three sales channels
// and consolidates them into a monthly income statement with breakeven counts.
//
// Every calculation is a pure function of its inputs. Amounts arrive as
// float64 from configuration and snapshots and are converted to decimals
// before any arithmetic, so documented scenario values come out exact.
package economics

// Channel identifies one of the three sales models.
type Channel string

const (
	ChannelWholesale       Channel = "wholesale"
	ChannelCustomPackage   Channel = "custom-package"
	ChannelRetailMultipack Channel = "retail-multipack"
)

// Channels lists every channel in statement order.
var Channels = []Channel{ChannelWholesale, ChannelCustomPackage, ChannelRetailMultipack}

// Label returns the display name of the channel.
func (c Channel) Label() string {
	switch c {
	case ChannelWholesale:
		return "Wholesale"
	case ChannelCustomPackage:
		return "Custom Package"
	case ChannelRetailMultipack:
		return "Retail Multipack"
	}
	return string(c)
}

// UnitLabel names what one unit of the channel's volume is.
func (c Channel) UnitLabel() string {
	if c == ChannelWholesale {
		return "orders"
	}
	return "packages"
}

// WholesaleParams is the flat cost structure of one wholesale order.
type WholesaleParams struct {
	MinOrder  int     `yaml:"minOrder" json:"minOrder" mapstructure:"minOrder"`
	Materials float64 `yaml:"materials" json:"materials" mapstructure:"materials"`
	Labor     float64 `yaml:"labor" json:"labor" mapstructure:"labor"`
	Overhead  float64 `yaml:"overhead" json:"overhead" mapstructure:"overhead"`
	Packaging float64 `yaml:"packaging" json:"packaging" mapstructure:"packaging"`
	Shipping  float64 `yaml:"shipping" json:"shipping" mapstructure:"shipping"`
	Markup    float64 `yaml:"markup" json:"markup" mapstructure:"markup"`
}

// WholesaleChannel is the wholesale cost structure plus the number of
// minimum-size orders placed per month.
type WholesaleChannel struct {
	WholesaleParams `yaml:",inline" mapstructure:",squash"`
	OrderVolume     int `yaml:"orderVolume" json:"orderVolume" mapstructure:"orderVolume"`
}

// CustomPackageTier is one co-branded package size.
type CustomPackageTier struct {
	Name                 string  `yaml:"name" json:"name" mapstructure:"name"`
	Quantity             int     `yaml:"quantity" json:"quantity" mapstructure:"quantity"`
	PrintingCost         float64 `yaml:"printingCost" json:"printingCost" mapstructure:"printingCost"`
	EmbroideryAdditional float64 `yaml:"embroideryAdditional" json:"embroideryAdditional" mapstructure:"embroideryAdditional"`
	WovenLabelAdditional float64 `yaml:"wovenLabelAdditional" json:"wovenLabelAdditional" mapstructure:"wovenLabelAdditional"`
	BaseSockCost         float64 `yaml:"baseSockCost" json:"baseSockCost" mapstructure:"baseSockCost"`
	ShippingCost         float64 `yaml:"shippingCost" json:"shippingCost" mapstructure:"shippingCost"`
	Markup               float64 `yaml:"markup" json:"markup" mapstructure:"markup"`
}

// CustomChannel holds the custom-package tiers and the decoration method
// shared by all of them.
type CustomChannel struct {
	Decoration DecorationMethod    `yaml:"decoration" json:"decoration" mapstructure:"decoration"`
	Tiers      []CustomPackageTier `yaml:"tiers" json:"tiers" mapstructure:"tiers"`
	SalesPlan  SalesPlan           `yaml:"salesPlan" json:"salesPlan" mapstructure:"salesPlan"`
}

// RetailPackage is one direct-to-consumer multipack.
type RetailPackage struct {
	Name         string  `yaml:"name" json:"name" mapstructure:"name"`
	Pairs        int     `yaml:"pairs" json:"pairs" mapstructure:"pairs"`
	CostPerPair  float64 `yaml:"costPerPair" json:"costPerPair" mapstructure:"costPerPair"`
	Packaging    float64 `yaml:"packaging" json:"packaging" mapstructure:"packaging"`
	ShippingCost float64 `yaml:"shippingCost" json:"shippingCost" mapstructure:"shippingCost"`
	Markup       float64 `yaml:"markup" json:"markup" mapstructure:"markup"`
}

// MonthlyVolume is the number of packages of the named retail package sold
// per month.
type MonthlyVolume struct {
	Name  string `yaml:"name" json:"name" mapstructure:"name"`
	Units int    `yaml:"units" json:"units" mapstructure:"units"`
}

// RetailChannel holds the retail packages and their monthly volumes, matched
// by name.
type RetailChannel struct {
	Packages []RetailPackage `yaml:"packages" json:"packages" mapstructure:"packages"`
	Volumes  []MonthlyVolume `yaml:"volumes" json:"volumes" mapstructure:"volumes"`
}

// FixedCost is one monthly expense category.
type FixedCost struct {
	Category string  `yaml:"category" json:"category" mapstructure:"category"`
	Amount   float64 `yaml:"amount" json:"amount" mapstructure:"amount"`
}

// FixedCostSchedule is the ordered list of monthly fixed expenses.
type FixedCostSchedule []FixedCost

// Model is the complete set of inputs. It is the only state that is saved and
// restored; everything else is derived from it on demand.
type Model struct {
	Wholesale  WholesaleChannel  `yaml:"wholesale" json:"wholesale" mapstructure:"wholesale"`
	Custom     CustomChannel     `yaml:"customPackages" json:"customPackages" mapstructure:"customPackages"`
	Retail     RetailChannel     `yaml:"retail" json:"retail" mapstructure:"retail"`
	FixedCosts FixedCostSchedule `yaml:"fixedCosts" json:"fixedCosts" mapstructure:"fixedCosts"`
}

// Clone returns a deep copy of the model. Empty lists come back nil.
func (m Model) Clone() Model {
	out := m
	out.Custom.Tiers = append([]CustomPackageTier(nil), m.Custom.Tiers...)
	out.Custom.SalesPlan.Buckets = append([]SalesBucket(nil), m.Custom.SalesPlan.Buckets...)
	out.Retail.Packages = append([]RetailPackage(nil), m.Retail.Packages...)
	out.Retail.Volumes = append([]MonthlyVolume(nil), m.Retail.Volumes...)
	out.FixedCosts = append(FixedCostSchedule(nil), m.FixedCosts...)
	return out
}

// ApplyDefaults sets an empty decoration method to printing. Sales plan
// buckets are left alone: an empty list is a valid plan.
func (m *Model) ApplyDefaults() {
	if m.Custom.Decoration == "" {
		m.Custom.Decoration = DecorationPrinting
	}
}

// DefaultModel returns the reference configuration of the business.
func DefaultModel() Model {
	return Model{
		Wholesale: WholesaleChannel{
			WholesaleParams: WholesaleParams{
				MinOrder:  180,
				Materials: 3.2,
				Labor:     1.1,
				Overhead:  0.8,
				Packaging: 0.3,
				Shipping:  1.8,
				Markup:    30,
			},
			OrderVolume: 5,
		},
		Custom: CustomChannel{
			Decoration: DecorationPrinting,
			Tiers: []CustomPackageTier{
				{Name: "Small", Quantity: 20, PrintingCost: 1.2, EmbroideryAdditional: 0.5, WovenLabelAdditional: 0.3, BaseSockCost: 2.5, ShippingCost: 13, Markup: 40},
				{Name: "Medium", Quantity: 60, PrintingCost: 1.0, EmbroideryAdditional: 0.4, WovenLabelAdditional: 0.25, BaseSockCost: 2.3, ShippingCost: 32, Markup: 35},
				{Name: "Large", Quantity: 120, PrintingCost: 0.8, EmbroideryAdditional: 0.3, WovenLabelAdditional: 0.2, BaseSockCost: 2.1, ShippingCost: 63, Markup: 30},
			},
			SalesPlan: DefaultSalesPlan(),
		},
		Retail: RetailChannel{
			Packages: []RetailPackage{
				{Name: "Diabetic 3-Pack", Pairs: 3, CostPerPair: 2.8, Packaging: 0.7, ShippingCost: 6, Markup: 65},
				{Name: "Diabetic 6-Pack", Pairs: 6, CostPerPair: 2.7, Packaging: 0.9, ShippingCost: 7, Markup: 60},
				{Name: "Compression 3-Pack", Pairs: 3, CostPerPair: 3.9, Packaging: 0.7, ShippingCost: 6, Markup: 70},
				{Name: "Compression 6-Pack", Pairs: 6, CostPerPair: 3.7, Packaging: 0.9, ShippingCost: 7, Markup: 65},
			},
			Volumes: []MonthlyVolume{
				{Name: "Diabetic 3-Pack", Units: 150},
				{Name: "Diabetic 6-Pack", Units: 120},
				{Name: "Compression 3-Pack", Units: 180},
				{Name: "Compression 6-Pack", Units: 130},
			},
		},
		FixedCosts: DefaultFixedCosts(),
	}
}

// DefaultFixedCosts returns the reference fixed-cost schedule.
func DefaultFixedCosts() FixedCostSchedule {
	return FixedCostSchedule{
		{Category: "warehousing", Amount: 2500},
		{Category: "shipping", Amount: 800},
		{Category: "salaries", Amount: 12000},
		{Category: "marketing", Amount: 3500},
		{Category: "software", Amount: 500},
		{Category: "tax", Amount: 2000},
		{Category: "other", Amount: 1000},
	}
}
