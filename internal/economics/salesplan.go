package economics

// SalesBucket maps a custom-package quantity to the number of packages of
// that size assumed to sell each month.
type SalesBucket struct {
	Quantity int `yaml:"quantity" json:"quantity" mapstructure:"quantity"`
	Units    int `yaml:"units" json:"units" mapstructure:"units"`
}

// SalesPlan holds the monthly sales assumption for custom packages. A tier
// whose quantity matches no bucket sells FallbackUnits per month.
type SalesPlan struct {
	Buckets       []SalesBucket `yaml:"buckets" json:"buckets" mapstructure:"buckets"`
	FallbackUnits int           `yaml:"fallbackUnits" json:"fallbackUnits" mapstructure:"fallbackUnits"`
}

// DefaultSalesPlan returns the reference plan: 25 small, 18 medium and 12
// large packages per month, and nothing for any other size.
func DefaultSalesPlan() SalesPlan {
	return SalesPlan{
		Buckets: []SalesBucket{
			{Quantity: 20, Units: 25},
			{Quantity: 60, Units: 18},
			{Quantity: 120, Units: 12},
		},
		FallbackUnits: 0,
	}
}

// UnitsFor returns the monthly units for a package quantity and whether a
// bucket matched. The first matching bucket wins.
func (p SalesPlan) UnitsFor(quantity int) (int, bool) {
	for _, bucket := range p.Buckets {
		if bucket.Quantity == quantity {
			return bucket.Units, true
		}
	}
	return p.FallbackUnits, false
}
