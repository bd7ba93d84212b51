package economics

import "testing"

func smallTier() CustomPackageTier {
	return CustomPackageTier{
		Name:                 "Small",
		Quantity:             20,
		PrintingCost:         1.2,
		EmbroideryAdditional: 0.5,
		WovenLabelAdditional: 0.3,
		BaseSockCost:         2.5,
		ShippingCost:         13,
		Markup:               40,
	}
}

func TestCalculateCustomTier_SmallPrinting(t *testing.T) {
	result := CalculateCustomTier(smallTier(), DecorationPrinting, DefaultSalesPlan())

	assertDecimal(t, "decorationCost", result.DecorationCost, "1.2")
	assertDecimal(t, "costPerUnit", result.CostPerUnit, "3.7")
	assertDecimal(t, "costPerPackage", result.CostPerPackage, "87")
	assertDecimal(t, "pricePerPackage", result.PricePerPackage, "121.8")
	assertDecimal(t, "profit", result.Profit, "34.8")
	assertDecimal(t, "monthlySalesValue", result.MonthlySalesValue, "3045")
	assertDecimal(t, "monthlyCost", result.MonthlyCost, "2175")
	assertDecimal(t, "monthlyProfit", result.MonthlyProfit, "870")
	if result.MonthlyUnits != 25 {
		t.Fatalf("monthlyUnits = %d, want 25", result.MonthlyUnits)
	}
	if result.FallbackUnits {
		t.Fatal("quantity 20 should match a sales bucket")
	}
}

func TestDecorationCost_AdditionsRelativeToPrinting(t *testing.T) {
	tier := smallTier()
	printing := tier.DecorationCost(DecorationPrinting)

	assertDecimal(t, "embroidery delta", tier.DecorationCost(DecorationEmbroidery).Sub(printing), "0.5")
	assertDecimal(t, "woven label delta", tier.DecorationCost(DecorationWovenLabel).Sub(printing), "0.3")
	assertDecimal(t, "unknown method uses printing", tier.DecorationCost(DecorationMethod("screen")), "1.2")
}

func TestCalculateCustomPackages_ReferenceTiers(t *testing.T) {
	ch := DefaultModel().Custom
	result := CalculateCustomPackages(ch)

	if len(result.Tiers) != 3 {
		t.Fatalf("expected 3 tiers, got %d", len(result.Tiers))
	}
	expected := []struct {
		name   string
		price  string
		sales  string
		profit string
		units  int
	}{
		{"Small", "121.8", "3045", "870", 25},
		{"Medium", "310.5", "5589", "1449", 18},
		{"Large", "534.3", "6411.6", "1479.6", 12},
	}
	for i, want := range expected {
		got := result.Tiers[i]
		if got.Tier.Name != want.name {
			t.Fatalf("tier %d = %s, want %s", i, got.Tier.Name, want.name)
		}
		assertDecimal(t, want.name+" price", got.PricePerPackage, want.price)
		assertDecimal(t, want.name+" sales", got.MonthlySalesValue, want.sales)
		assertDecimal(t, want.name+" profit", got.MonthlyProfit, want.profit)
		if got.MonthlyUnits != want.units {
			t.Fatalf("%s units = %d, want %d", want.name, got.MonthlyUnits, want.units)
		}
	}

	assertDecimal(t, "totalMonthlySales", result.TotalMonthlySales, "15045.6")
	assertDecimal(t, "totalMonthlyCost", result.TotalMonthlyCost, "11247")
	assertDecimal(t, "totalMonthlyProfit", result.TotalMonthlyProfit, "3798.6")
	if result.TotalMonthlyUnits != 55 {
		t.Fatalf("totalMonthlyUnits = %d, want 55", result.TotalMonthlyUnits)
	}
}

func TestCalculateCustomPackages_DecorationSwitch(t *testing.T) {
	tests := []struct {
		method         DecorationMethod
		costPerPackage string
	}{
		{DecorationPrinting, "87"},
		{DecorationEmbroidery, "97"},
		{DecorationWovenLabel, "93"},
	}

	for _, tt := range tests {
		t.Run(string(tt.method), func(t *testing.T) {
			result := CalculateCustomPackages(CustomChannel{
				Decoration: tt.method,
				Tiers:      []CustomPackageTier{smallTier()},
				SalesPlan:  DefaultSalesPlan(),
			})
			if result.Decoration != tt.method {
				t.Fatalf("decoration = %s, want %s", result.Decoration, tt.method)
			}
			assertDecimal(t, "costPerPackage", result.Tiers[0].CostPerPackage, tt.costPerPackage)
		})
	}
}

func TestCalculateCustomPackages_UnknownQuantityUsesFallback(t *testing.T) {
	tier := smallTier()
	tier.Quantity = 40

	zeroFallback := CalculateCustomPackages(CustomChannel{Tiers: []CustomPackageTier{tier}, SalesPlan: DefaultSalesPlan()})
	got := zeroFallback.Tiers[0]
	if got.MonthlyUnits != 0 || !got.FallbackUnits {
		t.Fatalf("expected fallback of 0 units, got %d (fallback %v)", got.MonthlyUnits, got.FallbackUnits)
	}
	assertDecimal(t, "monthlySalesValue", got.MonthlySalesValue, "0")
	assertDecimal(t, "pricePerPackage still computed", got.PricePerPackage, "225.4")

	plan := DefaultSalesPlan()
	plan.FallbackUnits = 12
	withFallback := CalculateCustomPackages(CustomChannel{Tiers: []CustomPackageTier{tier}, SalesPlan: plan})
	if withFallback.Tiers[0].MonthlyUnits != 12 {
		t.Fatalf("expected configured fallback of 12, got %d", withFallback.Tiers[0].MonthlyUnits)
	}
}

func TestCalculateCustomPackages_Empty(t *testing.T) {
	result := CalculateCustomPackages(CustomChannel{})
	if len(result.Tiers) != 0 {
		t.Fatalf("expected no tiers, got %d", len(result.Tiers))
	}
	assertDecimal(t, "totalMonthlySales", result.TotalMonthlySales, "0")
	if result.Decoration != DecorationPrinting {
		t.Fatalf("decoration = %s, want printing", result.Decoration)
	}
}

func TestCalculateCustomTier_ZeroPriceMarginUndefined(t *testing.T) {
	result := CalculateCustomTier(CustomPackageTier{Name: "Free", Quantity: 20, Markup: 40}, DecorationPrinting, DefaultSalesPlan())
	if result.ProfitMargin.Defined() {
		t.Fatal("expected undefined margin for zero-priced package")
	}
}

func TestSalesPlanUnitsFor(t *testing.T) {
	plan := SalesPlan{
		Buckets:       []SalesBucket{{Quantity: 20, Units: 25}, {Quantity: 20, Units: 99}, {Quantity: 60, Units: 18}},
		FallbackUnits: 3,
	}

	tests := []struct {
		quantity int
		units    int
		matched  bool
	}{
		{20, 25, true},
		{60, 18, true},
		{120, 3, false},
		{0, 3, false},
	}
	for _, tt := range tests {
		units, matched := plan.UnitsFor(tt.quantity)
		if units != tt.units || matched != tt.matched {
			t.Errorf("UnitsFor(%d) = (%d, %v), want (%d, %v)", tt.quantity, units, matched, tt.units, tt.matched)
		}
	}
}

func TestParseDecorationMethod(t *testing.T) {
	tests := []struct {
		input    string
		expected DecorationMethod
		ok       bool
	}{
		{"Printing", DecorationPrinting, true},
		{"", DecorationPrinting, true},
		{"EMBROIDERY", DecorationEmbroidery, true},
		{"Woven Label", DecorationWovenLabel, true},
		{"woven-label", DecorationWovenLabel, true},
		{"woven_label", DecorationWovenLabel, true},
		{"screen print", DecorationPrinting, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			method, ok := ParseDecorationMethod(tt.input)
			if method != tt.expected || ok != tt.ok {
				t.Errorf("ParseDecorationMethod(%q) = (%s, %v), want (%s, %v)", tt.input, method, ok, tt.expected, tt.ok)
			}
		})
	}

	if DecorationWovenLabel.Label() != "Woven Label" {
		t.Errorf("unexpected label %q", DecorationWovenLabel.Label())
	}
}

func TestCalculateCustomPackages_ZeroMarkup(t *testing.T) {
	for _, method := range []DecorationMethod{DecorationPrinting, DecorationEmbroidery, DecorationWovenLabel} {
		t.Run(string(method), func(t *testing.T) {
			ch := DefaultModel().Custom
			ch.Decoration = method
			for i := range ch.Tiers {
				ch.Tiers[i].Markup = 0
			}

			result := CalculateCustomPackages(ch)

			for _, tier := range result.Tiers {
				assertDecimal(t, tier.Tier.Name+" pricePerPackage", tier.PricePerPackage, tier.CostPerPackage.String())
				assertDecimal(t, tier.Tier.Name+" profit", tier.Profit, "0")
				assertDecimal(t, tier.Tier.Name+" margin", tier.ProfitMargin.OrZero(), "0")
			}
			assertDecimal(t, "totalMonthlyProfit", result.TotalMonthlyProfit, "0")
			assertDecimal(t, "totalMonthlySales", result.TotalMonthlySales, result.TotalMonthlyCost.String())
		})
	}
}

func TestCalculateCustomTier_CostComponentMonotonicity(t *testing.T) {
	tier := DefaultModel().Custom.Tiers[0]
	plan := DefaultSalesPlan()

	tests := []struct {
		name   string
		method DecorationMethod
		bump   func(*CustomPackageTier)
	}{
		{"printingCost", DecorationPrinting, func(c *CustomPackageTier) { c.PrintingCost += 0.25 }},
		{"embroideryAdditional", DecorationEmbroidery, func(c *CustomPackageTier) { c.EmbroideryAdditional += 0.25 }},
		{"wovenLabelAdditional", DecorationWovenLabel, func(c *CustomPackageTier) { c.WovenLabelAdditional += 0.25 }},
		{"baseSockCost", DecorationPrinting, func(c *CustomPackageTier) { c.BaseSockCost += 0.25 }},
		{"shippingCost", DecorationPrinting, func(c *CustomPackageTier) { c.ShippingCost += 2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := CalculateCustomTier(tier, tt.method, plan)
			bumped := tier
			tt.bump(&bumped)
			result := CalculateCustomTier(bumped, tt.method, plan)

			if !result.CostPerPackage.GreaterThan(base.CostPerPackage) {
				t.Fatalf("costPerPackage %s not greater than %s", result.CostPerPackage, base.CostPerPackage)
			}
			if !result.PricePerPackage.GreaterThan(base.PricePerPackage) {
				t.Fatalf("pricePerPackage %s not greater than %s", result.PricePerPackage, base.PricePerPackage)
			}
			if !result.ProfitMargin.OrZero().Sub(base.ProfitMargin.OrZero()).Abs().LessThan(dec("0.000001")) {
				t.Fatalf("margin moved from %s to %s", base.ProfitMargin.OrZero(), result.ProfitMargin.OrZero())
			}
		})
	}
}
