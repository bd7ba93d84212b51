package economics

import (
	"reflect"
	"testing"
)

func TestDefaultModel(t *testing.T) {
	m := DefaultModel()

	if m.Wholesale.MinOrder != 180 || m.Wholesale.OrderVolume != 5 {
		t.Fatalf("unexpected wholesale defaults: %+v", m.Wholesale)
	}
	if len(m.Custom.Tiers) != 3 || len(m.Retail.Packages) != 4 || len(m.Retail.Volumes) != 4 {
		t.Fatalf("unexpected default list sizes")
	}
	if len(m.FixedCosts) != 7 {
		t.Fatalf("expected 7 fixed cost categories, got %d", len(m.FixedCosts))
	}
	assertDecimal(t, "fixed total", m.FixedCosts.Total(), "22300")
}

func TestModelClone(t *testing.T) {
	m := DefaultModel()
	clone := m.Clone()

	if !reflect.DeepEqual(m, clone) {
		t.Fatal("clone differs from original")
	}

	clone.Custom.Tiers[0].Markup = 99
	clone.Retail.Volumes[0].Units = 1
	clone.FixedCosts[0].Amount = 1
	clone.Custom.SalesPlan.Buckets[0].Units = 1

	if m.Custom.Tiers[0].Markup == 99 || m.Retail.Volumes[0].Units == 1 ||
		m.FixedCosts[0].Amount == 1 || m.Custom.SalesPlan.Buckets[0].Units == 1 {
		t.Fatal("clone shares backing arrays with the original")
	}
}

func TestModelApplyDefaults(t *testing.T) {
	var m Model
	m.Custom.SalesPlan.FallbackUnits = 12
	m.ApplyDefaults()

	if m.Custom.Decoration != DecorationPrinting {
		t.Errorf("decoration = %q, want printing", m.Custom.Decoration)
	}
	if m.Custom.SalesPlan.Buckets != nil {
		t.Errorf("an empty sales plan should stay empty, got %+v", m.Custom.SalesPlan.Buckets)
	}
	if m.Custom.SalesPlan.FallbackUnits != 12 {
		t.Errorf("fallback units overwritten: %d", m.Custom.SalesPlan.FallbackUnits)
	}

	custom := Model{Custom: CustomChannel{
		Decoration: DecorationEmbroidery,
		SalesPlan:  SalesPlan{Buckets: []SalesBucket{{Quantity: 10, Units: 1}}},
	}}
	custom.ApplyDefaults()
	if custom.Custom.Decoration != DecorationEmbroidery || len(custom.Custom.SalesPlan.Buckets) != 1 {
		t.Errorf("ApplyDefaults overwrote explicit values: %+v", custom.Custom)
	}
}

func TestChannelLabels(t *testing.T) {
	tests := []struct {
		channel Channel
		label   string
		unit    string
	}{
		{ChannelWholesale, "Wholesale", "orders"},
		{ChannelCustomPackage, "Custom Package", "packages"},
		{ChannelRetailMultipack, "Retail Multipack", "packages"},
	}
	for _, tt := range tests {
		if tt.channel.Label() != tt.label || tt.channel.UnitLabel() != tt.unit {
			t.Errorf("%s labels = (%s, %s), want (%s, %s)", tt.channel, tt.channel.Label(), tt.channel.UnitLabel(), tt.label, tt.unit)
		}
	}
}
