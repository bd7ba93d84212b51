package integration

import (
	"fmt"
	"testing"
	"time"

	"github.com/iwvelando/unit-economics/internal/economics"
	"go.uber.org/zap"
)

// largeModel builds a model with many tiers and packages.
func largeModel(size int) economics.Model {
	m := economics.DefaultModel()
	m.Custom.Tiers = m.Custom.Tiers[:0]
	m.Custom.SalesPlan.Buckets = m.Custom.SalesPlan.Buckets[:0]
	m.Retail.Packages = m.Retail.Packages[:0]
	m.Retail.Volumes = m.Retail.Volumes[:0]

	for i := 0; i < size; i++ {
		quantity := 10 + i
		m.Custom.Tiers = append(m.Custom.Tiers, economics.CustomPackageTier{
			Name: fmt.Sprintf("Tier %d", i), Quantity: quantity,
			PrintingCost: 1.1, EmbroideryAdditional: 0.4, WovenLabelAdditional: 0.2,
			BaseSockCost: 2.4, ShippingCost: 15, Markup: 35,
		})
		m.Custom.SalesPlan.Buckets = append(m.Custom.SalesPlan.Buckets, economics.SalesBucket{Quantity: quantity, Units: 3})

		name := fmt.Sprintf("Pack %d", i)
		m.Retail.Packages = append(m.Retail.Packages, economics.RetailPackage{
			Name: name, Pairs: 3 + i%4, CostPerPair: 2.9, Packaging: 0.8, ShippingCost: 6, Markup: 60,
		})
		m.Retail.Volumes = append(m.Retail.Volumes, economics.MonthlyVolume{Name: name, Units: 40})
	}
	return m
}

// TestPerformance checks a large model still evaluates quickly.
func TestPerformance(t *testing.T) {
	engine := economics.NewEngine(zap.NewNop())
	m := largeModel(1000)

	start := time.Now()
	report := engine.Evaluate(m)
	duration := time.Since(start)

	if len(report.Custom.Tiers) != 1000 || len(report.Retail.Packages) != 1000 {
		t.Fatalf("unexpected result sizes: %d tiers, %d packages", len(report.Custom.Tiers), len(report.Retail.Packages))
	}
	if report.Custom.TotalMonthlyUnits != 3000 || report.Retail.TotalVolume != 40000 {
		t.Errorf("unexpected unit totals: %d custom, %d retail", report.Custom.TotalMonthlyUnits, report.Retail.TotalVolume)
	}
	if duration > 5*time.Second {
		t.Errorf("evaluation took %v, expected under 5s", duration)
	}
	t.Logf("evaluated %d tiers and %d packages in %v", len(m.Custom.Tiers), len(m.Retail.Packages), duration)
}

func BenchmarkEvaluateReference(b *testing.B) {
	engine := economics.NewEngine(zap.NewNop())
	m := economics.DefaultModel()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		engine.Evaluate(m)
	}
}

func BenchmarkEvaluateLarge(b *testing.B) {
	engine := economics.NewEngine(zap.NewNop())
	m := largeModel(200)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		engine.Evaluate(m)
	}
}
