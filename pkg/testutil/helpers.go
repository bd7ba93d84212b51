// Package testutil provides common utility functions for testing.
package testutil

import (
	"testing"

	"github.com/iwvelando/unit-economics/internal/economics"
	"github.com/shopspring/decimal"
)

// FindTier finds a custom-package tier by name in the result.
// Returns a pointer to the tier if found, nil otherwise.
func FindTier(result economics.CustomPackageResult, name string) *economics.CustomTierResult {
	for i := range result.Tiers {
		if result.Tiers[i].Tier.Name == name {
			return &result.Tiers[i]
		}
	}
	return nil
}

// FindRetailPackage finds a retail package by name in the result.
// Returns a pointer to the package if found, nil otherwise.
func FindRetailPackage(result economics.RetailResult, name string) *economics.RetailPackageResult {
	for i := range result.Packages {
		if result.Packages[i].Package.Name == name {
			return &result.Packages[i]
		}
	}
	return nil
}

// AssertDecimal fails the test when got is not exactly equal to want.
func AssertDecimal(t testing.TB, name string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Errorf("%s = %s, want %s", name, got.String(), want)
	}
}
