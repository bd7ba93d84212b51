package config

import (
	"fmt"

	"github.com/iwvelando/unit-economics/internal/economics"
	"github.com/iwvelando/unit-economics/pkg/validation"
)

// ValidateConfiguration performs general validation of the model and returns
// warnings. Warnings never change how the model is computed.
func (c *Configuration) ValidateConfiguration() []string {
	return ModelWarnings(c.Model)
}

// ModelWarnings lists the inputs of m that are likely mistakes: names that do
// not line up, sizes the sales plan does not cover and similar.
func ModelWarnings(m economics.Model) []string {
	var warnings []string

	if m.Wholesale.MinOrder == 0 {
		warnings = append(warnings, "wholesale minimum order is zero - every wholesale figure will be zero")
	}

	if _, ok := economics.ParseDecorationMethod(string(m.Custom.Decoration)); !ok {
		warnings = append(warnings, fmt.Sprintf("unknown decoration method '%s' - printing costs are used", m.Custom.Decoration))
	}

	tierNames := make([]string, 0, len(m.Custom.Tiers))
	for _, tier := range m.Custom.Tiers {
		tierNames = append(tierNames, tier.Name)
		if _, ok := m.Custom.SalesPlan.UnitsFor(tier.Quantity); !ok {
			warnings = append(warnings, fmt.Sprintf("custom package '%s' (quantity %d) has no sales plan bucket - %d units per month are assumed",
				tier.Name, tier.Quantity, m.Custom.SalesPlan.FallbackUnits))
		}
	}
	warnings = append(warnings, validation.DuplicateNames("custom package", tierNames)...)

	packageNames := make([]string, 0, len(m.Retail.Packages))
	for _, pkg := range m.Retail.Packages {
		packageNames = append(packageNames, pkg.Name)
	}
	volumeNames := make([]string, 0, len(m.Retail.Volumes))
	for _, volume := range m.Retail.Volumes {
		volumeNames = append(volumeNames, volume.Name)
	}
	warnings = append(warnings, validation.BlankNames("retail package", packageNames)...)
	warnings = append(warnings, validation.DuplicateNames("retail package", packageNames)...)
	warnings = append(warnings, validation.DuplicateNames("retail volume", volumeNames)...)
	for _, name := range validation.UnmatchedNames(packageNames, volumeNames) {
		warnings = append(warnings, fmt.Sprintf("retail package '%s' has no monthly volume - zero units are assumed", name))
	}
	for _, name := range validation.UnmatchedNames(volumeNames, packageNames) {
		warnings = append(warnings, fmt.Sprintf("retail volume '%s' matches no package and is ignored", name))
	}

	categories := make([]string, 0, len(m.FixedCosts))
	for _, cost := range m.FixedCosts {
		categories = append(categories, cost.Category)
	}
	warnings = append(warnings, validation.BlankNames("fixed cost", categories)...)
	warnings = append(warnings, validation.DuplicateNames("fixed cost category", categories)...)

	return warnings
}
