package validation

import (
	"fmt"
	"strings"
)

// DuplicateNames returns a warning for every name that appears more than once
// in names. kind describes the list, e.g. "retail package".
func DuplicateNames(kind string, names []string) []string {
	var warnings []string
	seen := make(map[string]int, len(names))
	for _, name := range names {
		seen[name]++
		if seen[name] == 2 {
			warnings = append(warnings, fmt.Sprintf("%s '%s' is listed more than once - only the first entry is used for lookups",
				kind, name))
		}
	}
	return warnings
}

// UnmatchedNames returns the names in left that have no exact match in right,
// in the order they appear in left.
func UnmatchedNames(left, right []string) []string {
	index := make(map[string]struct{}, len(right))
	for _, name := range right {
		index[name] = struct{}{}
	}

	var missing []string
	for _, name := range left {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// BlankNames returns a warning when any name in the list is empty or whitespace.
func BlankNames(kind string, names []string) []string {
	var warnings []string
	for i, name := range names {
		if strings.TrimSpace(name) == "" {
			warnings = append(warnings, fmt.Sprintf("%s at position %d has no name", kind, i+1))
		}
	}
	return warnings
}
