package economics

import "strings"

// DecorationMethod is how custom packages are branded. Embroidery and woven
// labels are priced as an addition on top of the printing cost.
type DecorationMethod string

const (
	DecorationPrinting   DecorationMethod = "printing"
	DecorationEmbroidery DecorationMethod = "embroidery"
	DecorationWovenLabel DecorationMethod = "woven-label"
)

// ParseDecorationMethod normalizes a decoration name. Unknown names resolve
// to printing and report false.
func ParseDecorationMethod(value string) (DecorationMethod, bool) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	normalized = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(normalized)
	switch normalized {
	case "printing", "":
		return DecorationPrinting, true
	case "embroidery":
		return DecorationEmbroidery, true
	case "wovenlabel":
		return DecorationWovenLabel, true
	}
	return DecorationPrinting, false
}

// Label returns the display name of the method.
func (m DecorationMethod) Label() string {
	method, _ := ParseDecorationMethod(string(m))
	switch method {
	case DecorationEmbroidery:
		return "Embroidery"
	case DecorationWovenLabel:
		return "Woven Label"
	}
	return "Printing"
}
