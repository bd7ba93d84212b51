package mathutil

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Percent is a percentage that is undefined when its base is zero. Margins and
// shares are carried as Percent so callers have to decide what an undefined
// value looks like instead of receiving NaN or Inf.
type Percent struct {
	value   decimal.Decimal
	defined bool
}

// PercentOf returns part as a percentage of whole, undefined when whole is zero.
func PercentOf(part, whole decimal.Decimal) Percent {
	if whole.IsZero() {
		return Percent{}
	}
	return Percent{value: part.Mul(hundred).Div(whole), defined: true}
}

// NewPercent wraps an already computed percentage.
func NewPercent(value decimal.Decimal) Percent {
	return Percent{value: value, defined: true}
}

// Value returns the percentage and whether it is defined.
func (p Percent) Value() (decimal.Decimal, bool) {
	return p.value, p.defined
}

// Defined reports whether the percentage has a value.
func (p Percent) Defined() bool {
	return p.defined
}

// OrZero returns the percentage, or zero when undefined.
func (p Percent) OrZero() decimal.Decimal {
	if !p.defined {
		return decimal.Zero
	}
	return p.value
}

// MarshalJSON encodes an undefined percentage as null.
func (p Percent) MarshalJSON() ([]byte, error) {
	if !p.defined {
		return []byte("null"), nil
	}
	return json.Marshal(p.value)
}

// UnmarshalJSON accepts null, a number or a quoted number.
func (p *Percent) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*p = Percent{}
		return nil
	}
	var value decimal.Decimal
	if err := value.UnmarshalJSON(data); err != nil {
		return err
	}
	*p = Percent{value: value, defined: true}
	return nil
}
