package lotkeeper

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Quantity is a count of shares. Lots only ever hold whole positive
// quantities; ParseQuantity is the single entry point for user input and
// enforces that restriction.
type Quantity struct {
	value decimal.Decimal
}

// Q is a convenient factory for a Quantity from a whole number of shares.
func Q(shares int64) Quantity { return Quantity{value: decimal.NewFromInt(shares)} }

// ParseQuantity parses a raw user-entered string into a whole positive share
// count. Empty, non-numeric, fractional, zero and negative inputs are all
// rejected, so the engines downstream can assume a valid quantity.
func ParseQuantity(s string) (Quantity, error) {
	if s == "" {
		return Quantity{}, fmt.Errorf("quantity is empty")
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Quantity{}, fmt.Errorf("invalid quantity %q: %w", s, err)
	}
	if !v.IsInteger() {
		return Quantity{}, fmt.Errorf("invalid quantity %q: shares must be a whole number", s)
	}
	if !v.IsPositive() {
		return Quantity{}, fmt.Errorf("invalid quantity %q: shares must be positive", s)
	}
	return Quantity{value: v}, nil
}

func (q Quantity) Add(p Quantity) Quantity     { return Quantity{value: q.value.Add(p.value)} }
func (q Quantity) Sub(p Quantity) Quantity     { return Quantity{value: q.value.Sub(p.value)} }
func (q Quantity) Equal(p Quantity) bool       { return q.value.Equal(p.value) }
func (q Quantity) LessThan(p Quantity) bool    { return q.value.LessThan(p.value) }
func (q Quantity) GreaterThan(p Quantity) bool { return q.value.GreaterThan(p.value) }
func (q Quantity) IsZero() bool                { return q.value.IsZero() }
func (q Quantity) IsPositive() bool            { return q.value.IsPositive() }
func (q Quantity) IsNegative() bool            { return q.value.IsNegative() }
func (q Quantity) String() string              { return q.value.String() }

// MarshalJSON implements the json.Marshaler interface.
func (q Quantity) MarshalJSON() ([]byte, error) {
	return q.value.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (q *Quantity) UnmarshalJSON(decimalBytes []byte) error {
	return q.value.UnmarshalJSON(decimalBytes)
}
