package lotkeeper

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind classifies a holding as a single stock or an exchange-traded fund.
type Kind int

const (
	// Stock is a single listed company share.
	Stock Kind = iota
	// ETF is an exchange-traded fund share.
	ETF
)

func (k Kind) String() string {
	switch k {
	case Stock:
		return "STOCK"
	case ETF:
		return "ETF"
	default:
		return "unknown"
	}
}

// ParseKind parses a string into a Kind. Matching is case-insensitive.
func ParseKind(s string) (Kind, error) {
	switch strings.ToUpper(s) {
	case "STOCK":
		return Stock, nil
	case "ETF":
		return ETF, nil
	default:
		return 0, fmt.Errorf("unknown holding kind: %q", s)
	}
}

// MarshalJSON encodes the kind as its string name.
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON decodes the kind from its string name.
func (k *Kind) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	kind, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = kind
	return nil
}
