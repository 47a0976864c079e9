package lotkeeper

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/oguzcan/lotkeeper/date"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The snapshot is one JSON document: an array of holdings, each with its
// id, name, kind and lots. Lots carry the purchase date as a "YYYY-MM-DD"
// string and the quantity as a bare number.

// EncodeSnapshot writes the whole portfolio as a single JSON snapshot.
func EncodeSnapshot(w io.Writer, p *Portfolio) error {
	holdings := make([]Holding, 0, p.Len())
	for h := range p.Holdings() {
		holdings = append(holdings, h)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(holdings); err != nil {
		return fmt.Errorf("could not encode snapshot: %w", err)
	}
	return nil
}

// DecodeSnapshot reads a portfolio from a JSON snapshot and checks the model
// invariants. A snapshot violating any of them fails the whole load: ids
// must be present and unique, names non-empty, lot quantities whole and
// positive, and no holding may have two lots on the same day.
func DecodeSnapshot(r io.Reader) (*Portfolio, error) {
	var holdings []Holding
	if err := json.NewDecoder(r).Decode(&holdings); err != nil {
		return nil, fmt.Errorf("could not decode snapshot: %w", err)
	}

	p := NewPortfolio()
	for _, h := range holdings {
		if err := validateHolding(h); err != nil {
			return nil, fmt.Errorf("invalid snapshot: %w", err)
		}
		if err := p.Add(h); err != nil {
			return nil, fmt.Errorf("invalid snapshot: %w", err)
		}
	}
	return p, nil
}

func validateHolding(h Holding) error {
	if h.ID == "" {
		return fmt.Errorf("holding %q has no id", h.Name)
	}
	if h.Name == "" {
		return fmt.Errorf("holding %s has no name", h.ID)
	}
	seen := make(map[date.Date]bool, len(h.Lots))
	for _, lot := range h.Lots {
		if lot.Day.IsZero() {
			return fmt.Errorf("holding %q has a lot with no date", h.Name)
		}
		if !lot.Quantity.IsPositive() {
			return fmt.Errorf("holding %q has a non-positive lot on %s", h.Name, lot.Day)
		}
		if seen[lot.Day] {
			return fmt.Errorf("holding %q has two lots on %s", h.Name, lot.Day)
		}
		seen[lot.Day] = true
	}
	return nil
}
