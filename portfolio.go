package lotkeeper

import (
	"fmt"
	"iter"
	"slices"
)

// Portfolio is the single owning container of all holdings. Holdings keep
// their insertion order: new holdings are appended and never reordered.
//
// The portfolio is the unit of persistence; every mutation produces a new
// full snapshot that replaces the previous one on disk.
type Portfolio struct {
	holdings []Holding
}

// NewPortfolio creates an empty portfolio.
func NewPortfolio() *Portfolio {
	return &Portfolio{holdings: make([]Holding, 0)}
}

// Len returns the number of holdings.
func (p *Portfolio) Len() int { return len(p.holdings) }

// Holdings iterates over the holdings in insertion order.
func (p *Portfolio) Holdings() iter.Seq[Holding] {
	return func(yield func(Holding) bool) {
		for _, h := range p.holdings {
			if !yield(h) {
				return
			}
		}
	}
}

// Add appends a holding. The ID must not already be present.
func (p *Portfolio) Add(h Holding) error {
	if _, ok := p.ByID(h.ID); ok {
		return fmt.Errorf("holding with id %q already exists", h.ID)
	}
	p.holdings = append(p.holdings, h)
	return nil
}

// ByID returns the holding with the given ID.
func (p *Portfolio) ByID(id string) (Holding, bool) {
	for _, h := range p.holdings {
		if h.ID == id {
			return h, true
		}
	}
	return Holding{}, false
}

// Find resolves a user-supplied key to a holding: first as an exact ID, then
// as a display name. Names are a convenience lookup only; when two holdings
// share the name the lookup fails rather than guess, since the ID is the
// only stable key.
func (p *Portfolio) Find(key string) (Holding, error) {
	if h, ok := p.ByID(key); ok {
		return h, nil
	}
	var matches []Holding
	for _, h := range p.holdings {
		if h.Name == key {
			matches = append(matches, h)
		}
	}
	switch len(matches) {
	case 0:
		return Holding{}, fmt.Errorf("no holding named %q", key)
	case 1:
		return matches[0], nil
	default:
		return Holding{}, fmt.Errorf("%d holdings named %q, use the id instead", len(matches), key)
	}
}

// Replace swaps in the holding with the matching ID, keeping its position.
// It reports whether a holding was replaced.
func (p *Portfolio) Replace(h Holding) bool {
	for i := range p.holdings {
		if p.holdings[i].ID == h.ID {
			p.holdings[i] = h
			return true
		}
	}
	return false
}

// Delete removes the holding with the given ID, whole at once, and reports
// whether one was removed. Deletion always matches by ID, never by name.
func (p *Portfolio) Delete(id string) bool {
	for i := range p.holdings {
		if p.holdings[i].ID == id {
			p.holdings = slices.Delete(p.holdings, i, i+1)
			return true
		}
	}
	return false
}
