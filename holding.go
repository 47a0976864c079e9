package lotkeeper

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/oguzcan/lotkeeper/date"
)

// Holding is a named tradable instrument with its collection of purchase
// lots. Holding values are immutable: Buy and Sell return a new value with a
// reconstructed lot slice, and the caller swaps it into the portfolio by ID.
type Holding struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Kind Kind   `json:"kind"`
	Lots []Lot  `json:"lots"`
}

// InsufficientSharesError reports a sell request exceeding the shares
// eligible as of the sale day. It is a normal rejected business operation,
// not a fault: the holding is left unchanged and Available tells the caller
// how many shares were actually there.
type InsufficientSharesError struct {
	Day       date.Date
	Requested Quantity
	Available Quantity
}

func (e *InsufficientSharesError) Error() string {
	return fmt.Sprintf("not enough shares available as of %s: requested %s, only %s held", e.Day, e.Requested, e.Available)
}

// NewHolding creates a holding with a fresh unique ID and exactly one
// initial lot.
func NewHolding(name string, kind Kind, day date.Date, quantity Quantity) (Holding, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Holding{}, fmt.Errorf("holding name is empty")
	}
	if !quantity.IsPositive() {
		return Holding{}, fmt.Errorf("initial quantity must be positive, got %s", quantity)
	}
	return Holding{
		ID:   uuid.NewString(),
		Name: name,
		Kind: kind,
		Lots: []Lot{{Day: day, Quantity: quantity}},
	}, nil
}

// Buy adds quantity shares purchased on day and returns the updated holding.
// A purchase on a day that already has a lot merges into that lot; otherwise
// a new lot is opened. The receiver is left untouched.
func (h Holding) Buy(day date.Date, quantity Quantity) (Holding, error) {
	if !quantity.IsPositive() {
		return Holding{}, fmt.Errorf("buy quantity must be positive, got %s", quantity)
	}

	updated := lots(slices.Clone(h.Lots)) // fresh slice, receiver stays untouched
	if i := updated.indexOf(day); i >= 0 {
		updated[i] = Lot{Day: day, Quantity: updated[i].Quantity.Add(quantity)}
	} else {
		updated = append(updated, Lot{Day: day, Quantity: quantity})
	}

	h.Lots = updated
	return h, nil
}

// Sell removes quantity shares as of saleDay and returns the updated
// holding. Only lots purchased on or before saleDay are eligible, and they
// are consumed oldest first; exhausted lots are pruned. When the eligible
// lots hold fewer shares than requested, Sell fails with an
// *InsufficientSharesError and the holding is unchanged.
func (h Holding) Sell(saleDay date.Date, quantity Quantity) (Holding, error) {
	if !quantity.IsPositive() {
		return Holding{}, fmt.Errorf("sell quantity must be positive, got %s", quantity)
	}

	available := lots(h.Lots).available(saleDay)
	if available.LessThan(quantity) {
		return Holding{}, &InsufficientSharesError{Day: saleDay, Requested: quantity, Available: available}
	}

	h.Lots = lots(h.Lots).sell(saleDay, quantity)
	return h, nil
}

// TotalShares returns the number of shares over all lots.
func (h Holding) TotalShares() Quantity { return lots(h.Lots).total() }

// MaturedShares returns the number of shares in lots held for at least 365
// days as of asOf. This is the badge count shown next to a holding.
func (h Holding) MaturedShares(asOf date.Date) Quantity {
	var sum Quantity
	for _, lot := range h.Lots {
		if lot.Matured(asOf) {
			sum = sum.Add(lot.Quantity)
		}
	}
	return sum
}

// SortedLots returns the lots in ascending purchase-day order, as a fresh
// slice. Display ordering is derived here, never stored.
func (h Holding) SortedLots() []Lot { return lots(h.Lots).sorted() }
