package lotkeeper

import (
	"slices"

	"github.com/oguzcan/lotkeeper/date"
)

// Lot represents a batch of shares bought on a single calendar day.
// Within a holding there is at most one lot per purchase day, and a lot
// present in a holding always has a positive quantity.
type Lot struct {
	Day      date.Date `json:"date"`
	Quantity Quantity  `json:"quantity"`
}

// MaturityDate returns the day the lot matures, the purchase-day anniversary.
func (l Lot) MaturityDate() date.Date { return l.Day.Anniversary() }

// Matured reports whether the lot has been held for at least the maturity
// threshold as of the given day.
func (l Lot) Matured(asOf date.Date) bool { return IsMatured(l.Day, asOf) }

type lots []Lot

// total sums the quantity over all lots.
func (l lots) total() Quantity {
	var sum Quantity
	for _, lot := range l {
		sum = sum.Add(lot.Quantity)
	}
	return sum
}

// available sums the quantity over lots purchased on or before asOf. This is
// the sell-eligibility rule: calendar-day inclusive, independent of maturity.
func (l lots) available(asOf date.Date) Quantity {
	var sum Quantity
	for _, lot := range l {
		if !lot.Day.After(asOf) {
			sum = sum.Add(lot.Quantity)
		}
	}
	return sum
}

// sorted returns a copy of the lots in ascending purchase-day order. Stored
// order carries no meaning; display and FIFO consumption both derive this
// projection on demand.
func (l lots) sorted() lots {
	s := slices.Clone(l)
	slices.SortFunc(s, func(a, b Lot) int { return date.Days(b.Day, a.Day) })
	return s
}

// indexOf returns the position of the lot purchased on day, or -1.
func (l lots) indexOf(day date.Date) int {
	return slices.IndexFunc(l, func(lot Lot) bool { return lot.Day == day })
}

// sell consumes quantityToSell shares from the lots purchased on or before
// saleDay, oldest purchase day first, and returns the remaining lots.
// Exhausted lots are dropped; lots purchased after saleDay are never touched.
// The caller has already checked that enough shares are available.
func (l lots) sell(saleDay date.Date, quantityToSell Quantity) lots {
	remainingLots := make(lots, 0, len(l))

	for _, currentLot := range l.sorted() {
		if quantityToSell.IsZero() || currentLot.Day.After(saleDay) {
			remainingLots = append(remainingLots, currentLot)
			continue
		}

		if currentLot.Quantity.GreaterThan(quantityToSell) {
			// Partial sale from this lot.
			remainingLots = append(remainingLots, Lot{
				Day:      currentLot.Day,
				Quantity: currentLot.Quantity.Sub(quantityToSell),
			})
			quantityToSell = Q(0)
		} else {
			// Full sale of this lot: prune it.
			quantityToSell = quantityToSell.Sub(currentLot.Quantity)
		}
	}
	return remainingLots
}
