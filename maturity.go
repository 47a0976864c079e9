package lotkeeper

import "github.com/oguzcan/lotkeeper/date"

// maturityDays is the holding period after which a lot counts as matured.
const maturityDays = 365

// IsMatured reports whether a lot purchased on purchase has been held for at
// least 365 days as of asOf. Maturity is a display classification; it plays
// no role in sell eligibility, which only requires the purchase day to be on
// or before the sale day.
func IsMatured(purchase, asOf date.Date) bool {
	return date.Days(purchase, asOf) >= maturityDays
}

// MaturityDate returns the day a lot purchased on purchase matures: its
// one-year anniversary. Feb 29 purchases mature on Mar 1 of a non-leap year,
// per date.Anniversary.
func MaturityDate(purchase date.Date) date.Date {
	return purchase.Anniversary()
}
