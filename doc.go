// Package lotkeeper tracks holdings of tradable share lots purchased on
// discrete calendar days, and decides which lots a sale consumes and which
// lots have crossed the one-year maturity threshold.
//
// The core functionalities include:
//   - Lot Accounting: buys merge into the lot of the same purchase day or
//     open a new one; sells consume lots purchased on or before the sale day
//     in FIFO order and prune exhausted lots.
//   - Maturity Classification: a lot held for at least 365 days counts as
//     matured; its maturity date is the purchase-day anniversary.
//   - Data Persistence: the whole portfolio is encoded and decoded as a
//     single JSON snapshot, replaced atomically on every mutation.
//
// All engine operations are pure: they take holding and portfolio values and
// return new ones, leaving their inputs untouched. This package serves as
// the foundational logic for the `lk` command-line tool.
package lotkeeper
