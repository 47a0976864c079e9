package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/oguzcan/lotkeeper"
	"github.com/oguzcan/lotkeeper/date"
)

// --- Buy Command ---

type buyCmd struct {
	key      string
	date     string
	quantity string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "purchase shares, merging into the lot of the same day" }
func (*buyCmd) Usage() string {
	return `lk buy -n <name|id> -q <shares> [-d <date>]

  Adds shares to a holding on the given purchase date (default today). A
  purchase on a day that already has a lot increases that lot; otherwise a
  new lot is opened.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.key, "n", "", "Holding name or id (required)")
	f.StringVar(&c.quantity, "q", "", "Number of shares (required)")
	f.StringVar(&c.date, "d", date.Today().String(), "Purchase date (YYYY-MM-DD)")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.key == "" || c.quantity == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	quantity, err := lotkeeper.ParseQuantity(c.quantity)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	portfolio, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	holding, err := portfolio.Find(c.key)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	updated, err := holding.Buy(day, quantity)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	portfolio.Replace(updated)

	if err := SavePortfolio(portfolio); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Bought %s %q on %s, now %s shares\n", quantity, updated.Name, day, updated.TotalShares())
	return subcommands.ExitSuccess
}

// --- Sell Command ---

type sellCmd struct {
	key      string
	date     string
	quantity string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell shares, consuming eligible lots oldest first" }
func (*sellCmd) Usage() string {
	return `lk sell -n <name|id> -q <shares> [-d <date>]

  Sells shares as of the given sale date (default today). Only lots
  purchased on or before the sale date are eligible; they are consumed in
  FIFO order and exhausted lots are removed. A request exceeding the
  eligible shares is refused and reports how many were available.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.key, "n", "", "Holding name or id (required)")
	f.StringVar(&c.quantity, "q", "", "Number of shares (required)")
	f.StringVar(&c.date, "d", date.Today().String(), "Sale date (YYYY-MM-DD)")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.key == "" || c.quantity == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	quantity, err := lotkeeper.ParseQuantity(c.quantity)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	portfolio, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	holding, err := portfolio.Find(c.key)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	updated, err := holding.Sell(day, quantity)
	var insufficient *lotkeeper.InsufficientSharesError
	if errors.As(err, &insufficient) {
		// A rejected business operation, not a fault: the holding is untouched.
		fmt.Fprintf(os.Stderr, "Cannot sell %s shares of %q: only %s available as of %s.\n",
			quantity, holding.Name, insufficient.Available, day)
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	portfolio.Replace(updated)

	if err := SavePortfolio(portfolio); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Sold %s %q as of %s, %s shares left\n", quantity, updated.Name, day, updated.TotalShares())
	return subcommands.ExitSuccess
}
