package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/oguzcan/lotkeeper"
	"github.com/oguzcan/lotkeeper/date"
)

type addCmd struct {
	name     string
	kind     string
	date     string
	quantity string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a new holding with its initial purchase lot" }
func (*addCmd) Usage() string {
	return `lk add -name <name> [-kind <stock|etf>] [-d <date>] -q <shares>

  Creates a new holding with one initial lot. The purchase date defaults to
  today. Holdings get a unique id; names do not have to be unique.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Holding name (required)")
	f.StringVar(&c.kind, "kind", "stock", "Holding kind: stock or etf")
	f.StringVar(&c.date, "d", date.Today().String(), "Purchase date (YYYY-MM-DD)")
	f.StringVar(&c.quantity, "q", "", "Number of shares (required)")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.quantity == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	kind, err := lotkeeper.ParseKind(c.kind)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
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

	holding, err := lotkeeper.NewHolding(c.name, kind, day, quantity)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := portfolio.Add(holding); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	if err := SavePortfolio(portfolio); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added %s %q (%s shares on %s), id %s\n", holding.Kind, holding.Name, quantity, day, holding.ID)
	return subcommands.ExitSuccess
}
