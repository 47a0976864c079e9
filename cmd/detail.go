package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/oguzcan/lotkeeper/date"
	"github.com/oguzcan/lotkeeper/renderer"
)

type detailCmd struct {
	key  string
	date string
}

func (*detailCmd) Name() string     { return "detail" }
func (*detailCmd) Synopsis() string { return "display a holding lot by lot with maturity dates" }
func (*detailCmd) Usage() string {
	return `lk detail -n <name|id> [-d <date>]

  Shows each lot of a holding in ascending purchase-date order: purchase
  date, maturity date, share count, and whether the lot has matured as of
  the given date (default today).
`
}

func (c *detailCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.key, "n", "", "Holding name or id (required)")
	f.StringVar(&c.date, "d", date.Today().String(), "Reference date for maturity (YYYY-MM-DD)")
}

func (c *detailCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.key == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	asOf, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
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

	printMarkdown(renderer.HoldingDetail(holding, asOf))
	return subcommands.ExitSuccess
}
