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

type listCmd struct {
	date string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list all holdings with their matured share counts" }
func (*listCmd) Usage() string {
	return `lk list [-d <date>]

  Lists every holding with its total and matured share counts as of the
  given date (default today).
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Reference date for maturity counts (YYYY-MM-DD)")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.Holdings(portfolio, asOf))
	return subcommands.ExitSuccess
}
