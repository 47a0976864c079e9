// Package cmd implements the CLI application to manage share-lot holdings.
//
// It is the thin orchestration layer around the pure engine: each command
// loads the snapshot, applies one mutation, and writes the whole snapshot
// back before reporting success. A failed save is reported and nothing is
// claimed to have happened; the next invocation re-reads durable state.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/oguzcan/lotkeeper"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "holdings")
	c.Register(&deleteCmd{}, "holdings")

	c.Register(&buyCmd{}, "transactions")
	c.Register(&sellCmd{}, "transactions")

	c.Register(&listCmd{}, "reports")
	c.Register(&detailCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var snapshotFile = flag.String("file", "portfolio.json", "Path to the portfolio snapshot file (JSON)")

// DecodePortfolio loads the portfolio snapshot from the app snapshot file.
// An absent file yields an empty portfolio.
func DecodePortfolio() (*lotkeeper.Portfolio, error) {
	return lotkeeper.Load(*snapshotFile)
}

// SavePortfolio replaces the snapshot file with the given portfolio.
func SavePortfolio(p *lotkeeper.Portfolio) error {
	return lotkeeper.Save(*snapshotFile, p)
}

// printMarkdown renders markdown for the terminal and prints it. When
// rendering fails the raw markdown is still printed: output beats styling.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not render markdown: %v\n", err)
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
