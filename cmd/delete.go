package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type deleteCmd struct {
	key   string
	force bool
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a holding and all of its lots" }
func (*deleteCmd) Usage() string {
	return `lk delete -n <name|id> [-y]

  Removes a whole holding. The key is resolved first as a holding id, then
  as a name; a name shared by several holdings is refused, use the id from
  'lk list'. Asks for confirmation unless -y is given.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.key, "n", "", "Holding name or id (required)")
	f.BoolVar(&c.force, "y", false, "Delete without asking for confirmation")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.key == "" {
		f.Usage()
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

	if !c.force && !confirm(fmt.Sprintf("Delete %q (%s shares)?", holding.Name, holding.TotalShares())) {
		fmt.Println("Aborted.")
		return subcommands.ExitSuccess
	}

	// Deletion is keyed by id: two holdings may share a name, ids never collide.
	portfolio.Delete(holding.ID)

	if err := SavePortfolio(portfolio); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted %q, id %s\n", holding.Name, holding.ID)
	return subcommands.ExitSuccess
}

// confirm asks a yes/no question on the terminal and reports the answer.
func confirm(question string) bool {
	fmt.Printf("%s [y/N] ", question)
	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
