package cmd

import (
	"context"
	"flag"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
	"github.com/oguzcan/lotkeeper"
)

// useTempSnapshot points the global snapshot flag at a file in a fresh temp
// directory for the duration of the test.
func useTempSnapshot(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "portfolio.json")
	old := *snapshotFile
	*snapshotFile = path
	t.Cleanup(func() { *snapshotFile = old })
	return path
}

// run parses args for the command and executes it.
func run(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("parsing %v failed: %v", args, err)
	}
	return c.Execute(context.Background(), f)
}

func TestAddBuySellFlow(t *testing.T) {
	path := useTempSnapshot(t)

	if got := run(t, &addCmd{}, "-name", "NVDA", "-kind", "stock", "-d", "2023-01-01", "-q", "5"); got != subcommands.ExitSuccess {
		t.Fatalf("add exited %v", got)
	}
	if got := run(t, &buyCmd{}, "-n", "NVDA", "-d", "2023-06-01", "-q", "5"); got != subcommands.ExitSuccess {
		t.Fatalf("buy exited %v", got)
	}
	if got := run(t, &sellCmd{}, "-n", "NVDA", "-d", "2024-01-01", "-q", "7"); got != subcommands.ExitSuccess {
		t.Fatalf("sell exited %v", got)
	}

	// Each step wrote through to the snapshot: 5+5-7 = 3 shares remain,
	// the oldest lot fully consumed.
	p, err := lotkeeper.Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	h, err := p.Find("NVDA")
	if err != nil {
		t.Fatalf("Find() failed: %v", err)
	}
	if !h.TotalShares().Equal(lotkeeper.Q(3)) {
		t.Errorf("TotalShares() = %s, want 3", h.TotalShares())
	}
	if len(h.Lots) != 1 || h.Lots[0].Day.String() != "2023-06-01" {
		t.Errorf("remaining lots = %v, want the 2023-06-01 lot only", h.Lots)
	}
}

func TestSellInsufficientLeavesSnapshotUntouched(t *testing.T) {
	path := useTempSnapshot(t)

	if got := run(t, &addCmd{}, "-name", "NVDA", "-d", "2023-01-01", "-q", "5"); got != subcommands.ExitSuccess {
		t.Fatalf("add exited %v", got)
	}
	if got := run(t, &sellCmd{}, "-n", "NVDA", "-d", "2023-06-01", "-q", "10"); got != subcommands.ExitFailure {
		t.Fatalf("sell of more shares than held exited %v, want failure", got)
	}

	p, err := lotkeeper.Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	h, err := p.Find("NVDA")
	if err != nil {
		t.Fatalf("Find() failed: %v", err)
	}
	if !h.TotalShares().Equal(lotkeeper.Q(5)) {
		t.Errorf("TotalShares() = %s after a refused sell, want 5", h.TotalShares())
	}
}

func TestInvalidQuantityRejectedUpstream(t *testing.T) {
	useTempSnapshot(t)

	if got := run(t, &addCmd{}, "-name", "NVDA", "-d", "2023-01-01", "-q", "5"); got != subcommands.ExitSuccess {
		t.Fatalf("add exited %v", got)
	}
	for _, q := range []string{"0", "-1", "2.5", "abc"} {
		if got := run(t, &buyCmd{}, "-n", "NVDA", "-q", q); got != subcommands.ExitUsageError {
			t.Errorf("buy -q %s exited %v, want usage error", q, got)
		}
	}
}

func TestDeleteByAmbiguousNameRefused(t *testing.T) {
	path := useTempSnapshot(t)

	if got := run(t, &addCmd{}, "-name", "NVDA", "-d", "2023-01-01", "-q", "5"); got != subcommands.ExitSuccess {
		t.Fatalf("add exited %v", got)
	}
	if got := run(t, &addCmd{}, "-name", "NVDA", "-kind", "etf", "-d", "2023-02-01", "-q", "3"); got != subcommands.ExitSuccess {
		t.Fatalf("add exited %v", got)
	}

	if got := run(t, &deleteCmd{}, "-n", "NVDA", "-y"); got != subcommands.ExitFailure {
		t.Fatalf("delete by ambiguous name exited %v, want failure", got)
	}

	// Deleting by id removes exactly that holding.
	p, err := lotkeeper.Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	var id string
	for h := range p.Holdings() {
		if h.Kind == lotkeeper.ETF {
			id = h.ID
		}
	}
	if got := run(t, &deleteCmd{}, "-n", id, "-y"); got != subcommands.ExitSuccess {
		t.Fatalf("delete by id exited %v", got)
	}

	p, err = lotkeeper.Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if p.Len() != 1 {
		t.Fatalf("Len() = %d after delete, want 1", p.Len())
	}
	for h := range p.Holdings() {
		if h.Kind != lotkeeper.Stock {
			t.Errorf("wrong holding deleted: %+v remains", h)
		}
	}
}
