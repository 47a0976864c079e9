package lotkeeper

import (
	"testing"
	"time"

	"github.com/oguzcan/lotkeeper/date"
)

func newTestPortfolio(t *testing.T, names ...string) (*Portfolio, []Holding) {
	t.Helper()
	p := NewPortfolio()
	var hs []Holding
	for _, name := range names {
		h, err := NewHolding(name, Stock, date.New(2023, time.January, 1), Q(10))
		if err != nil {
			t.Fatalf("NewHolding(%q) failed: %v", name, err)
		}
		if err := p.Add(h); err != nil {
			t.Fatalf("Add(%q) failed: %v", name, err)
		}
		hs = append(hs, h)
	}
	return p, hs
}

func TestPortfolioInsertionOrder(t *testing.T) {
	p, _ := newTestPortfolio(t, "ACME", "GLOB", "INIT")

	var got []string
	for h := range p.Holdings() {
		got = append(got, h.Name)
	}
	want := []string{"ACME", "GLOB", "INIT"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("holdings order = %v, want %v", got, want)
		}
	}
}

func TestPortfolioAddDuplicateID(t *testing.T) {
	p, hs := newTestPortfolio(t, "ACME")
	if err := p.Add(hs[0]); err == nil {
		t.Error("Add() accepted a duplicate id")
	}
}

func TestPortfolioReplace(t *testing.T) {
	p, hs := newTestPortfolio(t, "ACME", "GLOB")

	updated, err := hs[0].Buy(date.New(2023, time.June, 1), Q(5))
	if err != nil {
		t.Fatalf("Buy() failed: %v", err)
	}
	if !p.Replace(updated) {
		t.Fatal("Replace() did not find the holding")
	}

	got, ok := p.ByID(hs[0].ID)
	if !ok {
		t.Fatal("ByID() lost the holding after Replace()")
	}
	if !got.TotalShares().Equal(Q(15)) {
		t.Errorf("TotalShares() after replace = %s, want 15", got.TotalShares())
	}

	if p.Replace(Holding{ID: "no-such-id"}) {
		t.Error("Replace() claimed to replace an unknown id")
	}
}

func TestPortfolioDelete(t *testing.T) {
	p, hs := newTestPortfolio(t, "ACME", "GLOB")

	if !p.Delete(hs[0].ID) {
		t.Fatal("Delete() did not find the holding")
	}
	if p.Len() != 1 {
		t.Fatalf("Len() = %d after delete, want 1", p.Len())
	}
	if _, ok := p.ByID(hs[0].ID); ok {
		t.Error("deleted holding still present")
	}
	if p.Delete(hs[0].ID) {
		t.Error("Delete() removed the same holding twice")
	}
}

func TestPortfolioFind(t *testing.T) {
	p, hs := newTestPortfolio(t, "ACME", "ACME", "GLOB")

	// By id always works, even with colliding names.
	got, err := p.Find(hs[1].ID)
	if err != nil {
		t.Fatalf("Find(id) failed: %v", err)
	}
	if got.ID != hs[1].ID {
		t.Errorf("Find(id) = %s, want %s", got.ID, hs[1].ID)
	}

	// Unique name resolves.
	if _, err := p.Find("GLOB"); err != nil {
		t.Errorf("Find(unique name) failed: %v", err)
	}

	// Ambiguous name is refused rather than guessing.
	if _, err := p.Find("ACME"); err == nil {
		t.Error("Find(ambiguous name) did not fail")
	}

	// Unknown key.
	if _, err := p.Find("NOPE"); err == nil {
		t.Error("Find(unknown) did not fail")
	}
}
