package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/oguzcan/lotkeeper"
	"github.com/oguzcan/lotkeeper/date"
)

func TestHoldingsEmpty(t *testing.T) {
	got := Holdings(lotkeeper.NewPortfolio(), date.New(2024, time.January, 2))
	if !strings.Contains(got, "empty") {
		t.Errorf("Holdings() on an empty portfolio = %q, want an empty notice", got)
	}
}

func TestHoldings(t *testing.T) {
	p := lotkeeper.NewPortfolio()
	h, err := lotkeeper.NewHolding("ACME", lotkeeper.Stock, date.New(2023, time.January, 1), lotkeeper.Q(5))
	if err != nil {
		t.Fatalf("NewHolding() failed: %v", err)
	}
	h, err = h.Buy(date.New(2023, time.December, 1), lotkeeper.Q(3))
	if err != nil {
		t.Fatalf("Buy() failed: %v", err)
	}
	if err := p.Add(h); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	got := Holdings(p, date.New(2024, time.January, 2))

	// 5 shares matured, 8 held in total.
	if !strings.Contains(got, "| ACME | STOCK | 8 | 5 |") {
		t.Errorf("Holdings() missing the ACME row:\n%s", got)
	}
}

func TestHoldingDetail(t *testing.T) {
	h, err := lotkeeper.NewHolding("ACME", lotkeeper.ETF, date.New(2023, time.June, 1), lotkeeper.Q(3))
	if err != nil {
		t.Fatalf("NewHolding() failed: %v", err)
	}
	h, err = h.Buy(date.New(2023, time.January, 1), lotkeeper.Q(5))
	if err != nil {
		t.Fatalf("Buy() failed: %v", err)
	}

	got := HoldingDetail(h, date.New(2024, time.January, 2))

	// Lots appear in ascending purchase-day order with their maturity dates.
	older := strings.Index(got, "| 2023-01-01 | 2024-01-01 | 5 | X |")
	newer := strings.Index(got, "| 2023-06-01 | 2024-06-01 | 3 |   |")
	if older < 0 || newer < 0 {
		t.Fatalf("HoldingDetail() missing lot rows:\n%s", got)
	}
	if older > newer {
		t.Errorf("HoldingDetail() lots not in ascending order:\n%s", got)
	}
}
