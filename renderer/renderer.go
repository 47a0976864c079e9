// Package renderer turns portfolio values into markdown for terminal
// display. Rendering is a stateless projection: lots are sorted and maturity
// is classified here per call, never stored.
package renderer

import (
	"fmt"
	"strings"

	"github.com/oguzcan/lotkeeper"
	"github.com/oguzcan/lotkeeper/date"
)

// Holdings renders the holdings list: one row per holding with its total and
// matured share counts as of the given day.
func Holdings(p *lotkeeper.Portfolio, asOf date.Date) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Holdings on %s\n\n", asOf)

	if p.Len() == 0 {
		fmt.Fprintln(&b, "The portfolio is empty.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Name | Kind | Shares | Matured | ID |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|:---|")
	for h := range p.Holdings() {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			h.Name,
			h.Kind,
			h.TotalShares(),
			h.MaturedShares(asOf),
			h.ID,
		)
	}
	return b.String()
}

// HoldingDetail renders one holding lot by lot, in ascending purchase-day
// order: purchase date, maturity date, share count and whether the lot has
// matured as of the given day.
func HoldingDetail(h lotkeeper.Holding, asOf date.Date) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s (%s)\n\n", h.Name, h.Kind)
	fmt.Fprintf(&b, "%s of %s shares matured on %s.\n\n", h.MaturedShares(asOf), h.TotalShares(), asOf)

	fmt.Fprintln(&b, "| Purchased | Matures | Shares | Matured |")
	fmt.Fprintln(&b, "|:---|:---|---:|:---:|")
	for _, lot := range h.SortedLots() {
		matured := " "
		if lot.Matured(asOf) {
			matured = "X"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			lot.Day,
			lot.MaturityDate(),
			lot.Quantity,
			matured,
		)
	}
	return b.String()
}
