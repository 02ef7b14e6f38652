// Package renderer turns valuation results into markdown reports.
// All reports are plain markdown strings, the caller decides whether they
// go to a terminal (through glamour) or into a file.
package renderer

import (
	"fmt"

	"github.com/folioapp/folio"
)

// naIfZero formats a percent, or "N/A" when the value is absent.
func naIfZero(p folio.Percent) string {
	if p.Equal(0) {
		return "N/A"
	}
	return p.String()
}

// peString formats a price/earnings ratio, "N/A" when the provider has none.
func peString(pe float64) string {
	if pe <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", pe)
}
