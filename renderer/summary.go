package renderer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/folioapp/folio"
)

// SummaryMarkdown renders the portfolio summary alone, without the
// per-holding table.
func SummaryMarkdown(summary *folio.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Summary\n")
	b.WriteString(summarySection(summary))
	return b.String()
}

// summarySection writes the totals and the sector allocation. It is shared
// by the dashboard and the standalone summary report.
func summarySection(summary *folio.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n## Totals (%s)\n\n", summary.BaseCurrency)
	fmt.Fprintf(&b, "- Market Value: **%s**\n", summary.TotalValue)
	fmt.Fprintf(&b, "- Cost Basis: %s\n", summary.TotalCost)
	if summary.ReturnKnown {
		fmt.Fprintf(&b, "- Return: **%s**\n", summary.Return.SignedString())
	} else {
		fmt.Fprintf(&b, "- Return: N/A\n")
	}
	fmt.Fprintf(&b, "- Holdings: %d valued", summary.Holdings)
	if summary.Skipped > 0 {
		fmt.Fprintf(&b, ", %d skipped", summary.Skipped)
	}
	fmt.Fprintln(&b)

	if len(summary.Allocation) > 0 {
		fmt.Fprintf(&b, "\n## Sector Allocation\n\n")
		fmt.Fprintln(&b, "| Sector | Value | Weight |")
		fmt.Fprintln(&b, "|:---|---:|---:|")
		for _, sector := range sortedSectors(summary.Allocation) {
			value := summary.Allocation[sector]
			fmt.Fprintf(&b, "| %s | %s | %s |\n", sector, value, value.ShareOf(summary.TotalValue))
		}
	}
	return b.String()
}

// sortedSectors orders sectors by descending allocation, name breaking ties.
func sortedSectors(allocation map[string]folio.Money) []string {
	sectors := make([]string, 0, len(allocation))
	for sector := range allocation {
		sectors = append(sectors, sector)
	}
	sort.Slice(sectors, func(i, j int) bool {
		a, b := allocation[sectors[i]], allocation[sectors[j]]
		if !a.Equal(b) {
			return a.GreaterThan(b)
		}
		return sectors[i] < sectors[j]
	})
	return sectors
}
