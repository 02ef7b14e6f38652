package renderer

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/folioapp/folio"
	md "github.com/nao1215/markdown"
)

// DashboardMarkdown renders the full holdings dashboard: one row per valued
// holding, the portfolio summary, the sector allocation, and any notices
// collected during the pass.
func DashboardMarkdown(name string, results []folio.HoldingResult, summary *folio.Summary, notices folio.Notices) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	title := "Portfolio"
	if name != "" {
		title = fmt.Sprintf("Portfolio %s", name)
	}
	doc.H1(title)

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Ticker", "Shares", "Buy Price", "Price", "Value", "Return", "Sector", "Div Yield", "P/E", "Rating"},
		Rows:   [][]string{},
	}
	for _, r := range results {
		ret := "N/A"
		if r.ReturnKnown {
			ret = r.Return.SignedString()
		}
		table.Rows = append(table.Rows, []string{
			r.Symbol,
			r.Shares.String(),
			r.BuyPrice.String(),
			r.PriceBase.String(),
			r.MarketValue.String(),
			ret,
			r.Sector,
			naIfZero(r.DividendYield),
			peString(r.PERatio),
			r.Rating,
		})
	}
	doc.Table(table)

	report := doc.String()
	var b strings.Builder
	b.WriteString(report)
	b.WriteString(summarySection(summary))
	ConditionalBlock(&b, func(w io.Writer) bool {
		if len(notices) == 0 {
			return false
		}
		fmt.Fprintf(w, "\n## Notices\n\n")
		for _, n := range notices {
			fmt.Fprintf(w, "- %s\n", n)
		}
		return true
	})
	return b.String()
}
