package renderer

import (
	"bytes"

	"github.com/folioapp/folio"
	md "github.com/nao1215/markdown"
)

// WatchlistMarkdown renders current quotes for watched symbols. Watched
// symbols are not held, so there is no value or return column.
func WatchlistMarkdown(results []folio.HoldingResult, notices folio.Notices) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Watchlist")

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignLeft},
		Header:    []string{"Ticker", "Price", "Sector", "Div Yield", "P/E", "Rating"},
		Rows:      [][]string{},
	}
	for _, r := range results {
		table.Rows = append(table.Rows, []string{
			r.Symbol,
			r.PriceNative.String(),
			r.Sector,
			naIfZero(r.DividendYield),
			peString(r.PERatio),
			r.Rating,
		})
	}
	doc.Table(table)

	for _, n := range notices {
		doc.PlainTextf("- %s", n)
	}
	return doc.String()
}
