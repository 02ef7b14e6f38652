package renderer

import (
	"bytes"
	"fmt"

	"github.com/folioapp/folio/date"
	md "github.com/nao1215/markdown"
)

// SeriesMarkdown renders the portfolio value curve as a dated table, with
// an optional benchmark column when the benchmark series has points. The
// benchmark is expected to be rescaled to the portfolio's first value.
func SeriesMarkdown(currency, benchmarkName string, portfolio, benchmark date.History[float64]) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Portfolio Value (%s)", currency))

	if benchmark.Len() > 0 {
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
			Header:    []string{"Date", "Value", benchmarkName},
			Rows:      [][]string{},
		}
		for day, value := range portfolio.Values() {
			bench := ""
			if v, ok := benchmark.ValueAsOf(day); ok {
				bench = fmt.Sprintf("%.2f", v)
			}
			table.Rows = append(table.Rows, []string{day.String(), fmt.Sprintf("%.2f", value), bench})
		}
		doc.Table(table)
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Date", "Value"},
		Rows:      [][]string{},
	}
	for day, value := range portfolio.Values() {
		table.Rows = append(table.Rows, []string{day.String(), fmt.Sprintf("%.2f", value)})
	}
	doc.Table(table)
	return doc.String()
}
