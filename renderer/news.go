package renderer

import (
	"bytes"
	"fmt"

	"github.com/folioapp/folio"
	md "github.com/nao1215/markdown"
)

// NewsMarkdown renders the latest headlines for a symbol, each scored by
// the keyword sentiment heuristic.
func NewsMarkdown(symbol string, headlines []folio.Headline) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("News for %s", symbol))

	if len(headlines) == 0 {
		doc.PlainText("No recent headlines.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft},
		Header:    []string{"Headline", "Publisher", "Sentiment"},
		Rows:      [][]string{},
	}
	for _, h := range headlines {
		title := h.Title
		if h.Link != "" {
			title = fmt.Sprintf("[%s](%s)", h.Title, h.Link)
		}
		table.Rows = append(table.Rows, []string{
			title,
			h.Publisher,
			folio.SentimentLabel(folio.SentimentScore(h.Title)),
		})
	}
	doc.Table(table)
	return doc.String()
}
