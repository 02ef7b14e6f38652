package renderer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/folioapp/folio"
	"github.com/folioapp/folio/date"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// mustBeMarkdown fails the test if the report is not convertible markdown.
func mustBeMarkdown(t *testing.T, report string) {
	t.Helper()
	if strings.TrimSpace(report) == "" {
		t.Fatal("empty report")
	}
	var buf bytes.Buffer
	gm := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := gm.Convert([]byte(report), &buf); err != nil {
		t.Fatalf("report is not valid markdown: %v\n%s", err, report)
	}
}

func result(symbol string, value float64, sector string) folio.HoldingResult {
	return folio.HoldingResult{
		Symbol:      symbol,
		Shares:      folio.Q(10),
		BuyPrice:    folio.M(100, "GBP"),
		PriceNative: folio.M(value/10, "GBP"),
		PriceBase:   folio.M(value/10, "GBP"),
		Currency:    "GBP",
		MarketValue: folio.M(value, "GBP"),
		CostBasis:   folio.M(1000, "GBP"),
		Return:      folio.Percent(50),
		ReturnKnown: true,
		Sector:      sector,
		Rating:      "Buy",
	}
}

func TestDashboardMarkdown(t *testing.T) {
	results := []folio.HoldingResult{
		result("AAPL", 1500, "Technology"),
		result("VOD.L", 240, "Communication Services"),
	}
	summary := &folio.Summary{
		BaseCurrency: "GBP",
		TotalValue:   folio.M(1740, "GBP"),
		TotalCost:    folio.M(2000, "GBP"),
		Return:       folio.Percent(-13),
		ReturnKnown:  true,
		Holdings:     2,
		Skipped:      1,
		Allocation: map[string]folio.Money{
			"Technology":             folio.M(1500, "GBP"),
			"Communication Services": folio.M(240, "GBP"),
		},
	}
	notices := folio.Notices{{Kind: folio.QuoteUnavailable, Symbol: "GHOST"}}

	report := DashboardMarkdown("tech", results, summary, notices)
	mustBeMarkdown(t, report)

	for _, want := range []string{
		"# Portfolio tech",
		"AAPL",
		"Technology",
		"## Totals (GBP)",
		"## Sector Allocation",
		"## Notices",
		"GHOST",
		"2 valued, 1 skipped",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report lacks %q:\n%s", want, report)
		}
	}
}

func TestDashboardMarkdown_NoNotices(t *testing.T) {
	summary := &folio.Summary{BaseCurrency: "GBP", TotalValue: folio.M(0, "GBP"), TotalCost: folio.M(0, "GBP")}
	report := DashboardMarkdown("", nil, summary, nil)
	mustBeMarkdown(t, report)
	if strings.Contains(report, "## Notices") {
		t.Errorf("notices section rendered with no notices:\n%s", report)
	}
}

func TestSummaryMarkdown_AllocationOrder(t *testing.T) {
	summary := &folio.Summary{
		BaseCurrency: "GBP",
		TotalValue:   folio.M(1000, "GBP"),
		TotalCost:    folio.M(800, "GBP"),
		ReturnKnown:  true,
		Holdings:     2,
		Allocation: map[string]folio.Money{
			"Energy":     folio.M(250, "GBP"),
			"Technology": folio.M(750, "GBP"),
		},
	}
	report := SummaryMarkdown(summary)
	mustBeMarkdown(t, report)

	tech := strings.Index(report, "Technology")
	energy := strings.Index(report, "Energy")
	if tech < 0 || energy < 0 || tech > energy {
		t.Errorf("sectors not ordered by descending value:\n%s", report)
	}
	if !strings.Contains(report, "75.00%") {
		t.Errorf("missing sector weight:\n%s", report)
	}
}

func TestSeriesMarkdown(t *testing.T) {
	var portfolio, benchmark date.History[float64]
	portfolio.Append(date.MustParse("2026-08-01"), 1000)
	portfolio.Append(date.MustParse("2026-08-02"), 1020)
	benchmark.Append(date.MustParse("2026-08-01"), 1000)

	report := SeriesMarkdown("GBP", "^FTSE", portfolio, benchmark)
	mustBeMarkdown(t, report)
	for _, want := range []string{"^FTSE", "2026-08-01", "1020.00"} {
		if !strings.Contains(report, want) {
			t.Errorf("report lacks %q:\n%s", want, report)
		}
	}
}

func TestSeriesMarkdown_NoBenchmark(t *testing.T) {
	var portfolio date.History[float64]
	portfolio.Append(date.MustParse("2026-08-01"), 1000)

	report := SeriesMarkdown("GBP", "", portfolio, date.History[float64]{})
	mustBeMarkdown(t, report)
	if !strings.Contains(report, "1000.00") {
		t.Errorf("missing value column:\n%s", report)
	}
}

func TestNewsMarkdown(t *testing.T) {
	headlines := []folio.Headline{
		{Title: "Shares surge on record profit", Publisher: "Newswire", Link: "https://example.com/1"},
		{Title: "Outlook warns of losses", Publisher: "Daily"},
	}
	report := NewsMarkdown("AAPL", headlines)
	mustBeMarkdown(t, report)
	if !strings.Contains(report, "Positive") || !strings.Contains(report, "Negative") {
		t.Errorf("missing sentiment labels:\n%s", report)
	}
	if !strings.Contains(report, "](https://example.com/1)") {
		t.Errorf("headline link not rendered:\n%s", report)
	}
}

func TestNewsMarkdown_Empty(t *testing.T) {
	report := NewsMarkdown("AAPL", nil)
	mustBeMarkdown(t, report)
	if !strings.Contains(report, "No recent headlines") {
		t.Errorf("missing empty placeholder:\n%s", report)
	}
}

func TestWatchlistMarkdown(t *testing.T) {
	results := []folio.HoldingResult{result("AAPL", 1500, "Technology")}
	report := WatchlistMarkdown(results, folio.Notices{{Kind: folio.QuoteUnavailable, Symbol: "GHOST"}})
	mustBeMarkdown(t, report)
	if !strings.Contains(report, "AAPL") || !strings.Contains(report, "GHOST") {
		t.Errorf("report incomplete:\n%s", report)
	}
}
