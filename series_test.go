package folio

import (
	"context"
	"testing"

	"github.com/folioapp/folio/date"
)

func histOf(points map[string]float64) *date.History[float64] {
	var h date.History[float64]
	for day, v := range points {
		h.Append(date.MustParse(day), v)
	}
	return &h
}

func TestValueSeries_SumsAcrossHoldings(t *testing.T) {
	provider := &fakeProvider{
		quotes: map[string]RawQuote{
			"AAA": priced(10, "GBP", "NYSE"),
			"BBB": priced(20, "GBP", "NYSE"),
		},
		histories: map[string]*date.History[float64]{
			"AAA": histOf(map[string]float64{"2026-08-01": 10, "2026-08-02": 11}),
			"BBB": histOf(map[string]float64{"2026-08-01": 20, "2026-08-02": 22}),
		},
	}
	e := newTestEngine(t, DefaultConfig(), provider)

	series, notices, err := e.ValueSeries(context.Background(), []Holding{
		holding("AAA", 2, 5),
		holding("BBB", 1, 15),
	})
	if err != nil {
		t.Fatalf("ValueSeries: %v", err)
	}
	if len(notices) != 0 {
		t.Fatalf("unexpected notices: %v", notices)
	}
	// 2*10 + 1*20 = 40 then 2*11 + 1*22 = 44.
	if got := series.Len(); got != 2 {
		t.Fatalf("series has %d points want 2", got)
	}
	if got, ok := series.Get(date.MustParse("2026-08-01")); !ok || got != 40 {
		t.Errorf("value on 08-01 = %v, %v want 40, true", got, ok)
	}
	if got, ok := series.Get(date.MustParse("2026-08-02")); !ok || got != 44 {
		t.Errorf("value on 08-02 = %v, %v want 44, true", got, ok)
	}
}

func TestValueSeries_ForwardFillsGaps(t *testing.T) {
	provider := &fakeProvider{
		quotes: map[string]RawQuote{
			"AAA": priced(10, "GBP", "NYSE"),
			"BBB": priced(20, "GBP", "NYSE"),
		},
		histories: map[string]*date.History[float64]{
			// BBB has no close on 08-02, its last value must carry over.
			"AAA": histOf(map[string]float64{"2026-08-01": 10, "2026-08-02": 12}),
			"BBB": histOf(map[string]float64{"2026-08-01": 20}),
		},
	}
	e := newTestEngine(t, DefaultConfig(), provider)

	series, _, err := e.ValueSeries(context.Background(), []Holding{
		holding("AAA", 1, 5),
		holding("BBB", 1, 15),
	})
	if err != nil {
		t.Fatalf("ValueSeries: %v", err)
	}
	if got, _ := series.Get(date.MustParse("2026-08-02")); got != 32 {
		t.Errorf("value on 08-02 = %v want 32 (12 + carried 20)", got)
	}
}

func TestValueSeries_NormalizesEveryPoint(t *testing.T) {
	provider := &fakeProvider{
		quotes: map[string]RawQuote{
			"VOD.L": priced(24000, "GBP", "LSE"),
			"AAPL":  priced(150, "USD", "NYSE"),
		},
		histories: map[string]*date.History[float64]{
			"VOD.L": histOf(map[string]float64{"2026-08-01": 24000}),
			"AAPL":  histOf(map[string]float64{"2026-08-01": 150}),
		},
		fx: map[string]float64{"USDGBP": 0.8},
	}
	e := newTestEngine(t, DefaultConfig(), provider)

	series, notices, err := e.ValueSeries(context.Background(), []Holding{
		holding("VOD.L", 1, 100),
		holding("AAPL", 1, 100),
	})
	if err != nil {
		t.Fatalf("ValueSeries: %v", err)
	}
	if len(notices) != 0 {
		t.Fatalf("unexpected notices: %v", notices)
	}
	// 24000 pence / 100 = 240, 150 USD * 0.8 = 120.
	if got, _ := series.Get(date.MustParse("2026-08-01")); got != 360 {
		t.Errorf("value = %v want 360", got)
	}
}

func TestValueSeries_SkipsMissingHistory(t *testing.T) {
	provider := &fakeProvider{
		quotes: map[string]RawQuote{
			"AAA": priced(10, "GBP", "NYSE"),
		},
		histories: map[string]*date.History[float64]{
			"AAA": histOf(map[string]float64{"2026-08-01": 10}),
		},
	}
	e := newTestEngine(t, DefaultConfig(), provider)

	series, notices, err := e.ValueSeries(context.Background(), []Holding{
		holding("AAA", 1, 5),
		holding("GHOST", 1, 5),
	})
	if err != nil {
		t.Fatalf("ValueSeries: %v", err)
	}
	if !notices.Has(HistoryUnavailable) {
		t.Errorf("want a HistoryUnavailable notice for GHOST, got %v", notices)
	}
	if got, _ := series.Get(date.MustParse("2026-08-01")); got != 10 {
		t.Errorf("value = %v want 10, the reachable holding alone", got)
	}
}

func TestValueSeries_AllUnavailable(t *testing.T) {
	e := newTestEngine(t, DefaultConfig(), &fakeProvider{})

	series, notices, err := e.ValueSeries(context.Background(), []Holding{holding("GHOST", 1, 5)})
	if err != nil {
		t.Fatalf("ValueSeries: %v", err)
	}
	if series.Len() != 0 {
		t.Errorf("series has %d points want an empty series", series.Len())
	}
	if len(notices.Symbols(HistoryUnavailable)) != 1 {
		t.Errorf("notices = %v want one HistoryUnavailable", notices)
	}
}

func TestRescale(t *testing.T) {
	benchmark := *histOf(map[string]float64{"2026-08-01": 5000, "2026-08-02": 5500})
	target := *histOf(map[string]float64{"2026-08-01": 100, "2026-08-02": 90})

	scaled := Rescale(benchmark, target)
	if _, first := scaled.First(); first != 100 {
		t.Errorf("first scaled value = %v want 100, anchored to the target", first)
	}
	if got, _ := scaled.Get(date.MustParse("2026-08-02")); got != 110 {
		t.Errorf("second scaled value = %v want 110 (5500 * 100/5000)", got)
	}
}

func TestRescale_EmptyBenchmark(t *testing.T) {
	target := *histOf(map[string]float64{"2026-08-01": 100})
	scaled := Rescale(date.History[float64]{}, target)
	if scaled.Len() != 0 {
		t.Errorf("scaled has %d points want 0", scaled.Len())
	}
}

func TestBenchmarkSeries(t *testing.T) {
	provider := &fakeProvider{
		histories: map[string]*date.History[float64]{
			"^FTSE": histOf(map[string]float64{"2026-08-01": 9000, "2026-08-02": 9090}),
		},
	}
	e := newTestEngine(t, DefaultConfig(), provider)
	portfolio := *histOf(map[string]float64{"2026-08-01": 1000, "2026-08-02": 1020})

	series, notices, err := e.BenchmarkSeries(context.Background(), "^FTSE", portfolio)
	if err != nil {
		t.Fatalf("BenchmarkSeries: %v", err)
	}
	if len(notices) != 0 {
		t.Fatalf("unexpected notices: %v", notices)
	}
	if _, first := series.First(); first != 1000 {
		t.Errorf("first benchmark value = %v want 1000", first)
	}
}

func TestBenchmarkSeries_Unavailable(t *testing.T) {
	e := newTestEngine(t, DefaultConfig(), &fakeProvider{})

	series, notices, err := e.BenchmarkSeries(context.Background(), "^FTSE", date.History[float64]{})
	if err != nil {
		t.Fatalf("BenchmarkSeries: %v", err)
	}
	if series.Len() != 0 || !notices.Has(HistoryUnavailable) {
		t.Errorf("want empty series and a notice, got %d points, %v", series.Len(), notices)
	}
}
