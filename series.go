package folio

import (
	"context"

	"github.com/folioapp/folio/date"
	"golang.org/x/sync/errgroup"
)

// ValueSeries builds the combined portfolio value curve over the configured
// lookback window: each holding's daily close series is unit- and
// currency-normalized the same way as its current quote, scaled by the
// share count, then all series are summed pointwise with forward filling
// so a holding with gaps cannot dent the curve.
//
// Holdings without a usable history are reported with a notice and left
// out, a totally unreachable provider yields an empty series, not an error.
func (e *Engine) ValueSeries(ctx context.Context, holdings []Holding) (date.History[float64], Notices, error) {
	if err := validateBatch(holdings); err != nil {
		return date.History[float64]{}, nil, err
	}

	fx := NewConverter(e.provider, e.log)
	window := date.LastDays(date.Today(), e.cfg.LookbackDays)

	series := make([]*date.History[float64], len(holdings))
	rowNotices := make([]Notices, len(holdings))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.Workers)
	for i, h := range holdings {
		g.Go(func() error {
			series[i], rowNotices[i] = e.holdingSeries(gctx, fx, h, window)
			return nil
		})
	}
	_ = g.Wait()

	var notices Notices
	kept := make([]*date.History[float64], 0, len(holdings))
	for i := range holdings {
		notices = append(notices, rowNotices[i]...)
		if series[i] != nil {
			kept = append(kept, series[i])
		}
	}
	return date.SumForwardFilled(kept...), notices, nil
}

// holdingSeries fetches and normalizes one holding's close series, already
// scaled by the share count. A nil history means the holding is skipped.
func (e *Engine) holdingSeries(ctx context.Context, fx *Converter, h Holding, window date.Range) (*date.History[float64], Notices) {
	hist, err := e.provider.History(ctx, h.Symbol, window)
	if err != nil {
		e.log.WithField("symbol", h.Symbol).Warnf("history fetch failed: %v", err)
		return nil, Notices{{Kind: HistoryUnavailable, Symbol: h.Symbol, Err: err}}
	}
	if hist.Len() == 0 {
		return nil, Notices{{Kind: HistoryUnavailable, Symbol: h.Symbol}}
	}

	// The venue and currency of the series come from the current quote
	// metadata, the provider does not attach them to historical closes.
	quote, err := e.provider.Quote(ctx, h.Symbol)
	if err != nil {
		e.log.WithField("symbol", h.Symbol).Warnf("quote metadata fetch failed: %v", err)
		return nil, Notices{{Kind: HistoryUnavailable, Symbol: h.Symbol, Err: err}}
	}
	currency := quote.Currency
	if currency == "" {
		currency = e.cfg.BaseCurrency
	}

	divisor := 1.0
	if div, ok := e.cfg.unitDivisor(quote.Venue); ok {
		divisor = float64(div)
	}
	rate, resolved := fx.Rate(ctx, currency, e.cfg.BaseCurrency)
	var notices Notices
	if !resolved {
		notices = append(notices, Notice{Kind: FxUnresolved, Symbol: currency + e.cfg.BaseCurrency})
	}

	frate := rate.InexactFloat64()
	shares := h.Shares.AsFloat()
	scaled := hist.Map(func(close float64) float64 {
		return close / divisor * frate * shares
	})
	return &scaled, notices
}

// BenchmarkSeries fetches an index close series over the same lookback
// window and rescales it so its first point matches the portfolio curve's
// first point. The rescaled series is a visual overlay only, reading it as
// a return computation would be wrong.
func (e *Engine) BenchmarkSeries(ctx context.Context, symbol string, portfolio date.History[float64]) (date.History[float64], Notices, error) {
	window := date.LastDays(date.Today(), e.cfg.LookbackDays)
	hist, err := e.provider.History(ctx, symbol, window)
	if err != nil || hist.Len() == 0 {
		e.log.WithField("symbol", symbol).Warnf("benchmark fetch failed: %v", err)
		return date.History[float64]{}, Notices{{Kind: HistoryUnavailable, Symbol: symbol, Err: err}}, nil
	}
	return Rescale(hist, portfolio), nil, nil
}

// Rescale returns the benchmark series scaled so that its first value
// equals the target series' first value. If either series is empty or the
// benchmark starts at zero, the benchmark is returned unchanged.
func Rescale(benchmark, target date.History[float64]) date.History[float64] {
	_, bfirst := benchmark.First()
	_, tfirst := target.First()
	if benchmark.Len() == 0 || target.Len() == 0 || bfirst == 0 {
		return benchmark
	}
	factor := tfirst / bfirst
	return benchmark.Map(func(v float64) float64 { return v * factor })
}
