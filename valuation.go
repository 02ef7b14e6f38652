package folio

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// HoldingResult is one row of the valuation output. The descriptive tail
// (Sector, DividendYield, PERatio, Rating) is passthrough for display and
// allocation, it never enters the arithmetic.
type HoldingResult struct {
	Symbol      string
	Shares      Quantity
	BuyPrice    Money // per share, base currency
	PriceNative Money // unit-corrected, native currency
	PriceBase   Money // per share, base currency
	Currency    string
	MarketValue Money // PriceBase x Shares
	CostBasis   Money // BuyPrice x Shares
	Return      Percent
	ReturnKnown bool // false when the buy price is zero

	Sector        string
	DividendYield Percent // zero when the provider reports none
	PERatio       float64 // zero when the provider reports none
	Rating        string
}

// Summary aggregates the holdings that produced a valid quote. A holding
// contributes either both its market value and its cost basis, or neither.
type Summary struct {
	BaseCurrency string
	TotalValue   Money
	TotalCost    Money
	Return       Percent
	ReturnKnown  bool // false when the total cost is zero
	Holdings     int  // number of holdings contributing to the totals
	Skipped      int
	// Allocation maps each sector to the summed market value of its holdings.
	Allocation map[string]Money
}

// Engine values a set of holdings against current market data. Each call to
// Evaluate is self-contained: rates are memoized per pass and no state
// survives between passes, so re-running with the same inputs and market
// data yields identical results.
type Engine struct {
	cfg      Config
	provider MarketData
	log      *logrus.Logger
}

// NewEngine returns an Engine, validating the configuration once up front.
func NewEngine(cfg Config, provider MarketData, log *logrus.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if log == nil {
		log = logrus.New()
	}
	return &Engine{cfg: cfg, provider: provider, log: log}, nil
}

// Evaluate fetches a quote for every holding, normalizes it into the base
// currency and derives per-holding metrics and portfolio aggregates.
//
// Holdings are valued concurrently by a bounded pool, but the result list
// always preserves the input order. A holding whose quote cannot be
// resolved is skipped with a notice, it never aborts the batch and never
// contributes a partial row to the totals. The returned error is only for
// an invalid batch (ErrMalformedInput), which fails fast before any fetch.
func (e *Engine) Evaluate(ctx context.Context, holdings []Holding) ([]HoldingResult, *Summary, Notices, error) {
	if err := validateBatch(holdings); err != nil {
		return nil, nil, nil, err
	}

	fx := NewConverter(e.provider, e.log)
	norm := NewNormalizer(e.cfg, fx)

	rows := make([]*HoldingResult, len(holdings))
	rowNotices := make([]Notices, len(holdings))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.Workers)
	for i, h := range holdings {
		g.Go(func() error {
			rows[i], rowNotices[i] = e.evaluateOne(gctx, norm, h)
			return nil
		})
	}
	// Workers never return an error, per-holding failures become notices.
	_ = g.Wait()

	// Reassemble in input order and aggregate. Doing this on a single
	// goroutine keeps the pass deterministic whatever the completion order.
	results := make([]HoldingResult, 0, len(holdings))
	var notices Notices
	seenPairs := make(map[string]bool)
	summary := &Summary{
		BaseCurrency: e.cfg.BaseCurrency,
		TotalValue:   M(0, e.cfg.BaseCurrency),
		TotalCost:    M(0, e.cfg.BaseCurrency),
		Allocation:   make(map[string]Money),
	}
	for i := range holdings {
		for _, n := range rowNotices[i] {
			if n.Kind == FxUnresolved {
				// One parity warning per pair is enough.
				if seenPairs[n.Symbol] {
					continue
				}
				seenPairs[n.Symbol] = true
			}
			notices = append(notices, n)
		}
		row := rows[i]
		if row == nil {
			summary.Skipped++
			continue
		}
		results = append(results, *row)
		summary.Holdings++
		summary.TotalValue = summary.TotalValue.Add(row.MarketValue)
		summary.TotalCost = summary.TotalCost.Add(row.CostBasis)
		summary.Allocation[row.Sector] = summary.Allocation[row.Sector].Add(row.MarketValue)
	}

	if summary.TotalCost.IsPositive() {
		summary.Return = summary.TotalValue.PercentOf(summary.TotalCost)
		summary.ReturnKnown = true
	}
	return results, summary, notices, nil
}

// evaluateOne values a single holding. A nil row means the holding was
// skipped, the notices say why.
func (e *Engine) evaluateOne(ctx context.Context, norm *Normalizer, h Holding) (*HoldingResult, Notices) {
	quote, err := e.provider.Quote(ctx, h.Symbol)
	if err != nil {
		e.log.WithField("symbol", h.Symbol).Warnf("quote fetch failed: %v", err)
		return nil, Notices{{Kind: QuoteUnavailable, Symbol: h.Symbol, Err: err}}
	}
	if !quote.hasPrice() {
		e.log.WithField("symbol", h.Symbol).Warn("no current price, holding skipped")
		return nil, Notices{{Kind: QuoteUnavailable, Symbol: h.Symbol}}
	}

	currency := quote.Currency
	if currency == "" {
		currency = e.cfg.BaseCurrency
	}

	var notices Notices
	nq := norm.Normalize(ctx, quote.Price, quote.Venue, currency)
	if nq.AssumedParity {
		notices = append(notices, Notice{Kind: FxUnresolved, Symbol: currency + e.cfg.BaseCurrency})
	}

	buyPrice := h.BuyPrice.In(e.cfg.BaseCurrency)
	row := &HoldingResult{
		Symbol:      h.Symbol,
		Shares:      h.Shares,
		BuyPrice:    buyPrice,
		PriceNative: nq.PriceNative,
		PriceBase:   nq.PriceBase,
		Currency:    currency,
		MarketValue: nq.PriceBase.Mul(h.Shares),
		CostBasis:   buyPrice.Mul(h.Shares),

		Sector:        sectorOrUnknown(quote.Sector),
		DividendYield: Percent(quote.DividendYield * 100),
		PERatio:       quote.PERatio,
		Rating:        RatingLabel(quote.Recommendation),
	}
	if buyPrice.IsPositive() {
		row.Return = nq.PriceBase.PercentOf(buyPrice)
		row.ReturnKnown = true
	}
	return row, notices
}

// validateBatch rejects a holdings list that should never reach a fetch.
// ParseHoldings already enforces this for user input, Evaluate re-checks so
// the engine holds the invariant for any caller.
func validateBatch(holdings []Holding) error {
	for _, h := range holdings {
		if h.Symbol == "" {
			return fmt.Errorf("%w: holding with empty symbol", ErrMalformedInput)
		}
		if !h.Shares.IsPositive() {
			return fmt.Errorf("%w: shares for %s must be positive", ErrMalformedInput, h.Symbol)
		}
	}
	return nil
}

func sectorOrUnknown(sector string) string {
	if sector == "" {
		return "Unknown"
	}
	return sector
}
