package folio

import (
	"context"
	"errors"

	"github.com/folioapp/folio/date"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned by a MarketData provider when a symbol or
// currency pair has no data.
var ErrNotFound = errors.New("not found")

// RawQuote is a provider's current view of one symbol. Price is the quote in
// the venue's native unit and currency, zero when the provider has no usable
// price. The descriptive fields are display-only and may be empty.
type RawQuote struct {
	Price         decimal.Decimal
	Currency      string // ISO-like code, empty means unknown
	Venue         string // exchange identifier, decides the unit convention
	Sector        string
	DividendYield float64 // fraction, e.g. 0.035 for 3.5%
	PERatio       float64 // zero when the provider has none
	Recommendation string // provider rating key, e.g. "strong_buy"
}

// hasPrice reports whether the quote carries a usable current price.
// Providers signal an unavailable price with zero, a price of zero is
// never a valid quote.
func (q RawQuote) hasPrice() bool { return q.Price.IsPositive() }

// MarketData is the quote provider contract the valuation core consumes.
// Implementations own transport, timeouts and retries; every call is
// assumed fallible and must not be relied on to return promptly without
// a context deadline.
type MarketData interface {
	// Quote returns the current quote and metadata for a symbol.
	Quote(ctx context.Context, symbol string) (RawQuote, error)
	// History returns the daily close series for a symbol over a date
	// range, ascending by date, possibly with gaps.
	History(ctx context.Context, symbol string, r date.Range) (date.History[float64], error)
	// FxClose returns the most recent close of the from/to currency pair.
	FxClose(ctx context.Context, from, to string) (decimal.Decimal, error)
}
