package folio

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/folioapp/folio/date"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// GBP is a helper for tests to create pound money from a const.
func GBP(v float64) Money { return M(v, "GBP") }

// USD is a helper for tests to create dollar money from a const.
func USD(v float64) Money { return M(v, "USD") }

// quietLog returns a logger that discards everything, tests assert on
// notices, not on log output.
func quietLog() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// fakeProvider implements MarketData from fixed tables.
type fakeProvider struct {
	quotes    map[string]RawQuote
	quoteErr  map[string]error
	histories map[string]*date.History[float64]
	fx        map[string]float64 // "USDGBP" -> rate
	delays    map[string]time.Duration

	mu       sync.Mutex
	fxCalls  int
	askedFor []string // symbols in completion order
}

func (f *fakeProvider) Quote(ctx context.Context, symbol string) (RawQuote, error) {
	if d, ok := f.delays[symbol]; ok {
		time.Sleep(d)
	}
	f.mu.Lock()
	f.askedFor = append(f.askedFor, symbol)
	f.mu.Unlock()
	if err, ok := f.quoteErr[symbol]; ok {
		return RawQuote{}, err
	}
	q, ok := f.quotes[symbol]
	if !ok {
		return RawQuote{}, ErrNotFound
	}
	return q, nil
}

func (f *fakeProvider) History(ctx context.Context, symbol string, r date.Range) (date.History[float64], error) {
	h, ok := f.histories[symbol]
	if !ok {
		return date.History[float64]{}, ErrNotFound
	}
	return *h, nil
}

func (f *fakeProvider) FxClose(ctx context.Context, from, to string) (decimal.Decimal, error) {
	f.mu.Lock()
	f.fxCalls++
	f.mu.Unlock()
	rate, ok := f.fx[from+to]
	if !ok {
		return decimal.Decimal{}, ErrNotFound
	}
	return decimal.NewFromFloat(rate), nil
}

// priced is a shorthand for a plain quote with only a price and venue.
func priced(price float64, currency, venue string) RawQuote {
	return RawQuote{Price: decimal.NewFromFloat(price), Currency: currency, Venue: venue}
}

// holding is a shorthand to build one test holding.
func holding(symbol string, shares, buyPrice float64) Holding {
	return Holding{Symbol: symbol, Shares: Q(shares), BuyPrice: M(buyPrice, "")}
}
