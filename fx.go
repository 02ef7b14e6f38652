package folio

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Converter resolves exchange rates between currency codes through a
// MarketData provider. It memoizes every pair it sees, so one valuation
// pass asks the provider at most once per pair. A Converter is meant to
// live for a single pass, create a new one to pick up fresh rates.
type Converter struct {
	provider MarketData
	log      *logrus.Logger

	mu   sync.Mutex
	memo map[string]fxEntry
}

type fxEntry struct {
	rate     decimal.Decimal
	resolved bool
}

// NewConverter returns a Converter backed by the given provider.
func NewConverter(provider MarketData, log *logrus.Logger) *Converter {
	if log == nil {
		log = logrus.New()
	}
	return &Converter{
		provider: provider,
		log:      log,
		memo:     make(map[string]fxEntry),
	}
}

// Rate returns how much one unit of 'from' is worth in 'to'. The second
// return value reports whether the rate was actually resolved: when the
// provider has no data for the pair, Rate falls back to parity (1.0) and
// returns false, so a stalled quote source never blocks a valuation.
// Callers must not read a (1.0, false) result as a real 1:1 parity.
func (c *Converter) Rate(ctx context.Context, from, to string) (decimal.Decimal, bool) {
	if from == to {
		return decimal.NewFromInt(1), true
	}

	pair := from + to
	c.mu.Lock()
	entry, ok := c.memo[pair]
	c.mu.Unlock()
	if ok {
		return entry.rate, entry.resolved
	}

	entry = c.fetch(ctx, from, to)
	c.mu.Lock()
	c.memo[pair] = entry
	c.mu.Unlock()
	return entry.rate, entry.resolved
}

func (c *Converter) fetch(ctx context.Context, from, to string) fxEntry {
	rate, err := c.provider.FxClose(ctx, from, to)
	if err != nil {
		c.log.WithFields(logrus.Fields{"from": from, "to": to}).
			Warnf("fx rate unresolved, assuming parity: %v", err)
		return fxEntry{rate: decimal.NewFromInt(1)}
	}
	if !rate.IsPositive() {
		c.log.WithFields(logrus.Fields{"from": from, "to": to}).
			Warn("fx rate unresolved (empty close), assuming parity")
		return fxEntry{rate: decimal.NewFromInt(1)}
	}
	return fxEntry{rate: rate, resolved: true}
}
