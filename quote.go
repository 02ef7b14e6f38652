package folio

import (
	"context"

	"github.com/shopspring/decimal"
)

// NormalizedQuote is a raw venue price expressed in the base currency.
// It is derived deterministically from the raw quote and one exchange rate.
type NormalizedQuote struct {
	// PriceNative is the unit-corrected price in the quote's own currency.
	PriceNative Money
	// PriceBase is the same price converted to the base currency.
	PriceBase Money
	// AssumedParity is true when the exchange rate could not be resolved
	// and parity was substituted. PriceBase is then the unconverted native
	// amount relabeled, not a real conversion.
	AssumedParity bool
}

// Normalizer turns raw venue quotes into base-currency prices: first the
// venue's unit convention is corrected (the LSE quotes in pence), then the
// currency is converted. The unit correction is table-driven from
// Config.MinorUnitVenues so further venues are a configuration change,
// not a code change.
type Normalizer struct {
	cfg Config
	fx  *Converter
}

// NewNormalizer returns a Normalizer using the given conversion table and
// exchange rate source.
func NewNormalizer(cfg Config, fx *Converter) *Normalizer {
	return &Normalizer{cfg: cfg, fx: fx}
}

// Normalize converts rawPrice as quoted on venue in the given currency into
// the base currency. An empty currency is taken to already be the base.
// The unit correction is applied exactly once, before any conversion.
func (n *Normalizer) Normalize(ctx context.Context, rawPrice decimal.Decimal, venue, currency string) NormalizedQuote {
	if currency == "" {
		currency = n.cfg.BaseCurrency
	}

	price := rawPrice
	if div, ok := n.cfg.unitDivisor(venue); ok {
		price = price.Div(decimal.NewFromInt(div))
	}
	native := M(price, currency)

	rate, resolved := n.fx.Rate(ctx, currency, n.cfg.BaseCurrency)
	return NormalizedQuote{
		PriceNative:   native,
		PriceBase:     native.Scale(rate).In(n.cfg.BaseCurrency),
		AssumedParity: !resolved,
	}
}
