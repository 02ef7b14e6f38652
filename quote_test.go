package folio

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
)

func newTestNormalizer(cfg Config, p MarketData) *Normalizer {
	return NewNormalizer(cfg, NewConverter(p, quietLog()))
}

func TestNormalize_MinorUnitAppliedOnce(t *testing.T) {
	n := newTestNormalizer(DefaultConfig(), &fakeProvider{})
	ctx := context.Background()

	// The same underlying price quoted in pence on the LSE and in pounds
	// elsewhere must normalize identically.
	onLSE := n.Normalize(ctx, decimal.NewFromInt(24000), "LSE", "GBP")
	elsewhere := n.Normalize(ctx, decimal.NewFromInt(240), "NYSE", "GBP")

	if !onLSE.PriceBase.Equal(GBP(240)) {
		t.Errorf("LSE PriceBase = %v want %v", onLSE.PriceBase, GBP(240))
	}
	if !onLSE.PriceBase.Equal(elsewhere.PriceBase) {
		t.Errorf("LSE %v != non-minor-unit %v, unit correction must apply exactly once",
			onLSE.PriceBase, elsewhere.PriceBase)
	}
}

func TestNormalize_CurrencyConversion(t *testing.T) {
	provider := &fakeProvider{fx: map[string]float64{"USDGBP": 0.8}}
	n := newTestNormalizer(DefaultConfig(), provider)

	nq := n.Normalize(context.Background(), decimal.NewFromInt(150), "NYSE", "USD")
	if !nq.PriceNative.Equal(USD(150)) {
		t.Errorf("PriceNative = %v want %v", nq.PriceNative, USD(150))
	}
	if !nq.PriceBase.Equal(GBP(120)) {
		t.Errorf("PriceBase = %v want %v", nq.PriceBase, GBP(120))
	}
	if nq.AssumedParity {
		t.Errorf("AssumedParity = true for a resolved rate")
	}
}

func TestNormalize_UnknownCurrencyDefaultsToBase(t *testing.T) {
	provider := &fakeProvider{}
	n := newTestNormalizer(DefaultConfig(), provider)

	nq := n.Normalize(context.Background(), decimal.NewFromInt(50), "NYSE", "")
	if !nq.PriceBase.Equal(GBP(50)) {
		t.Errorf("PriceBase = %v want %v", nq.PriceBase, GBP(50))
	}
	if provider.fxCalls != 0 {
		t.Errorf("provider called %d times, base-currency quotes need no FX", provider.fxCalls)
	}
}

func TestNormalize_ParityFallback(t *testing.T) {
	n := newTestNormalizer(DefaultConfig(), &fakeProvider{})

	nq := n.Normalize(context.Background(), decimal.NewFromInt(150), "NYSE", "USD")
	if !nq.AssumedParity {
		t.Fatalf("AssumedParity = false, the USDGBP rate was not available")
	}
	if !nq.PriceBase.Equal(GBP(150)) {
		t.Errorf("PriceBase = %v want the unconverted amount %v", nq.PriceBase, GBP(150))
	}
}

func TestNormalize_ConfigurableVenueTable(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinorUnitVenues["JSE"] = 100 // rand quoted in cents

	n := newTestNormalizer(cfg, &fakeProvider{fx: map[string]float64{"ZARGBP": 0.04}})
	nq := n.Normalize(context.Background(), decimal.NewFromInt(5000), "JSE", "ZAR")
	if !nq.PriceBase.Equal(GBP(2)) {
		t.Errorf("PriceBase = %v want %v", nq.PriceBase, GBP(2))
	}
}
