package folio

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedInput reports an invalid holdings batch. It is returned before
// any market data is fetched, the whole computation is rejected at once.
var ErrMalformedInput = errors.New("malformed holdings input")

// Holding is one portfolio position as entered by the user: a ticker, a
// number of shares, and the price paid per share in the base currency.
// It is immutable once handed to the valuation engine.
type Holding struct {
	Symbol   string
	Shares   Quantity
	BuyPrice Money // in the base currency; the currency label is left weak
}

// ParseHoldings validates the column-wise rows of the original dashboards
// (tickers, shares, buy prices) and assembles them into holdings.
// Any invalid row fails the whole batch with ErrMalformedInput.
func ParseHoldings(tickers []string, shares []float64, buyPrices []float64) ([]Holding, error) {
	if len(tickers) != len(shares) || len(tickers) != len(buyPrices) {
		return nil, fmt.Errorf("%w: mismatched columns: %d tickers, %d shares, %d buy prices",
			ErrMalformedInput, len(tickers), len(shares), len(buyPrices))
	}
	holdings := make([]Holding, 0, len(tickers))
	for i, ticker := range tickers {
		ticker = strings.ToUpper(strings.TrimSpace(ticker))
		if ticker == "" {
			return nil, fmt.Errorf("%w: empty ticker in row %d", ErrMalformedInput, i+1)
		}
		if shares[i] <= 0 {
			return nil, fmt.Errorf("%w: shares for %s must be a positive number, got %v",
				ErrMalformedInput, ticker, shares[i])
		}
		if buyPrices[i] < 0 {
			return nil, fmt.Errorf("%w: buy price for %s must not be negative, got %v",
				ErrMalformedInput, ticker, buyPrices[i])
		}
		holdings = append(holdings, Holding{
			Symbol:   ticker,
			Shares:   Q(shares[i]),
			BuyPrice: M(buyPrices[i], ""),
		})
	}
	return holdings, nil
}
