package folio

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
	"github.com/folioapp/folio/date"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// This file contains the client for the Yahoo Finance JSON endpoints, the
// one real MarketData implementation shipped with the tool.

const yahooBase = "https://query1.finance.yahoo.com"

// YahooClient fetches quotes, close series and FX rates from the Yahoo
// Finance JSON endpoints. Responses are cached on disk with a daily expiry.
type YahooClient struct {
	base   string
	client *http.Client
	log    *logrus.Logger
}

var _ MarketData = (*YahooClient)(nil)

// NewYahooClient returns a client against the public Yahoo endpoints.
func NewYahooClient(log *logrus.Logger) *YahooClient {
	if log == nil {
		log = logrus.New()
	}
	return &YahooClient{base: yahooBase, client: cachedClient(log), log: log}
}

// NewYahooClientAt returns a client against an alternative base URL with no
// disk cache. Tests point it at a local server.
func NewYahooClientAt(base string, log *logrus.Logger) *YahooClient {
	if log == nil {
		log = logrus.New()
	}
	return &YahooClient{base: base, client: new(http.Client), log: log}
}

// Quote fetches the current quote and company metadata for a symbol from
// the quoteSummary endpoint, the same payload the original dashboards read
// through yfinance's info.
func (y *YahooClient) Quote(ctx context.Context, symbol string) (RawQuote, error) {
	addr := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?modules=price,summaryDetail,summaryProfile,financialData",
		y.base, url.PathEscape(symbol))

	var jobj any
	if err := jwget(ctx, y.client, addr, &jobj); err != nil {
		return RawQuote{}, fmt.Errorf("quote %s: %w", symbol, err)
	}
	if _, err := jsonpath.Get("$.quoteSummary.result[0]", jobj); err != nil {
		return RawQuote{}, fmt.Errorf("quote %s: %w", symbol, ErrNotFound)
	}

	q := RawQuote{
		Currency:       jpString(jobj, "$.quoteSummary.result[0].price.currency"),
		Venue:          jpString(jobj, "$.quoteSummary.result[0].price.exchange"),
		Sector:         jpString(jobj, "$.quoteSummary.result[0].summaryProfile.sector"),
		DividendYield:  jpFloat(jobj, "$.quoteSummary.result[0].summaryDetail.dividendYield.raw"),
		PERatio:        jpFloat(jobj, "$.quoteSummary.result[0].summaryDetail.trailingPE.raw"),
		Recommendation: jpString(jobj, "$.quoteSummary.result[0].financialData.recommendationKey"),
	}
	if price := jpFloat(jobj, "$.quoteSummary.result[0].price.regularMarketPrice.raw"); price > 0 {
		q.Price = decimal.NewFromFloat(price)
	}
	return q, nil
}

// chartResponse is the part of the v8 chart payload the client reads.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error any `json:"error"`
	} `json:"chart"`
}

// History fetches the daily close series for a symbol over a date range.
// Null closes (holidays, halted sessions) are dropped, leaving gaps.
func (y *YahooClient) History(ctx context.Context, symbol string, r date.Range) (date.History[float64], error) {
	var prices date.History[float64]

	addr := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&period1=%d&period2=%d",
		y.base, url.PathEscape(symbol), r.From.Unix(), r.To.Add(1).Unix())
	var content chartResponse
	if err := jwget(ctx, y.client, addr, &content); err != nil {
		return prices, fmt.Errorf("history %s: %w", symbol, err)
	}
	if len(content.Chart.Result) == 0 {
		return prices, fmt.Errorf("history %s: %w", symbol, ErrNotFound)
	}

	result := content.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return prices, fmt.Errorf("history %s: %w", symbol, ErrNotFound)
	}
	closes := result.Indicators.Quote[0].Close
	for i, ts := range result.Timestamp {
		if i >= len(closes) || closes[i] == nil {
			continue
		}
		prices.Append(date.FromUnix(ts), *closes[i])
	}
	return prices, nil
}

// FxClose returns the most recent close for a currency pair, using the
// provider's FROMTO=X synthetic pair symbols.
func (y *YahooClient) FxClose(ctx context.Context, from, to string) (decimal.Decimal, error) {
	pair := fmt.Sprintf("%s%s=X", from, to)
	hist, err := y.History(ctx, pair, date.LastDays(date.Today(), 5))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("fx %s: %w", pair, err)
	}
	if hist.Len() == 0 {
		return decimal.Decimal{}, fmt.Errorf("fx %s: %w", pair, ErrNotFound)
	}
	_, last := hist.Latest()
	return decimal.NewFromFloat(last), nil
}

// Headline is one news item attached to a symbol.
type Headline struct {
	Title     string
	Publisher string
	Link      string
}

// News fetches the latest headlines mentioning a symbol from the search
// endpoint. It is display-only and not part of the MarketData contract.
func (y *YahooClient) News(ctx context.Context, symbol string) ([]Headline, error) {
	addr := fmt.Sprintf("%s/v1/finance/search?q=%s&newsCount=10&quotesCount=0", y.base, url.QueryEscape(symbol))

	var content struct {
		News []struct {
			Title     string `json:"title"`
			Publisher string `json:"publisher"`
			Link      string `json:"link"`
		} `json:"news"`
	}
	if err := jwget(ctx, y.client, addr, &content); err != nil {
		return nil, fmt.Errorf("news %s: %w", symbol, err)
	}
	headlines := make([]Headline, 0, len(content.News))
	for _, n := range content.News {
		headlines = append(headlines, Headline{Title: n.Title, Publisher: n.Publisher, Link: n.Link})
	}
	return headlines, nil
}

// jpFloat extracts a float by jsonpath, zero when absent or not a number.
func jpFloat(jobj any, path string) float64 {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0
	}
	// jsonpath is never clear about whether it returns a list of one
	// answer or a single answer, keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, _ := jval.(float64)
	return val
}

// jpString extracts a string by jsonpath, empty when absent.
func jpString(jobj any, path string) string {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return ""
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, _ := jval.(string)
	return val
}
