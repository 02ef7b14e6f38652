// Package folio values a personal share portfolio: given a list of holdings
// (ticker, share count, buy price), it fetches current quotes from a market
// data provider, normalizes venue unit conventions and currencies into one
// base currency, and derives per-holding metrics and portfolio aggregates.
//
// The core pieces are:
//   - Currency Converter: resolves exchange rates between currency codes,
//     memoized per valuation pass and failing open to parity so a stalled
//     quote source never blocks a valuation.
//   - Quote Normalizer: corrects venues that quote in minor units (pence on
//     the LSE) through a configurable table, then converts the currency.
//   - Valuation Engine: values all holdings concurrently under a bounded
//     worker pool, preserving input order and skipping (with a notice) any
//     holding whose quote cannot be resolved. It also builds the combined
//     historical value curve, forward-filled across holdings with gaps,
//     optionally overlaid with a rescaled benchmark index.
//
// Market data access, portfolio persistence and report rendering live
// behind narrow seams (MarketData, Store, the renderer package), keeping
// the valuation core a deterministic function of its inputs.
//
// This package is the foundation of the `fol` command-line dashboard.
package folio
