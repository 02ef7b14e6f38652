package folio

import "fmt"

// NoticeKind classifies the recoverable conditions of a valuation pass.
type NoticeKind string

const (
	// QuoteUnavailable means no current price came back for a symbol. The
	// holding is excluded from the aggregates, never counted as zero.
	QuoteUnavailable NoticeKind = "quote-unavailable"
	// FxUnresolved means an exchange rate could not be fetched and parity
	// was assumed. The resulting figures mix currencies, see Notice.String.
	FxUnresolved NoticeKind = "fx-unresolved"
	// HistoryUnavailable means a holding has no usable close series and is
	// missing from the combined value curve.
	HistoryUnavailable NoticeKind = "history-unavailable"
)

// Notice is a structured, non-fatal warning attached to a valuation result.
type Notice struct {
	Kind   NoticeKind
	Symbol string // holding ticker, or "FROMTO" pair for FxUnresolved
	Err    error  // underlying cause, may be nil (e.g. provider returned no data)
}

func (n Notice) String() string {
	switch n.Kind {
	case QuoteUnavailable:
		return fmt.Sprintf("no current price for %s, holding skipped", n.Symbol)
	case FxUnresolved:
		return fmt.Sprintf("exchange rate %s unresolved, assumed parity (totals may mix currencies)", n.Symbol)
	case HistoryUnavailable:
		return fmt.Sprintf("no price history for %s, missing from the value curve", n.Symbol)
	}
	return fmt.Sprintf("%s: %s", n.Kind, n.Symbol)
}

// Notices is the list of warnings collected during one valuation pass.
type Notices []Notice

// Has reports whether any notice of the given kind was collected.
func (ns Notices) Has(kind NoticeKind) bool {
	for _, n := range ns {
		if n.Kind == kind {
			return true
		}
	}
	return false
}

// Symbols returns the symbols of all notices of the given kind, in order.
func (ns Notices) Symbols(kind NoticeKind) []string {
	var out []string
	for _, n := range ns {
		if n.Kind == kind {
			out = append(out, n.Symbol)
		}
	}
	return out
}
