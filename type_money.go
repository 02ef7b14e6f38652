package folio

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in a given currency.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M creates a Money from any numeric type and a currency code.
func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// currency returns the money's full currency definition.
func (m Money) currency() money.Currency {
	// calling the money.Money constructor is the only way to get a never-nil currency
	return *money.New(0, m.cur).Currency()
}

// String formats the value with its currency symbol and fraction digits.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString is like String with an explicit sign, and "-" for zero.
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Currency() string           { return m.cur }
func (m Money) Equal(n Money) bool         { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool               { return m.value.IsZero() }
func (m Money) IsPositive() bool           { return m.value.IsPositive() }
func (m Money) GreaterThan(n Money) bool   { return m.value.GreaterThan(n.value) }
func (m Money) LessThan(n Money) bool      { return m.value.LessThan(n.value) }
func (m Money) Mul(q Quantity) Money       { return Money{value: m.value.Mul(q.value), cur: m.cur} }
func (m Money) DivBy(d decimal.Decimal) Money {
	return Money{value: m.value.Div(d), cur: m.cur}
}

// Scale multiplies the amount by a dimensionless factor, such as an exchange rate.
func (m Money) Scale(rate decimal.Decimal) Money {
	return Money{value: m.value.Mul(rate), cur: m.cur}
}

// In returns the same amount relabeled in another currency. It performs no
// conversion, callers pair it with Scale and an exchange rate.
func (m Money) In(currency string) Money { return Money{value: m.value, cur: currency} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// cur makes the "" currency totally weak.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}

// PercentOf returns how far m is above n, in percent of n.
func (m Money) PercentOf(n Money) Percent {
	if n.value.IsZero() {
		return 0
	}
	return Percent(m.value.Sub(n.value).Div(n.value).Mul(decimal.NewFromInt(100)).InexactFloat64())
}

// ShareOf returns m as a percentage of the total n, zero when n is zero.
func (m Money) ShareOf(n Money) Percent {
	if n.value.IsZero() {
		return 0
	}
	return Percent(m.value.Div(n.value).Mul(decimal.NewFromInt(100)).InexactFloat64())
}

// AsFloat returns the amount as a float64, for rendering only.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

func (m Money) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("currency", m.cur)
	w.Append("amount", m.value.Round(int32(m.currency().Fraction)))
	return w.MarshalJSON()
}
