package logbook

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal.
func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Money represents a monetary value in a given currency.
type Money struct {
	value decimal.Decimal // major unit value
	cur   string
}

// M builds a Money from a numeric value and a currency code.
func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// currency returns the money's full currency definition, never nil.
func (m Money) currency() money.Currency {
	return *money.New(0, m.cur).Currency()
}

// String returns the money value formatted with its currency symbol.
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

func (m Money) Currency() string         { return m.cur }
func (m Money) Decimal() decimal.Decimal { return m.value }
func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsPositive() bool         { return m.value.IsPositive() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool    { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool { return m.value.GreaterThan(n.value) }
func (m Money) Neg() Money               { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Mul(q Quantity) Money     { return Money{value: m.value.Mul(q.value), cur: m.cur} }
func (m Money) Round(places int32) Money { return Money{value: m.value.Round(places), cur: m.cur} }

// Div divides the amount by a quantity. The caller must ensure q is not zero.
func (m Money) Div(q Quantity) Money { return Money{value: m.value.Div(q.value), cur: m.cur} }

// Scale multiplies the amount by a plain decimal factor (an FX rate).
func (m Money) Scale(factor decimal.Decimal, currency string) Money {
	return Money{value: m.value.Mul(factor), cur: currency}
}

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
