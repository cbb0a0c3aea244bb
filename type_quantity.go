package logbook

import "github.com/shopspring/decimal"

// Quantity represents a number of shares or units.
type Quantity struct {
	value decimal.Decimal
}

// Q builds a Quantity from a numeric value.
func Q[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Quantity {
	return Quantity{value: newDecimal(value)}
}

func (q Quantity) Decimal() decimal.Decimal { return q.value }
func (q Quantity) Equal(p Quantity) bool    { return q.value.Equal(p.value) }
func (q Quantity) LessThan(p Quantity) bool { return q.value.LessThan(p.value) }
func (q Quantity) Add(p Quantity) Quantity  { return Quantity{value: q.value.Add(p.value)} }
func (q Quantity) Sub(p Quantity) Quantity  { return Quantity{value: q.value.Sub(p.value)} }
func (q Quantity) IsNegative() bool         { return q.value.IsNegative() }
func (q Quantity) IsPositive() bool         { return q.value.IsPositive() }
func (q Quantity) IsZero() bool             { return q.value.IsZero() }
func (q Quantity) String() string           { return q.value.String() }

// MarshalJSON implements the json.Marshaler interface.
func (q Quantity) MarshalJSON() ([]byte, error) {
	return q.value.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	return q.value.UnmarshalJSON(data)
}
