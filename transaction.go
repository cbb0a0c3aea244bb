package logbook

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Action distinguishes buy from sell transactions.
type Action string

const (
	// Buy records a purchase. It is the default for records with no action.
	Buy Action = "buy"
	// Sell records a disposal.
	Sell Action = "sell"
)

// ParseAction parses an action string. An empty string defaults to Buy.
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "buy":
		return Buy, nil
	case "sell":
		return Sell, nil
	default:
		return "", fmt.Errorf("unknown action: %q", s)
	}
}

// NormalizeSymbol upper-cases and trims a ticker so that symbol matching is
// case-insensitive. Every lookup key in this package is normalized with it.
func NormalizeSymbol(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Transaction is one immutable ledger row: a buy or sell of a quantity of a
// symbol at a price in the market's native currency.
//
// The target prices and annotations are display-only and never enter any
// computation. RowID is an opaque identifier used only for deletion.
type Transaction struct {
	RowID    string          `json:"row,omitempty"`
	Symbol   string          `json:"symbol"`
	Market   Market          `json:"market"`
	Action   Action          `json:"action,omitempty"`
	Date     Date            `json:"date"`
	Price    decimal.Decimal `json:"price"`
	Quantity Quantity        `json:"quantity"`

	StopLoss   *decimal.Decimal `json:"stopLoss,omitempty"`
	TakeProfit *decimal.Decimal `json:"takeProfit,omitempty"`
	ScaleIn    *decimal.Decimal `json:"scaleIn,omitempty"`
	ScaleOut   *decimal.Decimal `json:"scaleOut,omitempty"`

	BuyRationale string `json:"buyRationale,omitempty"`
	SellNote     string `json:"sellNote,omitempty"`
	Attachment   string `json:"attachment,omitempty"`

	// Realized gain of a sell, computed once when the sell is recorded
	// against the average buy cost at that instant, then stored as-is.
	Realized       *decimal.Decimal `json:"realized,omitempty"`
	RealizedROIPct *float64         `json:"realizedRoiPct,omitempty"`
}

// Ticker returns the normalized symbol used for matching.
func (t Transaction) Ticker() string { return NormalizeSymbol(t.Symbol) }

// IsSell reports whether the transaction is a disposal. Records with an
// absent action count as buys.
func (t Transaction) IsSell() bool { return t.Action == Sell }

// PriceMoney returns the unit price in the market's native currency.
func (t Transaction) PriceMoney() Money { return Money{value: t.Price, cur: t.Market.Currency()} }

// Cost returns price times quantity in the market's native currency.
func (t Transaction) Cost() Money { return t.PriceMoney().Mul(t.Quantity) }

// Validate checks the transaction for shape errors. Degenerate but valid data
// (zero price, zero quantity) passes; malformed data does not.
func (t Transaction) Validate() error {
	if t.Ticker() == "" {
		return invalidf("symbol", "missing")
	}
	if _, err := ParseMarket(string(t.Market)); err != nil {
		return invalidf("market", "%v", err)
	}
	if _, err := ParseAction(string(t.Action)); err != nil {
		return invalidf("action", "%v", err)
	}
	if t.Date.IsZero() {
		return invalidf("date", "missing")
	}
	if t.Price.IsNegative() {
		return invalidf("price", "negative: %s", t.Price)
	}
	if t.Quantity.IsNegative() {
		return invalidf("quantity", "negative: %s", t.Quantity)
	}
	return nil
}
