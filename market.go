package logbook

import (
	"encoding/json"
	"fmt"
)

// Market identifies the exchange a transaction was made on. It determines the
// native currency of the transaction's price.
type Market string

const (
	// US is the United States equity market, priced in USD.
	US Market = "US"
	// TW is the Taiwan equity market, priced in TWD.
	TW Market = "TW"
)

// Markets lists all supported markets in reporting order.
func Markets() []Market { return []Market{TW, US} }

// Currency returns the native currency code of the market.
func (m Market) Currency() string {
	switch m {
	case US:
		return "USD"
	case TW:
		return "TWD"
	default:
		return ""
	}
}

// Name returns a human readable market name.
func (m Market) Name() string {
	switch m {
	case US:
		return "US Stocks"
	case TW:
		return "Taiwan Stocks"
	default:
		return string(m)
	}
}

func (m Market) String() string { return string(m) }

// UnmarshalJSON normalizes the market code, so a hand-edited lowercase code
// still matches the constants.
func (m *Market) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	market, err := ParseMarket(s)
	if err != nil {
		return err
	}
	*m = market
	return nil
}

// ParseMarket parses a market code, accepting any case.
func ParseMarket(s string) (Market, error) {
	switch Market(NormalizeSymbol(s)) {
	case US:
		return US, nil
	case TW:
		return TW, nil
	default:
		return "", fmt.Errorf("unknown market: %q", s)
	}
}
