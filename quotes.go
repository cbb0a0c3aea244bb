package logbook

// QuoteProvider looks up the live price of a normalized symbol. It never
// errors for an unknown symbol: absence of a quote is a modeled state the
// valuation handles, not a failure.
type QuoteProvider interface {
	Quote(symbol string) (Money, bool)
}

// StaticQuotes is a QuoteProvider over a fixed price table, used for the
// prices fetched in one batch from the web app, and in tests.
type StaticQuotes struct {
	Currency string
	Prices   map[string]float64
}

// Quote returns the price of a symbol in the table's currency.
func (s StaticQuotes) Quote(symbol string) (Money, bool) {
	price, ok := s.Prices[NormalizeSymbol(symbol)]
	if !ok {
		return Money{}, false
	}
	return M(price, s.Currency), true
}

// NoQuotes is a QuoteProvider with no prices at all, for offline reports.
type NoQuotes struct{}

func (NoQuotes) Quote(string) (Money, bool) { return Money{}, false }
