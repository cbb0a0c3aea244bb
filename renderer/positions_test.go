package renderer

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/etnz/logbook"
	"github.com/shopspring/decimal"
)

var spaces = regexp.MustCompile(` +`)

// flatten collapses the table padding so assertions do not depend on
// column widths.
func flatten(s string) string { return spaces.ReplaceAllString(s, " ") }

// contains checks for a wanted line in a rendered report, padding ignored.
func contains(t *testing.T, got, want string) {
	t.Helper()
	if !strings.Contains(flatten(got), want) {
		t.Errorf("rendered report misses %q in:\n%s", want, got)
	}
}

func tx(market logbook.Market, symbol string, action logbook.Action, price, quantity float64) logbook.Transaction {
	return logbook.Transaction{
		Symbol:   symbol,
		Market:   market,
		Action:   action,
		Date:     logbook.NewDate(2024, time.March, 1),
		Price:    decimal.NewFromFloat(price),
		Quantity: logbook.Q(quantity),
	}
}

func TestPositionsMarkdown(t *testing.T) {
	positions := logbook.Aggregate([]logbook.Transaction{
		tx(logbook.US, "aapl", logbook.Buy, 10, 100),
		tx(logbook.US, "aapl", logbook.Buy, 20, 100),
		tx(logbook.US, "nvda", logbook.Buy, 100, 10),
	})
	quotes := logbook.StaticQuotes{Currency: "USD", Prices: map[string]float64{"AAPL": 18.75}}

	got := PositionsMarkdown(logbook.US, positions, quotes)

	contains(t, got, "US Stocks Positions")
	contains(t, got, "| AAPL | 200 | $15.00 | $3,000.00 | $18.75 | +$750.00 | +25.00% |")
	contains(t, got, "| NVDA | 10 | $100.00 | $1,000.00 | — | — | — |")
	if strings.Contains(got, "⚠️") {
		t.Errorf("unexpected warning in:\n%s", got)
	}
}

func TestPositionsMarkdown_Inconsistent(t *testing.T) {
	positions := logbook.Aggregate([]logbook.Transaction{
		tx(logbook.US, "gme", logbook.Sell, 400, 10),
	})
	got := PositionsMarkdown(logbook.US, positions, logbook.NoQuotes{})

	contains(t, got, "⚠️ GME")
	// a negative holding is shown, never valued
	contains(t, got, "| GME | -10 |")
}

func TestPositionsMarkdown_Empty(t *testing.T) {
	got := PositionsMarkdown(logbook.TW, nil, logbook.NoQuotes{})
	if !strings.Contains(got, "No transactions recorded.") {
		t.Errorf("empty report = %q", got)
	}
}

func TestSummaryMarkdown(t *testing.T) {
	positions := logbook.Aggregate([]logbook.Transaction{
		tx(logbook.US, "aapl", logbook.Buy, 10, 100),
		tx(logbook.US, "aapl", logbook.Buy, 20, 100),
		tx(logbook.US, "nvda", logbook.Buy, 100, 10), // no quote
	})
	quotes := logbook.StaticQuotes{Currency: "USD", Prices: map[string]float64{"AAPL": 18.75}}

	got := SummaryMarkdown(logbook.US, positions, quotes)

	contains(t, got, "US Stocks Summary")
	contains(t, got, "| Holdings | 2 (1 valued) |")
	contains(t, got, "| Net Invested | $4,000.00 |")
	contains(t, got, "| Current Value | $3,750.00 |")
	contains(t, got, "| Unrealized P&L | +$750.00 |")
	contains(t, got, "| ROI | +25.00% |")
}

func TestSummaryMarkdown_Offline(t *testing.T) {
	positions := logbook.Aggregate([]logbook.Transaction{
		tx(logbook.US, "aapl", logbook.Buy, 10, 100),
	})
	got := SummaryMarkdown(logbook.US, positions, logbook.NoQuotes{})

	contains(t, got, "| Net Invested | $1,000.00 |")
	if strings.Contains(got, "Current Value") {
		t.Errorf("value row should be absent without quotes:\n%s", got)
	}
}
