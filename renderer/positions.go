// Package renderer turns engine results into markdown reports for the CLI.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/logbook"
	md "github.com/nao1215/markdown"
)

// PositionsMarkdown renders the per-symbol positions of one market, valued
// against the given quote source. Symbols without a quote keep their cost
// columns and leave the valuation columns empty rather than showing a zero
// gain.
func PositionsMarkdown(market logbook.Market, positions map[string]logbook.Position, quotes logbook.QuoteProvider) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s Positions", market.Name()))

	if len(positions) == 0 {
		doc.PlainText("No transactions recorded.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Symbol", "Shares", "Avg Cost", "Net Invested", "Quote", "Unrealized P&L", "ROI"},
	}
	var warnings []string
	for _, symbol := range logbook.Tickers(positions) {
		p := positions[symbol]
		quote, ok := quotes.Quote(symbol)
		v := logbook.Valuate(p, quote, ok)

		quoteCell, plCell, roiCell := "—", "—", "—"
		if v.Valued {
			quoteCell = v.Quote.String()
			plCell = v.UnrealizedPL.SignedString()
			roiCell = v.ROIPct.SignedString()
		}
		table.Rows = append(table.Rows, []string{
			symbol,
			p.NetShares().String(),
			p.AvgCost().String(),
			p.NetInvested().String(),
			quoteCell,
			plCell,
			roiCell,
		})
		if p.Inconsistent() {
			warnings = append(warnings, symbol)
		}
	}
	doc.Table(table)

	for _, symbol := range warnings {
		doc.PlainText(fmt.Sprintf("⚠️ %s: more shares sold than bought, the ledger looks inconsistent.", symbol))
	}

	return doc.String()
}

// SummaryMarkdown renders the per-market stat card: net invested capital,
// the current value of the valued positions, and the unrealized gain over
// the cost basis of those valued positions. Positions without a quote count
// in the invested total but not in the value or gain figures.
func SummaryMarkdown(market logbook.Market, positions map[string]logbook.Position, quotes logbook.QuoteProvider) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s Summary", market.Name()))

	if len(positions) == 0 {
		doc.PlainText("No transactions recorded.")
		return doc.String()
	}

	cur := market.Currency()
	invested := logbook.M(0, cur)
	value := logbook.M(0, cur)
	valuedCost := logbook.M(0, cur)
	valued, held := 0, 0
	for _, symbol := range logbook.Tickers(positions) {
		p := positions[symbol]
		invested = invested.Add(p.NetInvested())
		if p.NetShares().IsPositive() {
			held++
		}
		quote, ok := quotes.Quote(symbol)
		if v := logbook.Valuate(p, quote, ok); v.Valued {
			valued++
			value = value.Add(v.Quote.Mul(p.NetShares()))
			valuedCost = valuedCost.Add(p.AvgCost().Mul(p.NetShares()))
		}
	}

	table := md.TableSet{Header: []string{"Metric", "Value"}}
	table.Rows = append(table.Rows,
		[]string{"Holdings", fmt.Sprintf("%d (%d valued)", held, valued)},
		[]string{"Net Invested", invested.String()},
	)
	if valued > 0 {
		gain := value.Sub(valuedCost)
		roi := "-"
		if valuedCost.IsPositive() {
			ratio := gain.Decimal().Div(valuedCost.Decimal())
			roi = logbook.Percent(ratio.InexactFloat64() * 100).SignedString()
		}
		table.Rows = append(table.Rows,
			[]string{"Current Value", value.Round(2).String()},
			[]string{"Unrealized P&L", gain.Round(2).SignedString()},
			[]string{"ROI", roi},
		)
	}
	doc.Table(table)

	return doc.String()
}
