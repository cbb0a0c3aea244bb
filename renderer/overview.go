package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/logbook"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

// Overview carries everything the cross-market overview report shows:
// FX-normalized market totals and the per-market distribution breakdowns
// that feed the pie charts.
type Overview struct {
	ReportingCurrency string
	Rate              decimal.Decimal // USD to reporting currency rate used
	RateFallback      bool            // true when the fallback constant was used
	Items             []logbook.PortfolioTotal
	GrandTotal        logbook.Money
	Breakdowns        map[logbook.Market][]logbook.Slice
}

// OverviewMarkdown renders the investment overview.
func OverviewMarkdown(o *Overview) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Investment Overview")

	rateNote := fmt.Sprintf("Rate: 1 USD = %s %s", o.Rate.StringFixed(2), o.ReportingCurrency)
	if o.RateFallback {
		rateNote += " (fallback)"
	}
	doc.PlainText(rateNote)

	doc.H2("Market Allocation")
	if !o.GrandTotal.IsPositive() {
		doc.PlainText("No invested capital yet.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Market", "Native Total", fmt.Sprintf("Total (%s)", o.ReportingCurrency), "Share"},
	}
	for _, item := range o.Items {
		table.Rows = append(table.Rows, []string{
			item.Market.Name(),
			item.NativeTotal.String(),
			item.NormalizedTotal.Round(0).String(),
			item.SharePct.String(),
		})
	}
	table.Rows = append(table.Rows, []string{"Total", "", o.GrandTotal.Round(0).String(), ""})
	doc.Table(table)

	for _, market := range logbook.Markets() {
		breakdown := o.Breakdowns[market]
		if len(breakdown) == 0 {
			continue
		}
		doc.H2(fmt.Sprintf("%s Distribution", market.Name()))
		dist := md.TableSet{Header: []string{"Symbol", "Net Invested"}}
		for _, slice := range breakdown {
			dist.Rows = append(dist.Rows, []string{slice.Label, slice.Value.StringFixed(2)})
		}
		doc.Table(dist)
	}

	return doc.String()
}
