package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/etnz/logbook"
	"github.com/etnz/logbook/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type overviewCmd struct {
	offline bool
}

func (*overviewCmd) Name() string     { return "overview" }
func (*overviewCmd) Synopsis() string { return "display the cross-market investment overview" }
func (*overviewCmd) Usage() string {
	return `lb overview [-offline]

  Converts every market's net invested capital into TWD, displays each
  market's share of the total, and the per-symbol distribution behind the
  pie charts. When the exchange rate feed is unavailable a documented
  fallback rate is used rather than losing the report.
`
}

func (c *overviewCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.offline, "offline", false, "Skip the exchange rate feed, use the fallback rate")
}

func (c *overviewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	const reporting = "TWD"

	rate := logbook.FallbackUSDTWD
	fallback := true
	if !c.offline {
		if r, err := logbook.FetchRate("USD", reporting); err != nil {
			log.Printf("warning, exchange rate feed unavailable, using fallback rate %s: %v", logbook.FallbackUSDTWD, err)
		} else {
			rate, fallback = r, false
		}
	}
	// The engine receives a rate function over the already fetched rate, so
	// the whole snapshot is materialized before any computation starts.
	fx := func(from, to string) (decimal.Decimal, error) {
		if from == "USD" && to == reporting {
			return rate, nil
		}
		return decimal.Zero, fmt.Errorf("no rate for %s/%s", from, to)
	}

	var totals []logbook.MarketTotal
	breakdowns := make(map[logbook.Market][]logbook.Slice)
	for _, market := range logbook.Markets() {
		transactions := ledger.Market(market)
		totals = append(totals, logbook.NativeTotal(market, transactions))
		breakdowns[market] = logbook.Breakdown(logbook.NetInvestedBySymbol(transactions))
	}

	items, grandTotal := logbook.AggregateMarkets(totals, reporting, fx, logbook.FallbackUSDTWD)

	printMarkdown(renderer.OverviewMarkdown(&renderer.Overview{
		ReportingCurrency: reporting,
		Rate:              rate,
		RateFallback:      fallback,
		Items:             items,
		GrandTotal:        grandTotal,
		Breakdowns:        breakdowns,
	}))
	return subcommands.ExitSuccess
}
