package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/logbook"
	"github.com/etnz/logbook/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct {
	market  string
	offline bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the per-market stat card" }
func (*summaryCmd) Usage() string {
	return `lb summary -m <market> [-offline]

  Displays the market stat card: net invested capital, the current value of
  the valued positions, and the unrealized gain over their cost basis.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.market, "m", "", "Market (us, tw)")
	f.BoolVar(&c.offline, "offline", false, "Skip the live quote fetch")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	market, err := logbook.ParseMarket(c.market)
	if err != nil {
		f.Usage()
		return subcommands.ExitUsageError
	}
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	quotes := logbook.QuoteProvider(logbook.NoQuotes{})
	if !c.offline {
		quotes = quotesFor(market)
	}
	positions := logbook.Aggregate(ledger.Market(market))
	printMarkdown(renderer.SummaryMarkdown(market, positions, quotes))
	return subcommands.ExitSuccess
}
