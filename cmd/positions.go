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

type positionsCmd struct {
	market  string
	offline bool
}

func (*positionsCmd) Name() string     { return "positions" }
func (*positionsCmd) Synopsis() string { return "display per-symbol positions of a market" }
func (*positionsCmd) Usage() string {
	return `lb positions -m <market> [-offline]

  Displays every symbol's position: net shares, average cost, net invested
  capital, and when a live quote is available, unrealized gain and ROI.
  Symbols that sold more than they ever bought are flagged.
`
}

func (c *positionsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.market, "m", "", "Market (us, tw)")
	f.BoolVar(&c.offline, "offline", false, "Skip quote retrieval, cost columns only")
}

func (c *positionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	var quotes logbook.QuoteProvider = logbook.NoQuotes{}
	if !c.offline {
		quotes = quotesFor(market)
	}

	positions := logbook.Aggregate(ledger.Market(market))
	printMarkdown(renderer.PositionsMarkdown(market, positions, quotes))
	return subcommands.ExitSuccess
}
