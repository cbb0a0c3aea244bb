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

type txCmd struct {
	market string
	symbol string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions in the stock ledger" }
func (*txCmd) Usage() string {
	return `lb tx [-m <market>] [-s <symbol>]

  Lists transactions, optionally filtered by market and symbol.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.market, "m", "", "Only this market (us, tw)")
	f.StringVar(&c.symbol, "s", "", "Only this symbol")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	transactions := ledger.Transactions()
	if c.market != "" {
		market, err := logbook.ParseMarket(c.market)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		transactions = ledger.Market(market)
	}
	if c.symbol != "" {
		symbol := logbook.NormalizeSymbol(c.symbol)
		var filtered []logbook.Transaction
		for _, tx := range transactions {
			if tx.Ticker() == symbol {
				filtered = append(filtered, tx)
			}
		}
		transactions = filtered
	}

	printMarkdown(renderer.Transactions(transactions))
	return subcommands.ExitSuccess
}
