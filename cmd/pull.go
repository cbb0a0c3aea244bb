package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/logbook"
	"github.com/google/subcommands"
)

// pullCmd replaces the local ledger and lottery book with the remote sheet
// contents. The remote is the source of truth; pull is a full resync, not a
// merge.
type pullCmd struct {
	lottery bool
}

func (*pullCmd) Name() string     { return "pull" }
func (*pullCmd) Synopsis() string { return "resync the local files from the spreadsheet web app" }
func (*pullCmd) Usage() string {
	return `lb pull [-lottery]

  Fetches every stock sheet from the web app and rewrites the local ledger
  file with their contents. With -lottery the lottery sheet is pulled too.
`
}

func (c *pullCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.lottery, "lottery", false, "Also pull the lottery sheet")
}

func (c *pullCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	webapp, err := logbook.NewWebApp(logbook.APIURL())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	ledger := logbook.NewLedger()
	for _, market := range logbook.Markets() {
		records, err := webapp.Records(market.Sheet())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		txs, err := logbook.ImportSheet(market, records)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		for _, tx := range txs {
			if err := ledger.Append(tx); err != nil {
				fmt.Fprintln(os.Stderr, err)
				return subcommands.ExitFailure
			}
		}
		fmt.Printf("Pulled %d transactions from sheet %q\n", len(txs), market.Sheet())
	}
	if err := saveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.lottery {
		records, err := webapp.Records(logbook.SheetLottery)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		book := make([]logbook.LotteryRecord, 0, len(records))
		for i, record := range records {
			rec, err := logbook.ParseLotteryRecord(record)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error in record %d of sheet %q: %v\n", i+1, logbook.SheetLottery, err)
				return subcommands.ExitFailure
			}
			book = append(book, rec)
		}
		if err := saveLotteryBook(book); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Pulled %d lottery records from sheet %q\n", len(book), logbook.SheetLottery)
	}
	return subcommands.ExitSuccess
}
