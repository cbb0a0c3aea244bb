// Package cmd implements the CLI application to manage the investment
// logbook.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/etnz/logbook"
	"github.com/google/subcommands"
	"github.com/google/uuid"
)

// Register registers all subcommands on the commander.
func Register(c *subcommands.Commander) {
	c.Register(&buyCmd{}, "transactions")
	c.Register(&sellCmd{}, "transactions")
	c.Register(&delCmd{}, "transactions")
	c.Register(&txCmd{}, "transactions")

	c.Register(&positionsCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")
	c.Register(&overviewCmd{}, "reports")
	c.Register(&riskCmd{}, "reports")

	c.Register(&lotteryCmd{}, "lottery")
	c.Register(&lotteryAddCmd{}, "lottery")
	c.Register(&lotteryDelCmd{}, "lottery")

	c.Register(&importCmd{}, "remote")
	c.Register(&pullCmd{}, "remote")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application it is short lived, so global flags are fine.

var ledgerFile = flag.String("ledger-file", "logbook.jsonl", "Path to the stock ledger file (JSONL format)")
var lotteryFile = flag.String("lottery-file", "lottery.jsonl", "Path to the lottery book file (JSONL format)")

// DecodeLedger loads the stock ledger from the app ledger file. A missing
// file is an empty ledger, not an error.
func DecodeLedger() (*logbook.Ledger, error) {
	f, err := os.Open(*ledgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, ledger file does not exist, using an empty ledger instead")
		return logbook.NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open ledger file %q: %w", *ledgerFile, err)
	}
	defer f.Close()
	return logbook.DecodeLedger(f)
}

// appendTransaction assigns a row id and appends a transaction to the app
// ledger file.
func appendTransaction(tx logbook.Transaction) subcommands.ExitStatus {
	if tx.RowID == "" {
		tx.RowID = uuid.NewString()
	}
	if err := tx.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid transaction: %v\n", err)
		return subcommands.ExitUsageError
	}

	f, err := os.OpenFile(*ledgerFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger file %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := logbook.EncodeTransaction(f, tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to ledger file %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully appended transaction %s to %s\n", tx.RowID, *ledgerFile)
	return subcommands.ExitSuccess
}

// saveLedger rewrites the whole ledger file in canonical order.
func saveLedger(ledger *logbook.Ledger) error {
	f, err := os.Create(*ledgerFile)
	if err != nil {
		return fmt.Errorf("cannot rewrite ledger file %q: %w", *ledgerFile, err)
	}
	defer f.Close()
	return logbook.EncodeLedger(f, ledger)
}

// decodeLotteryBook loads the lottery book. A missing file is an empty book.
func decodeLotteryBook() ([]logbook.LotteryRecord, error) {
	f, err := os.Open(*lotteryFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open lottery file %q: %w", *lotteryFile, err)
	}
	defer f.Close()
	return logbook.DecodeLotteryBook(f)
}

// saveLotteryBook rewrites the whole lottery book file.
func saveLotteryBook(records []logbook.LotteryRecord) error {
	f, err := os.Create(*lotteryFile)
	if err != nil {
		return fmt.Errorf("cannot rewrite lottery file %q: %w", *lotteryFile, err)
	}
	defer f.Close()
	return logbook.EncodeLotteryBook(f, records)
}

// quotesFor returns live quotes for a market from the web app when it is
// configured, and no quotes at all otherwise. A missing quote source only
// blanks the valuation columns, it never fails a report.
func quotesFor(market logbook.Market) logbook.QuoteProvider {
	base := logbook.APIURL()
	if base == "" {
		return logbook.NoQuotes{}
	}
	webapp, err := logbook.NewWebApp(base)
	if err != nil {
		return logbook.NoQuotes{}
	}
	prices, err := webapp.Prices()
	if err != nil {
		log.Printf("warning, cannot fetch prices: %v", err)
		return logbook.NoQuotes{}
	}
	return logbook.StaticQuotes{Currency: market.Currency(), Prices: prices}
}
