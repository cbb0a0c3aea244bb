package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/etnz/logbook"
	"github.com/etnz/logbook/renderer"
	"github.com/google/subcommands"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- lottery report ---

type lotteryCmd struct{}

func (*lotteryCmd) Name() string     { return "lottery" }
func (*lotteryCmd) Synopsis() string { return "display the lottery book with spend/win totals" }
func (*lotteryCmd) Usage() string {
	return `lb lottery

  Lists all lottery records with total spent, total won, and the net result.
`
}

func (c *lotteryCmd) SetFlags(f *flag.FlagSet) {}

func (c *lotteryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	records, err := decodeLotteryBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.LotteryMarkdown(records))
	return subcommands.ExitSuccess
}

// --- lottery-add ---

type lotteryAddCmd struct {
	date    string
	draw    string
	numbers string
	spent   float64
	won     float64
}

func (*lotteryAddCmd) Name() string     { return "lottery-add" }
func (*lotteryAddCmd) Synopsis() string { return "record a lottery ticket" }
func (*lotteryAddCmd) Usage() string {
	return `lb lottery-add -draw <draw> -spent <amount> [-d <date>] [-numbers <numbers>] [-won <amount>]

  Records one lottery ticket: what it cost, and later what it won.
`
}

func (c *lotteryAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", logbook.Today().String(), "Ticket date (YYYY-MM-DD)")
	f.StringVar(&c.draw, "draw", "", "Draw number")
	f.StringVar(&c.numbers, "numbers", "", "Played numbers")
	f.Float64Var(&c.spent, "spent", 0, "Amount spent, TWD")
	f.Float64Var(&c.won, "won", 0, "Amount won, TWD")
}

func (c *lotteryAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := logbook.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	rec := logbook.LotteryRecord{
		RowID:   uuid.NewString(),
		Date:    day,
		Draw:    c.draw,
		Numbers: c.numbers,
		Spent:   decimal.NewFromFloat(c.spent),
		Won:     decimal.NewFromFloat(c.won),
	}
	if err := rec.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid record: %v\n", err)
		return subcommands.ExitUsageError
	}

	file, err := os.OpenFile(*lotteryFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening lottery file %q: %v\n", *lotteryFile, err)
		return subcommands.ExitFailure
	}
	defer file.Close()
	if err := logbook.EncodeLotteryRecord(file, rec); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to lottery file %q: %v\n", *lotteryFile, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully appended lottery record %s to %s\n", rec.RowID, *lotteryFile)
	return subcommands.ExitSuccess
}

// --- lottery-del ---

type lotteryDelCmd struct {
	row string
}

func (*lotteryDelCmd) Name() string     { return "lottery-del" }
func (*lotteryDelCmd) Synopsis() string { return "delete a lottery record by its row id" }
func (*lotteryDelCmd) Usage() string {
	return `lb lottery-del -row <row-id>

  Deletes one lottery record and rewrites the book.
`
}

func (c *lotteryDelCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.row, "row", "", "Row id of the record to delete")
}

func (c *lotteryDelCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.row == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	records, err := decodeLotteryBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	kept := slices.DeleteFunc(records, func(r logbook.LotteryRecord) bool { return r.RowID == c.row })
	if len(kept) == len(records) {
		fmt.Fprintf(os.Stderr, "Error: no lottery record with row id %q\n", c.row)
		return subcommands.ExitFailure
	}
	if err := saveLotteryBook(kept); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted lottery record %s\n", c.row)
	return subcommands.ExitSuccess
}
