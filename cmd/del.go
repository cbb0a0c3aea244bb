package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type delCmd struct {
	row string
}

func (*delCmd) Name() string     { return "del" }
func (*delCmd) Synopsis() string { return "delete a ledger row by its row id" }
func (*delCmd) Usage() string {
	return `lb del -row <row-id>

  Deletes one transaction from the ledger and rewrites the file in canonical
  order. Derived values are recomputed from the new snapshot on the next
  report; nothing is cached.
`
}

func (c *delCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.row, "row", "", "Row id of the transaction to delete")
}

func (c *delCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.row == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if !ledger.Delete(c.row) {
		fmt.Fprintf(os.Stderr, "Error: no transaction with row id %q\n", c.row)
		return subcommands.ExitFailure
	}
	if err := saveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted transaction %s\n", c.row)
	return subcommands.ExitSuccess
}
