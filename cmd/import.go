package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/logbook"
	"github.com/google/subcommands"
	"github.com/google/uuid"
)

// importCmd loads a sheet export (the getAll JSON payload saved to a file)
// into the local ledger. It is the offline cousin of pull.
type importCmd struct {
	market string
	file   string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a sheet export file into the ledger" }
func (*importCmd) Usage() string {
	return `lb import -m <market> -f <file>

  Reads a JSON export of a stock sheet (either the raw records array or the
  full getAll response) and merges its rows into the local ledger. Rows whose
  id already exists in the ledger are replaced, others are appended.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.market, "m", "us", "Market of the sheet (us or tw)")
	f.StringVar(&c.file, "f", "", "Path to the JSON export file")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	market, err := logbook.ParseMarket(c.market)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if c.file == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	records, err := readExport(c.file)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	txs, err := logbook.ImportSheet(market, records)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	added, replaced, err := mergeTransactions(ledger, txs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := saveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported %d transactions from %q (%d new, %d replaced)\n", len(txs), c.file, added, replaced)
	return subcommands.ExitSuccess
}

// readExport accepts either the bare records array or the whole getAll
// response envelope.
func readExport(path string) ([]map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read export file %q: %w", path, err)
	}
	var records []map[string]any
	if err := json.Unmarshal(data, &records); err == nil {
		return records, nil
	}
	var envelope struct {
		Records []map[string]any `json:"records"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("cannot parse export file %q: %w", path, err)
	}
	return envelope.Records, nil
}

// mergeTransactions upserts transactions into the ledger by row id. Rows
// without an id get a fresh one.
func mergeTransactions(ledger *logbook.Ledger, txs []logbook.Transaction) (added, replaced int, err error) {
	for _, tx := range txs {
		if tx.RowID == "" {
			tx.RowID = uuid.NewString()
		}
		if ledger.Delete(tx.RowID) {
			replaced++
		} else {
			added++
		}
		if err := ledger.Append(tx); err != nil {
			return added, replaced, err
		}
	}
	return added, replaced, nil
}
