package logbook

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeLedger decodes a stream of JSONL data, one transaction per line, and
// validates every record: a malformed line fails the whole decode rather than
// silently producing a half-read snapshot.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var tx Transaction
		if err := json.Unmarshal(line, &tx); err != nil {
			return nil, fmt.Errorf("cannot parse ledger line %q: %w", string(line), err)
		}
		if err := ledger.Append(tx); err != nil {
			return nil, fmt.Errorf("invalid ledger line %q: %w", string(line), err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	ledger.stableSort()
	return ledger, nil
}

// EncodeTransaction appends a single transaction to 'w' in JSONL format.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	data, err := json.Marshal(tx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

// EncodeLedger writes the whole ledger to 'w' in canonical order. It is the
// rewrite path used after a deletion.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	ledger.stableSort()
	for _, tx := range ledger.transactions {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}
