package logbook

import (
	"slices"
	"strings"
)

// Ledger is the snapshot of transactions the engine consumes. The host loads
// it fully before invoking any computation; the engine never sees a partially
// available snapshot.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{transactions: make([]Transaction, 0)}
}

// Append validates and adds a transaction to the ledger.
func (l *Ledger) Append(tx Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	l.transactions = append(l.transactions, tx)
	return nil
}

// Len returns the number of transactions.
func (l *Ledger) Len() int { return len(l.transactions) }

// Transactions returns a copy of all transactions, so callers cannot mutate
// the snapshot behind a running computation.
func (l *Ledger) Transactions() []Transaction {
	return slices.Clone(l.transactions)
}

// Market returns the transactions of a single market.
func (l *Ledger) Market(m Market) []Transaction {
	var txs []Transaction
	for _, tx := range l.transactions {
		if tx.Market == m {
			txs = append(txs, tx)
		}
	}
	return txs
}

// Delete removes the transaction with the given row identifier and reports
// whether one was found.
func (l *Ledger) Delete(rowID string) bool {
	for i, tx := range l.transactions {
		if tx.RowID == rowID {
			l.transactions = slices.Delete(l.transactions, i, i+1)
			return true
		}
	}
	return false
}

// AvgCostAt returns the average buy cost of a symbol in a market over the
// whole current snapshot. It is the cost basis a new sell is evaluated
// against at recording time.
func (l *Ledger) AvgCostAt(market Market, symbol string) Money {
	positions := Aggregate(l.Market(market))
	p, ok := positions[NormalizeSymbol(symbol)]
	if !ok {
		return M(0, market.Currency())
	}
	return p.AvgCost()
}

// stableSort orders transactions chronologically, ties broken by symbol then
// row id, producing a canonical ordering for rewrites.
func (l *Ledger) stableSort() {
	slices.SortStableFunc(l.transactions, func(a, b Transaction) int {
		if a.Date.Before(b.Date) {
			return -1
		}
		if a.Date.After(b.Date) {
			return 1
		}
		if c := strings.Compare(a.Ticker(), b.Ticker()); c != 0 {
			return c
		}
		return strings.Compare(a.RowID, b.RowID)
	})
}
