package logbook

import (
	"slices"
)

// Position is the aggregate buy/sell state of one symbol at a point in time.
// It is recomputed from scratch on every ledger change, never incrementally
// mutated, so it cannot go stale.
type Position struct {
	Symbol   string
	Currency string

	TotalBuyCost    Money
	TotalBuyShares  Quantity
	TotalSellCost   Money
	TotalSellShares Quantity
}

// NetShares returns buy shares minus sell shares. A negative result means the
// ledger sold more than it ever bought; see Inconsistent.
func (p Position) NetShares() Quantity {
	return p.TotalBuyShares.Sub(p.TotalSellShares)
}

// AvgCost returns the buy-side weighted average cost per share, or zero when
// the position has no buys. Selling never changes the average under this
// method.
func (p Position) AvgCost() Money {
	if !p.TotalBuyShares.IsPositive() {
		return M(0, p.Currency)
	}
	return p.TotalBuyCost.Div(p.TotalBuyShares)
}

// NetInvested returns buy cost minus sell cost: the capital still committed
// to the symbol, in native currency.
func (p Position) NetInvested() Money {
	return p.TotalBuyCost.Sub(p.TotalSellCost)
}

// Inconsistent reports whether the ledger sold more shares than it ever
// bought. The aggregation does not reject or clamp such a ledger; the caller
// surfaces it as a data-quality warning.
func (p Position) Inconsistent() bool {
	return p.NetShares().IsNegative()
}

// Aggregate folds a snapshot of transactions into per-symbol positions.
//
// The fold is pure and order independent: buys and sells accumulate into
// separate subtotals, so the result is the same for any permutation of the
// input. Symbols are matched case-insensitively, within their market: a
// ticker listed on both markets folds into one position per market, never
// mixing currencies. Such a cross-market ticker gets TICKER.MARKET map keys;
// a single-market snapshot keeps plain ticker keys. An empty snapshot yields
// an empty map.
func Aggregate(transactions []Transaction) map[string]Position {
	type listing struct {
		market Market
		ticker string
	}
	folded := make(map[listing]Position)
	for _, tx := range transactions {
		l := listing{tx.Market, tx.Ticker()}
		p, ok := folded[l]
		if !ok {
			cur := tx.Market.Currency()
			p = Position{
				Symbol:          l.ticker,
				Currency:        cur,
				TotalBuyCost:    M(0, cur),
				TotalBuyShares:  Q(0),
				TotalSellCost:   M(0, cur),
				TotalSellShares: Q(0),
			}
		}
		if tx.IsSell() {
			p.TotalSellCost = p.TotalSellCost.Add(tx.Cost())
			p.TotalSellShares = p.TotalSellShares.Add(tx.Quantity)
		} else {
			p.TotalBuyCost = p.TotalBuyCost.Add(tx.Cost())
			p.TotalBuyShares = p.TotalBuyShares.Add(tx.Quantity)
		}
		folded[l] = p
	}

	markets := make(map[string]int)
	for l := range folded {
		markets[l.ticker]++
	}
	positions := make(map[string]Position, len(folded))
	for l, p := range folded {
		name := l.ticker
		if markets[l.ticker] > 1 {
			name = l.ticker + "." + string(l.market)
		}
		p.Symbol = name
		positions[name] = p
	}
	return positions
}

// Tickers returns the symbols of a position map in lexical order, for
// deterministic reports.
func Tickers(positions map[string]Position) []string {
	tickers := make([]string, 0, len(positions))
	for ticker := range positions {
		tickers = append(tickers, ticker)
	}
	slices.Sort(tickers)
	return tickers
}
