package logbook

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// RateFunc returns the exchange rate from one currency to another. It is
// supplied by the host; implementations may fail, in which case the
// aggregation falls back to a caller-supplied constant rather than aborting.
type RateFunc func(from, to string) (decimal.Decimal, error)

// MarketTotal is the net invested capital of one market in its native
// currency: the sum of price times quantity over buys minus the same over
// sells.
type MarketTotal struct {
	Market      Market
	NativeTotal Money
}

// PortfolioTotal is a market's invested capital normalized into the
// reporting currency, with its share of the grand total.
type PortfolioTotal struct {
	Market          Market
	NativeTotal     Money
	NormalizedTotal Money
	SharePct        Percent
}

// AggregateMarkets converts every market total into the reporting currency
// and computes each market's share of the grand total.
//
// When fx fails for a market the fallback rate is used instead: one
// unavailable rate degrades precision, it must not make the whole portfolio
// view unavailable. The fallback must be a documented non-zero constant.
//
// Items are sorted by normalized total descending, ties broken by market
// code, so identical inputs always produce identical output. When the grand
// total is zero every share is zero: no data is not an error.
func AggregateMarkets(totals []MarketTotal, reportingCurrency string, fx RateFunc, fallback decimal.Decimal) (items []PortfolioTotal, grandTotal Money) {
	grandTotal = M(0, reportingCurrency)
	for _, mt := range totals {
		normalized := mt.NativeTotal
		if mt.NativeTotal.Currency() != reportingCurrency {
			rate := fallback
			if fx != nil {
				if r, err := fx(mt.NativeTotal.Currency(), reportingCurrency); err == nil {
					rate = r
				}
			}
			normalized = mt.NativeTotal.Scale(rate, reportingCurrency)
		}
		grandTotal = grandTotal.Add(normalized)
		items = append(items, PortfolioTotal{
			Market:          mt.Market,
			NativeTotal:     mt.NativeTotal,
			NormalizedTotal: normalized,
		})
	}

	for i := range items {
		if grandTotal.IsPositive() {
			share := items[i].NormalizedTotal.Decimal().Div(grandTotal.Decimal())
			items[i].SharePct = Percent(share.InexactFloat64() * 100)
		}
	}

	slices.SortStableFunc(items, func(a, b PortfolioTotal) int {
		if c := b.NormalizedTotal.Decimal().Cmp(a.NormalizedTotal.Decimal()); c != 0 {
			return c
		}
		return strings.Compare(string(a.Market), string(b.Market))
	})
	return items, grandTotal
}

// Slice is one entry of a distribution breakdown, the exact shape consumed
// by a pie chart renderer.
type Slice struct {
	Label string
	Value decimal.Decimal
}

// Breakdown turns a symbol to net-invested-capital mapping into a ranked
// distribution: values rounded to 2 decimal places, symbols whose net
// invested capital is zero or negative dropped (a closed position contributes
// nothing to a current-holdings pie), remainder sorted descending by value
// with ties broken by label.
func Breakdown(invested map[string]Money) []Slice {
	entries := make([]Slice, 0, len(invested))
	for symbol, value := range invested {
		rounded := value.Decimal().Round(2)
		if !rounded.IsPositive() {
			continue
		}
		entries = append(entries, Slice{Label: symbol, Value: rounded})
	}
	slices.SortStableFunc(entries, func(a, b Slice) int {
		if c := b.Value.Cmp(a.Value); c != 0 {
			return c
		}
		return strings.Compare(a.Label, b.Label)
	})
	return entries
}

// NetInvestedBySymbol computes each symbol's net invested capital (buy cost
// minus sell cost, native currency) from a single-market snapshot. Its result
// feeds Breakdown.
func NetInvestedBySymbol(transactions []Transaction) map[string]Money {
	invested := make(map[string]Money)
	for symbol, p := range Aggregate(transactions) {
		invested[symbol] = p.NetInvested()
	}
	return invested
}

// NativeTotal sums net invested capital over a single-market snapshot in the
// market's native currency.
func NativeTotal(market Market, transactions []Transaction) MarketTotal {
	total := M(0, market.Currency())
	for _, tx := range transactions {
		if tx.Market != market {
			continue
		}
		if tx.IsSell() {
			total = total.Sub(tx.Cost())
		} else {
			total = total.Add(tx.Cost())
		}
	}
	return MarketTotal{Market: market, NativeTotal: total}
}
