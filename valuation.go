package logbook

// Valuation combines a position with a live quote. When no quote is available
// or nothing is held, Valued is false and the gain fields are meaningless:
// "absent" is a modeled state, distinct from a zero gain.
type Valuation struct {
	Position Position
	Quote    Money

	Valued       bool
	UnrealizedPL Money
	ROIPct       Percent
}

// Valuate values a position against a quote in the position's currency.
// ok is false when the quote source has no price for the symbol.
//
// Positions with no net holding (fully closed or over-sold) are never valued:
// there is nothing a live price applies to.
func Valuate(p Position, quote Money, ok bool) Valuation {
	v := Valuation{Position: p}
	if !ok || !p.NetShares().IsPositive() {
		return v
	}
	avg := p.AvgCost()
	v.Quote = quote
	v.Valued = true
	v.UnrealizedPL = quote.Sub(avg).Mul(p.NetShares())
	v.ROIPct = roi(quote, avg)
	return v
}

// ComputeRealized computes the gain locked in by a sale of sellQuantity
// shares at sellPrice, against the average buy cost at the instant the sale
// is recorded. Callers invoke it exactly once per new sell entry and store
// the result on that entry; it is never recomputed when the ledger changes
// later.
func ComputeRealized(sellPrice Money, sellQuantity Quantity, avgCostAtEvaluation Money) (realized Money, roiPct Percent) {
	realized = sellPrice.Sub(avgCostAtEvaluation).Mul(sellQuantity)
	roiPct = roi(sellPrice, avgCostAtEvaluation)
	return realized, roiPct
}

// roi returns (price-avg)/avg as a percentage, 0 when avg is zero.
func roi(price, avg Money) Percent {
	if !avg.IsPositive() {
		return 0
	}
	ratio := price.Sub(avg).Decimal().Div(avg.Decimal())
	return Percent(ratio.InexactFloat64() * 100)
}
