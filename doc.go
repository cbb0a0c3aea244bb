// Package logbook provides the position and valuation engine of a personal
// investment logbook covering US and Taiwan equities plus a small lottery
// book.
//
// The core functionalities include:
//   - Position Aggregation: folding a snapshot of buy/sell transactions into
//     per-symbol positions (buy-side weighted average cost, net shares,
//     realized gains).
//   - Valuation: combining a position with a live quote into unrealized
//     gain/loss and return on investment.
//   - Portfolio Aggregation: converting per-market invested capital into a
//     single reporting currency and producing ranked share percentages and
//     distribution breakdowns.
//   - Risk Classification: bucketing externally computed volatility figures
//     into risk tiers.
//
// Every derived value is a pure, stateless recomputation over the transaction
// snapshot supplied at call time; the engine itself never caches and never
// mutates its inputs. Persistence (a JSONL ledger file and a remote
// spreadsheet web app), quote feeds and FX feeds are host collaborators, for
// which this package ships reference implementations used by the `lb`
// command-line tool.
package logbook
