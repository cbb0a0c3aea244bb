package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/logbook"
	"github.com/etnz/logbook/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type sellCmd struct {
	date     string
	market   string
	symbol   string
	price    float64
	quantity float64
	note     string
	attach   string
	preview  bool
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sale and lock in its realized gain" }
func (*sellCmd) Usage() string {
	return `lb sell -m <market> -s <symbol> -p <price> -q <quantity> [-d <date>] [-preview]

  Records a sell transaction. The realized gain is computed once, against the
  average buy cost over the ledger as it stands right now, and stored on the
  record; it is never recomputed later. With -preview the gain is printed
  without writing anything.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", logbook.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.StringVar(&c.market, "m", "", "Market (us, tw)")
	f.StringVar(&c.symbol, "s", "", "Ticker symbol")
	f.Float64Var(&c.price, "p", 0, "Price per share, native currency")
	f.Float64Var(&c.quantity, "q", 0, "Number of shares")
	f.StringVar(&c.note, "n", "", "Free-text sell note")
	f.StringVar(&c.attach, "a", "", "Attachment reference")
	f.BoolVar(&c.preview, "preview", false, "Compute the realized gain without recording the sale")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" || c.market == "" || c.price < 0 || c.quantity <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	market, err := logbook.ParseMarket(c.market)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	day, err := logbook.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	// The cost basis a sale locks in: the average buy cost over the whole
	// ledger at this instant.
	avgCost := ledger.AvgCostAt(market, c.symbol)
	sellPrice := logbook.M(c.price, market.Currency())
	quantity := logbook.Q(c.quantity)
	realized, roiPct := logbook.ComputeRealized(sellPrice, quantity, avgCost)

	if c.preview {
		fmt.Printf("Selling %s of %s at %s against an average cost of %s:\n", quantity, c.symbol, sellPrice, avgCost)
		fmt.Printf("realized %s (%s)\n", realized.SignedString(), roiPct.SignedString())
		return subcommands.ExitSuccess
	}

	realizedValue := realized.Decimal()
	roiValue := float64(roiPct)
	tx := logbook.Transaction{
		Symbol:         c.symbol,
		Market:         market,
		Action:         logbook.Sell,
		Date:           day,
		Price:          decimal.NewFromFloat(c.price),
		Quantity:       quantity,
		SellNote:       c.note,
		Attachment:     c.attach,
		Realized:       &realizedValue,
		RealizedROIPct: &roiValue,
	}

	if status := appendTransaction(tx); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Println(renderer.Transaction(tx))
	fmt.Printf("Realized %s (%s)\n", realized.SignedString(), roiPct.SignedString())
	return subcommands.ExitSuccess
}
