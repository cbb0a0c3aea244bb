package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/logbook"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type buyCmd struct {
	date      string
	market    string
	symbol    string
	price     float64
	quantity  float64
	stopLoss  float64
	takeProf  float64
	scaleIn   float64
	scaleOut  float64
	rationale string
	attach    string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a purchase in the stock ledger" }
func (*buyCmd) Usage() string {
	return `lb buy -m <market> -s <symbol> -p <price> -q <quantity> [-d <date>] [options]

  Records a buy transaction. The price is in the market's native currency
  (USD for us, TWD for tw). Target prices and the rationale are display-only.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", logbook.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.StringVar(&c.market, "m", "", "Market (us, tw)")
	f.StringVar(&c.symbol, "s", "", "Ticker symbol")
	f.Float64Var(&c.price, "p", 0, "Price per share, native currency")
	f.Float64Var(&c.quantity, "q", 0, "Number of shares")
	f.Float64Var(&c.stopLoss, "stop-loss", 0, "Stop-loss target price")
	f.Float64Var(&c.takeProf, "take-profit", 0, "Take-profit target price")
	f.Float64Var(&c.scaleIn, "scale-in", 0, "Scale-in target price")
	f.Float64Var(&c.scaleOut, "scale-out", 0, "Scale-out target price")
	f.StringVar(&c.rationale, "r", "", "Free-text buy rationale")
	f.StringVar(&c.attach, "a", "", "Attachment reference")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	tx := logbook.Transaction{
		Symbol:       c.symbol,
		Market:       market,
		Action:       logbook.Buy,
		Date:         day,
		Price:        decimal.NewFromFloat(c.price),
		Quantity:     logbook.Q(c.quantity),
		BuyRationale: c.rationale,
		Attachment:   c.attach,
	}
	target := func(v float64) *decimal.Decimal {
		if v == 0 {
			return nil
		}
		d := decimal.NewFromFloat(v)
		return &d
	}
	tx.StopLoss = target(c.stopLoss)
	tx.TakeProfit = target(c.takeProf)
	tx.ScaleIn = target(c.scaleIn)
	tx.ScaleOut = target(c.scaleOut)

	return appendTransaction(tx)
}
