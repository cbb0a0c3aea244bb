package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/logbook"
	"github.com/etnz/logbook/renderer"
	"github.com/google/subcommands"
)

type riskCmd struct{}

func (*riskCmd) Name() string     { return "risk" }
func (*riskCmd) Synopsis() string { return "display risk tiers from pre-computed volatility figures" }
func (*riskCmd) Usage() string {
	return `lb risk

  Fetches the pre-computed volatility and beta figures from the web app and
  classifies each symbol into a risk tier. Symbols without a volatility
  figure are Unknown.
`
}

func (c *riskCmd) SetFlags(f *flag.FlagSet) {}

func (c *riskCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	webapp, err := logbook.NewWebApp(logbook.APIURL())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	metrics, err := webapp.RiskMetrics()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching risk metrics: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RiskMarkdown(metrics))
	return subcommands.ExitSuccess
}
