package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/logbook/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion runs first and exits when invoked by the shell.
	completion().Complete("lb")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	markets := predict.Set{"us", "tw"}
	withMarket := map[string]complete.Predictor{"m": markets}
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"buy":         {Flags: withMarket},
			"sell":        {Flags: withMarket},
			"del":         {},
			"tx":          {Flags: withMarket},
			"positions":   {Flags: withMarket},
			"summary":     {Flags: withMarket},
			"overview":    {},
			"risk":        {},
			"lottery":     {},
			"lottery-add": {},
			"lottery-del": {},
			"import":      {Flags: map[string]complete.Predictor{"m": markets, "f": predict.Files("*.json")}},
			"pull":        {},
			"topic":       {Args: predict.Set{"readme", "ledger", "reports", "risk", "lottery", "remote"}},
		},
		Flags: map[string]complete.Predictor{
			"ledger-file":  predict.Files("*.jsonl"),
			"lottery-file": predict.Files("*.jsonl"),
			"api-url":      predict.Nothing,
		},
	}
}
