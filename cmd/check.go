package cmd

import (
	"context"
	"flag"

	"github.com/amsaid/traderbook"
	"github.com/amsaid/traderbook/renderer"
	"github.com/google/subcommands"
)

type checkCmd struct{}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "reconcile closing sells against their buy lots" }
func (*checkCmd) Usage() string {
	return `tb check

  Closing a position writes the sell first and flips the buy lot after;
  if the second step failed, a sell exists against a still-open buy.
  This command reports such orphans so they can be fixed with the
  position command.
`
}

func (p *checkCmd) SetFlags(f *flag.FlagSet) {}

func (p *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, _, store, err := openCurrent()
	if err != nil {
		return fail(err)
	}
	defer store.Close()

	trades, err := store.ListTrades(traderbook.TradeFilter{})
	if err != nil {
		return fail(err)
	}
	issues := traderbook.ReconcileClosures(trades)
	printMarkdown(renderer.CheckMarkdown(issues))
	if len(issues) > 0 {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
