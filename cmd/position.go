package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/amsaid/traderbook"
	"github.com/google/subcommands"
)

type positionCmd struct {
	id     int64
	open   bool
	profit float64
	setPL  bool
}

func (*positionCmd) Name() string     { return "position" }
func (*positionCmd) Synopsis() string { return "flip a buy lot's open flag" }
func (*positionCmd) Usage() string {
	return `tb position -id <buy-id> [-open] [-pl <profit>]

  Closes a buy lot manually (without a linked sell), or reopens it with
  -open. An optional -pl stores a realized profit on the lot at the same
  time.
`
}

func (p *positionCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&p.id, "id", 0, "Buy trade id.")
	f.BoolVar(&p.open, "open", false, "Reopen the lot instead of closing it.")
	f.Float64Var(&p.profit, "pl", 0, "Realized profit to store on the lot.")
}

func (p *positionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.id == 0 {
		return usageError("-id is required")
	}
	f.Visit(func(fl *flag.Flag) {
		if fl.Name == "pl" {
			p.setPL = true
		}
	})

	_, _, store, err := openCurrent()
	if err != nil {
		return fail(err)
	}
	defer store.Close()

	t, ok, err := store.GetTrade(p.id)
	if err != nil {
		return fail(err)
	}
	if !ok {
		return fail(fmt.Errorf("no trade with id %d", p.id))
	}
	if t.Operation != traderbook.Buy {
		return fail(fmt.Errorf("trade %d is a %s, only buy lots carry the open flag", p.id, t.Operation))
	}

	update := traderbook.TradeUpdate{PositionOpen: &p.open}
	if p.setPL {
		pl := traderbook.M(p.profit, traderbook.USD)
		update.ProfitLoss = &pl
	}
	n, err := store.UpdateTrade(p.id, update)
	if err != nil {
		return fail(err)
	}
	if n == 0 {
		fmt.Printf("No trade found with id %d, nothing changed.\n", p.id)
		return subcommands.ExitSuccess
	}
	state := "closed"
	if p.open {
		state = "open"
	}
	fmt.Printf("Lot %d (%s) is now %s.\n", p.id, t.Symbol, state)
	return subcommands.ExitSuccess
}
