package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/amsaid/traderbook/renderer"
	"github.com/google/subcommands"
)

type tradeCmd struct {
	id int64
}

func (*tradeCmd) Name() string     { return "trade" }
func (*tradeCmd) Synopsis() string { return "show one trade in full detail" }
func (*tradeCmd) Usage() string {
	return `tb trade -id <id>

  Shows every field of one trade, including the closed-lot trace of a
  closing sell.
`
}

func (p *tradeCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&p.id, "id", 0, "Trade id.")
}

func (p *tradeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.id == 0 {
		return usageError("-id is required")
	}
	_, account, store, err := openCurrent()
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
	printMarkdown(renderer.TradeMarkdown(t, account))
	return subcommands.ExitSuccess
}
