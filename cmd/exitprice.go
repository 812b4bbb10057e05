package cmd

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/amsaid/traderbook"
	"github.com/google/subcommands"
)

type exitPriceCmd struct {
	ids    string
	target float64
	profit float64
}

func (*exitPriceCmd) Name() string     { return "exit-price" }
func (*exitPriceCmd) Synopsis() string { return "exit price calculator over selected open lots" }
func (*exitPriceCmd) Usage() string {
	return `tb exit-price -ids <id,id,...> -target <price>
tb exit-price -ids <id,id,...> -profit <usd>

  Sums the selected open lots and either computes the profit achieved by
  exiting all of them at -target, or the exit price required to achieve
  the -profit.
`
}

func (p *exitPriceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.ids, "ids", "", "Comma-separated trade ids of the open lots.")
	f.Float64Var(&p.target, "target", 0, "Target exit price.")
	f.Float64Var(&p.profit, "profit", 0, "Desired profit in USD.")
}

func (p *exitPriceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.ids == "" {
		return usageError("-ids is required")
	}
	if (p.target == 0) == (p.profit == 0) {
		return usageError("give exactly one of -target or -profit")
	}

	var ids []int64
	for _, part := range strings.Split(p.ids, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return fail(fmt.Errorf("invalid trade id %q: %w", part, err))
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return usageError("no valid trade ids given")
	}

	_, _, store, err := openCurrent()
	if err != nil {
		return fail(err)
	}
	defer store.Close()

	var lots []traderbook.TradeRecord
	for _, id := range ids {
		t, ok, err := store.GetTrade(id)
		if err != nil {
			return fail(err)
		}
		if !ok {
			return fail(fmt.Errorf("no trade with id %d", id))
		}
		lots = append(lots, t)
	}

	plan := traderbook.NewExitPlan(lots)
	if p.target != 0 {
		target := traderbook.M(p.target, traderbook.USD)
		fmt.Printf("Exiting %d shares at %s achieves a profit of %s\n",
			plan.Quantity, target, plan.ProfitAt(target).SignedString())
	} else {
		desired := traderbook.M(p.profit, traderbook.USD)
		fmt.Printf("Exit price %s over %d shares achieves the desired profit of %s\n",
			plan.ExitPriceFor(desired), plan.Quantity, desired)
	}
	return subcommands.ExitSuccess
}
