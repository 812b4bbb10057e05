package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/amsaid/traderbook"
	"github.com/amsaid/traderbook/renderer"
	"github.com/google/subcommands"
)

type planCmd struct {
	symbol     string
	price      float64
	ath        float64
	resistance float64
	support1   float64
	support2   float64
	deeper     float64
}

func (*planCmd) Name() string     { return "plan" }
func (*planCmd) Synopsis() string { return "compute a risk plan for one symbol's open lots" }
func (*planCmd) Usage() string {
	return `tb plan -s <symbol> -p <current-price> [-ath <price>] [-res <price>] [-s1 <price>] [-s2 <price>] [-deep <price>]

  Builds a risk management plan from the symbol's open buy lots: per
  technical level the drawdown from the current price and the potential
  loss of the position. Levels not given are suggested from the lots
  themselves (highest entry, 90%/80% of it, average cost).
`
}

func (p *planCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.symbol, "s", "", "Ticker symbol (defaults to the account's tracked symbol).")
	f.Float64Var(&p.price, "p", 0, "Current price.")
	f.Float64Var(&p.ath, "ath", 0, "All-time-high zone.")
	f.Float64Var(&p.resistance, "res", 0, "Current resistance.")
	f.Float64Var(&p.support1, "s1", 0, "Key support 1.")
	f.Float64Var(&p.support2, "s2", 0, "Key support 2.")
	f.Float64Var(&p.deeper, "deep", 0, "Deeper support.")
}

func (p *planCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.price <= 0 {
		return usageError("-p <current-price> is required")
	}
	_, account, store, err := openCurrent()
	if err != nil {
		return fail(err)
	}
	defer store.Close()

	symbol := p.symbol
	if symbol == "" {
		symbol = account.TrackedSymbol
	}

	lots, err := store.ListTrades(traderbook.TradeFilter{Symbol: symbol, OpenOnly: true})
	if err != nil {
		return fail(err)
	}
	if len(lots) == 0 {
		return fail(fmt.Errorf("no open positions for %s", symbol))
	}

	current := traderbook.M(p.price, traderbook.USD)
	shares, avgCost := traderbook.PositionSummary(lots)

	levels := traderbook.SuggestLevels(lots, current)
	override := map[string]float64{
		"All Time High":      p.ath,
		"Current Resistance": p.resistance,
		"Key Support 1":      p.support1,
		"Key Support 2":      p.support2,
		"Deeper Support":     p.deeper,
	}
	for i, level := range levels {
		if v := override[level.Name]; v > 0 {
			levels[i].Price = traderbook.M(v, traderbook.USD)
		}
	}

	risks := traderbook.ComputeRiskLevels(shares, current, levels)
	printMarkdown(renderer.PlanMarkdown(symbol, shares, avgCost, current, levels, risks, account))
	return subcommands.ExitSuccess
}
