package cmd

import (
	"context"
	"flag"

	"github.com/amsaid/traderbook"
	"github.com/amsaid/traderbook/renderer"
	"github.com/google/subcommands"
)

type tradesCmd struct {
	opr     string
	symbol  string
	lo, hi  float64
	ranged  bool
	month   string
	year    string
	open    bool
}

func (*tradesCmd) Name() string     { return "trades" }
func (*tradesCmd) Synopsis() string { return "list trades, with optional filters" }
func (*tradesCmd) Usage() string {
	return `tb trades [-opr buy|sell] [-s <symbol>] [-lo <price> -hi <price>] [-month MM/YYYY | -year YYYY] [-open]

  Lists trades ordered by id, or by price ascending when a price range
  is given. -open keeps only open buy lots.
`
}

func (p *tradesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.opr, "opr", "", "Filter by operation (buy or sell).")
	f.StringVar(&p.symbol, "s", "", "Filter by symbol.")
	f.Float64Var(&p.lo, "lo", 0, "Lower bound of the price range (inclusive).")
	f.Float64Var(&p.hi, "hi", 0, "Upper bound of the price range (inclusive).")
	f.StringVar(&p.month, "month", "", "Filter by month, MM/YYYY.")
	f.StringVar(&p.year, "year", "", "Filter by year, YYYY.")
	f.BoolVar(&p.open, "open", false, "Only open buy lots.")
}

func (p *tradesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	f.Visit(func(fl *flag.Flag) {
		if fl.Name == "lo" || fl.Name == "hi" {
			p.ranged = true
		}
	})

	filter := traderbook.TradeFilter{
		Symbol:        p.symbol,
		PriceLo:       p.lo,
		PriceHi:       p.hi,
		HasPriceRange: p.ranged,
		MonthYear:     p.month,
		Year:          p.year,
		OpenOnly:      p.open,
	}
	if p.opr != "" {
		op, err := traderbook.ParseTradeOperation(p.opr)
		if err != nil {
			return fail(err)
		}
		filter.Operation = op
	}

	_, _, store, err := openCurrent()
	if err != nil {
		return fail(err)
	}
	defer store.Close()

	trades, err := store.ListTrades(filter)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.TradesMarkdown(trades))
	return subcommands.ExitSuccess
}
