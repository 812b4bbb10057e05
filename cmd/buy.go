package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/amsaid/traderbook"
	"github.com/google/subcommands"
)

type buyCmd struct {
	date   string
	symbol string
	qty    int64
	price  float64
	fees   float64
	vat    float64
	max    bool
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a buy trade (an open lot)" }
func (*buyCmd) Usage() string {
	return `tb buy -s <symbol> -q <qty> -p <price> [-fees <f>] [-vat <v>] [-d <date>]
tb buy -s <symbol> -p <price> -max

  Records a buy lot; cost value is qty*price+fees+vat and the lot starts
  open. With -max, prints how many shares the current cash buys at that
  price instead of recording anything (fees are not part of the
  suggestion, only of the recorded cost).
`
}

func (p *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Trade date (defaults to today).")
	f.StringVar(&p.symbol, "s", "", "Ticker symbol.")
	f.Int64Var(&p.qty, "q", 0, "Filled quantity (whole shares).")
	f.Float64Var(&p.price, "p", 0, "Price per share in USD.")
	f.Float64Var(&p.fees, "fees", 0, "Broker fees in USD.")
	f.Float64Var(&p.vat, "vat", 0, "VAT in USD.")
	f.BoolVar(&p.max, "max", false, "Print the max affordable quantity at -p and exit.")
}

func (p *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	date, err := traderbook.ParseDate(p.date)
	if err != nil {
		return fail(err)
	}
	_, _, store, err := openCurrent()
	if err != nil {
		return fail(err)
	}
	defer store.Close()

	if p.max {
		funds, err := store.ListFunds(traderbook.FundFilter{})
		if err != nil {
			return fail(err)
		}
		trades, err := store.ListTrades(traderbook.TradeFilter{})
		if err != nil {
			return fail(err)
		}
		totals := traderbook.ComputeAccountTotals(funds, trades)
		max := traderbook.MaxAffordableQty(totals.TotalCash, traderbook.M(p.price, traderbook.USD))
		fmt.Printf("Cash %s buys up to %d shares at %.2f\n", totals.TotalCash, max, p.price)
		return subcommands.ExitSuccess
	}

	buy, err := traderbook.NewBuy(date, p.symbol, p.qty,
		traderbook.M(p.price, traderbook.USD),
		traderbook.M(p.fees, traderbook.USD),
		traderbook.M(p.vat, traderbook.USD))
	if err != nil {
		return fail(err)
	}

	// reject a buy the cash cannot cover
	funds, err := store.ListFunds(traderbook.FundFilter{})
	if err != nil {
		return fail(err)
	}
	trades, err := store.ListTrades(traderbook.TradeFilter{})
	if err != nil {
		return fail(err)
	}
	totals := traderbook.ComputeAccountTotals(funds, trades)
	if buy.CostValue.GreaterThan(totals.TotalCash) {
		return fail(fmt.Errorf("cost %s exceeds available cash %s", buy.CostValue, totals.TotalCash))
	}

	id, err := store.InsertTrade(buy)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Recorded buy %d: %d %s @ %s, cost %s\n", id, buy.Quantity, buy.Symbol, buy.Price, buy.CostValue)
	return subcommands.ExitSuccess
}
