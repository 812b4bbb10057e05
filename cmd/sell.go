package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/amsaid/traderbook"
	"github.com/google/subcommands"
)

type sellCmd struct {
	date    string
	symbol  string
	qty     int64
	price   float64
	fees    float64
	vat     float64
	profit  float64
	closeID int64
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sell trade, optionally closing a buy lot" }
func (*sellCmd) Usage() string {
	return `tb sell -s <symbol> -q <qty> -p <price> [-fees <f>] [-vat <v>] [-pl <profit>] [-d <date>]
tb sell -close <buy-id> -p <price> [-fees <f>] [-vat <v>] [-d <date>]

  Records a sell. Net proceeds are qty*price-fees-vat. With -close, the
  sell closes the referenced buy lot in full: the lot's own quantity is
  sold, its open flag is flipped, and the realized profit is computed
  against the lot's cost value. Any -q or -s given with -close is
  ignored.
`
}

func (p *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Trade date (defaults to today).")
	f.StringVar(&p.symbol, "s", "", "Ticker symbol.")
	f.Int64Var(&p.qty, "q", 0, "Filled quantity (whole shares).")
	f.Float64Var(&p.price, "p", 0, "Price per share in USD.")
	f.Float64Var(&p.fees, "fees", 0, "Broker fees in USD.")
	f.Float64Var(&p.vat, "vat", 0, "VAT in USD.")
	f.Float64Var(&p.profit, "pl", 0, "Realized profit for this sell, when known.")
	f.Int64Var(&p.closeID, "close", 0, "ID of the buy lot this sell closes.")
}

func (p *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	date, err := traderbook.ParseDate(p.date)
	if err != nil {
		return fail(err)
	}
	_, _, store, err := openCurrent()
	if err != nil {
		return fail(err)
	}
	defer store.Close()

	price := traderbook.M(p.price, traderbook.USD)
	fees := traderbook.M(p.fees, traderbook.USD)
	vat := traderbook.M(p.vat, traderbook.USD)

	if p.closeID != 0 {
		sell, err := store.CloseBuy(p.closeID, date, price, fees, vat)
		if err != nil {
			return fail(err)
		}
		fmt.Printf("Recorded sell %d closing buy %d: %d %s @ %s, profit %s\n",
			sell.ID, p.closeID, sell.Quantity, sell.Symbol, sell.Price, sell.ProfitLoss.SignedString())
		return subcommands.ExitSuccess
	}

	sell, err := traderbook.NewSell(date, p.symbol, p.qty, price, fees, vat,
		traderbook.M(p.profit, traderbook.USD))
	if err != nil {
		return fail(err)
	}
	id, err := store.InsertTrade(sell)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Recorded sell %d: %d %s @ %s, proceeds %s\n", id, sell.Quantity, sell.Symbol, sell.Price, sell.CostValue)
	return subcommands.ExitSuccess
}
