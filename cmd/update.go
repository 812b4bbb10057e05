package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/amsaid/traderbook"
	"github.com/google/subcommands"
)

type updateCmd struct {
	id     int64
	date   string
	symbol string
	qty    int64
	price  float64
	fees   float64
	vat    float64
	cost   float64
	profit float64
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "edit fields of an existing trade" }
func (*updateCmd) Usage() string {
	return `tb update -id <id> [-d <date>] [-s <symbol>] [-q <qty>] [-p <price>] [-fees <f>] [-vat <v>] [-cost <c>] [-pl <profit>]

  Applies only the flags given; everything else is left untouched. An
  unknown id is reported as zero affected rows, not an error.
`
}

func (p *updateCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&p.id, "id", 0, "Trade id.")
	f.StringVar(&p.date, "d", "", "New trade date.")
	f.StringVar(&p.symbol, "s", "", "New symbol.")
	f.Int64Var(&p.qty, "q", 0, "New quantity.")
	f.Float64Var(&p.price, "p", 0, "New price.")
	f.Float64Var(&p.fees, "fees", 0, "New fees.")
	f.Float64Var(&p.vat, "vat", 0, "New VAT.")
	f.Float64Var(&p.cost, "cost", 0, "New cost value.")
	f.Float64Var(&p.profit, "pl", 0, "New realized profit.")
}

func (p *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.id == 0 {
		return usageError("-id is required")
	}

	var update traderbook.TradeUpdate
	var parseErr error
	money := func(v float64) *traderbook.Money {
		m := traderbook.M(v, traderbook.USD)
		return &m
	}
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "d":
			d, err := traderbook.ParseDate(p.date)
			if err != nil {
				parseErr = err
				return
			}
			update.Date = &d
		case "s":
			update.Symbol = &p.symbol
		case "q":
			update.Quantity = &p.qty
		case "p":
			update.Price = money(p.price)
		case "fees":
			update.Fees = money(p.fees)
		case "vat":
			update.VAT = money(p.vat)
		case "cost":
			update.CostValue = money(p.cost)
		case "pl":
			update.ProfitLoss = money(p.profit)
		}
	})
	if parseErr != nil {
		return fail(parseErr)
	}

	_, _, store, err := openCurrent()
	if err != nil {
		return fail(err)
	}
	defer store.Close()

	n, err := store.UpdateTrade(p.id, update)
	if err != nil {
		return fail(err)
	}
	if n == 0 {
		fmt.Printf("No trade found with id %d, nothing changed.\n", p.id)
		return subcommands.ExitSuccess
	}
	fmt.Printf("Trade %d updated.\n", p.id)
	return subcommands.ExitSuccess
}
