package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/amsaid/traderbook"
	"github.com/google/subcommands"
)

// depositCmd and withdrawCmd share fundingCmd; only the operation differs.
type fundingCmd struct {
	op     traderbook.FundOperation
	date   string
	source string
	amount float64 // in the account's reporting currency
	usd    float64
}

type depositCmd struct{ fundingCmd }
type withdrawCmd struct{ fundingCmd }

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "record a fund deposit" }
func (*depositCmd) Usage() string {
	return `tb deposit -amount <secondary> -usd <usd> [-source <text>] [-d <date>]

  Records a deposit. The exchange rate (secondary/usd) is frozen on the
  record; changing the account's current rate never rewrites history.
`
}

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "record a fund withdrawal" }
func (*withdrawCmd) Usage() string {
	return `tb withdraw -amount <secondary> -usd <usd> [-source <text>] [-d <date>]

  Records a withdrawal. The exchange rate (secondary/usd) is frozen on
  the record.
`
}

func (p *fundingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Fund date (defaults to today).")
	f.StringVar(&p.source, "source", "", "Where the money came from or went to.")
	f.Float64Var(&p.amount, "amount", 0, "Amount in the account's reporting currency.")
	f.Float64Var(&p.usd, "usd", 0, "Amount in USD.")
}

func (p *depositCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	p.op = traderbook.Deposit
	return p.run()
}

func (p *withdrawCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	p.op = traderbook.Withdraw
	return p.run()
}

func (p *fundingCmd) run() subcommands.ExitStatus {
	date, err := traderbook.ParseDate(p.date)
	if err != nil {
		return fail(err)
	}
	_, account, store, err := openCurrent()
	if err != nil {
		return fail(err)
	}
	defer store.Close()

	secondary := traderbook.M(p.amount, account.CurrencyLabel)
	usd := traderbook.M(p.usd, traderbook.USD)

	var fund traderbook.FundRecord
	if p.op == traderbook.Deposit {
		fund, err = traderbook.NewDeposit(date, p.source, secondary, usd)
	} else {
		fund, err = traderbook.NewWithdraw(date, p.source, secondary, usd)
	}
	if err != nil {
		return fail(err)
	}
	id, err := store.InsertFund(fund)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Recorded %s %d: %s / %s at rate %.4f\n", p.op, id, fund.AmountSecondary, fund.AmountUSD, fund.Rate)
	return subcommands.ExitSuccess
}
