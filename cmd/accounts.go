package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/amsaid/traderbook"
	"github.com/google/subcommands"
)

type accountsCmd struct {
	add        string
	label      string
	rate       float64
	ticker     string
	fee        float64
	setDefault string
}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list, add or switch accounts" }
func (*accountsCmd) Usage() string {
	return `tb accounts
tb accounts -add <name> [-label <cur>] [-rate <r>] [-ticker <sym>] [-fee <f>]
tb accounts -default <name>

  Without flags, lists the configured accounts. -add creates a new
  account (each account owns its own ledger file); -default switches the
  active account.
`
}

func (p *accountsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.add, "add", "", "Name of a new account to create.")
	f.StringVar(&p.label, "label", "SAR", "Reporting currency label of the new account.")
	f.Float64Var(&p.rate, "rate", 3.7487, "USD to reporting-currency rate of the new account.")
	f.StringVar(&p.ticker, "ticker", "$TSLA", "Default tracked symbol of the new account.")
	f.Float64Var(&p.fee, "fee", 2.08, "Per-trade fee in USD of the new account.")
	f.StringVar(&p.setDefault, "default", "", "Name of the account to make default.")
}

func (p *accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	settings, err := LoadSettings()
	if err != nil {
		return fail(err)
	}

	switch {
	case p.add != "":
		account := traderbook.Account{
			Name:          p.add,
			CurrencyLabel: p.label,
			ExchangeRate:  p.rate,
			TrackedSymbol: p.ticker,
			PerTradeFee:   p.fee,
		}
		if err := settings.Add(account); err != nil {
			return fail(err)
		}
		if err := SaveSettings(settings); err != nil {
			return fail(err)
		}
		fmt.Printf("Account %q created.\n", p.add)

	case p.setDefault != "":
		if !settings.Has(p.setDefault) {
			return fail(fmt.Errorf("unknown account %q", p.setDefault))
		}
		settings.DefaultAccount = p.setDefault
		if err := SaveSettings(settings); err != nil {
			return fail(err)
		}
		fmt.Printf("Default account is now %q.\n", p.setDefault)

	default:
		for _, a := range settings.Accounts {
			marker := " "
			if a.Name == settings.DefaultAccount {
				marker = "*"
			}
			fmt.Printf("%s %-16s %s rate %.4f, fee %.2f USD, tracking %s\n",
				marker, a.Name, a.CurrencyLabel, a.ExchangeRate, a.PerTradeFee, a.TrackedSymbol)
		}
	}
	return subcommands.ExitSuccess
}
