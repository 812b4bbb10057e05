package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/amsaid/traderbook"
	"github.com/google/subcommands"
)

type convertCmd struct {
	usd       float64
	secondary float64
}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "convert between USD and the account currency" }
func (*convertCmd) Usage() string {
	return `tb convert -usd <amount>
tb convert -sec <amount>

  Converts at the account's current exchange rate. Historical fund
  records keep their own frozen rate; this is only a convenience on
  today's rate.
`
}

func (p *convertCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&p.usd, "usd", 0, "Amount in USD to convert to the account currency.")
	f.Float64Var(&p.secondary, "sec", 0, "Amount in the account currency to convert to USD.")
}

func (p *convertCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if (p.usd == 0) == (p.secondary == 0) {
		return usageError("give exactly one of -usd or -sec")
	}
	settings, err := LoadSettings()
	if err != nil {
		return fail(err)
	}
	account, err := CurrentAccount(settings)
	if err != nil {
		return fail(err)
	}

	if p.usd != 0 {
		out := traderbook.USDToSecondary(traderbook.M(p.usd, traderbook.USD), account)
		fmt.Printf("%.2f USD = %.2f %s (rate %.4f)\n", p.usd, out.AsFloat(), account.CurrencyLabel, account.ExchangeRate)
		return subcommands.ExitSuccess
	}
	out, err := traderbook.SecondaryToUSD(traderbook.M(p.secondary, account.CurrencyLabel), account)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("%.2f %s = %.2f USD (rate %.4f)\n", p.secondary, account.CurrencyLabel, out.AsFloat(), account.ExchangeRate)
	return subcommands.ExitSuccess
}
