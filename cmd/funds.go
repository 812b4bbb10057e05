package cmd

import (
	"context"
	"flag"

	"github.com/amsaid/traderbook"
	"github.com/amsaid/traderbook/renderer"
	"github.com/google/subcommands"
)

type fundsCmd struct {
	opr    string
	month  string
	year   string
	source string
}

func (*fundsCmd) Name() string     { return "funds" }
func (*fundsCmd) Synopsis() string { return "list fund records, with optional filters" }
func (*fundsCmd) Usage() string {
	return `tb funds [-opr deposit|withdraw] [-month MM/YYYY | -year YYYY] [-source <text>]

  Lists fund records ordered by id. -source matches a substring of the
  source column.
`
}

func (p *fundsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.opr, "opr", "", "Filter by operation (deposit or withdraw).")
	f.StringVar(&p.month, "month", "", "Filter by month, MM/YYYY.")
	f.StringVar(&p.year, "year", "", "Filter by year, YYYY.")
	f.StringVar(&p.source, "source", "", "Filter by source substring.")
}

func (p *fundsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filter := traderbook.FundFilter{MonthYear: p.month, Year: p.year, Source: p.source}
	if p.opr != "" {
		op, err := traderbook.ParseFundOperation(p.opr)
		if err != nil {
			return fail(err)
		}
		filter.Operation = op
	}

	_, account, store, err := openCurrent()
	if err != nil {
		return fail(err)
	}
	defer store.Close()

	funds, err := store.ListFunds(filter)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.FundsMarkdown(funds, account))
	return subcommands.ExitSuccess
}
