package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/amsaid/traderbook"
	"github.com/amsaid/traderbook/pricing"
	"github.com/google/subcommands"
)

type pricesCmd struct {
	base string
}

func (*pricesCmd) Name() string     { return "prices" }
func (*pricesCmd) Synopsis() string { return "fetch current quotes for held symbols" }
func (*pricesCmd) Usage() string {
	return `tb prices [symbol ...]

  Fetches a quote per symbol (defaults to every symbol with a live
  holding). Failures are per symbol: one bad symbol never aborts the
  rest, it is reported as a warning.
`
}

func (p *pricesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.base, "base", "", "Quote endpoint base URL (defaults to the built-in one).")
}

func (p *pricesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	symbols := f.Args()
	if len(symbols) == 0 {
		_, _, store, err := openCurrent()
		if err != nil {
			return fail(err)
		}
		trades, err := store.ListTrades(traderbook.TradeFilter{})
		store.Close()
		if err != nil {
			return fail(err)
		}
		for _, s := range traderbook.SummarizeBySymbol(trades, nil) {
			symbols = append(symbols, s.Symbol)
		}
	}
	if len(symbols) == 0 {
		fmt.Println("No symbols to quote.")
		return subcommands.ExitSuccess
	}

	quotes, errs := pricing.FetchAll(pricing.NewClient(p.base, Logger()), symbols)
	for symbol, err := range errs {
		fmt.Fprintf(os.Stderr, "Warning: no quote for %s: %v\n", symbol, err)
	}

	quoted := make([]string, 0, len(quotes))
	for symbol := range quotes {
		quoted = append(quoted, symbol)
	}
	sort.Strings(quoted)
	for _, symbol := range quoted {
		fmt.Printf("%-8s %10.2f\n", symbol, quotes[symbol])
	}
	if len(errs) > 0 {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
