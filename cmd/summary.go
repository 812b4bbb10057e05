package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/amsaid/traderbook"
	"github.com/amsaid/traderbook/pricing"
	"github.com/amsaid/traderbook/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct {
	live bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show holdings, open positions and account totals" }
func (*summaryCmd) Usage() string {
	return `tb summary [-live]

  Folds the whole ledger into the portfolio view: per-symbol holdings,
  open buy lots ordered by entry price, and the account totals panel.
  Prices default to each symbol's highest buy price; -live fetches
  current quotes instead (symbols that fail keep the fallback).
`
}

func (p *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.live, "live", false, "Fetch live quotes for held symbols.")
}

func (p *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, account, store, err := openCurrent()
	if err != nil {
		return fail(err)
	}
	defer store.Close()

	trades, err := store.ListTrades(traderbook.TradeFilter{})
	if err != nil {
		return fail(err)
	}
	funds, err := store.ListFunds(traderbook.FundFilter{})
	if err != nil {
		return fail(err)
	}

	prices := traderbook.FallbackPrices(trades)
	if p.live {
		var symbols []string
		for symbol := range prices {
			symbols = append(symbols, symbol)
		}
		quotes, errs := pricing.FetchAll(pricing.NewClient("", Logger()), symbols)
		for symbol, err := range errs {
			fmt.Fprintf(os.Stderr, "Warning: no quote for %s: %v\n", symbol, err)
		}
		for symbol, quote := range quotes {
			prices[symbol] = traderbook.M(quote, traderbook.USD)
		}
	}

	summaries := traderbook.SummarizeBySymbol(trades, prices)
	symbols := make([]string, 0, len(summaries))
	for _, s := range summaries {
		symbols = append(symbols, s.Symbol)
	}
	lots := traderbook.OpenPositions(trades, symbols)
	totals := traderbook.ComputeAccountTotals(funds, trades)

	var b strings.Builder
	b.WriteString(renderer.HoldingsMarkdown(summaries, account))
	b.WriteString("\n")
	b.WriteString(renderer.OpenPositionsMarkdown(lots, prices, account))
	b.WriteString("\n")
	b.WriteString(renderer.TotalsMarkdown(totals, traderbook.NetWorth(totals, summaries), account))
	printMarkdown(b.String())

	return subcommands.ExitSuccess
}
