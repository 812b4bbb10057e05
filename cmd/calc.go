package cmd

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/amsaid/traderbook"
	"github.com/google/subcommands"
)

type calcCmd struct{}

func (*calcCmd) Name() string     { return "calc" }
func (*calcCmd) Synopsis() string { return "percentage calculators" }
func (*calcCmd) Usage() string {
	return `tb calc of <percent> <amount>      e.g. "calc of 20 150" -> 30
tb calc ratio <part> <whole>       e.g. "calc ratio 30 150" -> 20.00%
tb calc change <old> <new>         e.g. "calc change 100 80" -> -20.00% (decrease)

  Three small percentage utilities. A zero denominator is an error, not
  a fault.
`
}

func (p *calcCmd) SetFlags(f *flag.FlagSet) {}

func (p *calcCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) != 3 {
		return usageError("want: calc <of|ratio|change> <a> <b>")
	}
	a, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fail(fmt.Errorf("invalid number %q: %w", args[1], err))
	}
	b, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fail(fmt.Errorf("invalid number %q: %w", args[2], err))
	}

	switch args[0] {
	case "of":
		fmt.Printf("%.2f%% of %.2f = %.2f\n", a, b, traderbook.PercentageOf(a, b))
	case "ratio":
		pct, err := traderbook.PercentageRatio(a, b)
		if err != nil {
			return fail(err)
		}
		fmt.Printf("%.2f of %.2f = %s\n", a, b, pct)
	case "change":
		pct, err := traderbook.PercentageChange(a, b)
		if err != nil {
			return fail(err)
		}
		fmt.Printf("%.2f -> %.2f = %s (%s)\n", a, b, pct.SignedString(), pct.Direction())
	default:
		return usageError(fmt.Sprintf("unknown calculator %q, want of, ratio or change", args[0]))
	}
	return subcommands.ExitSuccess
}
