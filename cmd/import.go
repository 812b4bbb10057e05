package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/amsaid/traderbook"
	"github.com/google/subcommands"
)

type importCmd struct {
	file   string
	dryRun bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "bulk import records from a marker-delimited workbook" }
func (*importCmd) Usage() string {
	return `tb import -file <workbook.xlsx> [-n]

  Reads the first sheet of the workbook and imports the sections
  bracketed by #FDB/#FDE (deposits), #FWB/#FWE (withdrawals), #TBB/#TBE
  (buys) and #TSB/#TSE (sells). Malformed rows are reported and skipped.
  -n parses and reports without writing anything.
`
}

func (p *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.file, "file", "", "Path to the xlsx workbook.")
	f.BoolVar(&p.dryRun, "n", false, "Parse only, write nothing.")
}

func (p *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.file == "" {
		return usageError("-file is required")
	}
	_, account, store, err := openCurrent()
	if err != nil {
		return fail(err)
	}
	defer store.Close()

	rep, err := traderbook.ReadWorkbook(p.file, account.CurrencyLabel)
	if err != nil {
		return fail(err)
	}
	for _, issue := range rep.Issues {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", issue)
	}
	fmt.Printf("Parsed %d fund records and %d trades (%d rows skipped).\n",
		len(rep.Funds), len(rep.Trades), len(rep.Issues))

	if p.dryRun {
		return subcommands.ExitSuccess
	}
	if err := rep.Apply(store); err != nil {
		return fail(err)
	}
	fmt.Println("Import committed.")
	return subcommands.ExitSuccess
}
