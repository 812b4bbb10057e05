package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type resetCmd struct {
	yes bool
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "drop and recreate the account's ledger tables" }
func (*resetCmd) Usage() string {
	return `tb reset -yes

  Erases every record of the current account and recreates the empty
  schema. Refuses to run without -yes.
`
}

func (p *resetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.yes, "yes", false, "Confirm the reset.")
}

func (p *resetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !p.yes {
		return usageError("reset erases the whole ledger; pass -yes to confirm")
	}
	_, account, store, err := openCurrent()
	if err != nil {
		return fail(err)
	}
	defer store.Close()

	if err := store.Reset(); err != nil {
		return fail(err)
	}
	fmt.Printf("Ledger of account %q reset.\n", account.Name)
	return subcommands.ExitSuccess
}
