package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type deleteCmd struct {
	id int64
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a trade by id" }
func (*deleteCmd) Usage() string {
	return `tb delete -id <id>

  Removes a trade. A nonexistent id is reported, not an error.
`
}

func (p *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&p.id, "id", 0, "Trade id.")
}

func (p *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.id == 0 {
		return usageError("-id is required")
	}
	_, _, store, err := openCurrent()
	if err != nil {
		return fail(err)
	}
	defer store.Close()

	n, err := store.DeleteTrade(p.id)
	if err != nil {
		return fail(err)
	}
	if n == 0 {
		fmt.Printf("No trade found with id %d, nothing deleted.\n", p.id)
		return subcommands.ExitSuccess
	}
	fmt.Printf("Trade %d deleted.\n", p.id)
	return subcommands.ExitSuccess
}
