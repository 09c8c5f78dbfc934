package cmd

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
)

// listCmd holds the flags for the 'list' subcommand.
type listCmd struct {
	limit int
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list book titles and their details" }
func (*listCmd) Usage() string {
	return `bks list [-n <count>]

  Lists the first books of the inventory with their author, genre and cost.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.limit, "n", 0, "Number of books to show. Defaults to the configured limit (20).")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	conf, inv, status := open()
	if status != subcommands.ExitSuccess {
		return status
	}
	limit := c.limit
	if limit <= 0 {
		limit = conf.Limit
	}
	newShell(os.Stdin, os.Stdout, inv, conf).list(limit)
	return subcommands.ExitSuccess
}
