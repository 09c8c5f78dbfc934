package cmd

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the number of titles, stock value and average price" }
func (*summaryCmd) Usage() string {
	return `bks summary

  Displays the total value of the stock and the average price of the books.
  Books with an invalid cost or stock are skipped and counted.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	conf, inv, status := open()
	if status != subcommands.ExitSuccess {
		return status
	}
	newShell(os.Stdin, os.Stdout, inv, conf).summary()
	return subcommands.ExitSuccess
}
