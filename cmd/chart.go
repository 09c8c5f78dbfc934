package cmd

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
)

type chartCmd struct{}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "draw a bar chart of the number of books per genre" }
func (*chartCmd) Usage() string {
	return `bks chart

  Draws one bar per genre. A book tagged with several comma separated genres
  counts once in each of them.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	conf, inv, status := open()
	if status != subcommands.ExitSuccess {
		return status
	}
	newShell(os.Stdin, os.Stdout, inv, conf).chart()
	return subcommands.ExitSuccess
}
