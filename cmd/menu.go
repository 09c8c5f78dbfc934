package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type menuCmd struct{}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "run the interactive bookstore menu" }
func (*menuCmd) Usage() string {
	return `bks menu

  Runs the numbered menu: every report and inventory change in one session.
  Changes are saved to the inventory file as soon as they are made.
`
}

func (c *menuCmd) SetFlags(f *flag.FlagSet) {}

func (c *menuCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	conf, inv, status := open()
	if status != subcommands.ExitSuccess {
		return status
	}
	if err := newShell(os.Stdin, os.Stdout, inv, conf).menu(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
