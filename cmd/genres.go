package cmd

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
)

type genresCmd struct{}

func (*genresCmd) Name() string     { return "genres" }
func (*genresCmd) Synopsis() string { return "report the number of titles in each genre" }
func (*genresCmd) Usage() string {
	return `bks genres

  Counts the distinct titles of each genre, most populated genres first.
`
}

func (c *genresCmd) SetFlags(f *flag.FlagSet) {}

func (c *genresCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	conf, inv, status := open()
	if status != subcommands.ExitSuccess {
		return status
	}
	newShell(os.Stdin, os.Stdout, inv, conf).genres()
	return subcommands.ExitSuccess
}
