package cmd

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
)

// authorsCmd holds the flags for the 'authors' subcommand.
type authorsCmd struct {
	tree bool
}

func (*authorsCmd) Name() string     { return "authors" }
func (*authorsCmd) Synopsis() string { return "list books ordered by author" }
func (*authorsCmd) Usage() string {
	return `bks authors [-tree]

  Lists all the books ordered by author, one 'Author - "Title"' per line.
`
}

func (c *authorsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.tree, "tree", false, "Group the titles under their author")
}

func (c *authorsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	conf, inv, status := open()
	if status != subcommands.ExitSuccess {
		return status
	}
	newShell(os.Stdin, os.Stdout, inv, conf).authors(c.tree)
	return subcommands.ExitSuccess
}
