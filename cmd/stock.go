package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bookstore"
	"github.com/google/subcommands"
)

// stockCmd holds the flags for the 'stock' subcommand.
type stockCmd struct {
	title    string
	increase string
	decrease string
}

func (*stockCmd) Name() string     { return "stock" }
func (*stockCmd) Synopsis() string { return "query or update the stock of a book" }
func (*stockCmd) Usage() string {
	return `bks stock [-t <title>] [-i <count> | -d <count>]

  Finds the first book with the given title, ignoring case, and changes its
  stock. A decrease never goes below zero. Missing arguments are asked
  interactively.
`
}

func (c *stockCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.title, "t", "", "Title of the book, case insensitive")
	f.StringVar(&c.increase, "i", "", "Number of copies to add")
	f.StringVar(&c.decrease, "d", "", "Number of copies to remove")
}

func (c *stockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.increase != "" && c.decrease != "" {
		fmt.Fprintln(os.Stderr, "Error: -i and -d flags cannot be used together.")
		return subcommands.ExitUsageError
	}
	dir, value := bookstore.NoChange, ""
	switch {
	case c.increase != "":
		dir, value = bookstore.Increase, c.increase
	case c.decrease != "":
		dir, value = bookstore.Decrease, c.decrease
	}
	var amount int64
	if dir != bookstore.NoChange {
		var err error
		if amount, err = bookstore.ParseAmount(value); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	conf, inv, status := open()
	if status != subcommands.ExitSuccess {
		return status
	}
	s := newShell(os.Stdin, os.Stdout, inv, conf)

	title := c.title
	if title == "" {
		var err error
		if title, err = s.ask("Enter the book title to search: "); err != nil {
			return subcommands.ExitFailure
		}
	}

	var err error
	if dir == bookstore.NoChange {
		err = s.updateStock(title)
	} else {
		err = s.applyStock(title, dir, amount)
	}
	if err = ignoreEOF(err); err != nil {
		fmt.Fprintf(os.Stderr, "Error updating stock: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
