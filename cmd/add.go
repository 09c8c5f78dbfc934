package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bookstore"
	"github.com/google/subcommands"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	title  string
	author string
	genre  string
	price  string
	stock  string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a new book to the inventory" }
func (*addCmd) Usage() string {
	return `bks add [-title <title> -author <author> -genre <genre> -price <price> [-stock <count>]]

  Adds a book at the end of the inventory and saves the file.
  Without -title, the book details are asked interactively.

  The price must be a non negative number. An invalid stock counts as 0.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.title, "title", "", "Title of the book")
	f.StringVar(&c.author, "author", "", "Author of the book")
	f.StringVar(&c.genre, "genre", "", "Genre of the book, several genres can be separated by commas")
	f.StringVar(&c.price, "price", "", "Price of the book")
	f.StringVar(&c.stock, "stock", "0", "Number of copies in stock")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "Error: no positional arguments are accepted.")
		return subcommands.ExitUsageError
	}
	if c.title != "" {
		if _, err := bookstore.NewBook(c.title, c.author, c.genre, c.price, c.stock); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	conf, inv, status := open()
	if status != subcommands.ExitSuccess {
		return status
	}
	s := newShell(os.Stdin, os.Stdout, inv, conf)

	var err error
	if c.title == "" {
		err = s.addBook()
	} else {
		err = s.add(c.title, c.author, c.genre, c.price, c.stock)
	}
	if err = ignoreEOF(err); err != nil {
		fmt.Fprintf(os.Stderr, "Error adding book: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
