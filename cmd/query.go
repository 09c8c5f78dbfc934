package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "query the inventory with a JSONPath expression" }
func (*queryCmd) Usage() string {
	return `bks query <jsonpath>

  Evaluates a JSONPath expression against the inventory, seen as a JSON list
  of books. Cost and Stock are numbers, or null when the cell is invalid.

  Example, the titles out of stock:

    bks query '$[?(@.Stock == 0)].Title'
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: query requires exactly one JSONPath expression.")
		return subcommands.ExitUsageError
	}
	path := f.Arg(0)

	_, inv, status := open()
	if status != subcommands.ExitSuccess {
		return status
	}

	jobj, err := inv.JSON()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error converting inventory: %v\n", err)
		return subcommands.ExitFailure
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error evaluating %q: %v\n", path, err)
		return subcommands.ExitFailure
	}

	out, err := json.MarshalIndent(jval, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(out))
	return subcommands.ExitSuccess
}
