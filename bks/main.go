// Command bks manages the inventory of a small bookstore kept in a CSV file.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path"
	"slices"

	"github.com/etnz/bookstore/cmd"
	"github.com/etnz/bookstore/docs"
	"github.com/google/subcommands"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	name := path.Base(os.Args[0])
	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	// exits when invoked by the shell for completion.
	completion().Complete(name)

	flag.Parse()
	setupLogger(*cmd.Verbose)

	if sub := flag.Arg(0); sub != "" && !known(sub) {
		if found, code := cmd.RunExtension(sub, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

func setupLogger(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05.000",
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	})))
}

func known(sub string) bool {
	if slices.Contains([]string{"help", "flags", "commands"}, sub) {
		return true
	}
	return slices.ContainsFunc(cmd.Commands, func(c subcommands.Command) bool { return c.Name() == sub })
}

// completion describes the command line for shell completion, from the
// flags declared by the subcommands.
func completion() *complete.Command {
	root := &complete.Command{
		Sub: map[string]*complete.Command{
			"help":     {},
			"flags":    {},
			"commands": {},
		},
		Flags: predictFlags(flag.CommandLine),
	}
	for _, c := range cmd.Commands {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		sub := &complete.Command{Flags: predictFlags(fs)}
		if c.Name() == "topic" {
			if topics, err := docs.GetAllTopics(); err == nil {
				sub.Args = predict.Set(append(topics, "readme"))
			}
		}
		root.Sub[c.Name()] = sub
	}
	return root
}

func predictFlags(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		switch f.Name {
		case "file":
			flags[f.Name] = predict.Files("*.csv")
		case "config":
			flags[f.Name] = predict.Files("*.yaml")
		case "currency":
			flags[f.Name] = predict.Set{"USD", "EUR", "GBP", "CHF", "JPY", "CAD"}
		default:
			if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
				flags[f.Name] = predict.Nothing
			} else {
				flags[f.Name] = predict.Something
			}
		}
	})
	return flags
}
