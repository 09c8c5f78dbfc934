// Package cmd implements the CLI application to manage the bookstore inventory.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/etnz/bookstore"
	"github.com/google/subcommands"
)

// Commands lists all the subcommands of the application.
var Commands = []subcommands.Command{
	&listCmd{},
	&summaryCmd{},
	&genresCmd{},
	&authorsCmd{},
	&chartCmd{},
	&queryCmd{},
	&addCmd{},
	&stockCmd{},
	&menuCmd{},
	&topicCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		group := "reports"
		switch cmd.(type) {
		case *addCmd, *stockCmd, *menuCmd:
			group = "inventory"
		case *topicCmd:
			group = "help"
		}
		c.Register(cmd, group)
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var inventoryFile = flag.String("file", "", fmt.Sprintf("Path to the inventory CSV file (default %q)", DefaultInventoryFile))
var currency = flag.String("currency", "", fmt.Sprintf("Currency used to display prices (default %q)", bookstore.DefaultCurrency))
var configFile = flag.String("config", DefaultConfigFile, "Path to the optional YAML configuration file")

// Verbose enables debug logs.
var Verbose = flag.Bool("v", false, "Enable verbose logging")

// Settings returns the effective configuration of the application.
// Values come from, by order of precedence: the command line flags, the
// environment variables, the configuration file, the defaults.
func Settings() (Config, error) {
	conf, err := LoadConfig(*configFile)
	if err != nil {
		return Config{}, err
	}
	conf.File = firstNonEmpty(*inventoryFile, os.Getenv(EnvInventoryFile), conf.File, DefaultInventoryFile)
	conf.Currency = firstNonEmpty(*currency, os.Getenv(EnvCurrency), conf.Currency, bookstore.DefaultCurrency)
	if conf.Limit <= 0 {
		conf.Limit = bookstore.DefaultListingLimit
	}
	if err := bookstore.CheckCurrency(conf.Currency); err != nil {
		return Config{}, err
	}
	return conf, nil
}

// DecodeInventory loads the inventory from the configured file.
// A missing file is not an error: a warning is logged and an empty inventory
// bound to that file is returned.
func DecodeInventory(conf Config) (*bookstore.Inventory, error) {
	inv, err := bookstore.Load(conf.File)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Warn("inventory file not found, starting with an empty inventory", "file", conf.File)
		return inv, nil
	}
	return inv, err
}

// open is the common prologue of the subcommands: it resolves the settings
// and loads the inventory, reporting errors on stderr.
func open() (Config, *bookstore.Inventory, subcommands.ExitStatus) {
	conf, err := Settings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading configuration: %v\n", err)
		return conf, nil, subcommands.ExitUsageError
	}
	inv, err := DecodeInventory(conf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading inventory: %v\n", err)
		return conf, nil, subcommands.ExitFailure
	}
	return conf, inv, subcommands.ExitSuccess
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
