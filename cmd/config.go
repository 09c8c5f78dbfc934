package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultInventoryFile is the inventory used when none is configured.
	DefaultInventoryFile = "Books data.csv"
	// DefaultConfigFile is looked up in the working directory.
	DefaultConfigFile = "bookstore.yaml"
)

// Config holds the application settings.
//
// Example bookstore.yaml:
//
//	file: inventory/books.csv
//	currency: EUR
//	limit: 50
type Config struct {
	File     string `yaml:"file"`     // inventory CSV file
	Currency string `yaml:"currency"` // ISO code used to display prices
	Limit    int    `yaml:"limit"`    // default number of books listed
}

// LoadConfig reads the YAML configuration file at path.
// A missing file yields an empty Config.
func LoadConfig(path string) (Config, error) {
	var conf Config
	if path == "" {
		return conf, nil
	}
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return conf, nil
	}
	if err != nil {
		return conf, fmt.Errorf("could not read config file %q: %w", path, err)
	}
	if err := yaml.Unmarshal(content, &conf); err != nil {
		return conf, fmt.Errorf("could not parse config file %q: %w", path, err)
	}
	return conf, nil
}
