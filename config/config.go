// Package config loads the application configuration. Values are layered:
// compiled-in defaults, then an optional YAML file, then PENNYWISE_*
// environment variables, each layer overriding the previous one.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "PENNYWISE_"

// Config holds the user-tunable settings.
type Config struct {
	// Journal is the path of the JSON journal file.
	Journal string `koanf:"journal"`
	// Currency is the symbol prefixed to rendered amounts.
	Currency string `koanf:"currency"`
}

// DefaultPath returns the default configuration file location,
// $XDG_CONFIG_HOME/pennywise/config.yaml or the platform equivalent.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(dir, "pennywise", "config.yaml")
}

func defaultJournalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "journal.json"
	}
	return filepath.Join(home, ".pennywise", "journal.json")
}

// Load reads the configuration, layering the YAML file at path and the
// environment over the defaults. A missing file is not an error; a
// malformed one is.
func Load(path string) (Config, error) {
	k := koanf.New(".")

	err := k.Load(structs.Provider(Config{
		Journal:  defaultJournalPath(),
		Currency: "$",
	}, "koanf"), nil)
	if err != nil {
		return Config{}, fmt.Errorf("failed to load default configuration: %w", err)
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load configuration from %s: %w", path, err)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(key, envPrefix)), "_", ".")
			return key, value
		},
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("failed to load configuration from environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return cfg, nil
}
