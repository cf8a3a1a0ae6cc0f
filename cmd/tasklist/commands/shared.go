// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/tasklist/cmd/tasklist/cli"
	"github.com/bureau-foundation/tasklist/lib/clock"
	"github.com/bureau-foundation/tasklist/lib/config"
	"github.com/bureau-foundation/tasklist/lib/seed"
	"github.com/bureau-foundation/tasklist/lib/task"
	"github.com/bureau-foundation/tasklist/lib/taskstore"
)

// storeOptions are the flags shared by commands that build a store:
// where configuration comes from, which tasks to seed, and which
// filter to start with.
type storeOptions struct {
	ConfigPath string
	LogLevel   string
	SeedPath   string
	Empty      bool
	Filter     string
}

// addFlags binds the shared flags into flagSet.
func (options *storeOptions) addFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&options.ConfigPath, "config", "", "config file (default: $"+config.EnvironmentVariable+", else built-in defaults)")
	flagSet.StringVar(&options.LogLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	flagSet.StringVar(&options.SeedPath, "seed", "", "seed tasks from a .json, .jsonc, .yaml or .yml file (overrides config)")
	flagSet.BoolVar(&options.Empty, "empty", false, "start with no tasks")
	flagSet.StringVarP(&options.Filter, "filter", "f", "", "tab to show: all, active, completed (overrides config)")
}

// environment is what a command works with after the shared flags are
// resolved.
type environment struct {
	Config *config.Config
	Store  *taskstore.Store
	Filter task.Filter
	Level  slog.Level

	// SeedSource describes where the initial tasks came from; empty
	// with --empty.
	SeedSource string
	Seeded     int
}

// open resolves the configuration, creates the store and applies the
// seed. Seed selection: --empty, then --seed, then the config's seed
// path, then the built-in samples.
func (options *storeOptions) open(source clock.Clock) (*environment, error) {
	cfg, err := config.Resolve(options.ConfigPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, cli.NotFound("%w", err).WithHint("Pass --config with an existing file, or unset " + config.EnvironmentVariable + ".")
		}
		return nil, cli.Validation("%w", err)
	}

	level := cfg.LogLevel()
	if options.LogLevel != "" {
		level = config.ParseLevel(options.LogLevel)
	}

	filter := cfg.Filter()
	if options.Filter != "" {
		filter, err = task.ParseFilter(options.Filter)
		if err != nil {
			return nil, cli.Validation("--filter: %w", err)
		}
	}

	env := &environment{Config: cfg, Store: taskstore.New(source), Filter: filter, Level: level}
	if options.Empty {
		return env, nil
	}

	entries, origin, err := options.seedEntries(cfg)
	if err != nil {
		return nil, err
	}
	created, err := seed.Apply(env.Store, entries)
	if err != nil {
		return nil, cli.Validation("%s: %w", origin, err)
	}
	env.SeedSource = origin
	env.Seeded = len(created)
	return env, nil
}

// seedEntries returns the entries to seed and a description of where
// they came from.
func (options *storeOptions) seedEntries(cfg *config.Config) ([]seed.Entry, string, error) {
	path := options.SeedPath
	if path == "" {
		path = cfg.Seed
	}
	if path == "" {
		return seed.Default(), "built-in samples", nil
	}

	file, err := seed.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, "", cli.NotFound("seed file: %w", err)
		}
		return nil, "", cli.Validation("seed file: %w", err)
	}
	return file.Tasks, path, nil
}
