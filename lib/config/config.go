// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/tasklist/lib/task"
)

// EnvironmentVariable names the variable consulted when no --config
// flag is given.
const EnvironmentVariable = "TASKLIST_CONFIG"

// Config is the master configuration for tasklist.
type Config struct {
	// Seed is the path of a JSONC or YAML seed file loaded at startup.
	// Empty means the built-in sample tasks.
	Seed string `yaml:"seed"`

	// View configures the terminal view.
	View ViewConfig `yaml:"view"`

	// Log configures diagnostic logging.
	Log LogConfig `yaml:"log"`
}

// ViewConfig configures the terminal view.
type ViewConfig struct {
	// DefaultFilter is the tab selected at startup: all, active, or
	// completed.
	// Default: all
	DefaultFilter string `yaml:"default_filter"`

	// DateLayout is the Go time layout used to render creation dates
	// and deadlines.
	// Default: 02.01.2006
	DateLayout string `yaml:"date_layout"`

	// StatusFade is how long an error or notice stays in the status
	// bar, as a Go duration string.
	// Default: 4s
	StatusFade string `yaml:"status_fade"`
}

// LogConfig configures diagnostic logging.
type LogConfig struct {
	// Level is the minimum level logged: debug, info, warn, or error.
	// Default: info
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		View: ViewConfig{
			DefaultFilter: string(task.FilterAll),
			DateLayout:    "02.01.2006",
			StatusFade:    "4s",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from the TASKLIST_CONFIG environment
// variable. Fails if the variable is not set.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of your tasklist.yaml config file, or use --config flag", EnvironmentVariable)
	}
	return LoadFile(configPath)
}

// Resolve picks the configuration source: the explicit path if
// non-empty, then TASKLIST_CONFIG, then the defaults.
func Resolve(path string) (*Config, error) {
	if path != "" {
		return LoadFile(path)
	}
	if os.Getenv(EnvironmentVariable) != "" {
		return Load()
	}
	return Default(), nil
}

// LoadFile loads configuration from a specific file path, layered over
// the defaults, and validates the result.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	cfg.expandVariables()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in paths.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}
	c.Seed = expandVars(c.Seed, vars)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandVars expands ${VAR} and ${VAR:-default} patterns. Values in
// vars take precedence over the process environment.
func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

var logLevels = []string{"debug", "info", "warn", "error"}

// Validate checks the configuration for errors. Every problem is
// reported, not just the first.
func (c *Config) Validate() error {
	var errs []error

	if _, err := task.ParseFilter(c.View.DefaultFilter); err != nil {
		errs = append(errs, fmt.Errorf("view.default_filter: %w", err))
	}

	if strings.TrimSpace(c.View.DateLayout) == "" {
		errs = append(errs, fmt.Errorf("view.date_layout is required"))
	}

	if fade, err := time.ParseDuration(c.View.StatusFade); err != nil {
		errs = append(errs, fmt.Errorf("view.status_fade: %w", err))
	} else if fade <= 0 {
		errs = append(errs, fmt.Errorf("view.status_fade must be positive, got %s", c.View.StatusFade))
	}

	if !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		errs = append(errs, fmt.Errorf("log.level must be one of: %v", logLevels))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Filter returns the parsed startup filter. Call Validate first; an
// invalid value falls back to all.
func (c *Config) Filter() task.Filter {
	filter, err := task.ParseFilter(c.View.DefaultFilter)
	if err != nil {
		return task.FilterAll
	}
	return filter
}

// StatusFadeDuration returns the parsed status fade delay, falling back
// to four seconds for an invalid value.
func (c *Config) StatusFadeDuration() time.Duration {
	fade, err := time.ParseDuration(c.View.StatusFade)
	if err != nil || fade <= 0 {
		return 4 * time.Second
	}
	return fade
}

// LogLevel returns the slog level for Log.Level.
func (c *Config) LogLevel() slog.Level {
	return ParseLevel(c.Log.Level)
}

// ParseLevel maps a level name to a slog.Level. Unknown names map to
// info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
