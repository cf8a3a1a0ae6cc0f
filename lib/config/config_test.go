// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bureau-foundation/tasklist/lib/task"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "tasklist.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return configPath
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.View.DateLayout != "02.01.2006" {
		t.Errorf("expected date_layout=02.01.2006, got %s", cfg.View.DateLayout)
	}
	if cfg.Filter() != task.FilterAll {
		t.Errorf("expected default_filter=all, got %s", cfg.Filter())
	}
	if cfg.StatusFadeDuration() != 4*time.Second {
		t.Errorf("expected status_fade=4s, got %s", cfg.StatusFadeDuration())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoad_RequiresEnvironmentVariable(t *testing.T) {
	t.Setenv(EnvironmentVariable, "")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error when TASKLIST_CONFIG not set, got nil")
	}
	if !strings.HasPrefix(err.Error(), "TASKLIST_CONFIG environment variable not set") {
		t.Errorf("unexpected error message %q", err.Error())
	}
}

func TestLoadFile(t *testing.T) {
	configPath := writeConfig(t, `
seed: /srv/tasks.yaml

view:
  default_filter: active
  date_layout: "2006-01-02"
  status_fade: 750ms

log:
  level: debug
`)

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.Seed != "/srv/tasks.yaml" {
		t.Errorf("expected seed=/srv/tasks.yaml, got %s", cfg.Seed)
	}
	if cfg.Filter() != task.FilterActive {
		t.Errorf("expected filter=active, got %s", cfg.Filter())
	}
	if cfg.View.DateLayout != "2006-01-02" {
		t.Errorf("expected date_layout=2006-01-02, got %s", cfg.View.DateLayout)
	}
	if cfg.StatusFadeDuration() != 750*time.Millisecond {
		t.Errorf("expected status_fade=750ms, got %s", cfg.StatusFadeDuration())
	}
	if cfg.LogLevel() != slog.LevelDebug {
		t.Errorf("expected level=debug, got %s", cfg.LogLevel())
	}
}

func TestLoadFile_PartialKeepsDefaults(t *testing.T) {
	configPath := writeConfig(t, "view:\n  default_filter: completed\n")

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.View.DateLayout != "02.01.2006" {
		t.Errorf("expected default date_layout to survive, got %q", cfg.View.DateLayout)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected default log level to survive, got %q", cfg.Log.Level)
	}
}

func TestLoadFile_ExpandsSeedPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	configPath := writeConfig(t, "seed: ${HOME}/tasks.jsonc\n")

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.Seed != "/home/tester/tasks.jsonc" {
		t.Errorf("expected seed=/home/tester/tasks.jsonc, got %s", cfg.Seed)
	}
}

func TestExpandVars(t *testing.T) {
	t.Setenv("TASKLIST_FROM_ENV", "/env")
	vars := map[string]string{"HOME": "/home/tester"}

	tests := []struct {
		input string
		want  string
	}{
		{"${HOME}/seed.yaml", "/home/tester/seed.yaml"},
		{"${TASKLIST_FROM_ENV}/seed.yaml", "/env/seed.yaml"},
		{"${TASKLIST_UNSET_VARIABLE:-/fallback}/seed.yaml", "/fallback/seed.yaml"},
		{"${TASKLIST_UNSET_VARIABLE}/seed.yaml", "/seed.yaml"},
		{"/plain/path", "/plain/path"},
	}
	for _, test := range tests {
		if got := expandVars(test.input, vars); got != test.want {
			t.Errorf("expandVars(%q) = %q, want %q", test.input, got, test.want)
		}
	}
}

func TestLoadFile_ValidationReportsEveryProblem(t *testing.T) {
	configPath := writeConfig(t, `
view:
  default_filter: someday
  date_layout: "  "
  status_fade: soon
log:
  level: verbose
`)

	_, err := LoadFile(configPath)
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, fragment := range []string{"view.default_filter", "view.date_layout", "view.status_fade", "log.level"} {
		if !strings.Contains(err.Error(), fragment) {
			t.Errorf("error %q does not mention %s", err, fragment)
		}
	}
}

func TestValidate_RejectsNonPositiveFade(t *testing.T) {
	cfg := Default()
	cfg.View.StatusFade = "0s"
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "must be positive") {
		t.Errorf("Validate() = %v, want positive-duration error", err)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadFile_MalformedYAML(t *testing.T) {
	configPath := writeConfig(t, "view: [unclosed\n")
	if _, err := LoadFile(configPath); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestResolve(t *testing.T) {
	explicit := writeConfig(t, "view:\n  default_filter: active\n")
	fromEnvironment := writeConfig(t, "view:\n  default_filter: completed\n")

	t.Setenv(EnvironmentVariable, fromEnvironment)
	cfg, err := Resolve(explicit)
	if err != nil {
		t.Fatalf("Resolve(explicit): %v", err)
	}
	if cfg.Filter() != task.FilterActive {
		t.Errorf("explicit path should win, got filter %s", cfg.Filter())
	}

	cfg, err = Resolve("")
	if err != nil {
		t.Fatalf("Resolve(env): %v", err)
	}
	if cfg.Filter() != task.FilterCompleted {
		t.Errorf("environment path should be used, got filter %s", cfg.Filter())
	}

	t.Setenv(EnvironmentVariable, "")
	cfg, err = Resolve("")
	if err != nil {
		t.Fatalf("Resolve(default): %v", err)
	}
	if cfg.Filter() != task.FilterAll {
		t.Errorf("defaults expected, got filter %s", cfg.Filter())
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"unknown": slog.LevelInfo,
	}
	for name, want := range tests {
		if got := ParseLevel(name); got != want {
			t.Errorf("ParseLevel(%q) = %s, want %s", name, got, want)
		}
	}
}
