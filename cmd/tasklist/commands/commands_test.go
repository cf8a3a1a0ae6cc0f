// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bureau-foundation/tasklist/cmd/tasklist/cli"
	"github.com/bureau-foundation/tasklist/lib/config"
	"github.com/bureau-foundation/tasklist/lib/taskstore"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvironmentVariable, "")
	var stdout, help bytes.Buffer
	root := newRoot(&stdout)
	root.Output = &help
	err := root.Execute(args)
	return stdout.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestListBuiltInSamples(t *testing.T) {
	output, err := execute(t, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, want := range []string{
		"Finish the React homework",
		"Buy groceries",
		"15.12.2024",
		"Total: 2 | Active: 1 | Completed: 1",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestListFilterActive(t *testing.T) {
	output, err := execute(t, "list", "--filter", "active")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if strings.Contains(output, "Buy groceries") {
		t.Errorf("completed task shown on active filter:\n%s", output)
	}
	if !strings.Contains(output, "Total: 2 | Active: 1 | Completed: 1") {
		t.Errorf("stats should cover all tasks:\n%s", output)
	}
}

func TestListJSON(t *testing.T) {
	seedPath := writeFile(t, "tasks.yaml", `tasks:
  - title: Water plants
    priority: low
  - title: Renew passport
    status: cancelled
    deadline: 2026-05-01
`)
	output, err := execute(t, "list", "--seed", seedPath, "--json")
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	var snapshot taskstore.Snapshot
	if err := json.Unmarshal([]byte(output), &snapshot); err != nil {
		t.Fatalf("output is not a snapshot: %v\n%s", err, output)
	}
	if len(snapshot.Tasks) != 2 {
		t.Fatalf("tasks = %d, want 2", len(snapshot.Tasks))
	}
	if snapshot.Stats.Completed != 1 || snapshot.Stats.Active != 1 {
		t.Errorf("stats = %+v", snapshot.Stats)
	}
	if snapshot.Tasks[1].Deadline == nil || snapshot.Tasks[1].Deadline.String() != "2026-05-01" {
		t.Errorf("deadline = %v", snapshot.Tasks[1].Deadline)
	}
}

func TestListCBORDiagnostics(t *testing.T) {
	output, err := execute(t, "list", "--cbor")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(output, `"title": "Buy groceries"`) {
		t.Errorf("diagnostic output missing title:\n%s", output)
	}
}

func TestListEmptyFailEmpty(t *testing.T) {
	output, err := execute(t, "list", "--empty", "--fail-empty")
	var exitError *cli.ExitError
	if !errors.As(err, &exitError) || exitError.Code != 1 {
		t.Fatalf("err = %v, want exit code 1", err)
	}
	if !strings.Contains(output, "Total: 0 | Active: 0 | Completed: 0") {
		t.Errorf("output = %q", output)
	}
}

func TestListRejectsBadInput(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		category cli.ErrorCategory
	}{
		{"unknown filter", []string{"list", "--filter", "done"}, cli.CategoryValidation},
		{"both formats", []string{"list", "--json", "--cbor"}, cli.CategoryValidation},
		{"missing seed", []string{"list", "--seed", "/nonexistent/tasks.yaml"}, cli.CategoryNotFound},
		{"missing config", []string{"list", "--config", "/nonexistent/tasklist.yaml"}, cli.CategoryNotFound},
		{"extra argument", []string{"list", "extra"}, cli.CategoryValidation},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := execute(t, test.args...)
			var toolError *cli.ToolError
			if !errors.As(err, &toolError) {
				t.Fatalf("err = %v (%T), want ToolError", err, err)
			}
			if toolError.Category != test.category {
				t.Errorf("category = %s, want %s", toolError.Category, test.category)
			}
		})
	}
}

func TestListInvalidSeedEntryCreatesNothing(t *testing.T) {
	seedPath := writeFile(t, "tasks.jsonc", `{
  // second entry has no title
  "tasks": [
    {"title": "Valid"},
    {"title": "  "},
  ],
}`)
	_, err := execute(t, "list", "--seed", seedPath)
	if err == nil || !strings.Contains(err.Error(), "seed entry 1") {
		t.Errorf("err = %v, want it to name entry 1", err)
	}
}

func TestListUsesConfig(t *testing.T) {
	seedPath := writeFile(t, "tasks.yaml", "tasks:\n  - title: From config\n    deadline: 2026-07-04\n")
	configPath := writeFile(t, "tasklist.yaml", "seed: "+seedPath+"\nview:\n  date_layout: 2006/01/02\n  default_filter: active\n")

	output, err := execute(t, "list", "--config", configPath)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(output, "From config") || !strings.Contains(output, "2026/07/04") {
		t.Errorf("config not applied:\n%s", output)
	}
}

func TestVersion(t *testing.T) {
	output, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(output, "tasklist ") {
		t.Errorf("output = %q", output)
	}

	output, err = execute(t, "version", "--json")
	if err != nil {
		t.Fatalf("version --json: %v", err)
	}
	var build map[string]any
	if err := json.Unmarshal([]byte(output), &build); err != nil || build["version"] == nil {
		t.Errorf("version --json = %q (%v)", output, err)
	}
}

func TestUnknownCommandSuggests(t *testing.T) {
	_, err := execute(t, "lsit")
	if err == nil || !strings.Contains(err.Error(), `did you mean "list"`) {
		t.Errorf("err = %v", err)
	}
}
