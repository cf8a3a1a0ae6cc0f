// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestCommand_Execute_DispatchesToSubcommand(t *testing.T) {
	var called string

	root := &Command{
		Name: "tasklist",
		Subcommands: []*Command{
			{Name: "version", Run: func(args []string) error { called = "version"; return nil }},
			{Name: "list", Run: func(args []string) error { called = "list"; return nil }},
		},
	}

	if err := root.Execute([]string{"list"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "list" {
		t.Errorf("dispatched to %q, want %q", called, "list")
	}
}

func TestCommand_Execute_FlagParsing(t *testing.T) {
	var filter string
	var receivedArgs []string

	command := &Command{
		Name: "list",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("list", pflag.ContinueOnError)
			flagSet.StringVar(&filter, "filter", "all", "filter")
			return flagSet
		},
		Run: func(args []string) error {
			receivedArgs = args
			return nil
		},
	}

	if err := command.Execute([]string{"--filter", "active", "extra"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if filter != "active" {
		t.Errorf("filter = %q, want active", filter)
	}
	if len(receivedArgs) != 1 || receivedArgs[0] != "extra" {
		t.Errorf("args = %v, want [extra]", receivedArgs)
	}
}

func TestCommand_Execute_UnknownCommandSuggests(t *testing.T) {
	root := &Command{
		Name: "tasklist",
		Subcommands: []*Command{
			{Name: "list", Run: func([]string) error { return nil }},
			{Name: "edit", Run: func([]string) error { return nil }},
		},
	}

	err := root.Execute([]string{"lst"})
	if err == nil {
		t.Fatal("expected error for unknown command")
	}
	if !strings.Contains(err.Error(), `did you mean "list"`) {
		t.Errorf("error = %q, want a suggestion", err)
	}
	var toolError *ToolError
	if !errors.As(err, &toolError) || toolError.Category != CategoryValidation {
		t.Errorf("error %T is not a validation ToolError", err)
	}
	if !strings.Contains(HintOf(err), "tasklist --help") {
		t.Errorf("hint = %q", HintOf(err))
	}
}

func TestCommand_Execute_UnknownFlagSuggests(t *testing.T) {
	command := &Command{
		Name: "list",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("list", pflag.ContinueOnError)
			flagSet.String("filter", "", "filter")
			flagSet.Bool("json", false, "json")
			return flagSet
		},
		Run: func([]string) error { return nil },
	}

	err := command.Execute([]string{"--fliter", "active"})
	if err == nil {
		t.Fatal("expected error for unknown flag")
	}
	if !strings.Contains(err.Error(), "did you mean --filter?") {
		t.Errorf("error = %q, want flag suggestion", err)
	}
}

func TestCommand_Execute_HelpFlag(t *testing.T) {
	var output bytes.Buffer
	ran := false
	root := &Command{
		Name:   "tasklist",
		Output: &output,
		Subcommands: []*Command{
			{
				Name:        "list",
				Summary:     "Print tasks",
				Description: "Print the tasks of a seed file.",
				Flags: func() *pflag.FlagSet {
					flagSet := pflag.NewFlagSet("list", pflag.ContinueOnError)
					flagSet.Bool("json", false, "output as JSON")
					return flagSet
				},
				Examples: []Example{{Description: "Active tasks as JSON", Command: "tasklist list --filter active --json"}},
				Run:      func([]string) error { ran = true; return nil },
			},
		},
	}

	if err := root.Execute([]string{"list", "--json", "--help"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if ran {
		t.Error("--help ran the command")
	}
	help := output.String()
	for _, want := range []string{"Print the tasks of a seed file.", "tasklist list [flags]", "--json", "Active tasks as JSON"} {
		if !strings.Contains(help, want) {
			t.Errorf("help missing %q:\n%s", want, help)
		}
	}
}

func TestCommand_Execute_SubcommandRequired(t *testing.T) {
	var output bytes.Buffer
	root := &Command{
		Name:        "tasklist",
		Output:      &output,
		Subcommands: []*Command{{Name: "list", Summary: "Print tasks", Run: func([]string) error { return nil }}},
	}

	if err := root.Execute(nil); err == nil {
		t.Fatal("expected error without a subcommand")
	}
	if !strings.Contains(output.String(), "list") || !strings.Contains(output.String(), "Print tasks") {
		t.Errorf("help listing missing subcommand:\n%s", output.String())
	}
}
