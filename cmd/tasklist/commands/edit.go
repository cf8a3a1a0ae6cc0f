// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/bureau-foundation/tasklist/cmd/tasklist/cli"
	"github.com/bureau-foundation/tasklist/lib/clock"
	"github.com/bureau-foundation/tasklist/lib/taskui"
)

type editOptions struct {
	storeOptions
	LogOutput string
}

func editCommand() *cli.Command {
	var options editOptions
	return &cli.Command{
		Name:    "edit",
		Summary: "Open the interactive task editor",
		Description: `Open the terminal task editor.

Keys: 1/2/3 switch tabs, / searches, e or Enter edits the cell under
the cursor, n creates a task, d deletes (y confirms), q quits. While
editing, Enter saves, Esc cancels, and clicking anywhere outside the
cell saves. Status and priority open a dropdown.

Tasks live in memory only; nothing is written back to the seed file.
Warnings appear in the status bar. Use --log-output to keep a full
JSON log.`,
		Usage: "tasklist edit [--seed FILE] [--empty] [--filter all|active|completed]",
		Examples: []cli.Example{
			{Description: "Start with the built-in sample tasks", Command: "tasklist edit"},
			{Description: "Start empty on the active tab", Command: "tasklist edit --empty --filter active"},
			{Description: "Seed from a file and keep a debug log", Command: "tasklist edit --seed tasks.jsonc --log-output /tmp/tasklist.jsonl"},
		},
		Flags: func() *pflag.FlagSet {
			options = editOptions{}
			flagSet := pflag.NewFlagSet("edit", pflag.ContinueOnError)
			options.addFlags(flagSet)
			flagSet.StringVar(&options.LogOutput, "log-output", "", "write JSON log records to this file (in addition to the status bar)")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			return runEdit(&options)
		},
	}
}

// runEdit runs the TUI. Logging is routed through a TUILogHandler that
// shows warnings and errors in the status bar instead of writing to
// stderr, which would corrupt the alt-screen display.
func runEdit(options *editOptions) error {
	source := clock.Real()
	env, err := options.open(source)
	if err != nil {
		return err
	}

	tuiHandler := taskui.NewTUILogHandler(max(env.Level, slog.LevelWarn))
	var handler slog.Handler = tuiHandler
	if options.LogOutput != "" {
		fileHandler, closeFile, err := cli.OpenFileLogHandler(options.LogOutput)
		if err != nil {
			return cli.Validation("cannot open log file %s: %w", options.LogOutput, err)
		}
		defer closeFile()
		handler = cli.FanoutHandler{tuiHandler, fileHandler}
	}
	logger := slog.New(handler).With("command", "edit")
	logger.Info("store ready", "seed", env.SeedSource, "tasks", env.Seeded, "filter", env.Filter)

	model := taskui.NewModel(env.Store, taskui.Options{
		Clock:      source,
		Logger:     logger,
		Filter:     env.Filter,
		DateLayout: env.Config.View.DateLayout,
		StatusFade: env.Config.StatusFadeDuration(),
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	tuiHandler.SetProgram(program)

	if _, err := program.Run(); err != nil {
		return cli.Internal("running editor: %w", err)
	}
	return nil
}
