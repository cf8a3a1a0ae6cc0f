// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands assembles the tasklist command tree.
package commands

import (
	"io"
	"os"

	"github.com/bureau-foundation/tasklist/cmd/tasklist/cli"
)

// Root returns the root command writing results to standard output.
func Root() *cli.Command {
	return newRoot(os.Stdout)
}

func newRoot(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:    "tasklist",
		Summary: "Single-user task list editor",
		Description: `tasklist keeps an in-memory list of tasks with inline editing.

"tasklist edit" opens the terminal editor. Click a cell (or press e)
to edit it; Enter or a click elsewhere saves, Esc cancels. Tasks are
seeded from a JSONC or YAML file, or from two built-in samples.`,
		Subcommands: []*cli.Command{
			editCommand(),
			listCommand(stdout),
			versionCommand(stdout),
		},
	}
}
