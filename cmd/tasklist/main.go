// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// tasklist is a single-user task list editor. "tasklist edit" opens an
// interactive terminal table with inline editing; "tasklist list"
// prints the seeded tasks as a table, JSON, or CBOR diagnostics.
package main

import (
	"fmt"
	"os"

	"github.com/bureau-foundation/tasklist/cmd/tasklist/cli"
	"github.com/bureau-foundation/tasklist/cmd/tasklist/commands"
)

func main() {
	if err := run(); err != nil {
		if !cli.Silent(err) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			if hint := cli.HintOf(err); hint != "" {
				fmt.Fprintf(os.Stderr, "\n%s\n", hint)
			}
		}
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		os.Exit(1)
	}
}

func run() error {
	return commands.Root().Execute(os.Args[1:])
}
