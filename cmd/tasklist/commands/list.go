// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/tasklist/cmd/tasklist/cli"
	"github.com/bureau-foundation/tasklist/lib/clock"
	"github.com/bureau-foundation/tasklist/lib/codec"
	"github.com/bureau-foundation/tasklist/lib/task"
	"github.com/bureau-foundation/tasklist/lib/taskstore"
)

type listOptions struct {
	storeOptions
	OutputJSON bool
	OutputCBOR bool
	FailEmpty  bool
}

func listCommand(stdout io.Writer) *cli.Command {
	var options listOptions
	return &cli.Command{
		Name:    "list",
		Summary: "Print the seeded tasks and statistics",
		Description: `Print the tasks the editor would start with, filtered by tab, followed
by the statistics line. Statistics always cover every task, not just
the filtered ones.

--json prints the snapshot as JSON. --cbor prints it as CBOR
diagnostic notation of the deterministic core encoding.`,
		Usage: "tasklist list [--seed FILE] [--filter all|active|completed] [--json|--cbor]",
		Examples: []cli.Example{
			{Description: "Active tasks from a YAML seed", Command: "tasklist list --seed tasks.yaml --filter active"},
			{Description: "The built-in samples as JSON", Command: "tasklist list --json"},
		},
		Flags: func() *pflag.FlagSet {
			options = listOptions{}
			flagSet := pflag.NewFlagSet("list", pflag.ContinueOnError)
			options.addFlags(flagSet)
			flagSet.BoolVar(&options.OutputJSON, "json", false, "output as JSON")
			flagSet.BoolVar(&options.OutputCBOR, "cbor", false, "output as CBOR diagnostic notation")
			flagSet.BoolVar(&options.FailEmpty, "fail-empty", false, "exit with status 1 when no task matches the filter")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			if options.OutputJSON && options.OutputCBOR {
				return cli.Validation("--json and --cbor are mutually exclusive")
			}
			return runList(stdout, &options)
		},
	}
}

func runList(stdout io.Writer, options *listOptions) error {
	env, err := options.open(clock.Real())
	if err != nil {
		return err
	}
	logger := cli.NewCommandLogger(env.Level).With("command", "list")
	logger.Debug("store ready", "seed", env.SeedSource, "tasks", env.Seeded, "filter", env.Filter)

	snapshot := env.Store.Snapshot(env.Filter)

	switch {
	case options.OutputJSON:
		if err := cli.WriteJSON(stdout, snapshot); err != nil {
			return err
		}
	case options.OutputCBOR:
		if err := writeCBOR(stdout, snapshot); err != nil {
			return err
		}
	default:
		if err := writeTable(stdout, snapshot, env.Config.View.DateLayout); err != nil {
			return cli.Internal("writing table: %w", err)
		}
	}

	if options.FailEmpty && len(snapshot.Tasks) == 0 {
		logger.Debug("no tasks match", "filter", env.Filter)
		return &cli.ExitError{Code: 1}
	}
	return nil
}

func writeCBOR(stdout io.Writer, snapshot taskstore.Snapshot) error {
	encoded, err := codec.Marshal(snapshot)
	if err != nil {
		return cli.Internal("encoding snapshot: %w", err)
	}
	diagnostic, err := codec.Diagnose(encoded)
	if err != nil {
		return cli.Internal("formatting snapshot: %w", err)
	}
	if _, err := fmt.Fprintln(stdout, diagnostic); err != nil {
		return cli.Internal("writing CBOR output: %w", err)
	}
	return nil
}

// writeTable prints one aligned row per task and the statistics line.
func writeTable(stdout io.Writer, snapshot taskstore.Snapshot, dateLayout string) error {
	writer := tabwriter.NewWriter(stdout, 2, 0, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tSTATUS\tPRIORITY\tCREATED\tDEADLINE\tTITLE")
	for _, item := range snapshot.Tasks {
		deadline := "—"
		if item.Deadline != nil {
			deadline = item.Deadline.Format(dateLayout)
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\t%s\n",
			item.ID,
			item.Status.Label(),
			item.Priority.Label(),
			item.CreatedAt.In(time.Local).Format(dateLayout),
			deadline,
			item.Title,
		)
	}
	if err := writer.Flush(); err != nil {
		return err
	}
	if len(snapshot.Tasks) == 0 {
		fmt.Fprintf(stdout, "No %s tasks.\n", filterNoun(snapshot.Filter))
	}
	_, err := fmt.Fprintln(stdout, snapshot.Stats)
	return err
}

func filterNoun(filter task.Filter) string {
	if filter == task.FilterAll {
		return "matching"
	}
	return string(filter)
}
