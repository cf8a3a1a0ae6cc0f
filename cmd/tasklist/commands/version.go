// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/tasklist/cmd/tasklist/cli"
	"github.com/bureau-foundation/tasklist/lib/version"
)

func versionCommand(stdout io.Writer) *cli.Command {
	var full, outputJSON bool
	return &cli.Command{
		Name:    "version",
		Summary: "Print build version information",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("version", pflag.ContinueOnError)
			flagSet.BoolVar(&full, "full", false, "include Go version and platform")
			flagSet.BoolVar(&outputJSON, "json", false, "output as JSON")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			switch {
			case outputJSON:
				return cli.WriteJSON(stdout, version.Current())
			case full:
				_, err := fmt.Fprintln(stdout, "tasklist "+version.Full())
				return err
			default:
				_, err := fmt.Fprintln(stdout, "tasklist "+version.Info())
				return err
			}
		},
	}
}
