// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the tasklist
// binary.
//
// The central type is [Command], a named command with optional nested
// [Command.Subcommands], a [pflag.FlagSet] factory, and a Run function.
// Commands are assembled into a tree in cmd/tasklist/commands and
// dispatched via [Command.Execute], which handles flag parsing,
// subcommand routing, and structured help output with examples.
//
// Unknown commands and flags get a "did you mean" suggestion computed
// by Levenshtein distance (threshold: distance <= 3).
//
// Failures are returned as [ToolError] values carrying an
// [ErrorCategory] and an optional hint; main maps the category to a
// process exit code.
package cli
