// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version provides build version information for the tasklist
// binary.
//
// Three package-level variables can be injected at build time via
// -ldflags -X: [GitCommit], [BuildTime] and [Version]. When GitCommit
// is not injected, the VCS revision recorded by the Go toolchain in the
// binary's build info is used instead.
//
// [Info] formats the one-line string printed by "tasklist version";
// [Full] adds the Go version and platform.
package version
