// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// ExitError signals a non-zero exit code without printing an extra
// error message. The command is expected to have already written its
// own output. "tasklist list" returns one with code 1 when a filter
// matches no tasks and --fail-empty is set.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode returns the exit code.
func (e *ExitError) ExitCode() int {
	return e.Code
}

// Silent reports whether main should exit without printing err: true
// for ExitError, whose command already wrote its output.
func Silent(err error) bool {
	_, ok := err.(*ExitError)
	return ok
}
