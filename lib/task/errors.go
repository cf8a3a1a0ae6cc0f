// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package task

import "fmt"

// ValidationError reports a value that a field does not accept: an
// empty title, an unknown status or priority, an unparseable date.
// Validation failures never mutate state; callers surface them to the
// user and let them correct the input.
type ValidationError struct {
	// Field is the field whose value was rejected.
	Field Field

	// Value is the rejected input as given.
	Value string

	// Reason describes what the field requires.
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports an operation that referenced a task ID not
// present in the store. Callers are expected to refresh their view of
// the collection.
type NotFoundError struct {
	ID ID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task %s not found", e.ID)
}
