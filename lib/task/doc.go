// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package task defines the task record and the vocabulary shared by the
// store, the edit session, the draft builder, and the view: status and
// priority enums, editable field names, list filters, calendar dates,
// and the typed errors those components return.
//
// Every editable field has a canonical text form. The edit session
// buffers pending values in that form and the store parses them on
// write, so a single parser ([Task.Apply]) decides what is valid:
//
//	title        any text, stored as given; must not be blank
//	description  any text, may be empty
//	status       "active", "completed", "cancelled"
//	priority     "low", "medium", "high"
//	deadline     "YYYY-MM-DD", or empty to clear
//
// The package has no I/O and no dependency on the rest of the module.
package task
