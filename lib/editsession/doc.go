// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package editsession implements inline editing of a single task field.
//
// A [Session] is either [Idle] or [Editing] one (task, field) target
// with a pending value. At most one target is edited at a time:
// beginning an edit on a different target first finalizes the current
// one with the commit rule. There are three ways out of Editing:
//
//   - [Session.Commit] validates the pending value and writes it to the
//     store. An invalid value is discarded and reported.
//   - [Session.BlurCommit] is the same as Commit, triggered by an
//     interaction outside the edited cell.
//   - [Session.Cancel] discards the pending value without touching the
//     store.
//
// Every ending transition returns the session to Idle exactly once, so
// a second Commit after the first is a no-op. Commit results are
// reported as an [Outcome] rather than only an error, because the view
// needs to distinguish "written" from "nothing to write" from "the task
// was deleted under the editor".
//
// Sessions are not safe for concurrent use. The view's event loop owns
// the session and the store it writes to.
package editsession
