// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package taskui implements the interactive task list viewer.
//
// The [Model] is a bubbletea model that renders the task table with
// filter tabs, a fuzzy search line, a statistics summary and a status
// bar. It owns three collaborators and mediates every interaction
// between them:
//
//   - a *taskstore.Store holding the tasks,
//   - an *editsession.Session for inline cell edits,
//   - a *draft.Draft backing the create form.
//
// Because bubbletea delivers messages to Update one at a time, every
// store and session call happens on a single goroutine. Timers (status
// fades, highlight decay) only deliver messages back into Update.
//
// Inline editing follows the session's rules. Clicking a cell or
// pressing enter starts an edit; clicking a different cell commits the
// current edit before starting the next; clicking anywhere outside the
// edited cell commits it (blur); escape discards it. Rejected values
// and edits of tasks deleted underneath the editor are reported in the
// status bar and fade after a delay.
//
// On terminals tall enough, a strip below the table previews the
// selected task's description as rendered Markdown, following the
// pending value while the description is being edited.
package taskui
