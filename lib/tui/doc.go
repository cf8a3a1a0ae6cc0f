// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides the terminal user interface building blocks for
// the task list viewer. Built on bubbletea (Elm architecture), these
// components handle dropdown overlays, single-line text editing, the
// create form modal, fuzzy filtering, change highlighting, and
// ANSI-aware overlay splicing.
//
// Components here hold no task state of their own beyond what they
// display. The viewer in lib/taskui owns the store, the edit session
// and the draft, and feeds these components the values to render.
package tui
