// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package taskstore holds the authoritative in-memory task collection
// for one editing session.
//
// The store maps task IDs to records and preserves insertion order for
// display. It is mutated only through [Store.Create], [Store.Delete],
// and [Store.UpdateField]; everything else reads. Nothing is persisted:
// the collection lives and dies with the process.
//
// # IDs
//
// IDs come from a per-store counter and are never reused, even after
// the task holding one is deleted.
//
// # Concurrency
//
// Store is not safe for concurrent use. The owner serializes access;
// the terminal view does this by calling the store only from its
// bubbletea Update loop, which processes one event at a time.
// Subscribers receive change events on buffered channels with
// non-blocking dispatch, so a slow reader never stalls a mutation.
package taskstore
