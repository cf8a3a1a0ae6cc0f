// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package taskstore

import (
	"fmt"
	"iter"
	"slices"

	"github.com/bureau-foundation/tasklist/lib/clock"
	"github.com/bureau-foundation/tasklist/lib/task"
)

// EventKind describes what happened to a task.
type EventKind string

const (
	// EventPut is sent after a task is created or updated.
	EventPut EventKind = "put"
	// EventRemove is sent after a task is deleted.
	EventRemove EventKind = "remove"
)

// Event describes a single change to the store, delivered on channels
// returned by [Store.Subscribe].
type Event struct {
	Kind EventKind
	Task task.Task
}

// subscriberBuffer is the channel capacity for each subscriber. Events
// beyond this are dropped; the subscriber re-reads the store instead.
const subscriberBuffer = 64

// Snapshot is a point-in-time copy of a filtered view with aggregate
// statistics over the whole collection.
type Snapshot struct {
	Filter task.Filter `json:"filter"`
	Tasks  []task.Task `json:"tasks"`
	Stats  task.Stats  `json:"stats"`
}

// Store is the in-memory task collection.
type Store struct {
	clock       clock.Clock
	tasks       map[task.ID]task.Task
	order       []task.ID
	nextID      uint64
	subscribers []chan Event
}

// New creates an empty store that stamps creation times from clock.
func New(clock clock.Clock) *Store {
	return &Store{
		clock: clock,
		tasks: make(map[task.ID]task.Task),
	}
}

// Len returns the number of tasks in the store.
func (store *Store) Len() int {
	return len(store.order)
}

// Create validates fields, assigns a fresh ID and creation time, and
// appends the task. Returns a *task.ValidationError if the title is
// blank or the status or priority is unknown; the store is unchanged
// in that case.
func (store *Store) Create(fields task.Fields) (task.Task, error) {
	if err := fields.Validate(); err != nil {
		return task.Task{}, err
	}

	store.nextID++
	created := task.Task{
		ID:          task.ID(fmt.Sprintf("t-%d", store.nextID)),
		Title:       fields.Title,
		Description: fields.Description,
		Status:      fields.Status,
		Priority:    fields.Priority,
		CreatedAt:   store.clock.Now().UTC(),
		Deadline:    fields.Deadline,
	}
	created = created.Clone()

	store.tasks[created.ID] = created
	store.order = append(store.order, created.ID)
	store.dispatch(Event{Kind: EventPut, Task: created.Clone()})
	return created.Clone(), nil
}

// Delete removes the task if present. Deleting an absent ID is a no-op,
// so calling Delete twice is the same as calling it once.
func (store *Store) Delete(id task.ID) {
	removed, exists := store.tasks[id]
	if !exists {
		return
	}
	delete(store.tasks, id)
	if position := slices.Index(store.order, id); position >= 0 {
		store.order = slices.Delete(store.order, position, position+1)
	}
	store.dispatch(Event{Kind: EventRemove, Task: removed})
}

// Get returns a copy of the task with the given ID.
func (store *Store) Get(id task.ID) (task.Task, bool) {
	stored, exists := store.tasks[id]
	if !exists {
		return task.Task{}, false
	}
	return stored.Clone(), true
}

// UpdateField replaces exactly one field of a task with the parsed
// canonical value. Returns *task.NotFoundError if the ID is absent and
// *task.ValidationError if the value is not acceptable for the field
// (a blank title, an unknown enum value, a malformed date). The ID and
// creation time cannot be targeted.
func (store *Store) UpdateField(id task.ID, field task.Field, value string) (task.Task, error) {
	stored, exists := store.tasks[id]
	if !exists {
		return task.Task{}, &task.NotFoundError{ID: id}
	}

	updated := stored.Clone()
	if err := updated.Apply(field, value); err != nil {
		return task.Task{}, err
	}

	store.tasks[id] = updated
	store.dispatch(Event{Kind: EventPut, Task: updated.Clone()})
	return updated.Clone(), nil
}

// List returns the tasks matching filter in insertion order. The
// sequence is lazy and restartable: each range over it walks the
// collection as it is at that moment, and tasks deleted mid-iteration
// are skipped. Ranging never mutates the store.
func (store *Store) List(filter task.Filter) iter.Seq[task.Task] {
	return func(yield func(task.Task) bool) {
		order := slices.Clone(store.order)
		for _, id := range order {
			stored, exists := store.tasks[id]
			if !exists || !filter.Matches(stored.Status) {
				continue
			}
			if !yield(stored.Clone()) {
				return
			}
		}
	}
}

// Stats counts the current collection. Completed includes cancelled
// tasks. Counts are computed on every call.
func (store *Store) Stats() task.Stats {
	stats := task.Stats{Total: len(store.order)}
	for _, id := range store.order {
		if store.tasks[id].Status == task.StatusActive {
			stats.Active++
		} else {
			stats.Completed++
		}
	}
	return stats
}

// Snapshot collects the filtered list and global statistics.
func (store *Store) Snapshot(filter task.Filter) Snapshot {
	return Snapshot{
		Filter: filter,
		Tasks:  slices.Collect(store.List(filter)),
		Stats:  store.Stats(),
	}
}

// Subscribe returns a channel that receives an Event after every
// mutation.
func (store *Store) Subscribe() <-chan Event {
	channel := make(chan Event, subscriberBuffer)
	store.subscribers = append(store.subscribers, channel)
	return channel
}

func (store *Store) dispatch(event Event) {
	for _, subscriber := range store.subscribers {
		select {
		case subscriber <- event:
		default:
		}
	}
}
