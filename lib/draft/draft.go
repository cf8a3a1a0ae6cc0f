// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package draft buffers the fields of a task that has not been created
// yet. The create form writes raw text into a [Draft] as the user types
// and calls [Draft.Submit] when they confirm; nothing reaches the store
// until then.
package draft

import (
	"fmt"

	"github.com/bureau-foundation/tasklist/lib/task"
)

// Creator is the subset of the task store Submit needs.
// *taskstore.Store satisfies it.
type Creator interface {
	Create(fields task.Fields) (task.Task, error)
}

// Default values for a fresh draft.
const (
	DefaultStatus   = task.StatusActive
	DefaultPriority = task.PriorityMedium
)

// Draft is the mutable buffer behind the create form. Values are held
// as the canonical text of each field and are parsed only on Submit.
type Draft struct {
	values map[task.Field]string
}

// New returns a draft holding the defaults: empty title, description
// and deadline, active status, medium priority.
func New() *Draft {
	draft := &Draft{}
	draft.reset()
	return draft
}

func (draft *Draft) reset() {
	draft.values = map[task.Field]string{
		task.FieldTitle:       "",
		task.FieldDescription: "",
		task.FieldStatus:      string(DefaultStatus),
		task.FieldPriority:    string(DefaultPriority),
		task.FieldDeadline:    "",
	}
}

// SetField replaces the buffered text for field. No validation happens
// here. Fields that are not editable are ignored.
func (draft *Draft) SetField(field task.Field, value string) {
	if !field.Editable() {
		return
	}
	draft.values[field] = value
}

// Value returns the buffered text for field.
func (draft *Draft) Value(field task.Field) string {
	return draft.values[field]
}

// Fields parses the buffer into creation fields. Returns a
// *task.ValidationError for an unknown status or priority or a
// malformed deadline. The title is passed through untrimmed; the store
// performs the authoritative title check.
func (draft *Draft) Fields() (task.Fields, error) {
	status, err := task.ParseStatus(draft.values[task.FieldStatus])
	if err != nil {
		return task.Fields{}, err
	}
	priority, err := task.ParsePriority(draft.values[task.FieldPriority])
	if err != nil {
		return task.Fields{}, err
	}

	fields := task.Fields{
		Title:       draft.values[task.FieldTitle],
		Description: draft.values[task.FieldDescription],
		Status:      status,
		Priority:    priority,
	}
	var scratch task.Task
	if err := scratch.Apply(task.FieldDeadline, draft.values[task.FieldDeadline]); err != nil {
		return task.Fields{}, err
	}
	fields.Deadline = scratch.Deadline
	return fields, nil
}

// Submit creates a task from the buffer. On success the draft resets
// to defaults. On failure the buffer is left as it was so the user can
// fix the offending field; the error is the *task.ValidationError from
// parsing or from the store.
func (draft *Draft) Submit(store Creator) (task.Task, error) {
	fields, err := draft.Fields()
	if err != nil {
		return task.Task{}, err
	}
	created, err := store.Create(fields)
	if err != nil {
		return task.Task{}, fmt.Errorf("creating task: %w", err)
	}
	draft.reset()
	return created, nil
}

// Discard resets the draft to defaults without creating anything.
func (draft *Draft) Discard() {
	draft.reset()
}
