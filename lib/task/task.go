// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package task

import (
	"fmt"
	"strings"
	"time"
)

// ID is an opaque task identifier assigned by the store. Views must
// treat it as a comparable token and never parse it.
type ID string

// String returns the identifier text.
func (id ID) String() string { return string(id) }

// Status is the lifecycle state of a task.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Statuses lists every status in display order.
var Statuses = []Status{StatusActive, StatusCompleted, StatusCancelled}

// Valid reports whether the status is one of the known values.
func (status Status) Valid() bool {
	switch status {
	case StatusActive, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// Done reports whether the status counts as finished for filtering and
// statistics. Cancelled tasks are done: they no longer need work.
func (status Status) Done() bool {
	return status == StatusCompleted || status == StatusCancelled
}

// Label returns the human-readable status name.
func (status Status) Label() string {
	switch status {
	case StatusActive:
		return "Active"
	case StatusCompleted:
		return "Completed"
	case StatusCancelled:
		return "Cancelled"
	default:
		return string(status)
	}
}

// ParseStatus parses the canonical status text. Matching ignores case
// and surrounding whitespace.
func ParseStatus(value string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(value)))
	if !status.Valid() {
		return "", &ValidationError{Field: FieldStatus, Value: value,
			Reason: "must be one of active, completed, cancelled"}
	}
	return status, nil
}

// Priority ranks how urgent a task is.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists every priority from most to least urgent.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// Valid reports whether the priority is one of the known values.
func (priority Priority) Valid() bool {
	switch priority {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// Label returns the human-readable priority name.
func (priority Priority) Label() string {
	switch priority {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	default:
		return string(priority)
	}
}

// ParsePriority parses the canonical priority text. Matching ignores
// case and surrounding whitespace.
func ParsePriority(value string) (Priority, error) {
	priority := Priority(strings.ToLower(strings.TrimSpace(value)))
	if !priority.Valid() {
		return "", &ValidationError{Field: FieldPriority, Value: value,
			Reason: "must be one of low, medium, high"}
	}
	return priority, nil
}

// Task is a single to-do record. Values returned by the store are
// copies; mutating one does not affect the stored task.
type Task struct {
	ID          ID        `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	Priority    Priority  `json:"priority"`
	CreatedAt   time.Time `json:"created_at"`

	// Deadline is a calendar date with no time component. Nil means
	// the task has no deadline.
	Deadline *Date `json:"deadline,omitempty"`
}

// Fields holds the caller-supplied values for a new task. The store
// assigns ID and CreatedAt.
type Fields struct {
	Title       string
	Description string
	Status      Status
	Priority    Priority
	Deadline    *Date
}

// Validate checks the values the store requires at creation time:
// a non-empty title and known status and priority values.
func (fields Fields) Validate() error {
	if strings.TrimSpace(fields.Title) == "" {
		return &ValidationError{Field: FieldTitle, Value: fields.Title, Reason: "must not be empty"}
	}
	if !fields.Status.Valid() {
		return &ValidationError{Field: FieldStatus, Value: string(fields.Status),
			Reason: "must be one of active, completed, cancelled"}
	}
	if !fields.Priority.Valid() {
		return &ValidationError{Field: FieldPriority, Value: string(fields.Priority),
			Reason: "must be one of low, medium, high"}
	}
	return nil
}

// Clone returns a copy that shares no pointers with t.
func (t Task) Clone() Task {
	if t.Deadline != nil {
		deadline := *t.Deadline
		t.Deadline = &deadline
	}
	return t
}

// FieldValue returns the canonical text of an editable field. A nil
// deadline yields the empty string.
func (t Task) FieldValue(field Field) string {
	switch field {
	case FieldTitle:
		return t.Title
	case FieldDescription:
		return t.Description
	case FieldStatus:
		return string(t.Status)
	case FieldPriority:
		return string(t.Priority)
	case FieldDeadline:
		if t.Deadline == nil {
			return ""
		}
		return t.Deadline.String()
	default:
		return ""
	}
}

// Apply parses value as the canonical text of field and replaces that
// field. On error t is unchanged. Only the named field is touched.
func (t *Task) Apply(field Field, value string) error {
	switch field {
	case FieldTitle:
		if strings.TrimSpace(value) == "" {
			return &ValidationError{Field: FieldTitle, Value: value, Reason: "must not be empty"}
		}
		t.Title = value
	case FieldDescription:
		t.Description = value
	case FieldStatus:
		status, err := ParseStatus(value)
		if err != nil {
			return err
		}
		t.Status = status
	case FieldPriority:
		priority, err := ParsePriority(value)
		if err != nil {
			return err
		}
		t.Priority = priority
	case FieldDeadline:
		if strings.TrimSpace(value) == "" {
			t.Deadline = nil
			return nil
		}
		date, err := ParseDate(value)
		if err != nil {
			return err
		}
		t.Deadline = &date
	default:
		return &ValidationError{Field: field, Value: value, Reason: "not an editable field"}
	}
	return nil
}

// ValidateValue reports whether value would be accepted by Apply for
// field, without needing a task to apply it to.
func ValidateValue(field Field, value string) error {
	var scratch Task
	return scratch.Apply(field, value)
}

// Field names an editable task field.
type Field string

const (
	FieldTitle       Field = "title"
	FieldDescription Field = "description"
	FieldStatus      Field = "status"
	FieldPriority    Field = "priority"
	FieldDeadline    Field = "deadline"
)

// EditableFields lists the editable fields in column order.
var EditableFields = []Field{FieldTitle, FieldDescription, FieldStatus, FieldPriority, FieldDeadline}

// Editable reports whether field can be the target of an update. The
// ID and creation time are never editable.
func (field Field) Editable() bool {
	switch field {
	case FieldTitle, FieldDescription, FieldStatus, FieldPriority, FieldDeadline:
		return true
	default:
		return false
	}
}

// Enumerated reports whether the field takes one of a fixed set of
// values (and so is edited with a dropdown rather than free text).
func (field Field) Enumerated() bool {
	return field == FieldStatus || field == FieldPriority
}

// Options returns the canonical values for an enumerated field, or nil
// for free-text fields.
func (field Field) Options() []string {
	switch field {
	case FieldStatus:
		options := make([]string, len(Statuses))
		for index, status := range Statuses {
			options[index] = string(status)
		}
		return options
	case FieldPriority:
		options := make([]string, len(Priorities))
		for index, priority := range Priorities {
			options[index] = string(priority)
		}
		return options
	default:
		return nil
	}
}

// ParseField parses an editable field name.
func ParseField(value string) (Field, error) {
	field := Field(strings.ToLower(strings.TrimSpace(value)))
	if !field.Editable() {
		return "", fmt.Errorf("unknown field %q (editable fields: title, description, status, priority, deadline)", value)
	}
	return field, nil
}

// Filter selects which tasks a list view shows.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// Filters lists every filter in tab order.
var Filters = []Filter{FilterAll, FilterActive, FilterCompleted}

// Matches reports whether a task with the given status passes the
// filter. Completed matches both completed and cancelled tasks.
func (filter Filter) Matches(status Status) bool {
	switch filter {
	case FilterActive:
		return status == StatusActive
	case FilterCompleted:
		return status.Done()
	default:
		return true
	}
}

// Label returns the tab title for the filter.
func (filter Filter) Label() string {
	switch filter {
	case FilterActive:
		return "Active"
	case FilterCompleted:
		return "Completed"
	default:
		return "All"
	}
}

// ParseFilter parses a filter name. The empty string means all.
func ParseFilter(value string) (Filter, error) {
	switch filter := Filter(strings.ToLower(strings.TrimSpace(value))); filter {
	case "":
		return FilterAll, nil
	case FilterAll, FilterActive, FilterCompleted:
		return filter, nil
	default:
		return "", fmt.Errorf("unknown filter %q (expected all, active, or completed)", value)
	}
}

// Stats holds counts derived from the current collection.
type Stats struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
}

// String renders the counts as shown in the stats bar:
// "Total: N | Active: N | Completed: N".
func (stats Stats) String() string {
	return fmt.Sprintf("Total: %d | Active: %d | Completed: %d", stats.Total, stats.Active, stats.Completed)
}
