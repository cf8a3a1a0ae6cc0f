// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package task

import (
	"errors"
	"testing"
	"time"
)

func sampleTask() Task {
	deadline := NewDate(2024, time.December, 15)
	return Task{
		ID:          "t-1",
		Title:       "Finish the React homework",
		Description: "Write a todo list with a modal",
		Status:      StatusActive,
		Priority:    PriorityHigh,
		CreatedAt:   time.Date(2024, time.December, 10, 9, 0, 0, 0, time.UTC),
		Deadline:    &deadline,
	}
}

func TestFilterMatches(t *testing.T) {
	tests := []struct {
		filter Filter
		status Status
		want   bool
	}{
		{FilterAll, StatusActive, true},
		{FilterAll, StatusCompleted, true},
		{FilterAll, StatusCancelled, true},
		{FilterActive, StatusActive, true},
		{FilterActive, StatusCompleted, false},
		{FilterActive, StatusCancelled, false},
		{FilterCompleted, StatusActive, false},
		{FilterCompleted, StatusCompleted, true},
		{FilterCompleted, StatusCancelled, true},
	}
	for _, test := range tests {
		if got := test.filter.Matches(test.status); got != test.want {
			t.Errorf("%s.Matches(%s) = %v, want %v", test.filter, test.status, got, test.want)
		}
	}
}

func TestParseFilter(t *testing.T) {
	for input, want := range map[string]Filter{
		"":           FilterAll,
		"all":        FilterAll,
		" Active ":   FilterActive,
		"COMPLETED":  FilterCompleted,
		"completed ": FilterCompleted,
	} {
		got, err := ParseFilter(input)
		if err != nil {
			t.Errorf("ParseFilter(%q) error: %v", input, err)
			continue
		}
		if got != want {
			t.Errorf("ParseFilter(%q) = %s, want %s", input, got, want)
		}
	}
	if _, err := ParseFilter("cancelled"); err == nil {
		t.Error("ParseFilter(cancelled) should fail: cancelled is a status, not a filter")
	}
}

func TestFieldValue(t *testing.T) {
	item := sampleTask()
	tests := map[Field]string{
		FieldTitle:       "Finish the React homework",
		FieldDescription: "Write a todo list with a modal",
		FieldStatus:      "active",
		FieldPriority:    "high",
		FieldDeadline:    "2024-12-15",
	}
	for field, want := range tests {
		if got := item.FieldValue(field); got != want {
			t.Errorf("FieldValue(%s) = %q, want %q", field, got, want)
		}
	}

	item.Deadline = nil
	if got := item.FieldValue(FieldDeadline); got != "" {
		t.Errorf("FieldValue(deadline) with nil deadline = %q, want empty", got)
	}
}

func TestApplyTitle(t *testing.T) {
	item := sampleTask()
	if err := item.Apply(FieldTitle, "  Buy milk  "); err != nil {
		t.Fatalf("Apply(title): %v", err)
	}
	if item.Title != "  Buy milk  " {
		t.Errorf("title = %q, want the value as given", item.Title)
	}

	for _, empty := range []string{"", "   ", "\t\n"} {
		err := item.Apply(FieldTitle, empty)
		var validationError *ValidationError
		if !errors.As(err, &validationError) {
			t.Fatalf("Apply(title, %q) error = %v, want *ValidationError", empty, err)
		}
		if validationError.Field != FieldTitle {
			t.Errorf("validation field = %s, want title", validationError.Field)
		}
		if item.Title != "  Buy milk  " {
			t.Errorf("title changed to %q after rejected update", item.Title)
		}
	}
}

func TestApplyOnlyTouchesNamedField(t *testing.T) {
	original := sampleTask()
	item := original.Clone()
	if err := item.Apply(FieldPriority, "low"); err != nil {
		t.Fatalf("Apply(priority): %v", err)
	}
	if item.Priority != PriorityLow {
		t.Errorf("priority = %s, want low", item.Priority)
	}
	if item.Title != original.Title || item.Description != original.Description ||
		item.Status != original.Status || !item.CreatedAt.Equal(original.CreatedAt) ||
		item.ID != original.ID || item.Deadline.String() != original.Deadline.String() {
		t.Errorf("unrelated fields changed: %+v", item)
	}
}

func TestApplyEnumsAndDeadline(t *testing.T) {
	item := sampleTask()

	if err := item.Apply(FieldStatus, "Cancelled"); err != nil {
		t.Fatalf("Apply(status): %v", err)
	}
	if item.Status != StatusCancelled {
		t.Errorf("status = %s, want cancelled", item.Status)
	}
	if err := item.Apply(FieldStatus, "finished"); err == nil {
		t.Error("Apply(status, finished) should fail")
	}
	if item.Status != StatusCancelled {
		t.Errorf("status changed to %s after rejected update", item.Status)
	}

	if err := item.Apply(FieldPriority, "urgent"); err == nil {
		t.Error("Apply(priority, urgent) should fail")
	}

	if err := item.Apply(FieldDeadline, "2025-01-31"); err != nil {
		t.Fatalf("Apply(deadline): %v", err)
	}
	if item.Deadline == nil || item.Deadline.String() != "2025-01-31" {
		t.Errorf("deadline = %v, want 2025-01-31", item.Deadline)
	}
	if err := item.Apply(FieldDeadline, "2025-02-30"); err == nil {
		t.Error("Apply(deadline, 2025-02-30) should fail")
	}
	if err := item.Apply(FieldDeadline, "  "); err != nil {
		t.Fatalf("clearing deadline: %v", err)
	}
	if item.Deadline != nil {
		t.Errorf("deadline = %v after clearing, want nil", item.Deadline)
	}

	if err := item.Apply(Field("created_at"), "2024-01-01"); err == nil {
		t.Error("Apply(created_at) should fail: not an editable field")
	}
	if err := item.Apply(Field("id"), "t-9"); err == nil {
		t.Error("Apply(id) should fail: not an editable field")
	}
}

func TestCloneDoesNotAliasDeadline(t *testing.T) {
	original := sampleTask()
	clone := original.Clone()
	clone.Deadline.Day = 1
	if original.Deadline.Day != 15 {
		t.Errorf("mutating clone deadline changed original to %s", original.Deadline)
	}
}

func TestFieldsValidate(t *testing.T) {
	valid := Fields{Title: "Buy milk", Status: StatusActive, Priority: PriorityMedium}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid fields rejected: %v", err)
	}

	tests := map[string]struct {
		fields Fields
		field  Field
	}{
		"empty title":      {Fields{Title: "", Status: StatusActive, Priority: PriorityMedium}, FieldTitle},
		"blank title":      {Fields{Title: "   ", Status: StatusActive, Priority: PriorityMedium}, FieldTitle},
		"missing status":   {Fields{Title: "x", Priority: PriorityMedium}, FieldStatus},
		"unknown priority": {Fields{Title: "x", Status: StatusActive, Priority: "urgent"}, FieldPriority},
	}
	for name, test := range tests {
		err := test.fields.Validate()
		var validationError *ValidationError
		if !errors.As(err, &validationError) {
			t.Errorf("%s: error = %v, want *ValidationError", name, err)
			continue
		}
		if validationError.Field != test.field {
			t.Errorf("%s: field = %s, want %s", name, validationError.Field, test.field)
		}
	}
}

func TestParseField(t *testing.T) {
	for _, field := range EditableFields {
		got, err := ParseField(" " + string(field) + " ")
		if err != nil || got != field {
			t.Errorf("ParseField(%s) = %s, %v", field, got, err)
		}
	}
	for _, name := range []string{"id", "created_at", "createdAt", ""} {
		if _, err := ParseField(name); err == nil {
			t.Errorf("ParseField(%q) should fail", name)
		}
	}
}

func TestFieldOptions(t *testing.T) {
	status := FieldStatus.Options()
	if len(status) != 3 || status[0] != "active" {
		t.Errorf("status options = %v", status)
	}
	priority := FieldPriority.Options()
	if len(priority) != 3 || priority[0] != "high" || priority[2] != "low" {
		t.Errorf("priority options = %v", priority)
	}
	if FieldTitle.Options() != nil {
		t.Error("title should have no options")
	}
	if !FieldStatus.Enumerated() || FieldDeadline.Enumerated() {
		t.Error("Enumerated mismatch")
	}
}

func TestErrorMessages(t *testing.T) {
	validation := &ValidationError{Field: FieldTitle, Reason: "must not be empty"}
	if got := validation.Error(); got != "invalid title: must not be empty" {
		t.Errorf("ValidationError.Error() = %q", got)
	}
	notFound := &NotFoundError{ID: "t-7"}
	if got := notFound.Error(); got != "task t-7 not found" {
		t.Errorf("NotFoundError.Error() = %q", got)
	}
}

func TestStatsString(t *testing.T) {
	stats := Stats{Total: 1, Active: 1, Completed: 0}
	if got := stats.String(); got != "Total: 1 | Active: 1 | Completed: 0" {
		t.Errorf("String() = %q", got)
	}
}
