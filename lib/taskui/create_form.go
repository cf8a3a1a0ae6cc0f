// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package taskui

import (
	"github.com/bureau-foundation/tasklist/lib/task"
	"github.com/bureau-foundation/tasklist/lib/tui"
)

// formFields lists the create form rows in display order.
var formFields = []task.Field{
	task.FieldTitle,
	task.FieldDescription,
	task.FieldStatus,
	task.FieldPriority,
	task.FieldDeadline,
}

var formLabels = map[task.Field]string{
	task.FieldTitle:       "Title",
	task.FieldDescription: "Description",
	task.FieldStatus:      "Status",
	task.FieldPriority:    "Priority",
	task.FieldDeadline:    "Deadline",
}

// openCreateForm shows the create modal over the table. The draft keeps
// whatever it held; it is reset by submit or discard, never by opening.
func (model *Model) openCreateForm() {
	model.form = tui.FormModal{
		Title:  "New task",
		Footer: "Tab next  ←/→ choose  Ctrl+S save  Esc discard",
	}
	model.syncFormFromDraft()
	model.form.Editor = tui.NewLineEditor(model.draft.Value(formFields[0]))
	model.focus = FocusCreateForm
}

// syncFormFromDraft copies the draft buffer into the modal rows.
func (model *Model) syncFormFromDraft() {
	fields := make([]tui.FormField, len(formFields))
	for index, field := range formFields {
		fields[index] = tui.FormField{
			Label:   formLabels[field],
			Value:   model.draft.Value(field),
			Choices: field.Options(),
		}
		if field == task.FieldDeadline {
			fields[index].Hint = "YYYY-MM-DD (optional)"
		}
	}
	model.form.Fields = fields
}

// focusedFormField returns the task field under the form cursor.
func (model *Model) focusedFormField() task.Field {
	return formFields[model.form.Focus]
}

// moveFormFocus moves the form cursor and loads the editor with the
// newly focused field's text.
func (model *Model) moveFormFocus(delta int) {
	if delta > 0 {
		model.form.FocusNext()
	} else {
		model.form.FocusPrevious()
	}
	model.form.Editor = tui.NewLineEditor(model.draft.Value(model.focusedFormField()))
}

// cycleFormChoice steps an enumerated form field through its options.
func (model *Model) cycleFormChoice(delta int) {
	field := model.focusedFormField()
	next := model.form.Fields[model.form.Focus].Cycle(delta)
	model.draft.SetField(field, next)
	model.syncFormFromDraft()
}

// closeCreateForm hides the modal and returns focus to the table.
func (model *Model) closeCreateForm() {
	model.form = tui.FormModal{}
	model.focus = FocusTable
}
