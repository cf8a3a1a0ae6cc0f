// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package taskui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/tasklist/lib/task"
	"github.com/bureau-foundation/tasklist/lib/tui"
)

// Screen layout, top to bottom: tab bar with statistics, search line,
// column headers, separator, table rows, status bar.
const (
	headerY       = 0
	searchY       = 1
	columnHeaderY = 2
	separatorY    = 3
	tableStartY   = 4

	// chromeHeight is every screen line that is not a table row.
	chromeHeight = tableStartY + 1

	tableMargin = 1 // blank column left of the table
	columnGap   = 1
)

// fieldCreated identifies the Created column. It is never editable;
// selecting it for editing blurs the active edit instead.
const fieldCreated task.Field = "created_at"

// Column is one table column with its screen position.
type Column struct {
	Title string
	Field task.Field
	X     int
	Width int
}

// Contains reports whether screen column x falls inside the column.
func (column Column) Contains(x int) bool {
	return x >= column.X && x < column.X+column.Width
}

// layoutColumns sizes the six table columns for the screen width. The
// status, priority and date columns have fixed widths; title and
// description share the remainder two to three.
func layoutColumns(width int, dateLayout string) []Column {
	dateWidth := max(ansi.StringWidth(time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC).Format(dateLayout)), len("Deadline"))
	statusWidth := len("Completed")
	priorityWidth := len("Priority")

	fixed := statusWidth + priorityWidth + 2*dateWidth
	// Margin, five gaps, scrollbar.
	available := width - tableMargin - 5*columnGap - 1 - fixed
	titleWidth := max(available*2/5, 6)
	descriptionWidth := max(available-titleWidth, 6)

	columns := []Column{
		{Title: "Title", Field: task.FieldTitle, Width: titleWidth},
		{Title: "Description", Field: task.FieldDescription, Width: descriptionWidth},
		{Title: "Status", Field: task.FieldStatus, Width: statusWidth},
		{Title: "Priority", Field: task.FieldPriority, Width: priorityWidth},
		{Title: "Created", Field: fieldCreated, Width: dateWidth},
		{Title: "Deadline", Field: task.FieldDeadline, Width: dateWidth},
	}
	x := tableMargin
	for index := range columns {
		columns[index].X = x
		x += columns[index].Width + columnGap
	}
	return columns
}

// cellText returns the plain display text of a cell.
func (model Model) cellText(item task.Task, field task.Field) string {
	switch field {
	case task.FieldStatus:
		return item.Status.Label()
	case task.FieldPriority:
		return item.Priority.Label()
	case fieldCreated:
		return item.CreatedAt.In(model.location).Format(model.dateLayout)
	case task.FieldDeadline:
		if item.Deadline == nil {
			return "—"
		}
		return item.Deadline.Format(model.dateLayout)
	default:
		return item.FieldValue(field)
	}
}

// renderColumnHeaders renders the column title row and the separator.
func (model Model) renderColumnHeaders() (string, string) {
	headerStyle := lipgloss.NewStyle().
		Foreground(model.theme.HeaderForeground).
		Bold(true)
	activeHeaderStyle := headerStyle.
		Foreground(model.theme.AccentColor)
	separatorStyle := lipgloss.NewStyle().
		Foreground(model.theme.BorderColor)

	var header strings.Builder
	header.WriteString(strings.Repeat(" ", tableMargin))
	for index, column := range model.columns {
		style := headerStyle
		if index == model.column {
			style = activeHeaderStyle
		}
		header.WriteString(style.Render(tui.FitCell(column.Title, column.Width)))
		header.WriteString(strings.Repeat(" ", columnGap))
	}
	separator := separatorStyle.Render(strings.Repeat("─", max(model.width, 0)))
	return header.String(), separator
}

// renderRow renders one table row. The selected row gets the selection
// background, the cursor cell an underline, and the cell under edit
// the editor (text fields) or the pending value (dropdown fields).
func (model Model) renderRow(rowIndex int) string {
	row := model.rows[rowIndex]
	item := row.Task
	selected := rowIndex == model.cursor
	now := model.clock.Now()

	baseStyle := lipgloss.NewStyle().
		Foreground(model.theme.NormalText)
	if selected {
		baseStyle = baseStyle.
			Background(model.theme.SelectedBackground).
			Foreground(model.theme.SelectedForeground)
	} else if background, hot := model.heat.Background(model.theme, string(item.ID), now); hot {
		baseStyle = baseStyle.Background(background)
	}
	editStyle := lipgloss.NewStyle().
		Background(model.theme.EditBackground).
		Foreground(model.theme.EditForeground)

	editing, isEditing := model.session.Active()

	var line strings.Builder
	line.WriteString(baseStyle.Render(strings.Repeat(" ", tableMargin)))
	for columnIndex, column := range model.columns {
		if isEditing && editing.Target.ID == item.ID && editing.Target.Field == column.Field {
			if column.Field.Enumerated() {
				line.WriteString(editStyle.Render(tui.FitCell(labelFor(column.Field, editing.Pending)+" ▾", column.Width)))
			} else {
				line.WriteString(model.editor.Render(column.Width, editStyle))
			}
			line.WriteString(baseStyle.Render(strings.Repeat(" ", columnGap)))
			continue
		}

		cellStyle := baseStyle
		switch column.Field {
		case task.FieldStatus:
			cellStyle = cellStyle.Foreground(model.theme.StatusColor(item.Status))
		case task.FieldPriority:
			cellStyle = cellStyle.Foreground(model.theme.PriorityColor(item.Priority))
		case fieldCreated, task.FieldDescription:
			if !selected {
				cellStyle = cellStyle.Foreground(model.theme.FaintText)
			}
		case task.FieldDeadline:
			if item.Deadline == nil && !selected {
				cellStyle = cellStyle.Foreground(model.theme.FaintText)
			}
		}
		if selected && columnIndex == model.column {
			cellStyle = cellStyle.Underline(true)
		}

		text := tui.FitCell(model.cellText(item, column.Field), column.Width)
		if column.Field == task.FieldTitle && len(row.TitlePositions) > 0 {
			line.WriteString(model.highlightPositions(text, row.TitlePositions, cellStyle))
		} else {
			line.WriteString(cellStyle.Render(text))
		}
		line.WriteString(baseStyle.Render(strings.Repeat(" ", columnGap)))
	}
	return line.String()
}

// highlightPositions renders text with the runes at positions drawn on
// the search highlight background.
func (model Model) highlightPositions(text string, positions []int, style lipgloss.Style) string {
	highlightStyle := style.
		Background(model.theme.SearchHighlightBackground).
		Bold(true)
	matched := make(map[int]bool, len(positions))
	for _, position := range positions {
		matched[position] = true
	}

	var result strings.Builder
	var run []rune
	runHighlighted := false
	flush := func() {
		if len(run) == 0 {
			return
		}
		if runHighlighted {
			result.WriteString(highlightStyle.Render(string(run)))
		} else {
			result.WriteString(style.Render(string(run)))
		}
		run = run[:0]
	}
	for index, character := range []rune(text) {
		if matched[index] != runHighlighted {
			flush()
			runHighlighted = matched[index]
		}
		run = append(run, character)
	}
	flush()
	return result.String()
}

// labelFor renders a canonical enum value with its display label.
func labelFor(field task.Field, value string) string {
	switch field {
	case task.FieldStatus:
		if status, err := task.ParseStatus(value); err == nil {
			return status.Label()
		}
	case task.FieldPriority:
		if priority, err := task.ParsePriority(value); err == nil {
			return priority.Label()
		}
	}
	return value
}

// dropdownOptions builds the dropdown choices for an enumerated field.
func dropdownOptions(field task.Field) []tui.DropdownOption {
	values := field.Options()
	options := make([]tui.DropdownOption, len(values))
	for index, value := range values {
		options[index] = tui.DropdownOption{Label: labelFor(field, value), Value: value}
	}
	return options
}
