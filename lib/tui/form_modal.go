// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// FormField is one row of a [FormModal]. Text fields are edited with
// the modal's LineEditor when focused; choice fields cycle through
// Choices with left/right.
type FormField struct {
	Label   string
	Value   string
	Choices []string
	Hint    string
}

// IsChoice reports whether the field cycles through fixed values.
func (field FormField) IsChoice() bool {
	return len(field.Choices) > 0
}

// Cycle returns the choice delta steps away from the current value,
// wrapping in both directions. A value not among the choices starts
// from the first choice.
func (field FormField) Cycle(delta int) string {
	if len(field.Choices) == 0 {
		return field.Value
	}
	current := 0
	for index, choice := range field.Choices {
		if choice == field.Value {
			current = index
			break
		}
	}
	next := (current + delta) % len(field.Choices)
	if next < 0 {
		next += len(field.Choices)
	}
	return field.Choices[next]
}

// FormModal is a centered modal dialog listing labelled fields with one
// focused at a time. It renders only; the owner routes keys, keeps the
// field values, and sets Message to report a failed submission.
type FormModal struct {
	Title   string
	Fields  []FormField
	Focus   int
	Editor  LineEditor
	Message string
	Footer  string
}

// Form modal layout: 2 columns border + 2 columns padding.
const (
	formModalChromeWidth = 4
	formModalMinWidth    = 44
	formModalMaxWidth    = 72
	formLabelWidth       = 13
)

// FocusNext moves focus to the next field, wrapping.
func (modal *FormModal) FocusNext() {
	modal.Focus = (modal.Focus + 1) % len(modal.Fields)
}

// FocusPrevious moves focus to the previous field, wrapping.
func (modal *FormModal) FocusPrevious() {
	modal.Focus = (modal.Focus - 1 + len(modal.Fields)) % len(modal.Fields)
}

// Render produces the modal lines for splicing onto the view, along
// with the anchor position that centers it on a screen of the given
// size.
func (modal FormModal) Render(theme Theme, screenWidth, screenHeight int) ([]string, int, int) {
	modalWidth := min(max(screenWidth-8, formModalMinWidth), formModalMaxWidth, screenWidth)
	innerWidth := max(modalWidth-formModalChromeWidth, 1)
	valueWidth := max(innerWidth-formLabelWidth, 1)

	backgroundStyle := lipgloss.NewStyle().
		Background(theme.OverlayBackground)
	titleStyle := backgroundStyle.
		Bold(true).
		Foreground(theme.HeaderForeground)
	labelStyle := backgroundStyle.
		Foreground(theme.FaintText)
	focusedLabelStyle := backgroundStyle.
		Foreground(theme.AccentColor).
		Bold(true)
	valueStyle := backgroundStyle.
		Foreground(theme.OverlayForeground)
	editStyle := lipgloss.NewStyle().
		Background(theme.EditBackground).
		Foreground(theme.EditForeground)
	hintStyle := backgroundStyle.
		Foreground(theme.HelpText)
	errorStyle := backgroundStyle.
		Foreground(theme.ErrorForeground)

	var rows []string
	rows = append(rows, PadRight(titleStyle.Render(modal.Title), innerWidth, backgroundStyle))
	rows = append(rows, PadRight("", innerWidth, backgroundStyle))

	for index, field := range modal.Fields {
		focused := index == modal.Focus
		label := labelStyle.Render(FitCell(field.Label, formLabelWidth))
		if focused {
			label = focusedLabelStyle.Render(FitCell(field.Label, formLabelWidth))
		}

		var value string
		switch {
		case focused && field.IsChoice():
			value = editStyle.Render(FitCell("‹ "+field.Value+" ›", valueWidth))
		case focused:
			value = modal.Editor.Render(valueWidth, editStyle)
		case field.Value == "" && field.Hint != "":
			value = hintStyle.Render(FitCell(field.Hint, valueWidth))
		default:
			value = valueStyle.Render(FitCell(field.Value, valueWidth))
		}
		rows = append(rows, PadRight(label+value, innerWidth, backgroundStyle))
	}

	rows = append(rows, PadRight("", innerWidth, backgroundStyle))
	if modal.Message != "" {
		message := ansi.Truncate(modal.Message, innerWidth, "…")
		rows = append(rows, PadRight(errorStyle.Render(message), innerWidth, backgroundStyle))
	}
	footer := ansi.Truncate(modal.Footer, innerWidth, "…")
	rows = append(rows, PadRight(hintStyle.Render(footer), innerWidth, backgroundStyle))

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.BorderColor).
		BorderBackground(theme.OverlayBackground).
		Background(theme.OverlayBackground).
		Padding(0, 1)

	rendered := borderStyle.Render(strings.Join(rows, "\n"))
	lines := strings.Split(rendered, "\n")

	renderedWidth := 0
	if len(lines) > 0 {
		renderedWidth = ansi.StringWidth(lines[0])
	}
	anchorX := max((screenWidth-renderedWidth)/2, 0)
	anchorY := max((screenHeight-len(lines))/2, 0)
	return lines, anchorX, anchorY
}
