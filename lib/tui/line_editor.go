// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// LineEditor is a single-line text editor with cursor tracking. It is
// the input widget for inline cell edits, the fuzzy filter, and the
// text fields of the create form. The editor only holds text; the
// owner decides what a keystroke means for its own state.
type LineEditor struct {
	runes  []rune
	cursor int
}

// NewLineEditor returns an editor holding value with the cursor at the
// end.
func NewLineEditor(value string) LineEditor {
	runes := []rune(value)
	return LineEditor{runes: runes, cursor: len(runes)}
}

// Value returns the current text.
func (editor LineEditor) Value() string {
	return string(editor.runes)
}

// Cursor returns the cursor position in runes.
func (editor LineEditor) Cursor() int {
	return editor.cursor
}

// SetValue replaces the text and moves the cursor to the end.
func (editor *LineEditor) SetValue(value string) {
	editor.runes = []rune(value)
	editor.cursor = len(editor.runes)
}

// Update applies an editing key. Returns true if the text changed.
// Keys that are not editing keys (enter, escape, tab, up, down) are
// ignored and return false.
func (editor *LineEditor) Update(message tea.KeyMsg) bool {
	switch message.Type {
	case tea.KeyRunes, tea.KeySpace:
		runes := message.Runes
		if message.Type == tea.KeySpace && len(runes) == 0 {
			runes = []rune{' '}
		}
		for _, character := range runes {
			editor.insertRune(character)
		}
		return len(runes) > 0

	case tea.KeyBackspace:
		if editor.cursor == 0 {
			return false
		}
		editor.runes = append(editor.runes[:editor.cursor-1], editor.runes[editor.cursor:]...)
		editor.cursor--
		return true

	case tea.KeyDelete:
		if editor.cursor >= len(editor.runes) {
			return false
		}
		editor.runes = append(editor.runes[:editor.cursor], editor.runes[editor.cursor+1:]...)
		return true

	case tea.KeyCtrlU:
		if editor.cursor == 0 {
			return false
		}
		editor.runes = append([]rune{}, editor.runes[editor.cursor:]...)
		editor.cursor = 0
		return true

	case tea.KeyCtrlK:
		if editor.cursor >= len(editor.runes) {
			return false
		}
		editor.runes = editor.runes[:editor.cursor]
		return true

	case tea.KeyLeft:
		if editor.cursor > 0 {
			editor.cursor--
		}

	case tea.KeyRight:
		if editor.cursor < len(editor.runes) {
			editor.cursor++
		}

	case tea.KeyHome, tea.KeyCtrlA:
		editor.cursor = 0

	case tea.KeyEnd, tea.KeyCtrlE:
		editor.cursor = len(editor.runes)
	}
	return false
}

func (editor *LineEditor) insertRune(character rune) {
	updated := make([]rune, len(editor.runes)+1)
	copy(updated, editor.runes[:editor.cursor])
	updated[editor.cursor] = character
	copy(updated[editor.cursor+1:], editor.runes[editor.cursor:])
	editor.runes = updated
	editor.cursor++
}

// Render draws the text in width columns with a reverse-video cursor.
// When the text is wider than the field, the visible window scrolls so
// the cursor stays in view.
func (editor LineEditor) Render(width int, textStyle lipgloss.Style) string {
	if width <= 0 {
		return ""
	}
	cursorStyle := textStyle.Reverse(true)

	start := 0
	if editor.cursor >= width {
		start = editor.cursor - width + 1
	}
	end := min(len(editor.runes), start+width)

	before := string(editor.runes[start:editor.cursor])
	var rendered string
	if editor.cursor < end {
		rendered = textStyle.Render(before) +
			cursorStyle.Render(string(editor.runes[editor.cursor])) +
			textStyle.Render(string(editor.runes[editor.cursor+1:end]))
	} else {
		rendered = textStyle.Render(before) + cursorStyle.Render(" ")
	}
	return PadRight(ansi.Truncate(rendered, width, ""), width, textStyle)
}
