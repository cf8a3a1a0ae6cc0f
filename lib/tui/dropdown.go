// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// DropdownOption is a single selectable item in a dropdown overlay.
type DropdownOption struct {
	Label string // Display text shown in the dropdown.
	Value string // Canonical value handed to the edit session on selection.
}

// DropdownOverlay renders a floating menu anchored below a table cell.
// It captures keyboard input while open (up/down to navigate, enter to
// select, escape to dismiss). The viewer owns the instance and routes
// input to it.
type DropdownOverlay struct {
	Options []DropdownOption
	Cursor  int
	AnchorX int // Screen X coordinate of the dropdown's top-left corner.
	AnchorY int // Screen Y coordinate of the dropdown's top-left corner.
}

// NewDropdown builds a dropdown whose cursor starts on the option
// whose value equals current, or on the first option if none does.
func NewDropdown(options []DropdownOption, current string, anchorX, anchorY int) *DropdownOverlay {
	dropdown := &DropdownOverlay{
		Options: options,
		AnchorX: anchorX,
		AnchorY: anchorY,
	}
	for index, option := range options {
		if option.Value == current {
			dropdown.Cursor = index
			break
		}
	}
	return dropdown
}

// MoveUp moves the cursor up by one, wrapping to the bottom.
func (dropdown *DropdownOverlay) MoveUp() {
	dropdown.Cursor--
	if dropdown.Cursor < 0 {
		dropdown.Cursor = len(dropdown.Options) - 1
	}
}

// MoveDown moves the cursor down by one, wrapping to the top.
func (dropdown *DropdownOverlay) MoveDown() {
	dropdown.Cursor++
	if dropdown.Cursor >= len(dropdown.Options) {
		dropdown.Cursor = 0
	}
}

// Selected returns the currently highlighted option.
func (dropdown *DropdownOverlay) Selected() DropdownOption {
	return dropdown.Options[dropdown.Cursor]
}

// Width returns the visible width of the rendered dropdown in columns,
// as used by Render and by mouse hit-testing.
func (dropdown *DropdownOverlay) Width() int {
	maxLabelWidth := 0
	for _, option := range dropdown.Options {
		maxLabelWidth = max(maxLabelWidth, ansi.StringWidth(option.Label))
	}
	// " > LABEL " : padding, marker, space, label, padding.
	return 3 + maxLabelWidth + 1
}

// Contains reports whether the screen coordinate (x, y) falls within
// the dropdown's bounding rectangle.
func (dropdown *DropdownOverlay) Contains(x, y int) bool {
	if y < dropdown.AnchorY || y >= dropdown.AnchorY+len(dropdown.Options) {
		return false
	}
	return x >= dropdown.AnchorX && x < dropdown.AnchorX+dropdown.Width()
}

// OptionAtY returns the option index for the given screen Y coordinate,
// or -1 if it is outside the dropdown's vertical range.
func (dropdown *DropdownOverlay) OptionAtY(y int) int {
	index := y - dropdown.AnchorY
	if index < 0 || index >= len(dropdown.Options) {
		return -1
	}
	return index
}

// Render produces the dropdown lines for overlay splicing. Every line
// has the same visible width and a solid background; the highlighted
// option uses the selection colors.
func (dropdown *DropdownOverlay) Render(theme Theme) []string {
	totalWidth := dropdown.Width()

	backgroundStyle := lipgloss.NewStyle().
		Foreground(theme.OverlayForeground).
		Background(theme.OverlayBackground)
	selectedStyle := lipgloss.NewStyle().
		Background(theme.SelectedBackground).
		Foreground(theme.SelectedForeground).
		Bold(true)

	lines := make([]string, 0, len(dropdown.Options))
	for index, option := range dropdown.Options {
		style := backgroundStyle
		marker := " "
		if index == dropdown.Cursor {
			style = selectedStyle
			marker = ">"
		}
		content := " " + marker + " " + option.Label
		padding := totalWidth - ansi.StringWidth(content)
		if padding > 0 {
			content += strings.Repeat(" ", padding)
		}
		lines = append(lines, style.Render(content))
	}
	return lines
}
