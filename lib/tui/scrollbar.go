// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderScrollbar produces a single-column scrollbar of the given
// height for a list of totalItems rows of which visibleItems are shown
// starting at scrollOffset. When everything fits, the column is blank
// so short lists carry no chrome.
func RenderScrollbar(theme Theme, height, totalItems, visibleItems, scrollOffset int) string {
	if height <= 0 {
		return ""
	}

	lines := make([]string, height)
	if totalItems <= visibleItems || totalItems <= 0 {
		for index := range lines {
			lines[index] = " "
		}
		return strings.Join(lines, "\n")
	}

	trackStyle := lipgloss.NewStyle().Foreground(theme.BorderColor)
	thumbStyle := lipgloss.NewStyle().Foreground(theme.AccentColor)

	thumbSize := max(height*visibleItems/totalItems, 1)

	scrollableRange := totalItems - visibleItems
	trackRange := height - thumbSize
	thumbOffset := 0
	if scrollableRange > 0 && trackRange > 0 {
		thumbOffset = scrollOffset * trackRange / scrollableRange
	}
	thumbOffset = min(thumbOffset, height-thumbSize)

	for index := range lines {
		if index >= thumbOffset && index < thumbOffset+thumbSize {
			lines[index] = thumbStyle.Render("┃")
		} else {
			lines[index] = trackStyle.Render("│")
		}
	}
	return strings.Join(lines, "\n")
}
