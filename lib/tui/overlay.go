// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// SpliceOverlay replaces a rectangular region of a rendered view with
// overlay content. The overlay lines are placed starting at (anchorX,
// anchorY) in screen coordinates. Uses ANSI-aware truncation so escape
// sequences in the original view are preserved on both sides of the
// overlay.
func SpliceOverlay(view string, overlayLines []string, anchorX, anchorY int) string {
	if len(overlayLines) == 0 {
		return view
	}

	viewLines := strings.Split(view, "\n")
	overlayWidth := ansi.StringWidth(overlayLines[0])

	for index, overlayLine := range overlayLines {
		viewLineIndex := anchorY + index
		if viewLineIndex < 0 || viewLineIndex >= len(viewLines) {
			continue
		}

		viewLine := viewLines[viewLineIndex]
		viewLineWidth := ansi.StringWidth(viewLine)

		var result strings.Builder
		if anchorX > 0 {
			prefix := ansi.Truncate(viewLine, anchorX, "")
			result.WriteString(prefix)
			// Short lines are padded so the overlay lands at anchorX.
			if gap := anchorX - ansi.StringWidth(prefix); gap > 0 {
				result.WriteString(strings.Repeat(" ", gap))
			}
		}
		result.WriteString("\x1b[0m")
		result.WriteString(overlayLine)
		result.WriteString("\x1b[0m")

		suffixStart := anchorX + overlayWidth
		if suffixStart < viewLineWidth {
			result.WriteString(ansi.TruncateLeft(viewLine, suffixStart, ""))
		}

		viewLines[viewLineIndex] = result.String()
	}

	return strings.Join(viewLines, "\n")
}

// PadRight pads styled content with background-colored spaces to the
// given visible width. Content already at or beyond width is returned
// unchanged.
func PadRight(styledContent string, width int, backgroundStyle lipgloss.Style) string {
	contentWidth := ansi.StringWidth(styledContent)
	if contentWidth >= width {
		return styledContent
	}
	return styledContent + backgroundStyle.Render(strings.Repeat(" ", width-contentWidth))
}

// FitCell truncates plain text to width columns with an ellipsis and
// pads it with spaces to exactly width. Newlines are flattened to
// spaces so multi-line descriptions stay on one table row.
func FitCell(text string, width int) string {
	if width <= 0 {
		return ""
	}
	text = strings.ReplaceAll(text, "\n", " ")
	if ansi.StringWidth(text) > width {
		text = ansi.Truncate(text, width, "…")
	}
	if padding := width - ansi.StringWidth(text); padding > 0 {
		text += strings.Repeat(" ", padding)
	}
	return text
}

// FitStyled truncates styled content to width visible columns,
// preserving escape sequences, and pads it with plain spaces to exactly
// width.
func FitStyled(styledContent string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(styledContent) > width {
		styledContent = ansi.Truncate(styledContent, width, "")
	}
	if padding := width - ansi.StringWidth(styledContent); padding > 0 {
		styledContent += strings.Repeat(" ", padding)
	}
	return styledContent
}
