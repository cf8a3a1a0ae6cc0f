// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package taskui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/tasklist/lib/task"
	"github.com/bureau-foundation/tasklist/lib/tui"
)

// The description preview sits between the table and the status bar:
// one rule line and previewLines lines of rendered Markdown. Terminals
// shorter than previewMinHeight get no preview.
const (
	previewLines     = 4
	previewMinHeight = 16
)

// previewCache holds the last rendered description so View does not
// re-parse Markdown on every frame.
type previewCache struct {
	source string
	width  int
	lines  []string
}

func (cache *previewCache) render(source string, theme tui.Theme, width int) []string {
	if cache.source != source || cache.width != width || cache.lines == nil {
		cache.source = source
		cache.width = width
		cache.lines = tui.RenderMarkdown(source, theme, width)
		if cache.lines == nil {
			cache.lines = []string{}
		}
	}
	return cache.lines
}

// previewHeight is the number of screen lines the preview occupies.
func (model Model) previewHeight() int {
	if !model.ready || model.height < previewMinHeight {
		return 0
	}
	return previewLines + 1
}

// previewSource returns the description to preview: the pending value
// while the selected task's description is being edited, otherwise the
// stored description.
func (model Model) previewSource() (task.Task, string, bool) {
	selected, ok := model.selectedTask()
	if !ok {
		return task.Task{}, "", false
	}
	if editing, active := model.session.Active(); active &&
		editing.Target.ID == selected.ID && editing.Target.Field == task.FieldDescription {
		return selected, editing.Pending, true
	}
	return selected, selected.Description, true
}

// renderPreview renders the rule and the description lines.
func (model Model) renderPreview() string {
	height := model.previewHeight()
	if height == 0 {
		return ""
	}
	ruleStyle := lipgloss.NewStyle().
		Foreground(model.theme.BorderColor)
	labelStyle := lipgloss.NewStyle().
		Foreground(model.theme.FaintText)
	faintStyle := lipgloss.NewStyle().
		Foreground(model.theme.FaintText).
		Italic(true)

	selected, source, ok := model.previewSource()
	label := " Description "
	if ok {
		label = " " + tui.FitCell(selected.Title, min(lipgloss.Width(selected.Title), max(model.width/2, 1))) + " "
	}
	rule := ruleStyle.Render("───") + labelStyle.Render(label) +
		ruleStyle.Render(strings.Repeat("─", max(model.width-3-lipgloss.Width(label), 0)))

	contentWidth := max(model.width-2*tableMargin, 1)
	var body []string
	switch {
	case !ok:
		body = nil
	case strings.TrimSpace(source) == "":
		body = []string{faintStyle.Render("No description")}
	default:
		body = model.preview.render(source, model.theme, contentWidth)
	}

	lines := []string{rule}
	margin := strings.Repeat(" ", tableMargin)
	for index := range previewLines {
		line := ""
		if index < len(body) {
			line = body[index]
			if index == previewLines-1 && len(body) > previewLines {
				line = faintStyle.Render("…")
			}
		}
		lines = append(lines, tui.FitStyled(margin+line, model.width))
	}
	return strings.Join(lines, "\n")
}
