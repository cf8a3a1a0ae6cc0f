// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package taskui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/tasklist/lib/task"
	"github.com/bureau-foundation/tasklist/lib/tui"
)

// tabDefs is the fixed list of tabs used by both the header renderer
// and the mouse hit test.
var tabDefs = []struct {
	label  string
	filter task.Filter
}{
	{"1:All", task.FilterAll},
	{"2:Active", task.FilterActive},
	{"3:Completed", task.FilterCompleted},
}

// tabHitRange is the X span of one tab label in the header line.
type tabHitRange struct {
	startX int
	endX   int
	filter task.Filter
}

// tabHitRanges computes where each tab label sits in the header line.
// The layout mirrors renderHeader: "───" then " label ───" per tab,
// with a single rule character after the last one.
func tabHitRanges() []tabHitRange {
	ranges := make([]tabHitRange, 0, len(tabDefs))
	cursor := 3
	for index, tabDef := range tabDefs {
		cursor++
		start := cursor
		cursor += lipgloss.Width(tabDef.label)
		ranges = append(ranges, tabHitRange{startX: start, endX: cursor, filter: tabDef.filter})
		cursor++
		if index == len(tabDefs)-1 {
			cursor++
		} else {
			cursor += 3
		}
	}
	return ranges
}

// tabAt returns the tab whose label covers header column x.
func (model Model) tabAt(x int) (task.Filter, bool) {
	for _, hit := range tabHitRanges() {
		if x >= hit.startX && x < hit.endX {
			return hit.filter, true
		}
	}
	return "", false
}

// View implements tea.Model.
func (model Model) View() string {
	if !model.ready {
		return "Loading..."
	}

	sections := []string{
		model.renderHeader(),
		model.search.View(model.theme, model.width),
	}
	columnHeader, separator := model.renderColumnHeaders()
	sections = append(sections, columnHeader, separator)
	sections = append(sections, model.renderTable())
	if preview := model.renderPreview(); preview != "" {
		sections = append(sections, preview)
	}
	sections = append(sections, model.renderStatusBar())

	output := strings.Join(sections, "\n")

	if model.dropdown != nil {
		output = tui.SpliceOverlay(output, model.dropdown.Render(model.theme),
			model.dropdown.AnchorX, model.dropdown.AnchorY)
	}

	if model.focus == FocusCreateForm {
		modalLines, anchorX, anchorY := model.form.Render(model.theme, model.width, model.height)
		output = tui.SpliceOverlay(output, modalLines, anchorX, anchorY)
	}

	return output
}

// renderHeader renders the tab bar embedded in a horizontal rule with
// the statistics on the right.
//
// Example: ─── 1:All ─── 2:Active ─── 3:Completed ─── Total: 2 | Active: 1 | Completed: 1 ─
func (model Model) renderHeader() string {
	separatorStyle := lipgloss.NewStyle().
		Foreground(model.theme.BorderColor)
	activeStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(model.theme.HeaderForeground)
	inactiveStyle := lipgloss.NewStyle().
		Foreground(model.theme.FaintText)
	statsStyle := lipgloss.NewStyle().
		Foreground(model.theme.FaintText)

	sep := separatorStyle.Render("─")

	var left strings.Builder
	left.WriteString(strings.Repeat(sep, 3))
	cursor := 3
	for index, tabDef := range tabDefs {
		left.WriteString(" ")
		if model.activeFilter == tabDef.filter {
			left.WriteString(activeStyle.Render(tabDef.label))
		} else {
			left.WriteString(inactiveStyle.Render(tabDef.label))
		}
		left.WriteString(" ")
		cursor += lipgloss.Width(tabDef.label) + 2

		sepCount := 3
		if index == len(tabDefs)-1 {
			sepCount = 1
		}
		left.WriteString(strings.Repeat(sep, sepCount))
		cursor += sepCount
	}

	statsText := model.stats.String()
	rightWidth := 1 + lipgloss.Width(statsText) + 1 + 1
	fillCount := max(model.width-cursor-rightWidth, 1)

	return left.String() + strings.Repeat(sep, fillCount) + " " + statsStyle.Render(statsText) + " " + sep
}

// renderTable renders the visible rows with the scrollbar in the last
// column. An empty view shows a hint instead.
func (model Model) renderTable() string {
	height := model.visibleRows()
	lines := make([]string, height)

	if len(model.rows) == 0 {
		messageStyle := lipgloss.NewStyle().
			Foreground(model.theme.FaintText)
		text := "No tasks. Press n to create one."
		if model.search.Query() != "" {
			text = "No tasks match the search."
		}
		return lipgloss.Place(model.width, height, lipgloss.Center, lipgloss.Center, messageStyle.Render(text))
	}

	rowWidth := max(model.width-1, 0)
	for index := range lines {
		rowIndex := model.scrollOffset + index
		if rowIndex >= len(model.rows) {
			lines[index] = strings.Repeat(" ", rowWidth)
			continue
		}
		lines[index] = tui.FitStyled(model.renderRow(rowIndex), rowWidth)
	}

	scrollbar := tui.RenderScrollbar(model.theme, height, len(model.rows), height, model.scrollOffset)
	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(lines, "\n"), scrollbar)
}

// renderStatusBar renders the bottom line: the delete prompt while
// confirming, else the latest status message, else key hints for the
// focused region.
func (model Model) renderStatusBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(model.theme.HelpText)

	if model.focus == FocusConfirmDelete {
		promptStyle := lipgloss.NewStyle().
			Foreground(model.theme.ErrorForeground).
			Bold(true)
		prompt := fmt.Sprintf(" Delete %q? y to confirm, any other key to keep", model.pendingDelete.Title)
		return promptStyle.Render(tui.FitCell(prompt, model.width))
	}

	if model.statusMessage != "" {
		style := lipgloss.NewStyle().
			Foreground(model.theme.NoticeForeground)
		if model.statusError {
			style = style.Foreground(model.theme.ErrorForeground)
		}
		return style.Render(tui.FitCell(" "+model.statusMessage, model.width))
	}

	return helpStyle.Render(tui.FitCell(model.helpText(), model.width))
}

// helpText lists the key hints for the focused region.
func (model Model) helpText() string {
	var indicator, hints string
	switch model.focus {
	case FocusSearch:
		indicator = "SEARCH"
		hints = "type to filter  Enter keep  Esc clear"
	case FocusCellEdit:
		indicator = "EDIT"
		hints = "Enter save  Esc cancel  Tab next column  click elsewhere saves"
	case FocusDropdown:
		indicator = "SELECT"
		hints = "↑↓ choose  Enter save  Esc cancel"
	case FocusCreateForm:
		indicator = "NEW"
		hints = model.form.Footer
	default:
		indicator = "TABLE"
		hints = bindingHints(
			model.keys.Quit, model.keys.Edit, model.keys.Create, model.keys.Delete,
			model.keys.SearchActivate, model.keys.TabAll, model.keys.TabActive, model.keys.TabCompleted,
		)
	}
	help := fmt.Sprintf(" [%s] %s", indicator, hints)
	if len(model.rows) > 0 && model.focus == FocusTable {
		help += fmt.Sprintf("  %d/%d", model.cursor+1, len(model.rows))
	}
	return help
}
