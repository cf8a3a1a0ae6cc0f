// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package taskui

import (
	"slices"

	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/tasklist/lib/task"
	"github.com/bureau-foundation/tasklist/lib/tui"
)

// SearchModel narrows the rows of the active tab with fzf-style fuzzy
// matching against each task's title and description. The search
// composes with the tabs: the tab chooses the base set from the store
// and the search narrows it without touching the store.
type SearchModel struct {
	// Editor holds the query text.
	Editor tui.LineEditor

	// Active is true while the search line has keyboard focus.
	Active bool
}

// Query returns the current query text.
func (search *SearchModel) Query() string {
	return search.Editor.Value()
}

// Clear empties the query and releases focus.
func (search *SearchModel) Clear() {
	search.Editor.SetValue("")
	search.Active = false
}

// Row is one rendered table row: a task plus the title rune positions
// matched by the search, for highlighting.
type Row struct {
	Task           task.Task
	TitlePositions []int
	score          int
}

// Apply narrows tasks by the query. With an empty query every task is
// kept in store order. Otherwise tasks matching on title or description
// are kept, ordered by best score with store order breaking ties.
func (search *SearchModel) Apply(tasks []task.Task) []Row {
	query := []rune(search.Query())
	if len(query) == 0 {
		rows := make([]Row, len(tasks))
		for index, item := range tasks {
			rows[index] = Row{Task: item}
		}
		return rows
	}

	slab := tui.NewSlab()
	var rows []Row
	for _, item := range tasks {
		titleResult := tui.FuzzyMatch(item.Title, query, slab)
		descriptionResult := tui.FuzzyMatch(item.Description, query, slab)
		score := max(titleResult.Score, descriptionResult.Score)
		if score <= 0 {
			continue
		}
		rows = append(rows, Row{
			Task:           item,
			TitlePositions: titleResult.Positions,
			score:          score,
		})
	}
	slices.SortStableFunc(rows, func(a, b Row) int {
		return b.score - a.score
	})
	return rows
}

// View renders the search line. Active: the editor with a cursor.
// Inactive with a query: a dim reminder. Otherwise blank.
func (search *SearchModel) View(theme tui.Theme, width int) string {
	if width <= 0 {
		return ""
	}
	if search.Active {
		promptStyle := lipgloss.NewStyle().
			Foreground(theme.AccentColor).
			Bold(true)
		textStyle := lipgloss.NewStyle().
			Foreground(theme.NormalText)
		return promptStyle.Render(" / ") + search.Editor.Render(max(width-3, 1), textStyle)
	}
	if search.Query() == "" {
		return ""
	}
	dimStyle := lipgloss.NewStyle().
		Foreground(theme.FaintText)
	return dimStyle.Render(tui.FitCell(" search: "+search.Query()+"  (Esc clears)", width))
}
