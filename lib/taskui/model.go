// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package taskui

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bureau-foundation/tasklist/lib/clock"
	"github.com/bureau-foundation/tasklist/lib/draft"
	"github.com/bureau-foundation/tasklist/lib/editsession"
	"github.com/bureau-foundation/tasklist/lib/task"
	"github.com/bureau-foundation/tasklist/lib/taskstore"
	"github.com/bureau-foundation/tasklist/lib/tui"
)

// FocusRegion identifies where keyboard input goes.
type FocusRegion int

const (
	// FocusTable means navigation keys move the table cursor.
	FocusTable FocusRegion = iota
	// FocusSearch means keystrokes edit the search query.
	FocusSearch
	// FocusCellEdit means a text cell is being edited inline.
	// Keystrokes go to the cell editor; enter commits, escape
	// cancels.
	FocusCellEdit
	// FocusDropdown means a status or priority dropdown is open.
	// Up/down change the pending value, enter commits, escape
	// cancels.
	FocusDropdown
	// FocusCreateForm means the create modal is open. All input goes
	// to the form until it is submitted or discarded.
	FocusCreateForm
	// FocusConfirmDelete means the status bar is asking whether to
	// delete the selected task. Only y confirms.
	FocusConfirmDelete
)

// statusFadeMsg clears the status bar message it was scheduled for.
// A newer message bumps the generation so an older fade is ignored.
type statusFadeMsg struct {
	generation int
}

// heatTickMsg drives the row highlight decay while any row is hot.
type heatTickMsg struct{}

// Options configures a Model. Zero values select defaults.
type Options struct {
	// Clock supplies the time for highlight animation. Default: the
	// real clock.
	Clock clock.Clock

	// Logger receives edit and mutation diagnostics. Default: discard.
	Logger *slog.Logger

	// Theme is the color palette. Default: tui.DefaultTheme.
	Theme *tui.Theme

	// Filter is the tab selected at startup. Default: all.
	Filter task.Filter

	// DateLayout is the Go time layout for the Created and Deadline
	// columns. Default: 02.01.2006.
	DateLayout string

	// Location is the zone creation times are shown in. Default:
	// time.Local.
	Location *time.Location

	// StatusFade is how long status bar messages stay visible.
	// Default: 4s.
	StatusFade time.Duration
}

// Model is the top-level bubbletea model for the task viewer.
type Model struct {
	store   *taskstore.Store
	session *editsession.Session
	draft   *draft.Draft
	events  <-chan taskstore.Event

	clock      clock.Clock
	logger     *slog.Logger
	theme      tui.Theme
	keys       KeyMap
	dateLayout string
	location   *time.Location
	statusFade time.Duration

	// Terminal dimensions (set by WindowSizeMsg).
	width  int
	height int
	ready  bool

	// Active tab, search, and the rows they select.
	activeFilter task.Filter
	search       SearchModel
	rows         []Row
	stats        task.Stats
	columns      []Column

	// Cursor position: row index into rows, column index into
	// columns. selectedID tracks the row across refreshes.
	cursor       int
	column       int
	selectedID   task.ID
	scrollOffset int

	focus    FocusRegion
	editor   tui.LineEditor
	dropdown *tui.DropdownOverlay
	form     tui.FormModal

	// pendingDelete is the task awaiting delete confirmation.
	pendingDelete task.Task

	// Status bar message and whether it is an error.
	statusMessage    string
	statusError      bool
	statusGeneration int

	heat        *tui.HeatTracker
	heatRunning bool

	preview *previewCache

	// outcomes collects ended edits from the session's transition
	// hook until the next drain.
	outcomes *outcomeQueue
}

// outcomeQueue buffers the outcomes of ended edits. It is shared by
// every copy of the Model, like the session it listens to.
type outcomeQueue struct {
	pending []editsession.Outcome
}

// record is registered with editsession.Session.OnTransition. Only
// transitions that end an edit carry a reportable outcome.
func (queue *outcomeQueue) record(transition editsession.Transition) {
	if _, idle := transition.To.(editsession.Idle); !idle {
		return
	}
	if transition.Outcome.Kind == editsession.OutcomeNone {
		return
	}
	queue.pending = append(queue.pending, transition.Outcome)
}

func (queue *outcomeQueue) take() []editsession.Outcome {
	taken := queue.pending
	queue.pending = nil
	return taken
}

// NewModel creates a viewer over store. The model creates its own edit
// session and draft; callers interact with tasks only through the
// store.
func NewModel(store *taskstore.Store, options Options) Model {
	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	source := options.Clock
	if source == nil {
		source = clock.Real()
	}
	theme := tui.DefaultTheme
	if options.Theme != nil {
		theme = *options.Theme
	}
	filter := options.Filter
	if filter == "" {
		filter = task.FilterAll
	}
	dateLayout := options.DateLayout
	if dateLayout == "" {
		dateLayout = "02.01.2006"
	}
	location := options.Location
	if location == nil {
		location = time.Local
	}
	statusFade := options.StatusFade
	if statusFade <= 0 {
		statusFade = 4 * time.Second
	}

	model := Model{
		store:        store,
		session:      editsession.New(store, logger.With("component", "editsession")),
		draft:        draft.New(),
		events:       store.Subscribe(),
		clock:        source,
		logger:       logger,
		theme:        theme,
		keys:         DefaultKeyMap,
		dateLayout:   dateLayout,
		location:     location,
		statusFade:   statusFade,
		activeFilter: filter,
		heat:         tui.NewHeatTracker(),
		preview:      &previewCache{},
		outcomes:     &outcomeQueue{},
	}
	model.session.OnTransition(model.outcomes.record)
	model.columns = layoutColumns(80, dateLayout)
	model.refresh()
	return model
}

// Init implements tea.Model.
func (model Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Every store and session call happens
// here, one message at a time.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	var command tea.Cmd
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true
		model.columns = layoutColumns(message.Width, model.dateLayout)
		model.ensureCursorVisible()
		return model, nil

	case tea.KeyMsg:
		command = model.handleKey(message)

	case tea.MouseMsg:
		command = model.handleMouse(message)

	case statusFadeMsg:
		if message.generation == model.statusGeneration {
			model.statusMessage = ""
			model.statusError = false
		}
		return model, nil

	case logRecordMsg:
		command = model.setStatus(message.Summary, message.Level >= slog.LevelWarn)

	case heatTickMsg:
		if model.heat.HasHot(model.clock.Now()) {
			return model, scheduleHeatTick()
		}
		model.heatRunning = false
		return model, nil
	}

	return model, tea.Batch(command, model.drainOutcomes(), model.drainEvents())
}

// handleKey routes a key press by focus region.
func (model *Model) handleKey(message tea.KeyMsg) tea.Cmd {
	if message.Type == tea.KeyCtrlC {
		model.session.Cancel()
		return tea.Quit
	}

	switch model.focus {
	case FocusSearch:
		return model.handleSearchKeys(message)
	case FocusCellEdit:
		return model.handleCellEditKeys(message)
	case FocusDropdown:
		return model.handleDropdownKeys(message)
	case FocusCreateForm:
		return model.handleFormKeys(message)
	case FocusConfirmDelete:
		return model.handleConfirmKeys(message)
	default:
		return model.handleTableKeys(message)
	}
}

func (model *Model) handleTableKeys(message tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(message, model.keys.Quit):
		return tea.Quit

	case key.Matches(message, model.keys.Up):
		model.moveCursor(-1)
	case key.Matches(message, model.keys.Down):
		model.moveCursor(1)
	case key.Matches(message, model.keys.PageUp):
		model.moveCursor(-model.visibleRows())
	case key.Matches(message, model.keys.PageDown):
		model.moveCursor(model.visibleRows())
	case key.Matches(message, model.keys.Home):
		model.moveCursor(-len(model.rows))
	case key.Matches(message, model.keys.End):
		model.moveCursor(len(model.rows))
	case key.Matches(message, model.keys.Left):
		model.column = max(model.column-1, 0)
	case key.Matches(message, model.keys.Right):
		model.column = min(model.column+1, len(model.columns)-1)

	case key.Matches(message, model.keys.TabAll):
		model.switchFilter(task.FilterAll)
	case key.Matches(message, model.keys.TabActive):
		model.switchFilter(task.FilterActive)
	case key.Matches(message, model.keys.TabCompleted):
		model.switchFilter(task.FilterCompleted)

	case key.Matches(message, model.keys.SearchActivate):
		model.search.Active = true
		model.focus = FocusSearch
	case key.Matches(message, model.keys.SearchClear):
		if model.search.Query() != "" {
			model.search.Clear()
			model.refresh()
		}

	case key.Matches(message, model.keys.Edit):
		return model.beginEdit(model.cursor, model.column)

	case key.Matches(message, model.keys.Create):
		model.openCreateForm()

	case key.Matches(message, model.keys.Delete):
		if selected, ok := model.selectedTask(); ok {
			model.pendingDelete = selected
			model.focus = FocusConfirmDelete
		}
	}
	return nil
}

func (model *Model) handleSearchKeys(message tea.KeyMsg) tea.Cmd {
	switch message.Type {
	case tea.KeyEnter:
		model.search.Active = false
		model.focus = FocusTable
	case tea.KeyEsc:
		model.search.Clear()
		model.focus = FocusTable
		model.refresh()
	default:
		if model.search.Editor.Update(message) {
			model.cursor = 0
			model.scrollOffset = 0
			model.selectedID = ""
			model.refresh()
		}
	}
	return nil
}

func (model *Model) handleCellEditKeys(message tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(message, model.keys.Commit):
		model.session.Commit()
		return model.finishEdit()
	case key.Matches(message, model.keys.Cancel):
		model.session.Cancel()
		return model.finishEdit()
	case key.Matches(message, model.keys.NextField):
		return model.editNextColumn()
	case message.Type == tea.KeyUp || message.Type == tea.KeyDown:
		model.session.BlurCommit()
		command := model.finishEdit()
		if message.Type == tea.KeyUp {
			model.moveCursor(-1)
		} else {
			model.moveCursor(1)
		}
		return command
	}

	if model.editor.Update(message) {
		return model.changePending(model.editor.Value())
	}
	return nil
}

// changePending forwards an edited value to the session. If the session
// has no active edit the editor or dropdown is closed and the error is
// shown in the status bar.
func (model *Model) changePending(value string) tea.Cmd {
	if err := model.session.ChangeValue(value); err != nil {
		model.focus = FocusTable
		model.dropdown = nil
		return model.setStatus(err.Error(), true)
	}
	return nil
}

func (model *Model) handleDropdownKeys(message tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(message, model.keys.Up):
		model.dropdown.MoveUp()
		return model.changePending(model.dropdown.Selected().Value)
	case key.Matches(message, model.keys.Down):
		model.dropdown.MoveDown()
		return model.changePending(model.dropdown.Selected().Value)
	case key.Matches(message, model.keys.Commit):
		if command := model.changePending(model.dropdown.Selected().Value); command != nil {
			return command
		}
		model.session.Commit()
		return model.finishEdit()
	case key.Matches(message, model.keys.Cancel):
		model.session.Cancel()
		return model.finishEdit()
	case key.Matches(message, model.keys.NextField):
		return model.editNextColumn()
	}
	return nil
}

func (model *Model) handleFormKeys(message tea.KeyMsg) tea.Cmd {
	field := model.focusedFormField()
	switch {
	case key.Matches(message, model.keys.Cancel):
		model.draft.Discard()
		model.closeCreateForm()
		return nil

	case key.Matches(message, model.keys.Submit):
		return model.submitForm()

	case message.Type == tea.KeyEnter:
		if model.form.Focus == len(formFields)-1 {
			return model.submitForm()
		}
		model.moveFormFocus(1)
	case key.Matches(message, model.keys.NextField) || message.Type == tea.KeyDown:
		model.moveFormFocus(1)
	case key.Matches(message, model.keys.PrevField) || message.Type == tea.KeyUp:
		model.moveFormFocus(-1)

	case field.Enumerated():
		switch message.Type {
		case tea.KeyLeft:
			model.cycleFormChoice(-1)
		case tea.KeyRight, tea.KeySpace:
			model.cycleFormChoice(1)
		}

	default:
		if model.form.Editor.Update(message) {
			model.draft.SetField(field, model.form.Editor.Value())
			model.syncFormFromDraft()
		}
	}
	return nil
}

// submitForm creates a task from the draft. On failure the modal stays
// open with the error; on success it closes and selects the new task.
func (model *Model) submitForm() tea.Cmd {
	created, err := model.draft.Submit(model.store)
	if err != nil {
		model.form.Message = err.Error()
		return nil
	}
	model.logger.Info("task created", "id", created.ID, "title", created.Title)
	model.closeCreateForm()
	model.selectedID = created.ID
	model.refresh()
	return model.setStatus(fmt.Sprintf("Created %q", created.Title), false)
}

func (model *Model) handleConfirmKeys(message tea.KeyMsg) tea.Cmd {
	target := model.pendingDelete
	model.pendingDelete = task.Task{}
	model.focus = FocusTable

	if !key.Matches(message, model.keys.ConfirmYes) {
		return model.setStatus("Delete cancelled", false)
	}
	model.store.Delete(target.ID)
	model.logger.Info("task deleted", "id", target.ID)
	model.refresh()
	return model.setStatus(fmt.Sprintf("Deleted %q", target.Title), false)
}

// handleMouse implements click-to-edit and blur-to-commit. A click on a
// table cell begins an edit there (finalizing any other edit first); a
// click anywhere else while editing commits the edit.
func (model *Model) handleMouse(message tea.MouseMsg) tea.Cmd {
	switch message.Button {
	case tea.MouseButtonWheelUp:
		model.scroll(-3)
		return nil
	case tea.MouseButtonWheelDown:
		model.scroll(3)
		return nil
	}
	if message.Button != tea.MouseButtonLeft || message.Action != tea.MouseActionPress {
		return nil
	}

	switch model.focus {
	case FocusCreateForm:
		return nil
	case FocusConfirmDelete:
		model.pendingDelete = task.Task{}
		model.focus = FocusTable
		return model.setStatus("Delete cancelled", false)
	case FocusSearch:
		model.search.Active = false
		model.focus = FocusTable
	}

	if model.focus == FocusDropdown && model.dropdown.Contains(message.X, message.Y) {
		if index := model.dropdown.OptionAtY(message.Y); index >= 0 {
			model.dropdown.Cursor = index
			if command := model.changePending(model.dropdown.Selected().Value); command != nil {
				return command
			}
			model.session.Commit()
			return model.finishEdit()
		}
		return nil
	}

	if message.Y == headerY {
		if filter, ok := model.tabAt(message.X); ok {
			model.session.BlurCommit()
			command := model.finishEdit()
			model.switchFilter(filter)
			return command
		}
	}

	if rowIndex, columnIndex, ok := model.cellAt(message.X, message.Y); ok {
		target := editsession.Target{ID: model.rows[rowIndex].Task.ID, Field: model.columns[columnIndex].Field}
		if model.session.IsEditing(target) {
			return nil
		}
		return model.beginEdit(rowIndex, columnIndex)
	}

	model.session.BlurCommit()
	return model.finishEdit()
}

// beginEdit starts an inline edit of the cell at (rowIndex,
// columnIndex). Any edit in progress elsewhere is committed first and
// its outcome reported.
func (model *Model) beginEdit(rowIndex, columnIndex int) tea.Cmd {
	if rowIndex < 0 || rowIndex >= len(model.rows) || columnIndex < 0 || columnIndex >= len(model.columns) {
		return nil
	}
	item := model.rows[rowIndex].Task
	column := model.columns[columnIndex]

	model.cursor = rowIndex
	model.column = columnIndex
	model.selectedID = item.ID

	// A non-editable cell is outside every edit: it blurs the active one.
	if !column.Field.Editable() {
		model.session.BlurCommit()
		command := model.finishEdit()
		if model.statusError {
			return command
		}
		return tea.Batch(command, model.setStatus(column.Title+" is not editable", false))
	}

	_, err := model.session.BeginEdit(item.ID, column.Field)
	previousCommand := model.drainOutcomes()
	if err != nil {
		model.focus = FocusTable
		model.dropdown = nil
		model.refresh()
		return tea.Batch(previousCommand, model.setStatus(err.Error(), true))
	}

	model.refresh()
	editing, _ := model.session.Active()
	if column.Field.Enumerated() {
		model.openDropdown(column, editing.Pending)
	} else {
		model.dropdown = nil
		model.editor = tui.NewLineEditor(editing.Pending)
		model.focus = FocusCellEdit
	}
	return previousCommand
}

// openDropdown shows the options of an enumerated column below the
// selected row, or above it when there is no room below.
func (model *Model) openDropdown(column Column, current string) {
	options := dropdownOptions(column.Field)
	rowY := tableStartY + model.cursor - model.scrollOffset
	anchorY := rowY + 1
	if model.height > 0 && anchorY+len(options) > model.height-1 {
		anchorY = max(rowY-len(options), 0)
	}
	model.dropdown = tui.NewDropdown(options, current, column.X, anchorY)
	model.focus = FocusDropdown
}

// editNextColumn commits the current edit and begins editing the next
// editable column of the same task, wrapping after the last one.
func (model *Model) editNextColumn() tea.Cmd {
	editing, ok := model.session.Active()
	if !ok {
		return nil
	}
	next := model.column
	for range model.columns {
		next = (next + 1) % len(model.columns)
		if model.columns[next].Field.Editable() {
			break
		}
	}
	rowIndex := model.rowOf(editing.Target.ID)
	if rowIndex < 0 {
		model.session.Commit()
		return model.finishEdit()
	}
	return model.beginEdit(rowIndex, next)
}

// finishEdit returns focus to the table after a session ended and
// reports the outcome.
func (model *Model) finishEdit() tea.Cmd {
	if model.focus == FocusCellEdit || model.focus == FocusDropdown {
		model.focus = FocusTable
	}
	model.dropdown = nil
	model.refresh()
	return model.drainOutcomes()
}

// drainOutcomes reports every edit that ended since the last drain, in
// the order the session finalized them.
func (model *Model) drainOutcomes() tea.Cmd {
	finished := model.outcomes.take()
	var commands []tea.Cmd
	for _, outcome := range finished {
		commands = append(commands, model.report(outcome))
	}
	return tea.Batch(commands...)
}

// report turns an edit outcome into a status bar message. Committed,
// unchanged and cancelled edits are silent; the row highlight shows a
// commit.
func (model *Model) report(outcome editsession.Outcome) tea.Cmd {
	switch outcome.Kind {
	case editsession.OutcomeRejected:
		model.logger.Debug("edit rejected", "target", outcome.Target.String(), "error", outcome.Err)
		return model.setStatus(outcome.Err.Error()+"; change discarded", true)
	case editsession.OutcomeNotFound:
		return model.setStatus("Task was deleted while editing; change discarded", true)
	default:
		return nil
	}
}

// setStatus shows a message in the status bar and schedules its fade.
func (model *Model) setStatus(text string, isError bool) tea.Cmd {
	model.statusGeneration++
	model.statusMessage = text
	model.statusError = isError
	generation := model.statusGeneration
	return tea.Tick(model.statusFade, func(time.Time) tea.Msg {
		return statusFadeMsg{generation: generation}
	})
}

// drainEvents ignites highlight heat for every store change since the
// last message and starts the decay ticker if it is not running.
func (model *Model) drainEvents() tea.Cmd {
	now := model.clock.Now()
	ignited := false
	for drained := false; !drained; {
		select {
		case event := <-model.events:
			kind := tui.HeatPut
			if event.Kind == taskstore.EventRemove {
				kind = tui.HeatRemove
			}
			model.heat.Ignite(string(event.Task.ID), kind, now)
			ignited = true
		default:
			drained = true
		}
	}
	if !ignited || model.heatRunning {
		return nil
	}
	model.heatRunning = true
	return scheduleHeatTick()
}

func scheduleHeatTick() tea.Cmd {
	return tea.Tick(tui.HeatTickInterval, func(time.Time) tea.Msg {
		return heatTickMsg{}
	})
}

// switchFilter changes the active tab. The search query is kept.
func (model *Model) switchFilter(filter task.Filter) {
	if model.activeFilter == filter {
		return
	}
	model.activeFilter = filter
	model.refresh()
}

// refresh rebuilds rows and statistics from the store and restores the
// selection by ID.
func (model *Model) refresh() {
	model.stats = model.store.Stats()
	model.rows = model.search.Apply(slices.Collect(model.store.List(model.activeFilter)))
	model.restoreSelection()
	model.ensureCursorVisible()
}

// restoreSelection moves the cursor to the row holding selectedID, or
// clamps it when that task is no longer visible.
func (model *Model) restoreSelection() {
	if index := model.rowOf(model.selectedID); index >= 0 {
		model.cursor = index
		return
	}
	model.cursor = min(max(model.cursor, 0), max(len(model.rows)-1, 0))
	if len(model.rows) > 0 {
		model.selectedID = model.rows[model.cursor].Task.ID
	} else {
		model.selectedID = ""
	}
}

// rowOf returns the row index of id, or -1.
func (model *Model) rowOf(id task.ID) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(model.rows, func(row Row) bool {
		return row.Task.ID == id
	})
}

func (model *Model) selectedTask() (task.Task, bool) {
	if model.cursor < 0 || model.cursor >= len(model.rows) {
		return task.Task{}, false
	}
	return model.rows[model.cursor].Task, true
}

func (model *Model) moveCursor(delta int) {
	if len(model.rows) == 0 {
		return
	}
	model.cursor = min(max(model.cursor+delta, 0), len(model.rows)-1)
	model.selectedID = model.rows[model.cursor].Task.ID
	model.ensureCursorVisible()
}

func (model *Model) scroll(delta int) {
	limit := max(len(model.rows)-model.visibleRows(), 0)
	model.scrollOffset = min(max(model.scrollOffset+delta, 0), limit)
}

// visibleRows is the number of table rows that fit on screen.
func (model Model) visibleRows() int {
	if !model.ready {
		return max(len(model.rows), 1)
	}
	return max(model.height-chromeHeight-model.previewHeight(), 1)
}

func (model *Model) ensureCursorVisible() {
	visible := model.visibleRows()
	if model.cursor < model.scrollOffset {
		model.scrollOffset = model.cursor
	}
	if model.cursor >= model.scrollOffset+visible {
		model.scrollOffset = model.cursor - visible + 1
	}
	model.scrollOffset = max(model.scrollOffset, 0)
}

// cellAt maps a screen position to a table cell.
func (model Model) cellAt(x, y int) (int, int, bool) {
	if y < tableStartY || y >= tableStartY+model.visibleRows() {
		return 0, 0, false
	}
	rowIndex := model.scrollOffset + y - tableStartY
	if rowIndex >= len(model.rows) {
		return 0, 0, false
	}
	for columnIndex, column := range model.columns {
		if column.Contains(x) {
			return rowIndex, columnIndex, true
		}
	}
	return 0, 0, false
}
