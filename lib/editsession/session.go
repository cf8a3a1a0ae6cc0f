// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package editsession

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/bureau-foundation/tasklist/lib/task"
)

// ErrNotEditing is returned by [Session.ChangeValue] when no edit is
// active.
var ErrNotEditing = errors.New("editsession: no edit in progress")

// Store is the subset of the task store a session reads and writes.
// *taskstore.Store satisfies it.
type Store interface {
	Get(id task.ID) (task.Task, bool)
	UpdateField(id task.ID, field task.Field, value string) (task.Task, error)
}

// Target identifies the cell being edited.
type Target struct {
	ID    task.ID
	Field task.Field
}

func (target Target) String() string {
	return fmt.Sprintf("%s/%s", target.ID, target.Field)
}

// State is the session state: either [Idle] or [Editing]. The set of
// implementations is closed.
type State interface {
	isState()
}

// Idle means no cell is being edited.
type Idle struct{}

// Editing means Target is being edited and Pending holds the value the
// user has typed so far. Original is the stored value at the time the
// edit began.
type Editing struct {
	Target   Target
	Pending  string
	Original string
}

func (Idle) isState()    {}
func (Editing) isState() {}

// OutcomeKind classifies how an edit ended.
type OutcomeKind int

const (
	// OutcomeNone means there was nothing to finalize.
	OutcomeNone OutcomeKind = iota

	// OutcomeCommitted means the pending value was written to the
	// store. Outcome.Task holds the updated task.
	OutcomeCommitted

	// OutcomeUnchanged means the pending value parsed to the value
	// already stored, so nothing was written.
	OutcomeUnchanged

	// OutcomeRejected means the pending value failed validation. The
	// edit was discarded and Outcome.Err holds a *task.ValidationError.
	OutcomeRejected

	// OutcomeNotFound means the task was deleted while it was being
	// edited. Outcome.Err holds a *task.NotFoundError.
	OutcomeNotFound

	// OutcomeCancelled means the edit was explicitly discarded.
	OutcomeCancelled
)

func (kind OutcomeKind) String() string {
	switch kind {
	case OutcomeNone:
		return "none"
	case OutcomeCommitted:
		return "committed"
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeRejected:
		return "rejected"
	case OutcomeNotFound:
		return "not-found"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(kind))
	}
}

// Outcome reports how an Editing state ended.
type Outcome struct {
	Kind   OutcomeKind
	Target Target

	// Value is the pending value that was finalized.
	Value string

	// Task is the updated task for OutcomeCommitted and the stored
	// task for OutcomeUnchanged. Zero otherwise.
	Task task.Task

	// Err is set for OutcomeRejected and OutcomeNotFound.
	Err error
}

// Transition describes one state change, delivered to the hook
// registered with [Session.OnTransition].
type Transition struct {
	From    State
	To      State
	Outcome Outcome
}

// Session tracks the single active inline edit.
type Session struct {
	store        Store
	logger       *slog.Logger
	state        State
	onTransition func(Transition)
}

// New creates an Idle session over store. If logger is nil, a no-op
// logger is used.
func New(store Store, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Session{
		store:  store,
		logger: logger,
		state:  Idle{},
	}
}

// OnTransition registers a function called after every state change,
// including pending-value changes within Editing. Only one hook is
// kept; registering replaces the previous one.
func (session *Session) OnTransition(hook func(Transition)) {
	session.onTransition = hook
}

// State returns the current state.
func (session *Session) State() State {
	return session.state
}

// Active returns the state as Editing and true if an edit is in
// progress.
func (session *Session) Active() (Editing, bool) {
	editing, ok := session.state.(Editing)
	return editing, ok
}

// IsEditing reports whether target is the cell currently being edited.
func (session *Session) IsEditing(target Target) bool {
	editing, ok := session.Active()
	return ok && editing.Target == target
}

// BeginEdit starts editing field of the task id, seeding the pending
// value from the store.
//
// If a different target is being edited it is finalized first with the
// commit rule and that result is returned as the Outcome; the new edit
// begins whatever the previous result was. Beginning the target already
// being edited is a no-op that keeps the pending value.
//
// Returns a *task.ValidationError (state unchanged) if field is not
// editable, and a *task.NotFoundError (session left Idle) if the task
// does not exist.
func (session *Session) BeginEdit(id task.ID, field task.Field) (Outcome, error) {
	if !field.Editable() {
		return Outcome{}, &task.ValidationError{Field: field, Reason: "not an editable field"}
	}

	target := Target{ID: id, Field: field}
	if session.IsEditing(target) {
		return Outcome{Kind: OutcomeNone, Target: target}, nil
	}

	previous := session.Commit()

	stored, exists := session.store.Get(id)
	if !exists {
		return previous, &task.NotFoundError{ID: id}
	}

	value := stored.FieldValue(field)
	session.transition(Editing{Target: target, Pending: value, Original: value}, Outcome{Kind: OutcomeNone, Target: target})
	return previous, nil
}

// ChangeValue replaces the pending value. The store is not touched.
// Returns ErrNotEditing when Idle.
func (session *Session) ChangeValue(value string) error {
	editing, ok := session.Active()
	if !ok {
		return ErrNotEditing
	}
	editing.Pending = value
	session.transition(editing, Outcome{Kind: OutcomeNone, Target: editing.Target})
	return nil
}

// Commit finalizes the active edit and returns to Idle.
//
// The pending value is validated first; an invalid value is discarded
// without touching the store (OutcomeRejected). A value equal to the
// stored one produces OutcomeUnchanged with no write. Otherwise the
// store is updated (OutcomeCommitted), or, if the task disappeared,
// OutcomeNotFound. Commit while Idle returns OutcomeNone.
func (session *Session) Commit() Outcome {
	editing, ok := session.Active()
	if !ok {
		return Outcome{Kind: OutcomeNone}
	}

	outcome := session.resolve(editing)
	session.transition(Idle{}, outcome)
	return outcome
}

// BlurCommit finalizes the active edit because the user interacted
// outside the edited cell. It behaves exactly like Commit.
func (session *Session) BlurCommit() Outcome {
	return session.Commit()
}

// Cancel discards the pending value and returns to Idle without
// touching the store. Cancel while Idle returns OutcomeNone.
func (session *Session) Cancel() Outcome {
	editing, ok := session.Active()
	if !ok {
		return Outcome{Kind: OutcomeNone}
	}
	outcome := Outcome{Kind: OutcomeCancelled, Target: editing.Target, Value: editing.Pending}
	session.transition(Idle{}, outcome)
	return outcome
}

func (session *Session) resolve(editing Editing) Outcome {
	outcome := Outcome{Target: editing.Target, Value: editing.Pending}

	if err := task.ValidateValue(editing.Target.Field, editing.Pending); err != nil {
		outcome.Kind = OutcomeRejected
		outcome.Err = err
		return outcome
	}

	stored, exists := session.store.Get(editing.Target.ID)
	if !exists {
		outcome.Kind = OutcomeNotFound
		outcome.Err = &task.NotFoundError{ID: editing.Target.ID}
		return outcome
	}

	candidate := stored.Clone()
	if err := candidate.Apply(editing.Target.Field, editing.Pending); err != nil {
		outcome.Kind = OutcomeRejected
		outcome.Err = err
		return outcome
	}
	if candidate.FieldValue(editing.Target.Field) == stored.FieldValue(editing.Target.Field) {
		outcome.Kind = OutcomeUnchanged
		outcome.Task = stored
		return outcome
	}

	updated, err := session.store.UpdateField(editing.Target.ID, editing.Target.Field, editing.Pending)
	if err != nil {
		var notFound *task.NotFoundError
		if errors.As(err, &notFound) {
			outcome.Kind = OutcomeNotFound
		} else {
			outcome.Kind = OutcomeRejected
		}
		outcome.Err = err
		return outcome
	}
	outcome.Kind = OutcomeCommitted
	outcome.Task = updated
	return outcome
}

func (session *Session) transition(to State, outcome Outcome) {
	from := session.state
	session.state = to

	if outcome.Kind != OutcomeNone {
		attributes := []any{"target", outcome.Target.String(), "outcome", outcome.Kind.String()}
		if outcome.Err != nil {
			attributes = append(attributes, "error", outcome.Err)
		}
		session.logger.Debug("edit finalized", attributes...)
	} else if _, wasIdle := from.(Idle); wasIdle {
		session.logger.Debug("edit started", "target", outcome.Target.String())
	}

	if session.onTransition != nil {
		session.onTransition(Transition{From: from, To: to, Outcome: outcome})
	}
}
