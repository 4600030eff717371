package planner

import (
	"time"

	"github.com/daybookapp/daybook/internal/domain"
)

// ModalController tracks which editor modal is open and holds its draft.
// The state is a single tagged value, so at most one modal can exist at a
// time by construction.
type ModalController struct {
	kind  domain.ModalKind
	draft *domain.Event

	// Conversion bookkeeping, set only in ModalConvertingTask.
	sourceDay      time.Time
	sourceTaskID   string
	removeOriginal bool
}

// NewModalController creates a closed controller.
func NewModalController() *ModalController {
	return &ModalController{kind: domain.ModalNone}
}

// Kind returns the active modal kind, ModalNone when closed.
func (m *ModalController) Kind() domain.ModalKind { return m.kind }

// Draft returns the modal's in-progress event. Edits to the returned
// record are the modal's working copy; nothing reaches the event store
// until a confirm.
func (m *ModalController) Draft() *domain.Event { return m.draft }

// RemoveOriginal reports whether committing the conversion will delete the
// source task. Defaults to true when the conversion modal opens.
func (m *ModalController) RemoveOriginal() bool { return m.removeOriginal }

// SetRemoveOriginal toggles the conversion's delete-source flag.
func (m *ModalController) SetRemoveOriginal(remove bool) {
	m.removeOriginal = remove
}

// SourceTask returns the day and task the conversion started from.
func (m *ModalController) SourceTask() (time.Time, string) {
	return m.sourceDay, m.sourceTaskID
}

// OpenAdd opens the add-event modal with a one-hour draft starting at the
// given hour on the given day.
func (m *ModalController) OpenAdd(draft *domain.Event) {
	m.reset()
	m.kind = domain.ModalAddingEvent
	m.draft = draft
}

// OpenEdit opens the edit modal over a clone of the stored event.
func (m *ModalController) OpenEdit(event *domain.Event) {
	m.reset()
	m.kind = domain.ModalEditingEvent
	m.draft = event.Clone()
}

// OpenConvert opens the task-conversion modal with a pre-filled draft.
func (m *ModalController) OpenConvert(draft *domain.Event, day time.Time, taskID string) {
	m.reset()
	m.kind = domain.ModalConvertingTask
	m.draft = draft
	m.sourceDay = day
	m.sourceTaskID = taskID
	m.removeOriginal = true
}

// Cancel closes the modal and discards the draft. Idempotent: cancelling a
// closed controller stays closed.
func (m *ModalController) Cancel() {
	m.reset()
}

func (m *ModalController) reset() {
	m.kind = domain.ModalNone
	m.draft = nil
	m.sourceDay = time.Time{}
	m.sourceTaskID = ""
	m.removeOriginal = false
}
