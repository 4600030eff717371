package domain

// ViewMode selects which planner surface is active.
type ViewMode string

const (
	ViewWeek ViewMode = "week"
	ViewDay  ViewMode = "day"
)

// ModalKind identifies which editor modal is open. Exactly one kind is
// active at a time; ModalNone means no modal.
type ModalKind string

const (
	ModalNone           ModalKind = "none"
	ModalAddingEvent    ModalKind = "adding_event"
	ModalEditingEvent   ModalKind = "editing_event"
	ModalConvertingTask ModalKind = "converting_task"
)
