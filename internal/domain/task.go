package domain

import "strings"

// Task is a free-floating per-day checklist item. Tasks carry no date of
// their own; the TaskStore keys them by the day they belong to.
type Task struct {
	ID        string
	Text      string
	Completed bool
}

// Clone returns a copy of the task.
func (t *Task) Clone() *Task {
	c := *t
	return &c
}

// Blank reports whether the task has no visible content.
func (t *Task) Blank() bool {
	return strings.TrimSpace(t.Text) == ""
}
