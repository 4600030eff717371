package testutil

import (
	"time"

	"github.com/daybookapp/daybook/internal/domain"
	"github.com/google/uuid"
)

// Day is the reference day used across planner tests: Tuesday 2025-02-18.
// Its week runs Sunday 2025-02-16 through Saturday 2025-02-22.
var Day = time.Date(2025, 2, 18, 0, 0, 0, 0, time.Local)

// At returns an instant at hh:mm on the reference day.
func At(hour, minute int) time.Time {
	return time.Date(2025, 2, 18, hour, minute, 0, 0, time.Local)
}

// Event options
type EventOption func(*domain.Event)

func WithAllDay() EventOption {
	return func(e *domain.Event) {
		e.AllDay = true
	}
}

func WithColor(color string) EventOption {
	return func(e *domain.Event) {
		e.Color = color
	}
}

func WithDescription(desc string) EventOption {
	return func(e *domain.Event) {
		e.Description = desc
	}
}

func WithSpan(start, end time.Time) EventOption {
	return func(e *domain.Event) {
		e.Start = start
		e.End = end
	}
}

// NewTestEvent builds a one-hour event at 09:00 on the reference day.
func NewTestEvent(title string, opts ...EventOption) *domain.Event {
	e := &domain.Event{
		ID:    uuid.New().String(),
		Title: title,
		Start: At(9, 0),
		End:   At(10, 0),
		Color: domain.DefaultColor,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Task options
type TaskOption func(*domain.Task)

func WithCompleted() TaskOption {
	return func(t *domain.Task) {
		t.Completed = true
	}
}

// NewTestTask builds a task with the given text.
func NewTestTask(text string, opts ...TaskOption) *domain.Task {
	task := &domain.Task{
		ID:   uuid.New().String(),
		Text: text,
	}
	for _, opt := range opts {
		opt(task)
	}
	return task
}
