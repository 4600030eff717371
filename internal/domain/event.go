package domain

import "time"

// DefaultColor is the color token assigned to events that were created
// without an explicit color choice.
const DefaultColor = "#9333EA"

// Event is a calendar event on the weekly planner: either a timed block on
// the day timeline or an all-day banner. Start and End are instants in the
// host's local time. The engine does not enforce End >= Start; layout math
// assumes it and may produce a non-positive extent otherwise.
//
// A multi-day event belongs to the calendar day of its Start only; it is
// never split across midnight.
type Event struct {
	ID          string
	Title       string
	Start       time.Time
	End         time.Time
	AllDay      bool
	Color       string
	Description string

	// Provenance, set only when the event was promoted from a task.
	// TaskID may dangle after the source task is deleted; nothing
	// dereferences it past the conversion.
	FromTask bool
	TaskID   string
}

// Clone returns a copy of the event, used for modal drafts so edits never
// touch the stored record until confirmed.
func (e *Event) Clone() *Event {
	c := *e
	return &c
}

// OnDay reports whether the event's start falls on the given calendar day.
func (e *Event) OnDay(day time.Time) bool {
	return SameDay(e.Start, day)
}

// SetDate moves both Start and End onto the given calendar date, preserving
// each instant's time-of-day. Changing the date of a draft must shift the
// whole block, not just its start.
func (e *Event) SetDate(date time.Time) {
	e.Start = onDate(e.Start, date)
	e.End = onDate(e.End, date)
}

// SetStartTime replaces the time-of-day of Start, keeping its date.
func (e *Event) SetStartTime(hour, minute int) {
	e.Start = atTime(e.Start, hour, minute)
}

// SetEndTime replaces the time-of-day of End, keeping its date.
func (e *Event) SetEndTime(hour, minute int) {
	e.End = atTime(e.End, hour, minute)
}

// Duration returns End - Start. Negative when the event is out of order.
func (e *Event) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

func onDate(t, date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func atTime(t time.Time, hour, minute int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, minute, 0, 0, t.Location())
}
