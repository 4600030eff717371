// Package planner holds the weekly planner's scheduling engine: the per-day
// task lists, the calendar event list, timeline layout math, the week/day
// view state machine, and the modal editor controller. The package is
// UI-free; presentation reads its derived views and calls its commands.
package planner

import (
	"sort"
	"time"

	"github.com/daybookapp/daybook/internal/domain"
)

// EventStore is the flat list of calendar events, timed and all-day.
// Read methods return cloned records so snapshots taken by a renderer
// remain valid across later mutations.
type EventStore struct {
	events []*domain.Event
}

// NewEventStore creates a store seeded with the given events.
func NewEventStore(events []*domain.Event) *EventStore {
	return &EventStore{events: events}
}

// Add appends an event. The caller supplies the ID; no uniqueness check is
// made beyond trusting it.
func (s *EventStore) Add(e *domain.Event) {
	s.events = append(s.events, e.Clone())
}

// Update replaces the stored event with the same ID. No-op if absent.
func (s *EventStore) Update(e *domain.Event) {
	for i, existing := range s.events {
		if existing.ID == e.ID {
			s.events[i] = e.Clone()
			return
		}
	}
}

// Delete removes the event with the given ID. No-op if absent.
func (s *EventStore) Delete(id string) {
	kept := s.events[:0]
	for _, e := range s.events {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	s.events = kept
}

// Get returns a copy of the event with the given ID.
func (s *EventStore) Get(id string) (*domain.Event, bool) {
	for _, e := range s.events {
		if e.ID == id {
			return e.Clone(), true
		}
	}
	return nil, false
}

// All returns a copy of every event, in insertion order.
func (s *EventStore) All() []*domain.Event {
	out := make([]*domain.Event, len(s.events))
	for i, e := range s.events {
		out[i] = e.Clone()
	}
	return out
}

// ForDay returns the timed events whose start falls on the given calendar
// day, sorted ascending by start. The ordering is load-bearing: the day
// timeline paints top to bottom. All-day events are excluded; see
// AllDayForDay.
func (s *EventStore) ForDay(day time.Time) []*domain.Event {
	var out []*domain.Event
	for _, e := range s.events {
		if !e.AllDay && e.OnDay(day) {
			out = append(out, e.Clone())
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start.Before(out[j].Start)
	})
	return out
}

// AllDayForDay returns the all-day events whose start falls on the given day.
func (s *EventStore) AllDayForDay(day time.Time) []*domain.Event {
	var out []*domain.Event
	for _, e := range s.events {
		if e.AllDay && e.OnDay(day) {
			out = append(out, e.Clone())
		}
	}
	return out
}
