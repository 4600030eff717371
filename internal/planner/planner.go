package planner

import (
	"fmt"
	"strings"
	"time"

	"github.com/daybookapp/daybook/internal/domain"
	"github.com/daybookapp/daybook/internal/storage"
	"github.com/google/uuid"
)

// fallbackHour is where a conversion draft lands when the current hour is
// outside the visible window.
const fallbackHour = 12

// Planner is the engine aggregate: stores, view state, modal controller and
// the visible hour window, hydrated from and written through the slot
// store. Every mutating command persists the state slices it changed
// before returning; persistence failures are logged inside the adapter and
// never roll back the in-memory state.
type Planner struct {
	Events *EventStore
	Tasks  *TaskStore
	View   *ViewState
	Modal  *ModalController

	timeRange domain.TimeRange
	store     *storage.SlotStore
	clock     domain.Clock
}

// New hydrates a planner from the slot store. Missing or unreadable slots
// fall back to defaults: empty events and tasks, week view, no selection,
// the 08:00-20:00 window.
func New(store *storage.SlotStore, clock domain.Clock) *Planner {
	selected, hasSelection := store.LoadSelectedDay()
	return &Planner{
		Events:    NewEventStore(store.LoadEvents()),
		Tasks:     NewTaskStore(store.LoadTasks()),
		View:      NewViewState(store.LoadView(), selected, hasSelection, clock.Now()),
		Modal:     NewModalController(),
		timeRange: store.LoadTimeRange(),
		store:     store,
		clock:     clock,
	}
}

// TimeRange returns the visible hour window.
func (p *Planner) TimeRange() domain.TimeRange { return p.timeRange }

// SetTimeRange applies a new hour window. Invalid windows are a silent
// no-op, keeping the prior range.
func (p *Planner) SetTimeRange(start, end int) {
	next := p.timeRange.SetRange(start, end)
	if next == p.timeRange {
		return
	}
	p.timeRange = next
	p.store.SaveTimeRange(p.timeRange)
}

// ── tasks ────────────────────────────────────────────────────────────────

// AddTask appends a new empty task to the day's list.
func (p *Planner) AddTask(day time.Time) *domain.Task {
	task := p.Tasks.Add(day)
	p.saveTasks()
	return task
}

// UpdateTask replaces a task's text.
func (p *Planner) UpdateTask(day time.Time, taskID, text string) {
	p.Tasks.Update(day, taskID, text)
	p.saveTasks()
}

// ToggleTask flips a task's completed flag.
func (p *Planner) ToggleTask(day time.Time, taskID string) {
	p.Tasks.Toggle(day, taskID)
	p.saveTasks()
}

// DeleteTask removes a task. Destructive; callers confirm with the user
// first.
func (p *Planner) DeleteTask(day time.Time, taskID string) {
	p.Tasks.Delete(day, taskID)
	p.saveTasks()
}

// ── events ───────────────────────────────────────────────────────────────

// AddEvent appends an event, assigning an ID when the caller left it empty.
func (p *Planner) AddEvent(e *domain.Event) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Color == "" {
		e.Color = domain.DefaultColor
	}
	p.Events.Add(e)
	p.saveEvents()
}

// UpdateEvent replaces the stored event with the same ID.
func (p *Planner) UpdateEvent(e *domain.Event) {
	p.Events.Update(e)
	p.saveEvents()
}

// DeleteEvent removes an event. Destructive; callers confirm first.
func (p *Planner) DeleteEvent(id string) {
	p.Events.Delete(id)
	p.saveEvents()
}

// Layout positions an event against the active hour window.
func (p *Planner) Layout(e *domain.Event) BlockLayout {
	return Layout(e, p.timeRange)
}

// ── view navigation ──────────────────────────────────────────────────────

// ShowDay switches to day view on the given day.
func (p *Planner) ShowDay(day time.Time) {
	p.View.ShowDay(day)
	p.saveView()
}

// ShowDayResume switches to day view, resuming the last selected day.
func (p *Planner) ShowDayResume() {
	p.View.ShowDayResume()
	p.saveView()
}

// ShowWeek switches to the week grid.
func (p *Planner) ShowWeek() {
	p.View.ShowWeek()
	p.saveView()
}

// GoToToday selects today and switches to day view.
func (p *Planner) GoToToday() {
	p.View.GoToToday(p.clock.Now())
	p.saveView()
}

// Navigate shifts the visible day or week by direction (-1 or +1).
func (p *Planner) Navigate(direction int) {
	p.View.Navigate(direction)
	p.saveView()
}

// ── modal flows ──────────────────────────────────────────────────────────

// OpenAdd opens the add-event modal with a one-hour draft at hour on day.
func (p *Planner) OpenAdd(day time.Time, hour int) *domain.Event {
	start := domain.AtHour(day, hour)
	draft := &domain.Event{
		ID:    uuid.New().String(),
		Start: start,
		End:   start.Add(time.Hour),
		Color: domain.DefaultColor,
	}
	p.Modal.OpenAdd(draft)
	return draft
}

// OpenEdit opens the edit modal over the stored event with the given ID.
func (p *Planner) OpenEdit(id string) (*domain.Event, error) {
	event, ok := p.Events.Get(id)
	if !ok {
		return nil, fmt.Errorf("event %s not found", id)
	}
	p.Modal.OpenEdit(event)
	return p.Modal.Draft(), nil
}

// BeginConvert opens the conversion modal for the given task: the draft
// takes the task's text as its title and a one-hour slot starting at the
// current hour when that hour is visible, otherwise at noon.
func (p *Planner) BeginConvert(day time.Time, taskID string) (*domain.Event, error) {
	task, ok := p.Tasks.Get(day, taskID)
	if !ok {
		return nil, fmt.Errorf("task %s not found on %s", taskID, domain.DayKey(day))
	}

	hour := p.clock.Now().Hour()
	if !p.timeRange.ContainsHour(hour) {
		hour = fallbackHour
	}
	start := domain.AtHour(day, hour)

	draft := &domain.Event{
		ID:       uuid.New().String(),
		Title:    task.Text,
		Start:    start,
		End:      start.Add(time.Hour),
		Color:    domain.DefaultColor,
		FromTask: true,
		TaskID:   task.ID,
	}
	p.Modal.OpenConvert(draft, day, taskID)
	return draft, nil
}

// ConfirmAdd commits the add draft when its title is non-blank; blank
// titles are dropped silently. The modal closes either way.
func (p *Planner) ConfirmAdd() {
	if p.Modal.Kind() == domain.ModalAddingEvent {
		if draft := p.Modal.Draft(); draft != nil && !blank(draft.Title) {
			p.AddEvent(draft)
		}
	}
	p.Modal.Cancel()
}

// ConfirmEdit commits the edit draft over the stored event and closes the
// modal.
func (p *Planner) ConfirmEdit() {
	if p.Modal.Kind() == domain.ModalEditingEvent {
		if draft := p.Modal.Draft(); draft != nil {
			p.UpdateEvent(draft)
		}
	}
	p.Modal.Cancel()
}

// ConfirmConvert commits the conversion: the draft becomes an event when
// its title is non-blank, and the source task is deleted when
// removeOriginal is set. A blank title commits nothing but still closes
// the modal, leaving the task untouched.
func (p *Planner) ConfirmConvert(removeOriginal bool) {
	if p.Modal.Kind() == domain.ModalConvertingTask {
		if draft := p.Modal.Draft(); draft != nil && !blank(draft.Title) {
			p.AddEvent(draft)
			if removeOriginal {
				day, taskID := p.Modal.SourceTask()
				p.DeleteTask(day, taskID)
			}
		}
	}
	p.Modal.Cancel()
}

// Cancel closes any open modal and discards its draft.
func (p *Planner) Cancel() {
	p.Modal.Cancel()
}

// ── reset ────────────────────────────────────────────────────────────────

// Reset wipes every persisted slot and restores in-memory defaults. The
// one bulk-destructive operation; callers must confirm before invoking.
func (p *Planner) Reset() error {
	if err := p.store.Reset(); err != nil {
		return err
	}
	p.Events = NewEventStore(nil)
	p.Tasks = NewTaskStore(nil)
	p.View = NewViewState(domain.ViewWeek, time.Time{}, false, p.clock.Now())
	p.Modal = NewModalController()
	p.timeRange = domain.DefaultTimeRange()
	return nil
}

func (p *Planner) saveEvents() { p.store.SaveEvents(p.Events.All()) }
func (p *Planner) saveTasks()  { p.store.SaveTasks(p.Tasks.Map()) }

func (p *Planner) saveView() {
	p.store.SaveView(p.View.Mode())
	if day, ok := p.View.SelectedDay(); ok {
		p.store.SaveSelectedDay(day)
	}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
