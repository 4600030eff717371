package storage

import (
	"encoding/json"
	"time"

	"github.com/daybookapp/daybook/internal/domain"
)

// On-disk record shapes. Instants are stored as ISO-8601 (RFC 3339) strings;
// decoding back into time.Time happens here and only here, so no reader ever
// sees a raw date string.

type eventRecord struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Start       string `json:"start"`
	End         string `json:"end"`
	AllDay      bool   `json:"allDay,omitempty"`
	Color       string `json:"color,omitempty"`
	Description string `json:"description,omitempty"`
	FromTask    bool   `json:"fromTask,omitempty"`
	TaskID      string `json:"taskId,omitempty"`
}

type taskRecord struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

func encodeEvent(e *domain.Event) eventRecord {
	return eventRecord{
		ID:          e.ID,
		Title:       e.Title,
		Start:       e.Start.Format(time.RFC3339),
		End:         e.End.Format(time.RFC3339),
		AllDay:      e.AllDay,
		Color:       e.Color,
		Description: e.Description,
		FromTask:    e.FromTask,
		TaskID:      e.TaskID,
	}
}

func decodeEvent(r eventRecord) (*domain.Event, error) {
	start, err := time.Parse(time.RFC3339, r.Start)
	if err != nil {
		return nil, err
	}
	end, err := time.Parse(time.RFC3339, r.End)
	if err != nil {
		return nil, err
	}
	return &domain.Event{
		ID:          r.ID,
		Title:       r.Title,
		Start:       start.In(time.Local),
		End:         end.In(time.Local),
		AllDay:      r.AllDay,
		Color:       r.Color,
		Description: r.Description,
		FromTask:    r.FromTask,
		TaskID:      r.TaskID,
	}, nil
}

// SaveEvents persists the full event list.
func (s *SlotStore) SaveEvents(events []*domain.Event) {
	records := make([]eventRecord, 0, len(events))
	for _, e := range events {
		records = append(records, encodeEvent(e))
	}
	data, err := json.Marshal(records)
	if err != nil {
		s.logf("storage: could not encode %s: %v", SlotEvents, err)
		return
	}
	s.put(SlotEvents, string(data))
}

// LoadEvents returns the persisted event list, or an empty list when the
// slot is absent or unreadable. Records whose dates fail to parse are
// dropped rather than surfaced.
func (s *SlotStore) LoadEvents() []*domain.Event {
	raw, ok := s.get(SlotEvents)
	if !ok {
		return nil
	}
	var records []eventRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		s.logf("storage: could not decode %s: %v", SlotEvents, err)
		return nil
	}
	events := make([]*domain.Event, 0, len(records))
	for _, r := range records {
		e, err := decodeEvent(r)
		if err != nil {
			s.logf("storage: dropping event %s: %v", r.ID, err)
			continue
		}
		events = append(events, e)
	}
	return events
}

// SaveTasks persists the day-key → task-list map.
func (s *SlotStore) SaveTasks(tasks map[string][]*domain.Task) {
	records := make(map[string][]taskRecord, len(tasks))
	for day, list := range tasks {
		rs := make([]taskRecord, 0, len(list))
		for _, t := range list {
			rs = append(rs, taskRecord{ID: t.ID, Text: t.Text, Completed: t.Completed})
		}
		records[day] = rs
	}
	data, err := json.Marshal(records)
	if err != nil {
		s.logf("storage: could not encode %s: %v", SlotTasks, err)
		return
	}
	s.put(SlotTasks, string(data))
}

// LoadTasks returns the persisted task map, or an empty map.
func (s *SlotStore) LoadTasks() map[string][]*domain.Task {
	tasks := make(map[string][]*domain.Task)
	raw, ok := s.get(SlotTasks)
	if !ok {
		return tasks
	}
	var records map[string][]taskRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		s.logf("storage: could not decode %s: %v", SlotTasks, err)
		return tasks
	}
	for day, rs := range records {
		list := make([]*domain.Task, 0, len(rs))
		for _, r := range rs {
			list = append(list, &domain.Task{ID: r.ID, Text: r.Text, Completed: r.Completed})
		}
		tasks[day] = list
	}
	return tasks
}

// SaveView persists the active view mode as its bare string form.
func (s *SlotStore) SaveView(mode domain.ViewMode) {
	s.put(SlotView, string(mode))
}

// LoadView returns the persisted view mode, defaulting to the week grid.
func (s *SlotStore) LoadView() domain.ViewMode {
	raw, ok := s.get(SlotView)
	if !ok {
		return domain.ViewWeek
	}
	switch domain.ViewMode(raw) {
	case domain.ViewDay:
		return domain.ViewDay
	default:
		return domain.ViewWeek
	}
}

// SaveSelectedDay persists the day-view selection as an ISO-8601 timestamp.
// The slot is only ever written once a day has been selected.
func (s *SlotStore) SaveSelectedDay(day time.Time) {
	s.put(SlotSelectedDay, day.Format(time.RFC3339))
}

// LoadSelectedDay returns the persisted selection, ok=false if none was
// ever made or the stored value cannot be parsed.
func (s *SlotStore) LoadSelectedDay() (time.Time, bool) {
	raw, ok := s.get(SlotSelectedDay)
	if !ok {
		return time.Time{}, false
	}
	day, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		s.logf("storage: could not decode %s: %v", SlotSelectedDay, err)
		return time.Time{}, false
	}
	return day.In(time.Local), true
}

// SaveTimeRange persists the visible hour window.
func (s *SlotStore) SaveTimeRange(r domain.TimeRange) {
	data, err := json.Marshal(struct {
		Start int `json:"start"`
		End   int `json:"end"`
	}{r.Start, r.End})
	if err != nil {
		s.logf("storage: could not encode %s: %v", SlotTimeRange, err)
		return
	}
	s.put(SlotTimeRange, string(data))
}

// LoadTimeRange returns the persisted hour window. Absent, unreadable, or
// out-of-order values fall back to the 08:00-20:00 default.
func (s *SlotStore) LoadTimeRange() domain.TimeRange {
	raw, ok := s.get(SlotTimeRange)
	if !ok {
		return domain.DefaultTimeRange()
	}
	var r struct {
		Start int `json:"start"`
		End   int `json:"end"`
	}
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		s.logf("storage: could not decode %s: %v", SlotTimeRange, err)
		return domain.DefaultTimeRange()
	}
	tr := domain.TimeRange{Start: r.Start, End: r.End}
	if !tr.Valid() {
		return domain.DefaultTimeRange()
	}
	return tr
}
