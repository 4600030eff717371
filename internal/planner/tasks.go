package planner

import (
	"time"

	"github.com/daybookapp/daybook/internal/domain"
	"github.com/google/uuid"
)

// TaskStore keeps the per-day ordered task lists, keyed by day key.
// Days are lazy: a day has no list until its first task is added.
// Every mutation replaces the day's whole list, so slices handed out
// earlier are never changed underneath their holder.
type TaskStore struct {
	tasks map[string][]*domain.Task
}

// NewTaskStore creates a store seeded with the given day-key → list map.
func NewTaskStore(tasks map[string][]*domain.Task) *TaskStore {
	if tasks == nil {
		tasks = make(map[string][]*domain.Task)
	}
	return &TaskStore{tasks: tasks}
}

// Add appends a new empty task to the day's list and returns it. The UI
// fills in the text afterward.
func (s *TaskStore) Add(day time.Time) *domain.Task {
	key := domain.DayKey(day)
	task := &domain.Task{ID: uuid.New().String()}
	s.tasks[key] = append(append([]*domain.Task{}, s.tasks[key]...), task)
	return task.Clone()
}

// Update replaces the text of the matching task. No-op if not found.
func (s *TaskStore) Update(day time.Time, taskID, text string) {
	s.replace(day, taskID, func(t *domain.Task) *domain.Task {
		c := t.Clone()
		c.Text = text
		return c
	})
}

// Toggle flips the completed flag of the matching task.
func (s *TaskStore) Toggle(day time.Time, taskID string) {
	s.replace(day, taskID, func(t *domain.Task) *domain.Task {
		c := t.Clone()
		c.Completed = !c.Completed
		return c
	})
}

// Delete removes the task from the day's list.
func (s *TaskStore) Delete(day time.Time, taskID string) {
	key := domain.DayKey(day)
	old := s.tasks[key]
	kept := make([]*domain.Task, 0, len(old))
	for _, t := range old {
		if t.ID != taskID {
			kept = append(kept, t)
		}
	}
	s.tasks[key] = kept
}

// Get returns a copy of the matching task.
func (s *TaskStore) Get(day time.Time, taskID string) (*domain.Task, bool) {
	for _, t := range s.tasks[domain.DayKey(day)] {
		if t.ID == taskID {
			return t.Clone(), true
		}
	}
	return nil, false
}

// ForDay returns the day's tasks in insertion order; empty for untouched
// days. The returned tasks are copies.
func (s *TaskStore) ForDay(day time.Time) []*domain.Task {
	list := s.tasks[domain.DayKey(day)]
	out := make([]*domain.Task, len(list))
	for i, t := range list {
		out[i] = t.Clone()
	}
	return out
}

// Map returns the full day-key → list map for persistence.
func (s *TaskStore) Map() map[string][]*domain.Task {
	out := make(map[string][]*domain.Task, len(s.tasks))
	for key, list := range s.tasks {
		copied := make([]*domain.Task, len(list))
		for i, t := range list {
			copied[i] = t.Clone()
		}
		out[key] = copied
	}
	return out
}

func (s *TaskStore) replace(day time.Time, taskID string, fn func(*domain.Task) *domain.Task) {
	key := domain.DayKey(day)
	old := s.tasks[key]
	next := make([]*domain.Task, len(old))
	for i, t := range old {
		if t.ID == taskID {
			next[i] = fn(t)
		} else {
			next[i] = t
		}
	}
	s.tasks[key] = next
}
