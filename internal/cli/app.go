// Package cli is the command surface over the planner engine: cobra
// commands for scripted use and a bubbletea model for interactive
// browsing. All state changes go through the planner; this package only
// parses input and renders output.
package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/daybookapp/daybook/internal/domain"
	"github.com/daybookapp/daybook/internal/planner"
)

// App holds what the commands need: the hydrated planner and the clock the
// engine was built with.
type App struct {
	Planner *planner.Planner
	Clock   domain.Clock

	// DefaultColor is the color assigned to new events when no --color flag
	// is given. Empty means the engine default.
	DefaultColor string
}

// parseDay parses a yyyy-MM-dd argument, with "" meaning today.
func (a *App) parseDay(arg string) (time.Time, error) {
	if arg == "" {
		return domain.StartOfDay(a.Clock.Now()), nil
	}
	day, err := domain.ParseDayKey(arg)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want yyyy-MM-dd)", arg)
	}
	return day, nil
}

// parseClock parses an HH:MM argument into hour and minute.
func parseClock(arg string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", arg)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time %q (want HH:MM)", arg)
	}
	return t.Hour(), t.Minute(), nil
}

// resolveEvent finds the event whose ID starts with the given prefix.
func (a *App) resolveEvent(prefix string) (*domain.Event, error) {
	var match *domain.Event
	for _, e := range a.Planner.Events.All() {
		if strings.HasPrefix(e.ID, prefix) {
			if match != nil {
				return nil, fmt.Errorf("event ID %q is ambiguous", prefix)
			}
			match = e
		}
	}
	if match == nil {
		return nil, fmt.Errorf("no event matches %q", prefix)
	}
	return match, nil
}

// resolveTask finds a task on the given day by 1-based position or ID
// prefix.
func (a *App) resolveTask(day time.Time, ref string) (*domain.Task, error) {
	tasks := a.Planner.Tasks.ForDay(day)
	if n, err := parseIndex(ref); err == nil {
		if n < 1 || n > len(tasks) {
			return nil, fmt.Errorf("day %s has no task #%d", domain.DayKey(day), n)
		}
		return tasks[n-1], nil
	}
	var match *domain.Task
	for _, t := range tasks {
		if strings.HasPrefix(t.ID, ref) {
			if match != nil {
				return nil, fmt.Errorf("task ID %q is ambiguous", ref)
			}
			match = t
		}
	}
	if match == nil {
		return nil, fmt.Errorf("no task on %s matches %q", domain.DayKey(day), ref)
	}
	return match, nil
}

func parseIndex(s string) (int, error) {
	var n int
	_, err := fmt.Sscanf(s, "%d", &n)
	if err != nil || fmt.Sprintf("%d", n) != s {
		return 0, fmt.Errorf("not an index")
	}
	return n, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
