package planner

import (
	"time"

	"github.com/daybookapp/daybook/internal/domain"
)

// ViewState tracks which of the week grid and the single-day timeline is on
// screen, the selected day, and the week anchor. There is no terminal
// state: it is a persistent mode toggle.
//
// The selected day is meaningful only in day mode, but is retained while in
// week mode so returning to day view resumes where the user left off.
type ViewState struct {
	mode         domain.ViewMode
	selectedDay  time.Time
	hasSelection bool
	anchor       time.Time // any day inside the currently shown week
}

// NewViewState creates a view state anchored at now.
func NewViewState(mode domain.ViewMode, selectedDay time.Time, hasSelection bool, now time.Time) *ViewState {
	return &ViewState{
		mode:         mode,
		selectedDay:  domain.StartOfDay(selectedDay),
		hasSelection: hasSelection,
		anchor:       domain.StartOfDay(now),
	}
}

// Mode returns the active view mode.
func (v *ViewState) Mode() domain.ViewMode { return v.mode }

// SelectedDay returns the day-view selection, ok=false if no day was ever
// selected.
func (v *ViewState) SelectedDay() (time.Time, bool) {
	return v.selectedDay, v.hasSelection
}

// Anchor returns the day anchoring the shown week.
func (v *ViewState) Anchor() time.Time { return v.anchor }

// WeekDays returns the seven days of the anchored week, Sunday first.
func (v *ViewState) WeekDays() []time.Time {
	return domain.WeekDays(v.anchor)
}

// ShowDay switches to day view on the given day.
func (v *ViewState) ShowDay(day time.Time) {
	v.mode = domain.ViewDay
	v.selectedDay = domain.StartOfDay(day)
	v.hasSelection = true
}

// ShowDayResume switches to day view on the last selected day, falling back
// to the anchor when no day was ever selected.
func (v *ViewState) ShowDayResume() {
	if v.hasSelection {
		v.ShowDay(v.selectedDay)
		return
	}
	v.ShowDay(v.anchor)
}

// ShowWeek switches to the week grid. The selection is retained, not
// cleared.
func (v *ViewState) ShowWeek() {
	v.mode = domain.ViewWeek
}

// GoToToday selects today and switches to day view.
func (v *ViewState) GoToToday(now time.Time) {
	v.anchor = domain.StartOfDay(now)
	v.ShowDay(now)
}

// Navigate shifts the visible period: one day per step in day mode, one
// week per step in week mode. Direction is -1 or +1.
func (v *ViewState) Navigate(direction int) {
	if v.mode == domain.ViewDay && v.hasSelection {
		v.selectedDay = v.selectedDay.AddDate(0, 0, direction)
		return
	}
	v.anchor = v.anchor.AddDate(0, 0, 7*direction)
}
