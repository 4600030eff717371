// Package ics exports the planner's events as an iCalendar document so
// other calendar tools can import them.
package ics

import (
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/daybookapp/daybook/internal/domain"
)

const prodID = "-//daybook//weekly planner//EN"

// Export builds a VCALENDAR from the given events. Timed events carry their
// start and end instants; all-day events are exported date-only on the day
// of their start, matching the planner's single-day containment rule.
func Export(events []*domain.Event, now time.Time) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(prodID)

	for _, e := range events {
		ve := cal.AddEvent(e.ID)
		ve.SetDtStampTime(now)
		ve.SetSummary(e.Title)
		if e.Description != "" {
			ve.SetDescription(e.Description)
		}
		if e.AllDay {
			day := domain.StartOfDay(e.Start)
			ve.SetAllDayStartAt(day)
			ve.SetAllDayEndAt(day.AddDate(0, 0, 1))
		} else {
			ve.SetStartAt(e.Start)
			ve.SetEndAt(e.End)
		}
	}

	return cal.Serialize()
}
