package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/daybookapp/daybook/internal/domain"
	"github.com/daybookapp/daybook/internal/planner"
)

// Timeline rows are half-hour slices of the visible window.
const unitsPerRow = planner.UnitsPerHour / 2

// RenderTimeline paints the single-day view: an all-day banner strip
// followed by an hour-gutter timeline with each timed event placed by its
// layout offset and extent. Events outside the visible window are skipped
// here, mirroring the way the engine leaves visibility filtering to the
// renderer.
func RenderTimeline(day time.Time, timed, allDay []*domain.Event, r domain.TimeRange) string {
	var b strings.Builder

	b.WriteString(Header(DayTitle(day)))
	b.WriteString("\n")

	if len(allDay) > 0 {
		badges := make([]string, 0, len(allDay))
		for _, e := range allDay {
			badges = append(badges, EventBadge(e.Color, e.Title))
		}
		b.WriteString(Dim("All-day  ") + strings.Join(badges, " "))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	rows := r.Hours() * 2
	content := make([][]string, rows)

	for _, e := range timed {
		if !planner.VisibleInRange(e, r) {
			continue
		}
		l := planner.Layout(e, r)
		start := int(math.Floor(l.Offset / unitsPerRow))
		end := int(math.Ceil((l.Offset + l.Extent) / unitsPerRow))
		if end <= start {
			// Zero or negative extent still gets a marker row.
			end = start + 1
		}
		if start < 0 {
			start = 0
		}
		if end > rows {
			end = rows
		}
		style := EventStyle(e.Color)
		for row := start; row < end && row < rows; row++ {
			if row == start {
				label := fmt.Sprintf("▌ %s  %s – %s", e.Title, ClockTime(e.Start), ClockTime(e.End))
				content[row] = append(content[row], style.Render(label))
			} else {
				content[row] = append(content[row], style.Render("▌"))
			}
		}
	}

	for row := 0; row < rows; row++ {
		gutter := "      "
		if row%2 == 0 {
			gutter = fmt.Sprintf("%5s ", HourLabel(r.Start+row/2))
		}
		b.WriteString(Dim(gutter) + Dim("┊ ") + strings.Join(content[row], "  "))
		b.WriteString("\n")
	}
	b.WriteString(Dim(fmt.Sprintf("%5s ", HourLabel(r.End))))

	return b.String()
}
