package planner

import "github.com/daybookapp/daybook/internal/domain"

// UnitsPerHour is the vertical scale of the day timeline: one hour of
// elapsed time spans 60 layout units.
const UnitsPerHour = 60

// BlockLayout is the computed vertical placement of a timed event block
// within the day timeline.
type BlockLayout struct {
	Offset float64 // units below the top of the visible window
	Extent float64 // block height in units
}

// Layout positions an event against the visible hour window. Offsets are
// measured from timeRange.Start using the event's time-of-day only, so a
// block never reaches into a neighboring day. Layout assumes the event is
// at least partially visible; callers filter with VisibleInRange first.
// An out-of-order event (end before start) yields a negative extent.
func Layout(e *domain.Event, timeRange domain.TimeRange) BlockLayout {
	startHour := float64(e.Start.Hour()) + float64(e.Start.Minute())/60
	endHour := float64(e.End.Hour()) + float64(e.End.Minute())/60
	return BlockLayout{
		Offset: (startHour - float64(timeRange.Start)) * UnitsPerHour,
		Extent: (endHour - startHour) * UnitsPerHour,
	}
}

// VisibleInRange reports whether any part of the event's hour span falls
// inside the visible window.
func VisibleInRange(e *domain.Event, timeRange domain.TimeRange) bool {
	return !(e.End.Hour() < timeRange.Start || e.Start.Hour() >= timeRange.End)
}
