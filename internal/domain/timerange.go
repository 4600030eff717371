package domain

// TimeRange is the visible hour window [Start, End) of the day timeline.
// It bounds both the selectable hours when placing an event and the rendered
// timeline height.
type TimeRange struct {
	Start int
	End   int
}

// DefaultTimeRange is the 08:00-20:00 window used until the user picks
// something else.
func DefaultTimeRange() TimeRange {
	return TimeRange{Start: 8, End: 20}
}

// SetRange returns the updated range if 0 <= start < end <= 24, otherwise
// the receiver unchanged. Invalid input is a silent no-op; the UI only
// offers valid choices, so nothing is surfaced here.
func (r TimeRange) SetRange(start, end int) TimeRange {
	if start < 0 || end > 24 || start >= end {
		return r
	}
	return TimeRange{Start: start, End: end}
}

// Valid reports whether the range is a well-formed hour window.
func (r TimeRange) Valid() bool {
	return r.Start >= 0 && r.End <= 24 && r.Start < r.End
}

// Hours returns the number of visible hours.
func (r TimeRange) Hours() int {
	return r.End - r.Start
}

// ContainsHour reports whether the given hour falls inside the window.
func (r TimeRange) ContainsHour(hour int) bool {
	return hour >= r.Start && hour < r.End
}
