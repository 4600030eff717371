package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHourLabel(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, "12 AM"},
		{1, "1 AM"},
		{9, "9 AM"},
		{12, "12 PM"},
		{13, "1 PM"},
		{20, "8 PM"},
		{24, "12 AM"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HourLabel(tt.hour), "hour=%d", tt.hour)
	}
}

func TestClockTime(t *testing.T) {
	at := time.Date(2025, 2, 18, 9, 30, 0, 0, time.Local)
	assert.Equal(t, "9:30 AM", ClockTime(at))
	assert.Equal(t, "2:05 PM", ClockTime(at.Add(4*time.Hour+35*time.Minute)))
}

func TestWeekTitle(t *testing.T) {
	start := time.Date(2025, 2, 16, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 0, 6)
	assert.Equal(t, "Week of Feb 16 - Feb 22, 2025", WeekTitle(start, end))
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"TIME", "TITLE"},
		[][]string{
			{"9:00 AM", "Standup"},
			{"3:00 PM", "Review"},
		},
	)
	assert.Contains(t, out, "TIME")
	assert.Contains(t, out, "Standup")
	assert.Contains(t, out, "Review")
}
