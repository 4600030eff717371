package ics

import (
	"bytes"
	"testing"

	ical "github.com/arran4/golang-ical"

	"github.com/daybookapp/daybook/internal/domain"
	"github.com/daybookapp/daybook/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExport_TimedEvent(t *testing.T) {
	event := testutil.NewTestEvent("Standup", testutil.WithDescription("daily sync"))
	out := Export([]*domain.Event{event}, testutil.At(12, 0))

	cal, err := ical.ParseCalendar(bytes.NewReader([]byte(out)))
	require.NoError(t, err)
	events := cal.Events()
	require.Len(t, events, 1)

	start, err := events[0].GetStartAt()
	require.NoError(t, err)
	assert.True(t, start.Equal(event.Start))

	summary := events[0].GetProperty(ical.ComponentPropertySummary)
	require.NotNil(t, summary)
	assert.Equal(t, "Standup", summary.Value)
}

func TestExport_AllDayEventIsDateOnly(t *testing.T) {
	event := testutil.NewTestEvent("Hackathon", testutil.WithAllDay())
	out := Export([]*domain.Event{event}, testutil.At(12, 0))

	assert.Contains(t, out, "DTSTART;VALUE=DATE:20250218")
}

func TestExport_EmptyListIsStillValid(t *testing.T) {
	out := Export(nil, testutil.At(12, 0))
	cal, err := ical.ParseCalendar(bytes.NewReader([]byte(out)))
	require.NoError(t, err)
	assert.Empty(t, cal.Events())
}
