package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetRange_AcceptsValidWindows(t *testing.T) {
	cases := []struct {
		start, end int
	}{
		{0, 24},
		{0, 1},
		{8, 20},
		{23, 24},
	}
	for _, tc := range cases {
		r := DefaultTimeRange().SetRange(tc.start, tc.end)
		assert.Equal(t, TimeRange{tc.start, tc.end}, r, "start=%d end=%d", tc.start, tc.end)
	}
}

func TestSetRange_RejectsInvalidWindows(t *testing.T) {
	prior := TimeRange{Start: 8, End: 20}
	cases := []struct {
		name       string
		start, end int
	}{
		{"negative start", -1, 20},
		{"end past midnight", 8, 25},
		{"inverted", 20, 8},
		{"empty", 10, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, prior, prior.SetRange(tc.start, tc.end), "invalid input must keep the prior range")
		})
	}
}

func TestTimeRange_ContainsHour(t *testing.T) {
	r := TimeRange{Start: 8, End: 20}
	assert.True(t, r.ContainsHour(8))
	assert.True(t, r.ContainsHour(19))
	assert.False(t, r.ContainsHour(20), "end bound is exclusive")
	assert.False(t, r.ContainsHour(7))
}

func TestDefaultTimeRange(t *testing.T) {
	assert.Equal(t, TimeRange{Start: 8, End: 20}, DefaultTimeRange())
}
