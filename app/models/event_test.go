package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEventsOnDay_IgnoresTimeOfDay(t *testing.T) {
	t.Parallel()

	events := []Event{
		{ID: 1, Title: "Show A", Date: time.Date(2025, 5, 20, 20, 0, 0, 0, time.UTC)},
		{ID: 2, Title: "Show B", Date: time.Date(2025, 5, 20, 9, 30, 0, 0, time.UTC)},
		{ID: 3, Title: "Show C", Date: time.Date(2025, 5, 21, 20, 0, 0, 0, time.UTC)},
	}

	selected := EventsOnDay(events, day(2025, 5, 20))
	require.Len(t, selected, 2)
	assert.Equal(t, "Show A", selected[0].Title)
	assert.Equal(t, "Show B", selected[1].Title)

	assert.Empty(t, EventsOnDay(events, day(2025, 5, 19)))
}

func TestEventsOnDay_CreateThenLookupScenario(t *testing.T) {
	t.Parallel()

	// create event {Show A, 2025-05-20 20:00, location X} -> listed on the
	// 20th, absent on the 21st
	dateTime, err := time.Parse("2006-01-02T15:04", "2025-05-20T20:00")
	require.NoError(t, err)

	e := Event{Title: "Show A", Date: dateTime, Time: "20:00", Location: "X", SoldOut: false}
	require.NoError(t, e.Validate())

	onDay := EventsOnDay([]Event{e}, day(2025, 5, 20))
	require.Len(t, onDay, 1)
	assert.Equal(t, "Show A", onDay[0].Title)
	assert.False(t, onDay[0].SoldOut)

	assert.Empty(t, EventsOnDay([]Event{e}, day(2025, 5, 21)))
}

func TestDaysWithEvents(t *testing.T) {
	t.Parallel()

	events := []Event{
		{Date: time.Date(2025, 5, 20, 20, 0, 0, 0, time.UTC)},
		{Date: time.Date(2025, 5, 20, 22, 0, 0, 0, time.UTC)},
		{Date: time.Date(2025, 6, 5, 21, 0, 0, 0, time.UTC)},
	}

	days := DaysWithEvents(events)
	assert.Len(t, days, 2)
	assert.True(t, days["2025-05-20"])
	assert.True(t, days["2025-06-05"])
	assert.False(t, days["2025-05-21"])
}
