package timesheet

import (
	"testing"
	"time"

	"github.com/crewline/staffing-backend-go/internal/domain/timesheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(action timesheet.EntryAction, hhmm string) timesheet.TimeEntry {
	ts, err := time.Parse(time.RFC3339, "2025-06-10T"+hhmm+":00Z")
	if err != nil {
		panic(err)
	}
	return timesheet.TimeEntry{
		UserID:    "worker-1",
		EventID:   "event-1",
		Action:    action,
		Timestamp: ts,
	}
}

func TestAggregate_SingleShift(t *testing.T) {
	t.Parallel()

	summary := Aggregate("worker-1", "event-1", []timesheet.TimeEntry{
		entry(timesheet.ActionClockIn, "09:00"),
		entry(timesheet.ActionClockOut, "17:00"),
	})

	assert.InDelta(t, 8.0, summary.ActualHours, 1e-9)
	require.NotNil(t, summary.FirstClockIn)
	require.NotNil(t, summary.LastClockOut)
	assert.Equal(t, "09:00", summary.FirstClockIn.Format("15:04"))
	assert.Equal(t, "17:00", summary.LastClockOut.Format("15:04"))
	assert.Empty(t, summary.MealSpans)
}

func TestAggregate_SplitShiftImplicitMeal(t *testing.T) {
	t.Parallel()

	summary := Aggregate("worker-1", "event-1", []timesheet.TimeEntry{
		entry(timesheet.ActionClockIn, "09:00"),
		entry(timesheet.ActionClockOut, "13:00"),
		entry(timesheet.ActionClockIn, "14:00"),
		entry(timesheet.ActionClockOut, "17:00"),
	})

	// The gap is already outside the summed intervals, so it shows on the
	// timesheet but is not subtracted again.
	assert.InDelta(t, 7.0, summary.ActualHours, 1e-9)
	require.Len(t, summary.MealSpans, 1)
	assert.False(t, summary.MealSpans[0].Explicit)
	assert.InDelta(t, 1.0, summary.MealHours, 1e-9)
}

func TestAggregate_ExplicitMealMarkers(t *testing.T) {
	t.Parallel()

	summary := Aggregate("worker-1", "event-1", []timesheet.TimeEntry{
		entry(timesheet.ActionClockIn, "09:00"),
		entry(timesheet.ActionClockOut, "12:00"),
		entry(timesheet.ActionMealStart, "12:00"),
		entry(timesheet.ActionMealEnd, "12:30"),
		entry(timesheet.ActionClockIn, "12:30"),
		entry(timesheet.ActionClockOut, "17:00"),
	})

	assert.InDelta(t, 7.5, summary.ActualHours, 1e-9)
	require.Len(t, summary.MealSpans, 1)
	assert.True(t, summary.MealSpans[0].Explicit)
	assert.InDelta(t, 0.5, summary.MealHours, 1e-9)
}

func TestAggregate_NestedClockInsIgnored(t *testing.T) {
	t.Parallel()

	summary := Aggregate("worker-1", "event-1", []timesheet.TimeEntry{
		entry(timesheet.ActionClockIn, "09:00"),
		entry(timesheet.ActionClockIn, "10:00"),
		entry(timesheet.ActionClockOut, "17:00"),
	})

	// Only the first open counts.
	assert.InDelta(t, 8.0, summary.ActualHours, 1e-9)
}

func TestAggregate_UnterminatedClockIn(t *testing.T) {
	t.Parallel()

	summary := Aggregate("worker-1", "event-1", []timesheet.TimeEntry{
		entry(timesheet.ActionClockIn, "09:00"),
	})

	assert.Zero(t, summary.ActualHours)
	assert.Nil(t, summary.FirstClockIn)
	assert.Nil(t, summary.LastClockOut)
}

func TestAggregate_ClockOutBeforeClockIn(t *testing.T) {
	t.Parallel()

	summary := Aggregate("worker-1", "event-1", []timesheet.TimeEntry{
		entry(timesheet.ActionClockOut, "09:00"),
		entry(timesheet.ActionClockIn, "17:00"),
	})

	// A close with no open is dropped; the dangling open contributes nothing.
	assert.Zero(t, summary.ActualHours)
}

func TestAggregate_ZeroTimestampSkipped(t *testing.T) {
	t.Parallel()

	bad := timesheet.TimeEntry{UserID: "worker-1", EventID: "event-1", Action: timesheet.ActionClockOut}
	summary := Aggregate("worker-1", "event-1", []timesheet.TimeEntry{
		bad,
		entry(timesheet.ActionClockIn, "09:00"),
		entry(timesheet.ActionClockOut, "13:00"),
	})

	assert.InDelta(t, 4.0, summary.ActualHours, 1e-9)
}

func TestAggregate_AtMostTwoImplicitMeals(t *testing.T) {
	t.Parallel()

	summary := Aggregate("worker-1", "event-1", []timesheet.TimeEntry{
		entry(timesheet.ActionClockIn, "08:00"),
		entry(timesheet.ActionClockOut, "10:00"),
		entry(timesheet.ActionClockIn, "11:00"),
		entry(timesheet.ActionClockOut, "13:00"),
		entry(timesheet.ActionClockIn, "14:00"),
		entry(timesheet.ActionClockOut, "16:00"),
		entry(timesheet.ActionClockIn, "17:00"),
		entry(timesheet.ActionClockOut, "19:00"),
	})

	assert.InDelta(t, 8.0, summary.ActualHours, 1e-9)
	assert.Len(t, summary.MealSpans, 2)
}

func TestPairedHours(t *testing.T) {
	t.Parallel()

	hours := PairedHours([]timesheet.TimeEntry{
		entry(timesheet.ActionClockIn, "09:00"),
		entry(timesheet.ActionClockOut, "13:00"),
		entry(timesheet.ActionClockIn, "14:00"),
		entry(timesheet.ActionClockOut, "17:00"),
	})

	assert.InDelta(t, 7.0, hours, 1e-9)
}

func TestWeekMonday(t *testing.T) {
	cases := []struct {
		date string
		want string
	}{
		{"2025-06-09", "2025-06-09"}, // Monday maps to itself
		{"2025-06-10", "2025-06-09"}, // Tuesday
		{"2025-06-15", "2025-06-09"}, // Sunday stays in the Monday-anchored week
		{"2025-06-16", "2025-06-16"}, // next Monday
	}
	for _, c := range cases {
		d, err := time.Parse("2006-01-02", c.date)
		if err != nil {
			t.Fatal(err)
		}
		got := WeekMonday(d).Format("2006-01-02")
		if got != c.want {
			t.Errorf("WeekMonday(%s) = %s, want %s", c.date, got, c.want)
		}
	}
}
