package timesheet

import (
	"context"
	"testing"
	"time"

	"github.com/crewline/staffing-backend-go/internal/domain/timesheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTimeEntryRepo serves canned rows so the pairing logic can be exercised
// without a database.
type fakeTimeEntryRepo struct {
	entries    []timesheet.TimeEntry
	rangeCalls int
}

func (f *fakeTimeEntryRepo) GetByEvent(_ context.Context, eventID string) ([]timesheet.TimeEntry, error) {
	var out []timesheet.TimeEntry
	for _, e := range f.entries {
		if e.EventID == eventID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeTimeEntryRepo) GetByEventAndUser(_ context.Context, eventID string, userID string) ([]timesheet.TimeEntry, error) {
	var out []timesheet.TimeEntry
	for _, e := range f.entries {
		if e.EventID == eventID && e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeTimeEntryRepo) GetByUserInRange(_ context.Context, userID string, from, to time.Time) ([]timesheet.TimeEntry, error) {
	f.rangeCalls++
	var out []timesheet.TimeEntry
	for _, e := range f.entries {
		if e.UserID != userID || e.Action == timesheet.ActionMealStart || e.Action == timesheet.ActionMealEnd {
			continue
		}
		if !e.Timestamp.Before(from) && e.Timestamp.Before(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

func rangeEntry(userID, eventID, ts string, action timesheet.EntryAction) timesheet.TimeEntry {
	parsed, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		panic(err)
	}
	return timesheet.TimeEntry{UserID: userID, EventID: eventID, Action: action, Timestamp: parsed}
}

func TestPriorWeekHours_MondayEventIsAlwaysZero(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := &fakeTimeEntryRepo{entries: []timesheet.TimeEntry{
		// Rows exist, but a Monday event has no lookback window.
		rangeEntry("worker-1", "event-a", "2025-06-08T09:00:00Z", timesheet.ActionClockIn),
		rangeEntry("worker-1", "event-a", "2025-06-08T17:00:00Z", timesheet.ActionClockOut),
	}}
	svc := NewTimesheetService(nil, repo)

	monday := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	hours, err := svc.PriorWeekHours(ctx, "worker-1", monday)

	require.NoError(t, err)
	assert.Zero(t, hours)
	assert.Zero(t, repo.rangeCalls, "Monday events should not query at all")
}

func TestPriorWeekHours_SumsAcrossEvents(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := &fakeTimeEntryRepo{entries: []timesheet.TimeEntry{
		// Monday shift, one event
		rangeEntry("worker-1", "event-a", "2025-06-09T09:00:00Z", timesheet.ActionClockIn),
		rangeEntry("worker-1", "event-a", "2025-06-09T17:00:00Z", timesheet.ActionClockOut),
		// Tuesday shift, another event
		rangeEntry("worker-1", "event-b", "2025-06-10T10:00:00Z", timesheet.ActionClockIn),
		rangeEntry("worker-1", "event-b", "2025-06-10T16:00:00Z", timesheet.ActionClockOut),
		// Previous week, outside the window
		rangeEntry("worker-1", "event-c", "2025-06-06T09:00:00Z", timesheet.ActionClockIn),
		rangeEntry("worker-1", "event-c", "2025-06-06T17:00:00Z", timesheet.ActionClockOut),
		// Another worker's rows
		rangeEntry("worker-2", "event-a", "2025-06-09T09:00:00Z", timesheet.ActionClockIn),
		rangeEntry("worker-2", "event-a", "2025-06-09T12:00:00Z", timesheet.ActionClockOut),
	}}
	svc := NewTimesheetService(nil, repo)

	wednesday := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
	hours, err := svc.PriorWeekHours(ctx, "worker-1", wednesday)

	require.NoError(t, err)
	assert.InDelta(t, 14.0, hours, 1e-9)
}

func TestGetEventTimesheet_GroupsByWorker(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := &fakeTimeEntryRepo{entries: []timesheet.TimeEntry{
		rangeEntry("worker-1", "event-a", "2025-06-10T09:00:00Z", timesheet.ActionClockIn),
		rangeEntry("worker-1", "event-a", "2025-06-10T17:00:00Z", timesheet.ActionClockOut),
		rangeEntry("worker-2", "event-a", "2025-06-10T10:00:00Z", timesheet.ActionClockIn),
		rangeEntry("worker-2", "event-a", "2025-06-10T14:00:00Z", timesheet.ActionClockOut),
	}}
	svc := NewTimesheetService(nil, repo)

	resp, err := svc.GetEventTimesheet(ctx, "event-a")

	require.NoError(t, err)
	require.Len(t, resp.Summaries, 2)
	assert.InDelta(t, 8.0, resp.Summaries[0].ActualHours, 1e-9)
	assert.InDelta(t, 4.0, resp.Summaries[1].ActualHours, 1e-9)
}
