package timesheet

import (
	"context"
	"time"
)

// TimesheetService defines business logic for worked-time aggregation
type TimesheetService interface {
	// GetEventTimesheet aggregates every worker's entries for an event into
	// worked-time summaries (actual hours, first in, last out, meal spans)
	GetEventTimesheet(ctx context.Context, eventID string) (EventTimesheetResponse, error)

	// GetWorkerSummary aggregates one worker's entries for an event
	GetWorkerSummary(ctx context.Context, eventID string, userID string) (WorkSummaryResponse, error)

	// PriorWeekHours returns the hours a worker clocked from the Monday of
	// the event's week up to 00:00 UTC of the event date, across all events.
	// An event on a Monday always yields zero.
	PriorWeekHours(ctx context.Context, userID string, eventDate time.Time) (float64, error)
}
