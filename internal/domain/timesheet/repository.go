package timesheet

import (
	"context"
	"time"
)

// TimeEntryRepository defines read access to raw clock events.
// The payroll engine treats this table as append-only input.
type TimeEntryRepository interface {
	// GetByEvent retrieves all entries for an event ordered by timestamp
	GetByEvent(ctx context.Context, eventID string) ([]TimeEntry, error)

	// GetByEventAndUser retrieves one worker's entries for an event ordered by timestamp
	GetByEventAndUser(ctx context.Context, eventID string, userID string) ([]TimeEntry, error)

	// GetByUserInRange retrieves a worker's clock_in/clock_out entries across
	// all events in [from, to), ordered by timestamp. Used for weekly
	// overtime lookback.
	GetByUserInRange(ctx context.Context, userID string, from, to time.Time) ([]TimeEntry, error)
}
