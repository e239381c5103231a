package event

import (
	"context"
	"time"
)

// EventRepository defines read access to event financials and staffing.
type EventRepository interface {
	// GetFinancials retrieves the financial inputs for one event
	GetFinancials(ctx context.Context, eventID string) (Financials, error)

	// GetAssignments retrieves the workers staffed on an event
	GetAssignments(ctx context.Context, eventID string) ([]Assignment, error)

	// ListEventIDsInRange retrieves ids of events dated in [from, to)
	ListEventIDsInRange(ctx context.Context, from, to time.Time) ([]string, error)
}
