package event

import "context"

// EventService exposes the read-only event views the payroll screens need.
type EventService interface {
	// GetEventDetail returns an event's financial inputs and staffing
	GetEventDetail(ctx context.Context, eventID string) (EventDetailResponse, error)
}
