package event

import "errors"

// Event domain errors
var (
	ErrEventNotFound    = errors.New("event not found")
	ErrNoAssignments    = errors.New("no workers assigned to this event")
	ErrInvalidDivision  = errors.New("invalid division")
	ErrInvalidStateCode = errors.New("invalid state code")
)
