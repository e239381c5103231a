package timesheet

import "errors"

// Timesheet domain errors
var (
	ErrNoEntriesFound = errors.New("no time entries found for this event")
	ErrEventNotFound  = errors.New("event not found")
)
