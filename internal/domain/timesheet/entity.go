package timesheet

import (
	"time"
)

// EntryAction enum
type EntryAction string

const (
	ActionClockIn   EntryAction = "clock_in"
	ActionClockOut  EntryAction = "clock_out"
	ActionMealStart EntryAction = "meal_start"
	ActionMealEnd   EntryAction = "meal_end"
)

// TimeEntry - Raw clock event for a worker at an event.
// Append-only; the payroll engine never mutates these rows.
type TimeEntry struct {
	ID        string
	UserID    string
	EventID   string
	Action    EntryAction
	Timestamp time.Time
	CreatedAt time.Time
}

// MealSpan - A meal break for display, either explicit (meal_start/meal_end
// pair) or inferred from a gap between two work intervals.
type MealSpan struct {
	Start    time.Time
	End      time.Time
	Explicit bool
}

// WorkSummary - Aggregated worked time for one worker at one event.
type WorkSummary struct {
	UserID       string
	EventID      string
	ActualHours  float64
	FirstClockIn *time.Time
	LastClockOut *time.Time
	MealSpans    []MealSpan
	MealHours    float64
}
