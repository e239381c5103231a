package timesheet

import (
	"github.com/crewline/staffing-backend-go/internal/pkg/validator"
)

type MealSpanResponse struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	Explicit bool   `json:"explicit"`
}

type WorkSummaryResponse struct {
	UserID       string             `json:"user_id"`
	EventID      string             `json:"event_id"`
	ActualHours  float64            `json:"actual_hours"`
	FirstClockIn *string            `json:"first_clock_in,omitempty"`
	LastClockOut *string            `json:"last_clock_out,omitempty"`
	MealSpans    []MealSpanResponse `json:"meal_spans,omitempty"`
	MealHours    float64            `json:"meal_hours"`
}

type EventTimesheetResponse struct {
	EventID   string                `json:"event_id"`
	Summaries []WorkSummaryResponse `json:"summaries"`
}

type PriorWeekHoursRequest struct {
	UserID    string `json:"user_id"`
	EventDate string `json:"event_date"` // YYYY-MM-DD
}

func (r *PriorWeekHoursRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.EventDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "event_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PriorWeekHoursResponse struct {
	UserID     string  `json:"user_id"`
	EventDate  string  `json:"event_date"`
	WeekMonday string  `json:"week_monday"`
	PriorHours float64 `json:"prior_hours"`
}
