package response

import (
	"errors"
	"net/http"

	"github.com/crewline/staffing-backend-go/internal/domain/event"
	"github.com/crewline/staffing-backend-go/internal/domain/payroll"
	"github.com/crewline/staffing-backend-go/internal/domain/timesheet"
	"github.com/crewline/staffing-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Event domain errors
	case errors.Is(err, event.ErrEventNotFound):
		NotFound(w, "Event not found")
	case errors.Is(err, event.ErrNoAssignments):
		NotFound(w, "No workers assigned to this event")
	case errors.Is(err, event.ErrInvalidDivision):
		BadRequest(w, "Invalid division", nil)
	case errors.Is(err, event.ErrInvalidStateCode):
		BadRequest(w, "Invalid state code", nil)

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrNoEntriesFound):
		NotFound(w, "No time entries found for this event")
	case errors.Is(err, timesheet.ErrEventNotFound):
		NotFound(w, "Event not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrEventNotFound):
		NotFound(w, "Event not found")
	case errors.Is(err, payroll.ErrStateRateNotFound):
		NotFound(w, "State rate not found")
	case errors.Is(err, payroll.ErrInvalidStateCode):
		BadRequest(w, "Invalid state code", nil)
	case errors.Is(err, payroll.ErrInvalidBaseRate):
		BadRequest(w, "Base rate must be positive", nil)
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid pay period", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
