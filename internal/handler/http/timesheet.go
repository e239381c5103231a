package http

import (
	"net/http"
	"time"

	"github.com/crewline/staffing-backend-go/internal/domain/timesheet"
	"github.com/crewline/staffing-backend-go/internal/handler/http/response"
	"github.com/crewline/staffing-backend-go/internal/pkg/validator"
	timesheetService "github.com/crewline/staffing-backend-go/internal/service/timesheet"
	"github.com/go-chi/chi/v5"
)

type TimesheetHandler interface {
	GetEventTimesheet(w http.ResponseWriter, r *http.Request)
	GetWorkerSummary(w http.ResponseWriter, r *http.Request)
	GetPriorWeekHours(w http.ResponseWriter, r *http.Request)
}

type timesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService) TimesheetHandler {
	return &timesheetHandlerImpl{timesheetService: timesheetService}
}

func (h *timesheetHandlerImpl) GetEventTimesheet(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")
	if eventID == "" {
		response.BadRequest(w, "Event ID is required", nil)
		return
	}

	result, err := h.timesheetService.GetEventTimesheet(r.Context(), eventID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *timesheetHandlerImpl) GetWorkerSummary(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")
	userID := chi.URLParam(r, "userID")
	if eventID == "" || userID == "" {
		response.BadRequest(w, "Event ID and user ID are required", nil)
		return
	}

	result, err := h.timesheetService.GetWorkerSummary(r.Context(), eventID, userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *timesheetHandlerImpl) GetPriorWeekHours(w http.ResponseWriter, r *http.Request) {
	req := timesheet.PriorWeekHoursRequest{
		UserID:    chi.URLParam(r, "userID"),
		EventDate: r.URL.Query().Get("event_date"),
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	eventDate, _ := validator.IsValidDate(req.EventDate)
	hours, err := h.timesheetService.PriorWeekHours(r.Context(), req.UserID, eventDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, timesheet.PriorWeekHoursResponse{
		UserID:     req.UserID,
		EventDate:  req.EventDate,
		WeekMonday: weekMondayString(eventDate),
		PriorHours: hours,
	})
}

func weekMondayString(t time.Time) string {
	return timesheetService.WeekMonday(t).Format("2006-01-02")
}
