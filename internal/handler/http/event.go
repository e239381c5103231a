package http

import (
	"net/http"

	"github.com/crewline/staffing-backend-go/internal/domain/event"
	"github.com/crewline/staffing-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EventHandler interface {
	GetEventDetail(w http.ResponseWriter, r *http.Request)
}

type eventHandlerImpl struct {
	eventService event.EventService
}

func NewEventHandler(eventService event.EventService) EventHandler {
	return &eventHandlerImpl{eventService: eventService}
}

func (h *eventHandlerImpl) GetEventDetail(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")
	if eventID == "" {
		response.BadRequest(w, "Event ID is required", nil)
		return
	}

	result, err := h.eventService.GetEventDetail(r.Context(), eventID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
