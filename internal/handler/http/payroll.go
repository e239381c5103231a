package http

import (
	"encoding/json"
	"net/http"

	"github.com/crewline/staffing-backend-go/internal/domain/payroll"
	"github.com/crewline/staffing-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	// Pay computation
	ComputeEventPayroll(w http.ResponseWriter, r *http.Request)
	ComputePeriodSummary(w http.ResponseWriter, r *http.Request)

	// State rates
	GetStateRate(w http.ResponseWriter, r *http.Request)
	ListStateRates(w http.ResponseWriter, r *http.Request)
	UpsertStateRate(w http.ResponseWriter, r *http.Request)
	DeleteStateRate(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// ========== PAY COMPUTATION ==========

func (h *payrollHandlerImpl) ComputeEventPayroll(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")
	if eventID == "" {
		response.BadRequest(w, "Event ID is required", nil)
		return
	}

	var req payroll.ComputeEventPayrollRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request body", nil)
			return
		}
	}
	req.EventID = eventID

	result, err := h.payrollService.ComputeEventPayroll(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) ComputePeriodSummary(w http.ResponseWriter, r *http.Request) {
	var req payroll.ComputePeriodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.ComputePeriodSummary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ========== STATE RATES ==========

func (h *payrollHandlerImpl) GetStateRate(w http.ResponseWriter, r *http.Request) {
	stateCode := chi.URLParam(r, "stateCode")
	if stateCode == "" {
		response.BadRequest(w, "State code is required", nil)
		return
	}

	result, err := h.payrollService.GetStateRate(r.Context(), stateCode)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) ListStateRates(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.ListStateRates(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) UpsertStateRate(w http.ResponseWriter, r *http.Request) {
	stateCode := chi.URLParam(r, "stateCode")
	if stateCode == "" {
		response.BadRequest(w, "State code is required", nil)
		return
	}

	var req payroll.UpsertStateRateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.StateCode = stateCode

	result, err := h.payrollService.UpsertStateRate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "State rate saved", result)
}

func (h *payrollHandlerImpl) DeleteStateRate(w http.ResponseWriter, r *http.Request) {
	stateCode := chi.URLParam(r, "stateCode")
	if stateCode == "" {
		response.BadRequest(w, "State code is required", nil)
		return
	}

	if err := h.payrollService.DeleteStateRate(r.Context(), stateCode); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "State rate deleted", nil)
}
