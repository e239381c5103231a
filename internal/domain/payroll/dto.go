package payroll

import (
	"github.com/crewline/staffing-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== STATE RATE DTOs ==========

type UpsertStateRateRequest struct {
	StateCode string          `json:"-"`
	BaseRate  decimal.Decimal `json:"base_rate"`
}

func (r *UpsertStateRateRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidStateCode(r.StateCode) {
		errs = append(errs, validator.ValidationError{Field: "state_code", Message: "must be a two-letter state code"})
	}
	if !r.BaseRate.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "base_rate", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type StateRateResponse struct {
	StateCode string          `json:"state_code"`
	BaseRate  decimal.Decimal `json:"base_rate"`
	IsDefault bool            `json:"is_default"`
}

// ========== EVENT PAYRUN DTOs ==========

// ComputeEventPayrollRequest carries the optional externally supplied
// per-worker figures: a flat adjustment and, for events with no clocked
// hours, an explicit tip amount in place of hour-based proration.
type ComputeEventPayrollRequest struct {
	EventID          string                     `json:"-"`
	OtherAdjustments map[string]decimal.Decimal `json:"other_adjustments,omitempty"`
	WorkerTips       map[string]decimal.Decimal `json:"worker_tips,omitempty"`
}

func (r *ComputeEventPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EventID) {
		errs = append(errs, validator.ValidationError{Field: "event_id", Message: "is required"})
	}
	for userID, tip := range r.WorkerTips {
		if tip.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "worker_tips." + userID, Message: "must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayComponentsResponse struct {
	UserID                  string          `json:"user_id"`
	EventID                 string          `json:"event_id"`
	Regime                  string          `json:"regime"`
	ActualHours             float64         `json:"actual_hours"`
	IsWeeklyOvertime        bool            `json:"is_weekly_overtime"`
	BaseRate                decimal.Decimal `json:"base_rate"`
	LoadedRate              decimal.Decimal `json:"loaded_rate"`
	ExtAmtOnRegRate         decimal.Decimal `json:"ext_amt_on_reg_rate"`
	CommissionAmt           decimal.Decimal `json:"commission_amt"`
	TotalFinalCommissionAmt decimal.Decimal `json:"total_final_commission_amt"`
	Tips                    decimal.Decimal `json:"tips"`
	RestBreak               decimal.Decimal `json:"rest_break"`
	OtherAdjustment         decimal.Decimal `json:"other_adjustment"`
	TotalGrossPay           decimal.Decimal `json:"total_gross_pay"`
}

type EventPayrunResponse struct {
	RunID       string                  `json:"run_id"`
	EventID     string                  `json:"event_id"`
	StateCode   string                  `json:"state_code"`
	Regime      string                  `json:"regime"`
	PoolDollars decimal.Decimal         `json:"pool_dollars"`
	Workers     []PayComponentsResponse `json:"workers"`
	ComputedAt  string                  `json:"computed_at"`
}

// ========== PERIOD SUMMARY DTOs ==========

// ComputePeriodRequest - a pay period [from, to) plus the externally
// supplied statutory deductions and misc reimbursements per worker.
type ComputePeriodRequest struct {
	From           string                     `json:"from"` // YYYY-MM-DD
	To             string                     `json:"to"`   // YYYY-MM-DD, exclusive
	Deductions     map[string]decimal.Decimal `json:"deductions,omitempty"`
	Reimbursements map[string]decimal.Decimal `json:"reimbursements,omitempty"`
}

func (r *ComputePeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	from, okFrom := validator.IsValidDate(r.From)
	if !okFrom {
		errs = append(errs, validator.ValidationError{Field: "from", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	to, okTo := validator.IsValidDate(r.To)
	if !okTo {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if okFrom && okTo && !from.Before(to) {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "must be after from"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkerPeriodSummaryResponse struct {
	UserID        string                  `json:"user_id"`
	GrossPay      decimal.Decimal         `json:"gross_pay"`
	Deductions    decimal.Decimal         `json:"deductions"`
	Reimbursement decimal.Decimal         `json:"reimbursement"`
	NetPay        decimal.Decimal         `json:"net_pay"`
	Events        []PayComponentsResponse `json:"events"`
}

type PeriodSummaryResponse struct {
	RunID        string                        `json:"run_id"`
	From         string                        `json:"from"`
	To           string                        `json:"to"`
	Workers      []WorkerPeriodSummaryResponse `json:"workers"`
	FailedEvents map[string]string             `json:"failed_events,omitempty"`
	ComputedAt   string                        `json:"computed_at"`
}
