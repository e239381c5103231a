package payroll

import "context"

// PayrollService defines the pay computation operations
type PayrollService interface {
	// ComputeEventPayroll turns an event's clock data and financial inputs
	// into a per-worker gross-pay breakdown
	ComputeEventPayroll(ctx context.Context, req ComputeEventPayrollRequest) (EventPayrunResponse, error)

	// ComputePeriodSummary sums per-event breakdowns over a pay period and
	// applies externally supplied deductions and reimbursements.
	// A bad event fails that event only, never the batch.
	ComputePeriodSummary(ctx context.Context, req ComputePeriodRequest) (PeriodSummaryResponse, error)

	// GetStateRate returns the configured rate for a state, or the default
	GetStateRate(ctx context.Context, stateCode string) (StateRateResponse, error)

	// ListStateRates returns all configured state rates
	ListStateRates(ctx context.Context) ([]StateRateResponse, error)

	// UpsertStateRate creates or updates a state's base rate
	UpsertStateRate(ctx context.Context, req UpsertStateRateRequest) (StateRateResponse, error)

	// DeleteStateRate removes a state's configured rate
	DeleteStateRate(ctx context.Context, stateCode string) error
}
