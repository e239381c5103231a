package payroll

import "context"

// RateRepository defines access to per-state base rate configuration.
type RateRepository interface {
	// GetByState retrieves the configured rate for a state.
	// Returns ErrStateRateNotFound when unconfigured; callers fall back to
	// DefaultBaseRate rather than failing the run.
	GetByState(ctx context.Context, stateCode string) (StateRate, error)

	// List retrieves all configured state rates
	List(ctx context.Context) ([]StateRate, error)

	// Upsert creates or updates the rate for a state
	Upsert(ctx context.Context, rate StateRate) (StateRate, error)

	// Delete removes a state's configured rate (falls back to default)
	Delete(ctx context.Context, stateCode string) error
}
