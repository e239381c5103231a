package postgresql

import (
	"context"
	"fmt"

	"github.com/crewline/staffing-backend-go/internal/domain/payroll"
	"github.com/crewline/staffing-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type rateRepository struct {
	db *database.DB
}

func NewRateRepository(db *database.DB) payroll.RateRepository {
	return &rateRepository{db: db}
}

// GetByState implements payroll.RateRepository.
func (r *rateRepository) GetByState(ctx context.Context, stateCode string) (payroll.StateRate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT state_code, base_rate, created_at, updated_at
		FROM state_rates
		WHERE state_code = $1
	`

	var rate payroll.StateRate
	err := q.QueryRow(ctx, query, stateCode).Scan(
		&rate.StateCode, &rate.BaseRate, &rate.CreatedAt, &rate.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.StateRate{}, payroll.ErrStateRateNotFound
		}
		return payroll.StateRate{}, fmt.Errorf("failed to get state rate: %w", err)
	}

	return rate, nil
}

// List implements payroll.RateRepository.
func (r *rateRepository) List(ctx context.Context) ([]payroll.StateRate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT state_code, base_rate, created_at, updated_at
		FROM state_rates
		ORDER BY state_code ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query state rates: %w", err)
	}
	defer rows.Close()

	var rates []payroll.StateRate
	for rows.Next() {
		var rate payroll.StateRate
		if err := rows.Scan(&rate.StateCode, &rate.BaseRate, &rate.CreatedAt, &rate.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan state rate: %w", err)
		}
		rates = append(rates, rate)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate state rates: %w", err)
	}

	return rates, nil
}

// Upsert implements payroll.RateRepository.
func (r *rateRepository) Upsert(ctx context.Context, rate payroll.StateRate) (payroll.StateRate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO state_rates (state_code, base_rate)
		VALUES ($1, $2)
		ON CONFLICT (state_code) DO UPDATE SET
			base_rate = EXCLUDED.base_rate,
			updated_at = NOW()
		RETURNING state_code, base_rate, created_at, updated_at
	`

	var saved payroll.StateRate
	err := q.QueryRow(ctx, query, rate.StateCode, rate.BaseRate).Scan(
		&saved.StateCode, &saved.BaseRate, &saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return payroll.StateRate{}, fmt.Errorf("failed to upsert state rate: %w", err)
	}

	return saved, nil
}

// Delete implements payroll.RateRepository.
func (r *rateRepository) Delete(ctx context.Context, stateCode string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM state_rates WHERE state_code = $1`, stateCode)
	if err != nil {
		return fmt.Errorf("failed to delete state rate: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrStateRateNotFound
	}

	return nil
}
