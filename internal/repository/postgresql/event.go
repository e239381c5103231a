package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/crewline/staffing-backend-go/internal/domain/event"
	"github.com/crewline/staffing-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type eventRepository struct {
	db *database.DB
}

func NewEventRepository(db *database.DB) event.EventRepository {
	return &eventRepository{db: db}
}

// GetFinancials implements event.EventRepository.
func (r *eventRepository) GetFinancials(ctx context.Context, eventID string) (event.Financials, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT event_id, state_code, event_date, ticket_sales, tips,
			   tax_rate_percent, commission_pool_pct, created_at, updated_at
		FROM event_financials
		WHERE event_id = $1
	`

	var f event.Financials
	err := q.QueryRow(ctx, query, eventID).Scan(
		&f.EventID, &f.StateCode, &f.EventDate, &f.TicketSales, &f.Tips,
		&f.TaxRatePercent, &f.CommissionPoolPct, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return event.Financials{}, event.ErrEventNotFound
		}
		return event.Financials{}, fmt.Errorf("failed to get event financials: %w", err)
	}

	return f, nil
}

// GetAssignments implements event.EventRepository.
func (r *eventRepository) GetAssignments(ctx context.Context, eventID string) ([]event.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT event_id, user_id, division, created_at
		FROM worker_assignments
		WHERE event_id = $1
		ORDER BY user_id ASC
	`

	rows, err := q.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	var assignments []event.Assignment
	for rows.Next() {
		var a event.Assignment
		if err := rows.Scan(&a.EventID, &a.UserID, &a.Division, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate assignments: %w", err)
	}

	return assignments, nil
}

// ListEventIDsInRange implements event.EventRepository.
func (r *eventRepository) ListEventIDsInRange(ctx context.Context, from, to time.Time) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT event_id
		FROM event_financials
		WHERE event_date >= $1 AND event_date < $2
		ORDER BY event_date ASC, event_id ASC
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query events in range: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan event id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate event ids: %w", err)
	}

	return ids, nil
}
