package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/crewline/staffing-backend-go/internal/domain/timesheet"
	"github.com/crewline/staffing-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type timeEntryRepository struct {
	db *database.DB
}

func NewTimeEntryRepository(db *database.DB) timesheet.TimeEntryRepository {
	return &timeEntryRepository{db: db}
}

// GetByEvent implements timesheet.TimeEntryRepository.
func (r *timeEntryRepository) GetByEvent(ctx context.Context, eventID string) ([]timesheet.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, event_id, action, timestamp, created_at
		FROM time_entries
		WHERE event_id = $1
		ORDER BY timestamp ASC
	`

	rows, err := q.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query time entries: %w", err)
	}
	defer rows.Close()

	return scanTimeEntries(rows)
}

// GetByEventAndUser implements timesheet.TimeEntryRepository.
func (r *timeEntryRepository) GetByEventAndUser(ctx context.Context, eventID string, userID string) ([]timesheet.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, event_id, action, timestamp, created_at
		FROM time_entries
		WHERE event_id = $1 AND user_id = $2
		ORDER BY timestamp ASC
	`

	rows, err := q.Query(ctx, query, eventID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query time entries: %w", err)
	}
	defer rows.Close()

	return scanTimeEntries(rows)
}

// GetByUserInRange implements timesheet.TimeEntryRepository.
// Only clock_in/clock_out rows matter for the weekly lookback.
func (r *timeEntryRepository) GetByUserInRange(ctx context.Context, userID string, from, to time.Time) ([]timesheet.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, event_id, action, timestamp, created_at
		FROM time_entries
		WHERE user_id = $1
		  AND action IN ('clock_in', 'clock_out')
		  AND timestamp >= $2
		  AND timestamp < $3
		ORDER BY timestamp ASC
	`

	rows, err := q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query time entries in range: %w", err)
	}
	defer rows.Close()

	return scanTimeEntries(rows)
}

func scanTimeEntries(rows pgx.Rows) ([]timesheet.TimeEntry, error) {
	var entries []timesheet.TimeEntry
	for rows.Next() {
		var e timesheet.TimeEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.EventID, &e.Action, &e.Timestamp, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan time entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate time entries: %w", err)
	}
	return entries, nil
}
