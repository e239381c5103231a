package event

import (
	"context"
	"testing"
	"time"

	"github.com/crewline/staffing-backend-go/internal/domain/event"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEventRepo struct {
	financials  map[string]event.Financials
	assignments map[string][]event.Assignment
}

func (f *fakeEventRepo) GetFinancials(_ context.Context, eventID string) (event.Financials, error) {
	fin, ok := f.financials[eventID]
	if !ok {
		return event.Financials{}, event.ErrEventNotFound
	}
	return fin, nil
}

func (f *fakeEventRepo) GetAssignments(_ context.Context, eventID string) ([]event.Assignment, error) {
	return f.assignments[eventID], nil
}

func (f *fakeEventRepo) ListEventIDsInRange(_ context.Context, _, _ time.Time) ([]string, error) {
	return nil, nil
}

func TestGetEventDetail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := &fakeEventRepo{
		financials: map[string]event.Financials{
			"event-1": {
				EventID:           "event-1",
				StateCode:         "CA",
				EventDate:         time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC),
				TicketSales:       decimal.RequireFromString("10000"),
				Tips:              decimal.RequireFromString("500"),
				TaxRatePercent:    decimal.RequireFromString("8"),
				CommissionPoolPct: decimal.RequireFromString("0.10"),
			},
		},
		assignments: map[string][]event.Assignment{
			"event-1": {
				{EventID: "event-1", UserID: "worker-1", Division: event.DivisionVendor},
				{EventID: "event-1", UserID: "worker-2", Division: event.DivisionTrailers},
			},
		},
	}
	svc := NewEventService(nil, repo)

	resp, err := svc.GetEventDetail(ctx, "event-1")

	require.NoError(t, err)
	assert.Equal(t, "2025-06-11", resp.Financials.EventDate)
	assert.Equal(t, "CA", resp.Financials.StateCode)
	require.Len(t, resp.Assignments, 2)
	assert.Equal(t, "trailers", resp.Assignments[1].Division)
}

func TestGetEventDetail_NotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewEventService(nil, &fakeEventRepo{})

	_, err := svc.GetEventDetail(ctx, "missing")
	assert.ErrorIs(t, err, event.ErrEventNotFound)
}
