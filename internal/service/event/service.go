package event

import (
	"context"
	"fmt"

	"github.com/crewline/staffing-backend-go/internal/domain/event"
	"github.com/crewline/staffing-backend-go/internal/pkg/database"
)

type EventServiceImpl struct {
	db        *database.DB
	eventRepo event.EventRepository
}

func NewEventService(db *database.DB, eventRepo event.EventRepository) event.EventService {
	return &EventServiceImpl{
		db:        db,
		eventRepo: eventRepo,
	}
}

func (s *EventServiceImpl) GetEventDetail(ctx context.Context, eventID string) (event.EventDetailResponse, error) {
	fin, err := s.eventRepo.GetFinancials(ctx, eventID)
	if err != nil {
		return event.EventDetailResponse{}, err
	}

	assignments, err := s.eventRepo.GetAssignments(ctx, eventID)
	if err != nil {
		return event.EventDetailResponse{}, fmt.Errorf("failed to get assignments: %w", err)
	}

	resp := event.EventDetailResponse{
		Financials: event.FinancialsResponse{
			EventID:           fin.EventID,
			StateCode:         fin.StateCode,
			EventDate:         fin.EventDate.UTC().Format("2006-01-02"),
			TicketSales:       fin.TicketSales,
			Tips:              fin.Tips,
			TaxRatePercent:    fin.TaxRatePercent,
			CommissionPoolPct: fin.CommissionPoolPct,
		},
	}
	for _, a := range assignments {
		resp.Assignments = append(resp.Assignments, event.AssignmentResponse{
			UserID:   a.UserID,
			Division: string(a.Division),
		})
	}

	return resp, nil
}
