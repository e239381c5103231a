package timesheet

import (
	"context"
	"fmt"
	"time"

	"github.com/crewline/staffing-backend-go/internal/domain/timesheet"
	"github.com/crewline/staffing-backend-go/internal/pkg/database"
)

type TimesheetServiceImpl struct {
	db            *database.DB
	timeEntryRepo timesheet.TimeEntryRepository
}

func NewTimesheetService(
	db *database.DB,
	timeEntryRepo timesheet.TimeEntryRepository,
) timesheet.TimesheetService {
	return &TimesheetServiceImpl{
		db:            db,
		timeEntryRepo: timeEntryRepo,
	}
}

func (s *TimesheetServiceImpl) GetEventTimesheet(ctx context.Context, eventID string) (timesheet.EventTimesheetResponse, error) {
	entries, err := s.timeEntryRepo.GetByEvent(ctx, eventID)
	if err != nil {
		return timesheet.EventTimesheetResponse{}, fmt.Errorf("failed to get time entries: %w", err)
	}

	byUser := make(map[string][]timesheet.TimeEntry)
	var order []string
	for _, e := range entries {
		if _, seen := byUser[e.UserID]; !seen {
			order = append(order, e.UserID)
		}
		byUser[e.UserID] = append(byUser[e.UserID], e)
	}

	resp := timesheet.EventTimesheetResponse{EventID: eventID}
	for _, userID := range order {
		summary := Aggregate(userID, eventID, byUser[userID])
		resp.Summaries = append(resp.Summaries, mapToSummaryResponse(summary))
	}

	return resp, nil
}

func (s *TimesheetServiceImpl) GetWorkerSummary(ctx context.Context, eventID string, userID string) (timesheet.WorkSummaryResponse, error) {
	entries, err := s.timeEntryRepo.GetByEventAndUser(ctx, eventID, userID)
	if err != nil {
		return timesheet.WorkSummaryResponse{}, fmt.Errorf("failed to get time entries: %w", err)
	}

	return mapToSummaryResponse(Aggregate(userID, eventID, entries)), nil
}

// PriorWeekHours sums the worker's paired hours from the Monday of the
// event's week up to 00:00 UTC of the event date, across all events. An
// event dated on a Monday has no lookback window at all.
func (s *TimesheetServiceImpl) PriorWeekHours(ctx context.Context, userID string, eventDate time.Time) (float64, error) {
	dayStart := time.Date(eventDate.Year(), eventDate.Month(), eventDate.Day(), 0, 0, 0, 0, time.UTC)
	monday := WeekMonday(eventDate)
	if !monday.Before(dayStart) {
		return 0, nil
	}

	entries, err := s.timeEntryRepo.GetByUserInRange(ctx, userID, monday, dayStart)
	if err != nil {
		return 0, fmt.Errorf("failed to get prior week entries: %w", err)
	}

	return PairedHours(entries), nil
}

func mapToSummaryResponse(s timesheet.WorkSummary) timesheet.WorkSummaryResponse {
	resp := timesheet.WorkSummaryResponse{
		UserID:      s.UserID,
		EventID:     s.EventID,
		ActualHours: s.ActualHours,
		MealHours:   s.MealHours,
	}
	if s.FirstClockIn != nil {
		str := s.FirstClockIn.UTC().Format(time.RFC3339)
		resp.FirstClockIn = &str
	}
	if s.LastClockOut != nil {
		str := s.LastClockOut.UTC().Format(time.RFC3339)
		resp.LastClockOut = &str
	}
	for _, m := range s.MealSpans {
		resp.MealSpans = append(resp.MealSpans, timesheet.MealSpanResponse{
			Start:    m.Start.UTC().Format(time.RFC3339),
			End:      m.End.UTC().Format(time.RFC3339),
			Explicit: m.Explicit,
		})
	}
	return resp
}
