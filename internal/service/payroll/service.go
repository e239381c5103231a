package payroll

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/crewline/staffing-backend-go/internal/domain/event"
	"github.com/crewline/staffing-backend-go/internal/domain/payroll"
	"github.com/crewline/staffing-backend-go/internal/domain/timesheet"
	"github.com/crewline/staffing-backend-go/internal/pkg/database"
	"github.com/crewline/staffing-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	db               *database.DB
	rateRepo         payroll.RateRepository
	eventRepo        event.EventRepository
	timesheetService timesheet.TimesheetService
}

func NewPayrollService(
	db *database.DB,
	rateRepo payroll.RateRepository,
	eventRepo event.EventRepository,
	timesheetService timesheet.TimesheetService,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:               db,
		rateRepo:         rateRepo,
		eventRepo:        eventRepo,
		timesheetService: timesheetService,
	}
}

// ========== EVENT PAYRUN ==========

func (s *PayrollServiceImpl) ComputeEventPayroll(ctx context.Context, req payroll.ComputeEventPayrollRequest) (payroll.EventPayrunResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.EventPayrunResponse{}, err
	}

	run, err := s.computeEvent(ctx, req)
	if err != nil {
		return payroll.EventPayrunResponse{}, err
	}

	return mapToPayrunResponse(run), nil
}

func (s *PayrollServiceImpl) computeEvent(ctx context.Context, req payroll.ComputeEventPayrollRequest) (payroll.EventPayrun, error) {
	fin, err := s.eventRepo.GetFinancials(ctx, req.EventID)
	if err != nil {
		if errors.Is(err, event.ErrEventNotFound) {
			return payroll.EventPayrun{}, payroll.ErrEventNotFound
		}
		return payroll.EventPayrun{}, fmt.Errorf("failed to get event financials: %w", err)
	}

	assignments, err := s.eventRepo.GetAssignments(ctx, req.EventID)
	if err != nil {
		return payroll.EventPayrun{}, fmt.Errorf("failed to get assignments: %w", err)
	}

	regime := payroll.RegimeForState(fin.StateCode)
	baseRate := s.baseRateForState(ctx, fin.StateCode)

	sheet, err := s.timesheetService.GetEventTimesheet(ctx, req.EventID)
	if err != nil {
		return payroll.EventPayrun{}, err
	}
	hoursByUser := make(map[string]float64, len(sheet.Summaries))
	totalEventHours := 0.0
	for _, summary := range sheet.Summaries {
		hoursByUser[summary.UserID] = summary.ActualHours
		totalEventHours += summary.ActualHours
	}

	// Weekly-overtime states need each worker's Monday-anchored prior hours
	// before the pool can be solved.
	overtimeByUser := make(map[string]bool)
	if regime == payroll.RegimeWeeklyOvertime {
		for _, a := range assignments {
			hours := hoursByUser[a.UserID]
			if hours <= 0 {
				continue
			}
			prior, err := s.timesheetService.PriorWeekHours(ctx, a.UserID, fin.EventDate)
			if err != nil {
				return payroll.EventPayrun{}, err
			}
			overtimeByUser[a.UserID] = prior+hours > payroll.WeeklyOvertimeThresholdHours
		}
	}

	pool := PoolDollars(fin)
	share := s.resolveShare(regime, pool, baseRate, assignments, hoursByUser, overtimeByUser)

	run := payroll.EventPayrun{
		RunID:       uuid.NewString(),
		EventID:     req.EventID,
		StateCode:   fin.StateCode,
		Regime:      regime,
		PoolDollars: pool,
		ComputedAt:  time.Now().UTC(),
	}

	for _, a := range assignments {
		in := PayInput{
			UserID:          a.UserID,
			EventID:         req.EventID,
			Regime:          regime,
			ActualHours:     hoursByUser[a.UserID],
			BaseRate:        baseRate,
			TipsPool:        fin.Tips,
			TotalEventHours: totalEventHours,
			ExplicitTip:     req.WorkerTips[a.UserID],
			OtherAdjustment: req.OtherAdjustments[a.UserID],
		}
		if a.Division.CommissionEligible() {
			in.CommissionShare = share
		}
		if regime == payroll.RegimeWeeklyOvertime {
			in.IsWeeklyOvertime = overtimeByUser[a.UserID]
		}

		run.Workers = append(run.Workers, ComputePayComponents(in))
	}

	return run, nil
}

// resolveShare computes the per-worker commission for the event's regime.
// Eligibility requires a commission-eligible division and positive hours.
func (s *PayrollServiceImpl) resolveShare(
	regime payroll.Regime,
	pool, baseRate decimal.Decimal,
	assignments []event.Assignment,
	hoursByUser map[string]float64,
	overtimeByUser map[string]bool,
) decimal.Decimal {
	var eligible []PoolWorker
	for _, a := range assignments {
		hours := hoursByUser[a.UserID]
		if !a.Division.CommissionEligible() || hours <= 0 {
			continue
		}
		eligible = append(eligible, PoolWorker{
			UserID:           a.UserID,
			Hours:            hours,
			IsWeeklyOvertime: overtimeByUser[a.UserID],
		})
	}

	if regime == payroll.RegimeWeeklyOvertime {
		return SolveWeeklyShare(pool, baseRate, eligible)
	}
	return SplitEqually(pool, len(eligible))
}

func (s *PayrollServiceImpl) baseRateForState(ctx context.Context, stateCode string) decimal.Decimal {
	rate, err := s.rateRepo.GetByState(ctx, stateCode)
	if err != nil {
		// Unconfigured states never fail a run.
		return payroll.DefaultBaseRate
	}
	return rate.BaseRate
}

// ========== PERIOD SUMMARY ==========

func (s *PayrollServiceImpl) ComputePeriodSummary(ctx context.Context, req payroll.ComputePeriodRequest) (payroll.PeriodSummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PeriodSummaryResponse{}, err
	}

	from, _ := validator.IsValidDate(req.From)
	to, _ := validator.IsValidDate(req.To)

	eventIDs, err := s.eventRepo.ListEventIDsInRange(ctx, from, to)
	if err != nil {
		return payroll.PeriodSummaryResponse{}, fmt.Errorf("failed to list events: %w", err)
	}

	byUser := make(map[string]*payroll.WorkerPeriodSummary)
	failed := make(map[string]string)

	for _, eventID := range eventIDs {
		run, err := s.computeEvent(ctx, payroll.ComputeEventPayrollRequest{EventID: eventID})
		if err != nil {
			// One malformed event must not abort the batch.
			failed[eventID] = err.Error()
			continue
		}

		for _, pc := range run.Workers {
			summary, ok := byUser[pc.UserID]
			if !ok {
				summary = &payroll.WorkerPeriodSummary{
					UserID:        pc.UserID,
					GrossPay:      decimal.Zero,
					Deductions:    decimal.Zero,
					Reimbursement: decimal.Zero,
				}
				byUser[pc.UserID] = summary
			}
			summary.GrossPay = summary.GrossPay.Add(pc.TotalGrossPay)
			summary.Events = append(summary.Events, pc)
		}
	}

	resp := payroll.PeriodSummaryResponse{
		RunID:      uuid.NewString(),
		From:       req.From,
		To:         req.To,
		ComputedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if len(failed) > 0 {
		resp.FailedEvents = failed
	}

	userIDs := make([]string, 0, len(byUser))
	for userID := range byUser {
		userIDs = append(userIDs, userID)
	}
	sort.Strings(userIDs)

	for _, userID := range userIDs {
		summary := byUser[userID]
		summary.Deductions = req.Deductions[userID]
		summary.Reimbursement = req.Reimbursements[userID]
		summary.NetPay = summary.GrossPay.Sub(summary.Deductions).Add(summary.Reimbursement)

		resp.Workers = append(resp.Workers, mapToWorkerSummaryResponse(*summary))
	}

	return resp, nil
}

// ========== STATE RATES ==========

func (s *PayrollServiceImpl) GetStateRate(ctx context.Context, stateCode string) (payroll.StateRateResponse, error) {
	if !validator.IsValidStateCode(stateCode) {
		return payroll.StateRateResponse{}, payroll.ErrInvalidStateCode
	}

	rate, err := s.rateRepo.GetByState(ctx, stateCode)
	if err != nil {
		if errors.Is(err, payroll.ErrStateRateNotFound) {
			return payroll.StateRateResponse{
				StateCode: stateCode,
				BaseRate:  payroll.DefaultBaseRate,
				IsDefault: true,
			}, nil
		}
		return payroll.StateRateResponse{}, err
	}

	return payroll.StateRateResponse{StateCode: rate.StateCode, BaseRate: rate.BaseRate}, nil
}

func (s *PayrollServiceImpl) ListStateRates(ctx context.Context) ([]payroll.StateRateResponse, error) {
	rates, err := s.rateRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]payroll.StateRateResponse, 0, len(rates))
	for _, r := range rates {
		result = append(result, payroll.StateRateResponse{StateCode: r.StateCode, BaseRate: r.BaseRate})
	}
	return result, nil
}

func (s *PayrollServiceImpl) UpsertStateRate(ctx context.Context, req payroll.UpsertStateRateRequest) (payroll.StateRateResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.StateRateResponse{}, err
	}

	rate, err := s.rateRepo.Upsert(ctx, payroll.StateRate{StateCode: req.StateCode, BaseRate: req.BaseRate})
	if err != nil {
		return payroll.StateRateResponse{}, err
	}

	return payroll.StateRateResponse{StateCode: rate.StateCode, BaseRate: rate.BaseRate}, nil
}

func (s *PayrollServiceImpl) DeleteStateRate(ctx context.Context, stateCode string) error {
	if !validator.IsValidStateCode(stateCode) {
		return payroll.ErrInvalidStateCode
	}
	return s.rateRepo.Delete(ctx, stateCode)
}

// ========== HELPERS ==========

func mapToComponentsResponse(pc payroll.PayComponents) payroll.PayComponentsResponse {
	return payroll.PayComponentsResponse{
		UserID:                  pc.UserID,
		EventID:                 pc.EventID,
		Regime:                  string(pc.Regime),
		ActualHours:             pc.ActualHours,
		IsWeeklyOvertime:        pc.IsWeeklyOvertime,
		BaseRate:                pc.BaseRate,
		LoadedRate:              pc.LoadedRate.Round(2),
		ExtAmtOnRegRate:         pc.ExtAmtOnRegRate.Round(2),
		CommissionAmt:           pc.CommissionAmt.Round(2),
		TotalFinalCommissionAmt: pc.TotalFinalCommissionAmt.Round(2),
		Tips:                    pc.Tips.Round(2),
		RestBreak:               pc.RestBreak,
		OtherAdjustment:         pc.OtherAdjustment,
		TotalGrossPay:           pc.TotalGrossPay.Round(2),
	}
}

func mapToPayrunResponse(run payroll.EventPayrun) payroll.EventPayrunResponse {
	resp := payroll.EventPayrunResponse{
		RunID:       run.RunID,
		EventID:     run.EventID,
		StateCode:   run.StateCode,
		Regime:      string(run.Regime),
		PoolDollars: run.PoolDollars.Round(2),
		ComputedAt:  run.ComputedAt.Format(time.RFC3339),
	}
	for _, pc := range run.Workers {
		resp.Workers = append(resp.Workers, mapToComponentsResponse(pc))
	}
	return resp
}

func mapToWorkerSummaryResponse(s payroll.WorkerPeriodSummary) payroll.WorkerPeriodSummaryResponse {
	resp := payroll.WorkerPeriodSummaryResponse{
		UserID:        s.UserID,
		GrossPay:      s.GrossPay.Round(2),
		Deductions:    s.Deductions.Round(2),
		Reimbursement: s.Reimbursement.Round(2),
		NetPay:        s.NetPay.Round(2),
	}
	for _, pc := range s.Events {
		resp.Events = append(resp.Events, mapToComponentsResponse(pc))
	}
	return resp
}
