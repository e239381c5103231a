package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Regime enum - which pay formula set applies to an event, keyed by state.
type Regime string

const (
	// RegimeStandard pays a flat 1.5x extended amount per event plus the
	// rest-break premium; commission credit is all-or-nothing.
	RegimeStandard Regime = "standard"

	// RegimeWeeklyOvertime keys overtime off cumulative calendar-week hours
	// (Monday-anchored, 40h threshold) and folds commission into a loaded
	// overtime rate. No rest-break premium.
	RegimeWeeklyOvertime Regime = "weekly_overtime"
)

// States whose overtime rules key off the calendar week rather than the event.
var weeklyOvertimeStates = map[string]bool{
	"NV": true,
	"WI": true,
	"AZ": true,
	"NY": true,
}

// RegimeForState returns the pay regime an event's state falls under.
func RegimeForState(stateCode string) Regime {
	if weeklyOvertimeStates[stateCode] {
		return RegimeWeeklyOvertime
	}
	return RegimeStandard
}

// DefaultBaseRate applies when no rate is configured for a state.
var DefaultBaseRate = decimal.NewFromFloat(17.28)

// MinimumEventPay is the contractual per-event floor: any worker with
// positive hours is paid at least this much before tips and premiums.
var MinimumEventPay = decimal.NewFromInt(150)

// WeeklyOvertimeThresholdHours - cumulative weekly hours above which the
// current event is paid at the overtime rate.
const WeeklyOvertimeThresholdHours = 40.0

// StateRate - Configured hourly base rate for a state.
type StateRate struct {
	StateCode string
	BaseRate  decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PayComponents - Per-worker per-event gross pay breakdown. Derived fresh
// for every payroll run; never persisted as a single record.
type PayComponents struct {
	UserID                  string
	EventID                 string
	Regime                  Regime
	ActualHours             float64
	IsWeeklyOvertime        bool
	BaseRate                decimal.Decimal
	LoadedRate              decimal.Decimal
	ExtAmtOnRegRate         decimal.Decimal
	CommissionAmt           decimal.Decimal
	TotalFinalCommissionAmt decimal.Decimal
	Tips                    decimal.Decimal
	RestBreak               decimal.Decimal
	OtherAdjustment         decimal.Decimal
	TotalGrossPay           decimal.Decimal
}

// EventPayrun - Computed payroll for one event.
type EventPayrun struct {
	RunID       string
	EventID     string
	StateCode   string
	Regime      Regime
	PoolDollars decimal.Decimal
	Workers     []PayComponents
	ComputedAt  time.Time
}

// WorkerPeriodSummary - One worker's pay-period totals.
type WorkerPeriodSummary struct {
	UserID        string
	GrossPay      decimal.Decimal
	Deductions    decimal.Decimal
	Reimbursement decimal.Decimal
	NetPay        decimal.Decimal
	Events        []PayComponents
}
