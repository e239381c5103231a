package payroll

import (
	"github.com/crewline/staffing-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

var (
	overtimeMultiplier = decimal.NewFromFloat(1.5)
	restBreakLong      = decimal.NewFromInt(12)
	restBreakShort     = decimal.NewFromInt(9)
)

// PayInput carries everything the calculator needs for one worker at one
// event. CommissionShare is the pool distributor's output for this worker;
// zero for commission-ineligible divisions.
type PayInput struct {
	UserID           string
	EventID          string
	Regime           payroll.Regime
	ActualHours      float64
	BaseRate         decimal.Decimal
	CommissionShare  decimal.Decimal
	IsWeeklyOvertime bool
	TipsPool         decimal.Decimal
	TotalEventHours  float64
	ExplicitTip      decimal.Decimal
	OtherAdjustment  decimal.Decimal
}

// ComputePayComponents turns one worker's inputs into the full pay
// breakdown. Pure; every call site shares these formulas.
func ComputePayComponents(in PayInput) payroll.PayComponents {
	out := payroll.PayComponents{
		UserID:           in.UserID,
		EventID:          in.EventID,
		Regime:           in.Regime,
		ActualHours:      in.ActualHours,
		IsWeeklyOvertime: in.IsWeeklyOvertime,
		BaseRate:         in.BaseRate,
		OtherAdjustment:  in.OtherAdjustment,
	}

	hours := decimal.NewFromFloat(in.ActualHours)
	hasHours := in.ActualHours > 0

	switch in.Regime {
	case payroll.RegimeWeeklyOvertime:
		extRegular := hours.Mul(in.BaseRate)

		// The pool distributor already accounts for the overtime uplift, so
		// the share is credited as-is here.
		out.CommissionAmt = in.CommissionShare

		totalBase := decimal.Zero
		loadedBase := in.BaseRate
		if hasHours {
			totalBase = decimal.Max(payroll.MinimumEventPay, extRegular.Add(out.CommissionAmt))
			loadedBase = totalBase.Div(hours)
		}

		if in.IsWeeklyOvertime && hasHours {
			// The OT multiplier applies to the loaded rate, which already
			// embeds the commission; it is not added a second time.
			otRate := loadedBase.Mul(overtimeMultiplier)
			out.LoadedRate = otRate
			out.ExtAmtOnRegRate = otRate.Mul(hours)
			out.TotalFinalCommissionAmt = out.ExtAmtOnRegRate
		} else {
			out.LoadedRate = loadedBase
			out.ExtAmtOnRegRate = extRegular
			out.TotalFinalCommissionAmt = totalBase
		}

		out.RestBreak = decimal.Zero

	default: // RegimeStandard
		out.ExtAmtOnRegRate = hours.Mul(in.BaseRate).Mul(overtimeMultiplier)

		// An event is either commission-positive for a worker or contributes
		// nothing: the remainder after covering the extended amount must
		// itself reach the extended amount or it is dropped.
		commission := in.CommissionShare.Sub(out.ExtAmtOnRegRate)
		if commission.LessThan(out.ExtAmtOnRegRate) {
			commission = decimal.Zero
		}
		out.CommissionAmt = commission

		if hasHours {
			out.TotalFinalCommissionAmt = decimal.Max(payroll.MinimumEventPay, out.ExtAmtOnRegRate.Add(out.CommissionAmt))
			out.LoadedRate = out.TotalFinalCommissionAmt.Div(hours)
		} else {
			out.TotalFinalCommissionAmt = decimal.Zero
			out.LoadedRate = in.BaseRate
		}

		out.RestBreak = restBreakPremium(in.ActualHours)
	}

	out.Tips = prorateTips(in)
	out.TotalGrossPay = out.TotalFinalCommissionAmt.Add(out.Tips).Add(out.RestBreak).Add(out.OtherAdjustment)

	return out
}

// restBreakPremium is the fixed meal/rest add-on required only in the
// standard regime: $12 for shifts of ten hours or more, $9 for any shorter
// positive shift.
func restBreakPremium(actualHours float64) decimal.Decimal {
	switch {
	case actualHours >= 10:
		return restBreakLong
	case actualHours > 0:
		return restBreakShort
	default:
		return decimal.Zero
	}
}

// prorateTips splits the event tip pool by each worker's share of total
// clocked hours. When nobody clocked time the caller's explicit per-worker
// figure is used instead.
func prorateTips(in PayInput) decimal.Decimal {
	if in.TotalEventHours <= 0 {
		return in.ExplicitTip
	}
	return in.TipsPool.
		Mul(decimal.NewFromFloat(in.ActualHours)).
		Div(decimal.NewFromFloat(in.TotalEventHours))
}
