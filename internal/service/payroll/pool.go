package payroll

import (
	"github.com/crewline/staffing-backend-go/internal/domain/event"
	"github.com/crewline/staffing-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

const maxPoolIterations = 20

var (
	hundred       = decimal.NewFromInt(100)
	poolTolerance = decimal.NewFromFloat(0.01)
)

// PoolDollars derives the event's commission pool from its configured
// financials: net sales are ticket sales less tips (floored at zero) after
// tax, and the pool is the configured fraction of that.
func PoolDollars(fin event.Financials) decimal.Decimal {
	netSales := decimal.Max(fin.TicketSales.Sub(fin.Tips), decimal.Zero).
		Mul(decimal.NewFromInt(1).Sub(fin.TaxRatePercent.Div(hundred)))
	return netSales.Mul(fin.CommissionPoolPct)
}

// SplitEqually divides the pool evenly among commission-eligible workers.
// Zero eligible workers yields zero rather than dividing by zero.
func SplitEqually(pool decimal.Decimal, eligibleCount int) decimal.Decimal {
	if eligibleCount <= 0 {
		return decimal.Zero
	}
	return pool.Div(decimal.NewFromInt(int64(eligibleCount)))
}

// PoolWorker is one commission-eligible, hour-positive worker as seen by
// the weekly-overtime solver.
type PoolWorker struct {
	UserID           string
	Hours            float64
	IsWeeklyOvertime bool
}

// SolveWeeklyShare resolves the per-worker commission for weekly-overtime
// states. Overtime workers consume a slice priced at 1.5x a loaded rate
// that itself includes the commission, so the share is found by fixed-point
// iteration: seed zero, recompute every worker's extended amount against
// the current share, and redistribute the remainder until successive
// estimates agree within a cent. The loop is bounded; if it never settles
// the last estimate is returned so a payroll run always terminates with a
// usable number.
func SolveWeeklyShare(pool, baseRate decimal.Decimal, workers []PoolWorker) decimal.Decimal {
	if len(workers) == 0 {
		return decimal.Zero
	}

	count := decimal.NewFromInt(int64(len(workers)))
	share := decimal.Zero

	for i := 0; i < maxPoolIterations; i++ {
		sum := decimal.Zero
		for _, w := range workers {
			ext := decimal.NewFromFloat(w.Hours).Mul(baseRate)
			if w.IsWeeklyOvertime {
				ext = decimal.Max(payroll.MinimumEventPay, ext.Add(share)).Mul(overtimeMultiplier)
			}
			sum = sum.Add(ext)
		}

		next := decimal.Max(pool.Sub(sum).Div(count), decimal.Zero)
		if next.Sub(share).Abs().LessThan(poolTolerance) {
			return next
		}
		share = next
	}

	return share
}
