package payroll

import (
	"testing"

	"github.com/crewline/staffing-backend-go/internal/domain/event"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolDollars(t *testing.T) {
	t.Parallel()

	fin := event.Financials{
		TicketSales:       d("10000"),
		Tips:              d("500"),
		TaxRatePercent:    d("8"),
		CommissionPoolPct: d("0.10"),
	}

	// (10000 - 500) x 0.92 x 0.10 = 874
	assert.True(t, PoolDollars(fin).Equal(d("874")), "pool = %s", PoolDollars(fin))
}

func TestPoolDollars_TipsExceedSales(t *testing.T) {
	t.Parallel()

	fin := event.Financials{
		TicketSales:       d("100"),
		Tips:              d("250"),
		TaxRatePercent:    d("8"),
		CommissionPoolPct: d("0.10"),
	}

	// Net sales floor at zero, never negative.
	assert.True(t, PoolDollars(fin).IsZero())
}

func TestSplitEqually(t *testing.T) {
	t.Parallel()

	assert.True(t, SplitEqually(d("900"), 3).Equal(d("300")))
	assert.True(t, SplitEqually(d("900"), 0).IsZero(), "no eligible workers yields zero, not a panic")
}

func TestSolveWeeklyShare_NoOvertimeWorkers(t *testing.T) {
	t.Parallel()

	// Without overtime the contributions never move, so the solver settles
	// on the plain remainder split immediately.
	workers := []PoolWorker{
		{UserID: "w1", Hours: 8},
		{UserID: "w2", Hours: 8},
	}
	share := SolveWeeklyShare(d("1000"), d("17.28"), workers)

	// (1000 - 2 x 138.24) / 2 = 361.76
	assert.True(t, share.Equal(d("361.76")), "share = %s", share)
}

func TestSolveWeeklyShare_ConvergesWithOneOvertimeWorker(t *testing.T) {
	t.Parallel()

	// One OT worker among four dampens the feedback enough to converge.
	workers := []PoolWorker{
		{UserID: "w1", Hours: 8},
		{UserID: "w2", Hours: 8},
		{UserID: "w3", Hours: 8},
		{UserID: "w4", Hours: 8, IsWeeklyOvertime: true},
	}
	share := SolveWeeklyShare(d("2000"), d("17.28"), workers)

	// Fixed point of c = (2000 - 3x138.24 - 1.5x(138.24 + c)) / 4
	// => 5.5c = 1377.92 => c = 250.5309...
	expected := d("1377.92").Div(d("5.5"))
	assert.True(t, share.Sub(expected).Abs().LessThan(d("0.05")), "share = %s want ~%s", share, expected)
}

func TestSolveWeeklyShare_Deterministic(t *testing.T) {
	t.Parallel()

	workers := []PoolWorker{
		{UserID: "w1", Hours: 6},
		{UserID: "w2", Hours: 10, IsWeeklyOvertime: true},
		{UserID: "w3", Hours: 8, IsWeeklyOvertime: true},
	}

	first := SolveWeeklyShare(d("3000"), d("17.28"), workers)
	for i := 0; i < 5; i++ {
		again := SolveWeeklyShare(d("3000"), d("17.28"), workers)
		require.True(t, again.Equal(first), "run %d: %s != %s", i, again, first)
	}
	assert.True(t, first.GreaterThanOrEqual(decimal.Zero))
}

func TestSolveWeeklyShare_PoolSmallerThanContributions(t *testing.T) {
	t.Parallel()

	workers := []PoolWorker{
		{UserID: "w1", Hours: 8},
		{UserID: "w2", Hours: 8, IsWeeklyOvertime: true},
	}
	share := SolveWeeklyShare(d("100"), d("17.28"), workers)

	// Pool cannot cover the extended amounts; share clamps to zero.
	assert.True(t, share.IsZero())
}

func TestSolveWeeklyShare_EmptyWorkers(t *testing.T) {
	t.Parallel()

	assert.True(t, SolveWeeklyShare(d("1000"), d("17.28"), nil).IsZero())
}
