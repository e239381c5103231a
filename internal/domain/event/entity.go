package event

import (
	"time"

	"github.com/shopspring/decimal"
)

// Division enum
type Division string

const (
	DivisionVendor   Division = "vendor"
	DivisionTrailers Division = "trailers"
	DivisionBoth     Division = "both"
)

// CommissionEligible reports whether a division participates in the
// commission pool. Trailers crews are paid outside the pool.
func (d Division) CommissionEligible() bool {
	return d != DivisionTrailers
}

// Financials - Financial inputs configured on an event. Read-only to the
// payroll engine; mutated only by event editors.
type Financials struct {
	EventID            string
	StateCode          string
	EventDate          time.Time
	TicketSales        decimal.Decimal
	Tips               decimal.Decimal
	TaxRatePercent     decimal.Decimal // e.g. 8.25 for 8.25%
	CommissionPoolPct  decimal.Decimal // fraction of net sales, e.g. 0.10
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Assignment - A worker staffed on an event.
type Assignment struct {
	EventID   string
	UserID    string
	Division  Division
	CreatedAt time.Time
}
