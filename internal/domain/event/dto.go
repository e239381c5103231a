package event

import "github.com/shopspring/decimal"

type FinancialsResponse struct {
	EventID           string          `json:"event_id"`
	StateCode         string          `json:"state_code"`
	EventDate         string          `json:"event_date"` // YYYY-MM-DD
	TicketSales       decimal.Decimal `json:"ticket_sales"`
	Tips              decimal.Decimal `json:"tips"`
	TaxRatePercent    decimal.Decimal `json:"tax_rate_percent"`
	CommissionPoolPct decimal.Decimal `json:"commission_pool_pct"`
}

type AssignmentResponse struct {
	UserID   string `json:"user_id"`
	Division string `json:"division"`
}

type EventDetailResponse struct {
	Financials  FinancialsResponse   `json:"financials"`
	Assignments []AssignmentResponse `json:"assignments"`
}
