package payroll

import "errors"

var (
	ErrStateRateNotFound = errors.New("state rate not found")
	ErrEventNotFound     = errors.New("event not found")
	ErrInvalidPeriod     = errors.New("invalid pay period")
	ErrInvalidStateCode  = errors.New("invalid state code")
	ErrInvalidBaseRate   = errors.New("base rate must be positive")
)
