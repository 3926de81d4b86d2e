package dispatch

import "errors"

var (
	ErrDeliveryNotFound    = errors.New("dispatch: not found")
	ErrRequiredFields      = errors.New("dispatch: required fields missing")
	ErrInvalidQuantity     = errors.New("dispatch: quantity must be positive")
	ErrInvalidManager      = errors.New("dispatch: warehouse manager is not a MANAGER user")
	ErrInvalidDateRange    = errors.New("dispatch: start date is after end date")
	ErrDateRangeIncomplete = errors.New("dispatch: start and end date are required")
)
