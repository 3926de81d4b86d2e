package reception

import "errors"

var (
	ErrReceptionNotFound = errors.New("reception: not found")
	ErrRequiredFields    = errors.New("reception: required fields missing")
	ErrInvalidQuantity   = errors.New("reception: quantity and minimum threshold must be positive")
)
