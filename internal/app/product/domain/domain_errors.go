package domain

import "errors"

// Domain errors as sentinel values
var (
	ErrProductNotFound = errors.New("product not found")
	ErrEmptyName       = errors.New("product name cannot be empty")
	ErrMissingPrice    = errors.New("product unit price is required")
	ErrInvalidPrice    = errors.New("product unit price cannot be negative")
	ErrPriceOverflow   = errors.New("product unit price exceeds storage bounds")
)
