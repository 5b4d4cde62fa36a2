package domain

import "errors"

// Domain errors as sentinel values
var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrMissingOrderNumber   = errors.New("order number is required")
	ErrDuplicateOrderNumber = errors.New("order number already exists")
	ErrInvalidStatus        = errors.New("order status must be Pending, InProgress or Completed")
	ErrOrderCompleted       = errors.New("completed orders cannot be modified or deleted")

	ErrInvalidQuantity  = errors.New("item quantity must be positive")
	ErrMissingItemPrice = errors.New("item unit price is required")
)
