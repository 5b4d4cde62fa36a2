package domain

// OrderStatus represents the lifecycle status of an order.
type OrderStatus string

const (
	StatusPending    OrderStatus = "Pending"
	StatusInProgress OrderStatus = "InProgress"
	StatusCompleted  OrderStatus = "Completed"
)

// Valid reports whether the status is one of the known states.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// ParseStatus converts a wire status string to an OrderStatus. The empty
// string defaults to Pending; anything else must match a known state.
func ParseStatus(s string) (OrderStatus, error) {
	if s == "" {
		return StatusPending, nil
	}

	status := OrderStatus(s)
	if !status.Valid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
