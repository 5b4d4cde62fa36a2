package contracts

import (
	"context"
	"time"
)

// OrderItemDTO is the read-side representation of a line item. UnitPrice is
// the snapshot taken at item construction, TotalPrice the derived quantity
// times snapshot.
type OrderItemDTO struct {
	ItemID      string
	ProductID   string
	ProductName string
	Quantity    int64
	UnitPrice   float64
	TotalPrice  float64
}

// OrderDTO is the read-side representation of an order including derived
// fields. ProductCount and FinalPrice are recomputed on every read, never
// stored.
type OrderDTO struct {
	OrderID      string
	OrderNumber  string
	Date         time.Time
	Status       string
	Items        []*OrderItemDTO
	ProductCount int
	FinalPrice   float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ReadModel defines read-side queries over orders.
type ReadModel interface {
	// GetOrderByID retrieves an order DTO by ID.
	GetOrderByID(ctx context.Context, orderID string) (*OrderDTO, error)

	// ListOrders retrieves all orders, newest first.
	ListOrders(ctx context.Context) ([]*OrderDTO, error)
}
