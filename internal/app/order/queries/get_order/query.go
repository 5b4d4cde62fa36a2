package get_order

import (
	"context"

	"github.com/light-bringer/order-management-service/internal/app/order/contracts"
)

// Query retrieves a single order.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new get order query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{readModel: readModel}
}

// Execute returns the order DTO for the given ID.
func (q *Query) Execute(ctx context.Context, orderID string) (*contracts.OrderDTO, error) {
	return q.readModel.GetOrderByID(ctx, orderID)
}
