package list_orders

import (
	"context"

	"github.com/light-bringer/order-management-service/internal/app/order/contracts"
)

// Query lists all orders.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list orders query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{readModel: readModel}
}

// Execute returns all orders, newest first.
func (q *Query) Execute(ctx context.Context) ([]*contracts.OrderDTO, error) {
	return q.readModel.ListOrders(ctx)
}
