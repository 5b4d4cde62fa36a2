package list_products

import (
	"context"

	"github.com/light-bringer/order-management-service/internal/app/product/contracts"
)

// Query lists all products.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list products query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{readModel: readModel}
}

// Execute returns all products, newest first.
func (q *Query) Execute(ctx context.Context) ([]*contracts.ProductDTO, error) {
	return q.readModel.ListProducts(ctx)
}
