package get_product

import (
	"context"

	"github.com/light-bringer/order-management-service/internal/app/product/contracts"
)

// Query retrieves a single product.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new get product query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{readModel: readModel}
}

// Execute returns the product DTO for the given ID.
func (q *Query) Execute(ctx context.Context, productID string) (*contracts.ProductDTO, error) {
	return q.readModel.GetProductByID(ctx, productID)
}
