package contracts

import (
	"context"
	"time"
)

// ProductDTO is the read-side representation of a product.
type ProductDTO struct {
	ProductID string
	Name      string
	UnitPrice float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ReadModel defines read-side queries over products.
type ReadModel interface {
	// GetProductByID retrieves a product DTO by ID.
	GetProductByID(ctx context.Context, productID string) (*ProductDTO, error)

	// ListProducts retrieves all products, newest first.
	ListProducts(ctx context.Context) ([]*ProductDTO, error)
}
