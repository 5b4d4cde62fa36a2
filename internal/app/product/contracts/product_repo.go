package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/order-management-service/internal/app/product/domain"
)

// ProductRepository defines the interface for product persistence.
// Repositories return mutations, they don't apply them; usecases collect
// mutations into a commit plan and apply the plan atomically.
type ProductRepository interface {
	// InsertMut creates a mutation for inserting a new product.
	// Returns an error if the price does not fit the storage columns.
	InsertMut(product *domain.Product) (*spanner.Mutation, error)

	// UpdateMut creates a mutation for updating a product (dirty fields only).
	// Returns nil when nothing changed.
	UpdateMut(product *domain.Product) (*spanner.Mutation, error)

	// DeleteMut creates a mutation for deleting a product.
	DeleteMut(productID string) *spanner.Mutation

	// GetByID retrieves a product by ID, reconstructing the domain aggregate.
	GetByID(ctx context.Context, productID string) (*domain.Product, error)

	// Exists checks if a product exists.
	Exists(ctx context.Context, productID string) (bool, error)
}
