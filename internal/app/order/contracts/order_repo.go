package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/order-management-service/internal/app/order/domain"
)

// OrderRepository defines the interface for order persistence. Repositories
// return mutations, they don't apply them; usecases collect mutations into a
// commit plan and apply the plan atomically, which is what keeps an order
// and its items consistent.
type OrderRepository interface {
	// InsertMuts creates mutations inserting a new order together with all
	// of its items.
	InsertMuts(order *domain.Order) ([]*spanner.Mutation, error)

	// UpdateMuts creates mutations for the dirty parts of an order. When
	// the item set was replaced, the result contains a range delete of the
	// old items plus inserts for the new ones.
	UpdateMuts(order *domain.Order) ([]*spanner.Mutation, error)

	// DeleteMut creates a mutation deleting an order. Its items go with it
	// through the interleaved ON DELETE CASCADE.
	DeleteMut(orderID string) *spanner.Mutation

	// GetByID retrieves an order with its items, reconstructing the domain
	// aggregate.
	GetByID(ctx context.Context, orderID string) (*domain.Order, error)

	// ExistsByNumber checks whether any order carries the given number.
	ExistsByNumber(ctx context.Context, orderNumber string) (bool, error)
}
