package delete_product

import (
	"context"
	"fmt"

	"github.com/light-bringer/order-management-service/internal/app/product/contracts"
	"github.com/light-bringer/order-management-service/internal/app/product/domain"
	"github.com/light-bringer/order-management-service/internal/pkg/committer"
)

// Interactor handles the delete product use case. Deleting a product
// cascade-deletes every order item referencing it, shrinking historical
// orders.
type Interactor struct {
	repo      contracts.ProductRepository
	committer *committer.Committer
}

// NewInteractor creates a new delete product interactor.
func NewInteractor(
	repo contracts.ProductRepository,
	committer *committer.Committer,
) *Interactor {
	return &Interactor{
		repo:      repo,
		committer: committer,
	}
}

// Execute deletes an existing product.
func (i *Interactor) Execute(ctx context.Context, productID string) error {
	exists, err := i.repo.Exists(ctx, productID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrProductNotFound
	}

	plan := committer.NewPlan()
	plan.Add(i.repo.DeleteMut(productID))

	if err := i.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
