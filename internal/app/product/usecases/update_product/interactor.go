package update_product

import (
	"context"
	"fmt"

	"github.com/light-bringer/order-management-service/internal/app/product/contracts"
	"github.com/light-bringer/order-management-service/internal/pkg/committer"
	"github.com/light-bringer/order-management-service/internal/pkg/money"
)

// Request contains the data for a partial product update. Nil fields are
// left untouched.
type Request struct {
	ProductID string
	Name      *string
	UnitPrice *money.Money
}

// Interactor handles the update product use case.
type Interactor struct {
	repo      contracts.ProductRepository
	committer *committer.Committer
}

// NewInteractor creates a new update product interactor.
func NewInteractor(
	repo contracts.ProductRepository,
	committer *committer.Committer,
) *Interactor {
	return &Interactor{
		repo:      repo,
		committer: committer,
	}
}

// Execute applies the partial update to an existing product.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	product, err := i.repo.GetByID(ctx, req.ProductID)
	if err != nil {
		return err
	}

	if req.Name != nil {
		if err := product.SetName(*req.Name); err != nil {
			return err
		}
	}

	if req.UnitPrice != nil {
		if err := product.SetUnitPrice(req.UnitPrice); err != nil {
			return err
		}
	}

	mut, err := i.repo.UpdateMut(product)
	if err != nil {
		return err
	}

	plan := committer.NewPlan()
	plan.Add(mut)

	if err := i.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
