package create_product

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/light-bringer/order-management-service/internal/app/product/contracts"
	"github.com/light-bringer/order-management-service/internal/app/product/domain"
	"github.com/light-bringer/order-management-service/internal/pkg/clock"
	"github.com/light-bringer/order-management-service/internal/pkg/committer"
	"github.com/light-bringer/order-management-service/internal/pkg/money"
)

// Request contains the data needed to create a product.
type Request struct {
	Name      string
	UnitPrice *money.Money
}

// Interactor handles the create product use case.
type Interactor struct {
	repo      contracts.ProductRepository
	committer *committer.Committer
	clock     clock.Clock
}

// NewInteractor creates a new create product interactor.
func NewInteractor(
	repo contracts.ProductRepository,
	committer *committer.Committer,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		repo:      repo,
		committer: committer,
		clock:     clock,
	}
}

// Execute creates a new product and returns its ID.
func (i *Interactor) Execute(ctx context.Context, req *Request) (string, error) {
	if err := i.validate(req); err != nil {
		return "", err
	}

	productID := uuid.New().String()
	now := i.clock.Now()

	product, err := domain.NewProduct(productID, req.Name, req.UnitPrice, now, i.clock)
	if err != nil {
		return "", err
	}

	plan := committer.NewPlan()

	mut, err := i.repo.InsertMut(product)
	if err != nil {
		return "", err
	}
	plan.Add(mut)

	if err := i.committer.Apply(ctx, plan); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	return product.ID(), nil
}

func (i *Interactor) validate(req *Request) error {
	if req.Name == "" {
		return domain.ErrEmptyName
	}
	if req.UnitPrice == nil {
		return domain.ErrMissingPrice
	}
	if req.UnitPrice.IsNegative() {
		return domain.ErrInvalidPrice
	}
	return nil
}
