package create_order

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/light-bringer/order-management-service/internal/app/order/contracts"
	"github.com/light-bringer/order-management-service/internal/app/order/domain"
	productcontracts "github.com/light-bringer/order-management-service/internal/app/product/contracts"
	productdomain "github.com/light-bringer/order-management-service/internal/app/product/domain"
	"github.com/light-bringer/order-management-service/internal/pkg/clock"
	"github.com/light-bringer/order-management-service/internal/pkg/committer"
)

// ItemInput is a requested (product, quantity) pair.
type ItemInput struct {
	ProductID string
	Quantity  int64
}

// Request contains the data needed to create an order.
type Request struct {
	OrderNumber string
	Status      string
	Items       []ItemInput
}

// Interactor handles the create order use case.
type Interactor struct {
	orderRepo   contracts.OrderRepository
	productRepo productcontracts.ProductRepository
	committer   *committer.Committer
	clock       clock.Clock
}

// NewInteractor creates a new create order interactor.
func NewInteractor(
	orderRepo contracts.OrderRepository,
	productRepo productcontracts.ProductRepository,
	committer *committer.Committer,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		committer:   committer,
		clock:       clock,
	}
}

// Execute creates a new order with its items in one commit and returns the
// order ID. Requested items whose product does not exist are skipped
// without error; the response only reflects items that were constructed.
func (i *Interactor) Execute(ctx context.Context, req *Request) (string, error) {
	if req.OrderNumber == "" {
		return "", domain.ErrMissingOrderNumber
	}

	status, err := domain.ParseStatus(req.Status)
	if err != nil {
		return "", err
	}

	taken, err := i.orderRepo.ExistsByNumber(ctx, req.OrderNumber)
	if err != nil {
		return "", err
	}
	if taken {
		return "", domain.ErrDuplicateOrderNumber
	}

	orderID := uuid.New().String()
	now := i.clock.Now()

	order, err := domain.NewOrder(orderID, req.OrderNumber, status, now, i.clock)
	if err != nil {
		return "", err
	}

	items, err := buildItems(ctx, i.productRepo, req.Items)
	if err != nil {
		return "", err
	}
	for _, item := range items {
		order.AddItem(item)
	}

	muts, err := i.orderRepo.InsertMuts(order)
	if err != nil {
		return "", err
	}

	plan := committer.NewPlan()
	plan.AddMultiple(muts)

	if err := i.committer.Apply(ctx, plan); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	return order.ID(), nil
}

// buildItems constructs line items for the requested pairs, snapshotting
// each product's current unit price. Unknown products are skipped silently.
func buildItems(ctx context.Context, products productcontracts.ProductRepository, inputs []ItemInput) ([]*domain.Item, error) {
	items := make([]*domain.Item, 0, len(inputs))

	for _, input := range inputs {
		product, err := products.GetByID(ctx, input.ProductID)
		if err != nil {
			if errors.Is(err, productdomain.ErrProductNotFound) {
				continue
			}
			return nil, err
		}

		item, err := domain.NewItem(
			uuid.New().String(),
			product.ID(),
			product.Name(),
			input.Quantity,
			product.UnitPrice(),
		)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}
