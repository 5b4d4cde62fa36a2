package update_order

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/light-bringer/order-management-service/internal/app/order/contracts"
	"github.com/light-bringer/order-management-service/internal/app/order/domain"
	productcontracts "github.com/light-bringer/order-management-service/internal/app/product/contracts"
	productdomain "github.com/light-bringer/order-management-service/internal/app/product/domain"
	"github.com/light-bringer/order-management-service/internal/pkg/committer"
)

// ItemInput is a requested (product, quantity) pair.
type ItemInput struct {
	ProductID string
	Quantity  int64
}

// Request contains the data for an order update. Nil fields are left
// untouched. A non-nil empty Items slice clears the order's items; when
// Items is set the whole item set is replaced, prices re-snapshotted from
// the current products.
type Request struct {
	OrderID     string
	OrderNumber *string
	Status      *string
	Items       []ItemInput
	ItemsSet    bool
}

// Interactor handles the update order use case.
type Interactor struct {
	orderRepo   contracts.OrderRepository
	productRepo productcontracts.ProductRepository
	committer   *committer.Committer
}

// NewInteractor creates a new update order interactor.
func NewInteractor(
	orderRepo contracts.OrderRepository,
	productRepo productcontracts.ProductRepository,
	committer *committer.Committer,
) *Interactor {
	return &Interactor{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		committer:   committer,
	}
}

// Execute updates an order. A Completed order refuses every change.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	order, err := i.orderRepo.GetByID(ctx, req.OrderID)
	if err != nil {
		return err
	}

	if order.IsCompleted() {
		return domain.ErrOrderCompleted
	}

	if req.OrderNumber != nil && *req.OrderNumber != order.OrderNumber() {
		taken, err := i.orderRepo.ExistsByNumber(ctx, *req.OrderNumber)
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrDuplicateOrderNumber
		}

		if err := order.SetOrderNumber(*req.OrderNumber); err != nil {
			return err
		}
	}

	if req.ItemsSet {
		items, err := i.buildItems(ctx, req.Items)
		if err != nil {
			return err
		}

		if err := order.ReplaceItems(items); err != nil {
			return err
		}
	}

	// The Completed lock applies to the order's state before this update,
	// so the status change goes last: a request may move an order to
	// Completed and still have its other changes honored.
	if req.Status != nil {
		status, err := domain.ParseStatus(*req.Status)
		if err != nil {
			return err
		}

		if err := order.SetStatus(status); err != nil {
			return err
		}
	}

	muts, err := i.orderRepo.UpdateMuts(order)
	if err != nil {
		return err
	}

	plan := committer.NewPlan()
	plan.AddMultiple(muts)
	if plan.IsEmpty() {
		return nil
	}

	if err := i.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// buildItems constructs replacement items for the requested pairs,
// snapshotting each product's current unit price. Unknown products are
// skipped silently.
func (i *Interactor) buildItems(ctx context.Context, inputs []ItemInput) ([]*domain.Item, error) {
	items := make([]*domain.Item, 0, len(inputs))

	for _, input := range inputs {
		product, err := i.productRepo.GetByID(ctx, input.ProductID)
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
