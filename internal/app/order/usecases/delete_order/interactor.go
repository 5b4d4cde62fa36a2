package delete_order

import (
	"context"
	"fmt"

	"github.com/light-bringer/order-management-service/internal/app/order/contracts"
	"github.com/light-bringer/order-management-service/internal/app/order/domain"
	"github.com/light-bringer/order-management-service/internal/pkg/committer"
)

// Interactor handles the delete order use case.
type Interactor struct {
	orderRepo contracts.OrderRepository
	committer *committer.Committer
}

// NewInteractor creates a new delete order interactor.
func NewInteractor(orderRepo contracts.OrderRepository, committer *committer.Committer) *Interactor {
	return &Interactor{
		orderRepo: orderRepo,
		committer: committer,
	}
}

// Execute deletes an order. Its items are removed by the interleaved
// cascade. Completed orders cannot be deleted.
func (i *Interactor) Execute(ctx context.Context, orderID string) error {
	order, err := i.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}

	if order.IsCompleted() {
		return domain.ErrOrderCompleted
	}

	plan := committer.NewPlan()
	plan.Add(i.orderRepo.DeleteMut(order.ID()))

	if err := i.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
