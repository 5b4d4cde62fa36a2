package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/order-management-service/internal/app/order/contracts"
	"github.com/light-bringer/order-management-service/internal/app/order/domain"
	"github.com/light-bringer/order-management-service/internal/models/m_order"
	"github.com/light-bringer/order-management-service/internal/models/m_order_item"
	"github.com/light-bringer/order-management-service/internal/pkg/clock"
	"github.com/light-bringer/order-management-service/internal/pkg/money"
	"github.com/light-bringer/order-management-service/internal/pkg/query"
)

// OrderRepo implements OrderRepository for Spanner.
type OrderRepo struct {
	client    *spanner.Client
	model     *m_order.Model
	itemModel *m_order_item.Model
	clock     clock.Clock
}

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(client *spanner.Client, clk clock.Clock) contracts.OrderRepository {
	return &OrderRepo{
		client:    client,
		model:     m_order.NewModel(),
		itemModel: m_order_item.NewModel(),
		clock:     clk,
	}
}

// InsertMuts creates mutations inserting a new order together with its items.
func (r *OrderRepo) InsertMuts(order *domain.Order) ([]*spanner.Mutation, error) {
	muts := make([]*spanner.Mutation, 0, order.ProductCount()+1)

	muts = append(muts, r.model.InsertMut(&m_order.Data{
		OrderID:     order.ID(),
		OrderNumber: order.OrderNumber(),
		OrderDate:   order.Date(),
		Status:      string(order.Status()),
	}))

	itemMuts, err := r.itemInsertMuts(order)
	if err != nil {
		return nil, err
	}

	return append(muts, itemMuts...), nil
}

// UpdateMuts creates mutations for the dirty parts of an order.
func (r *OrderRepo) UpdateMuts(order *domain.Order) ([]*spanner.Mutation, error) {
	changes := order.Changes()
	if !changes.HasChanges() {
		return nil, nil
	}

	muts := make([]*spanner.Mutation, 0)
	updates := make(map[string]interface{})

	if changes.Dirty(domain.FieldOrderNumber) {
		updates[m_order.OrderNumber] = order.OrderNumber()
	}

	if changes.Dirty(domain.FieldStatus) {
		updates[m_order.Status] = string(order.Status())
	}

	if len(updates) > 0 {
		muts = append(muts, r.model.UpdateMut(order.ID(), updates))
	} else if changes.Dirty(domain.FieldItems) {
		// Item-only changes still refresh the parent's updated_at.
		muts = append(muts, r.model.TouchMut(order.ID()))
	}

	if changes.Dirty(domain.FieldItems) {
		// Range deletes are applied before inserts within a Spanner commit,
		// so delete-all plus re-insert is safe in one plan.
		muts = append(muts, r.itemModel.DeleteByOrderMut(order.ID()))

		itemMuts, err := r.itemInsertMuts(order)
		if err != nil {
			return nil, err
		}
		muts = append(muts, itemMuts...)
	}

	return muts, nil
}

// DeleteMut creates a mutation deleting an order.
func (r *OrderRepo) DeleteMut(orderID string) *spanner.Mutation {
	return r.model.DeleteMut(orderID)
}

// GetByID retrieves an order with its items.
func (r *OrderRepo) GetByID(ctx context.Context, orderID string) (*domain.Order, error) {
	row, err := r.client.Single().ReadRow(ctx, m_order.TableName, spanner.Key{orderID}, m_order.Columns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to read order: %w", err)
	}

	var data m_order.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse order: %w", err)
	}

	items, err := r.itemsForOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return domain.ReconstructOrder(
		data.OrderID,
		data.OrderNumber,
		data.OrderDate,
		domain.OrderStatus(data.Status),
		items,
		data.CreatedAt,
		data.UpdatedAt,
		r.clock,
	), nil
}

// ExistsByNumber checks whether any order carries the given number.
func (r *OrderRepo) ExistsByNumber(ctx context.Context, orderNumber string) (bool, error) {
	stmt := query.From(m_order.TableName).
		Where(query.Eq(m_order.OrderNumber, orderNumber)).
		Count().
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return false, fmt.Errorf("failed to check order number: %w", err)
	}

	var count int64
	if err := row.Columns(&count); err != nil {
		return false, fmt.Errorf("failed to parse count: %w", err)
	}

	return count > 0, nil
}

func (r *OrderRepo) itemInsertMuts(order *domain.Order) ([]*spanner.Mutation, error) {
	muts := make([]*spanner.Mutation, 0, order.ProductCount())

	for _, item := range order.Items() {
		unitPrice := item.UnitPrice()
		if !unitPrice.IsSafeForStorage() {
			return nil, fmt.Errorf("item unit price exceeds storage capacity")
		}

		muts = append(muts, r.itemModel.InsertMut(&m_order_item.Data{
			OrderID:              order.ID(),
			OrderItemID:          item.ID(),
			ProductID:            item.ProductID(),
			Quantity:             item.Quantity(),
			UnitPriceNumerator:   unitPrice.Numerator(),
			UnitPriceDenominator: unitPrice.Denominator(),
		}))
	}

	return muts, nil
}

func (r *OrderRepo) itemsForOrder(ctx context.Context, orderID string) ([]*domain.Item, error) {
	stmt := query.From(m_order_item.TableName).
		Select(m_order_item.Columns...).
		Where(query.Eq(m_order_item.OrderID, orderID)).
		OrderBy(m_order_item.OrderItemID, query.Asc).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	items := make([]*domain.Item, 0)

	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate order items: %w", err)
		}

		var data m_order_item.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse order item: %w", err)
		}

		unitPrice, err := money.New(data.UnitPriceNumerator, data.UnitPriceDenominator)
		if err != nil {
			return nil, fmt.Errorf("invalid item unit price: %w", err)
		}

		items = append(items, domain.ReconstructItem(
			data.OrderItemID,
			data.ProductID,
			"", // product names are a read-model concern
			data.Quantity,
			unitPrice,
		))
	}

	return items, nil
}
