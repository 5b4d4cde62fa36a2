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
	"github.com/light-bringer/order-management-service/internal/pkg/money"
	"github.com/light-bringer/order-management-service/internal/pkg/query"
)

// ReadModelImpl implements the order ReadModel for Spanner.
type ReadModelImpl struct {
	client *spanner.Client
}

// NewReadModel creates a new ReadModel implementation.
func NewReadModel(client *spanner.Client) contracts.ReadModel {
	return &ReadModelImpl{
		client: client,
	}
}

// itemRow carries one joined order_items/products row.
type itemRow struct {
	OrderItemID          string `spanner:"order_item_id"`
	ProductID            string `spanner:"product_id"`
	ProductName          string `spanner:"product_name"`
	Quantity             int64  `spanner:"quantity"`
	UnitPriceNumerator   int64  `spanner:"unit_price_numerator"`
	UnitPriceDenominator int64  `spanner:"unit_price_denominator"`
}

// GetOrderByID retrieves an order DTO with items and derived fields.
func (rm *ReadModelImpl) GetOrderByID(ctx context.Context, orderID string) (*contracts.OrderDTO, error) {
	row, err := rm.client.Single().ReadRow(ctx, m_order.TableName, spanner.Key{orderID}, m_order.Columns)
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

	return rm.dataToDTO(ctx, &data)
}

// ListOrders retrieves all orders with their items, newest first.
func (rm *ReadModelImpl) ListOrders(ctx context.Context) ([]*contracts.OrderDTO, error) {
	stmt := query.From(m_order.TableName).
		Select(m_order.Columns...).
		OrderBy(m_order.CreatedAt, query.Desc).
		Build()

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	rows := make([]*m_order.Data, 0)

	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate orders: %w", err)
		}

		var data m_order.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse order: %w", err)
		}
		rows = append(rows, &data)
	}

	orders := make([]*contracts.OrderDTO, 0, len(rows))
	for _, data := range rows {
		dto, err := rm.dataToDTO(ctx, data)
		if err != nil {
			return nil, err
		}
		orders = append(orders, dto)
	}

	return orders, nil
}

func (rm *ReadModelImpl) dataToDTO(ctx context.Context, data *m_order.Data) (*contracts.OrderDTO, error) {
	items, finalPrice, err := rm.itemsForOrder(ctx, data.OrderID)
	if err != nil {
		return nil, err
	}

	return &contracts.OrderDTO{
		OrderID:      data.OrderID,
		OrderNumber:  data.OrderNumber,
		Date:         data.OrderDate,
		Status:       data.Status,
		Items:        items,
		ProductCount: len(items),
		FinalPrice:   finalPrice.Float64(),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}, nil
}

// itemsForOrder loads the items of one order joined to their product names
// and computes the running total.
func (rm *ReadModelImpl) itemsForOrder(ctx context.Context, orderID string) ([]*contracts.OrderItemDTO, *money.Money, error) {
	stmt := spanner.Statement{
		SQL: "SELECT oi.order_item_id, oi.product_id, p.name AS product_name, " +
			"oi.quantity, oi.unit_price_numerator, oi.unit_price_denominator " +
			"FROM order_items oi " +
			"JOIN products p ON p.product_id = oi.product_id " +
			"WHERE oi.order_id = @orderID " +
			"ORDER BY oi.order_item_id",
		Params: map[string]interface{}{"orderID": orderID},
	}

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	items := make([]*contracts.OrderItemDTO, 0)
	finalPrice := money.Zero()

	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to iterate order items: %w", err)
		}

		var data itemRow
		if err := row.ToStruct(&data); err != nil {
			return nil, nil, fmt.Errorf("failed to parse order item: %w", err)
		}

		unitPrice, err := money.New(data.UnitPriceNumerator, data.UnitPriceDenominator)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid item unit price: %w", err)
		}

		totalPrice := unitPrice.MultiplyInt(data.Quantity)
		finalPrice = finalPrice.Add(totalPrice)

		items = append(items, &contracts.OrderItemDTO{
			ItemID:      data.OrderItemID,
			ProductID:   data.ProductID,
			ProductName: data.ProductName,
			Quantity:    data.Quantity,
			UnitPrice:   unitPrice.Float64(),
			TotalPrice:  totalPrice.Float64(),
		})
	}

	return items, finalPrice, nil
}
