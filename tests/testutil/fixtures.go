package testutil

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/order-management-service/internal/models/m_order"
	"github.com/light-bringer/order-management-service/internal/models/m_order_item"
	"github.com/light-bringer/order-management-service/internal/models/m_product"
)

// CreateTestProduct creates a product directly in the database. The price
// is given as an exact rational.
func CreateTestProduct(t *testing.T, client *spanner.Client, name string, priceNumerator, priceDenominator int64) string {
	t.Helper()

	ctx := context.Background()
	productID := uuid.New().String()

	model := m_product.NewModel()
	mutation := model.InsertMut(&m_product.Data{
		ProductID:            productID,
		Name:                 name,
		UnitPriceNumerator:   priceNumerator,
		UnitPriceDenominator: priceDenominator,
	})

	_, err := client.Apply(ctx, []*spanner.Mutation{mutation})
	require.NoError(t, err, "failed to create test product")

	return productID
}

// CreateTestOrder creates an order directly in the database.
func CreateTestOrder(t *testing.T, client *spanner.Client, orderNumber, status string) string {
	t.Helper()

	ctx := context.Background()
	orderID := uuid.New().String()

	model := m_order.NewModel()
	mutation := model.InsertMut(&m_order.Data{
		OrderID:     orderID,
		OrderNumber: orderNumber,
		OrderDate:   time.Now(),
		Status:      status,
	})

	_, err := client.Apply(ctx, []*spanner.Mutation{mutation})
	require.NoError(t, err, "failed to create test order")

	return orderID
}

// CreateTestOrderItem creates a line item for an existing order and product.
func CreateTestOrderItem(t *testing.T, client *spanner.Client, orderID, productID string, quantity, priceNumerator, priceDenominator int64) string {
	t.Helper()

	ctx := context.Background()
	itemID := uuid.New().String()

	model := m_order_item.NewModel()
	mutation := model.InsertMut(&m_order_item.Data{
		OrderID:              orderID,
		OrderItemID:          itemID,
		ProductID:            productID,
		Quantity:             quantity,
		UnitPriceNumerator:   priceNumerator,
		UnitPriceDenominator: priceDenominator,
	})

	_, err := client.Apply(ctx, []*spanner.Mutation{mutation})
	require.NoError(t, err, "failed to create test order item")

	return itemID
}

// GetOrderRow reads an order row back for verification.
func GetOrderRow(t *testing.T, client *spanner.Client, orderID string) *m_order.Data {
	t.Helper()

	ctx := context.Background()
	row, err := client.Single().ReadRow(ctx, m_order.TableName, spanner.Key{orderID}, m_order.Columns)
	require.NoError(t, err, "failed to read order row")

	var data m_order.Data
	err = row.ToStruct(&data)
	require.NoError(t, err, "failed to parse order row")

	return &data
}

// GetProductRow reads a product row back for verification.
func GetProductRow(t *testing.T, client *spanner.Client, productID string) *m_product.Data {
	t.Helper()

	ctx := context.Background()
	row, err := client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID}, m_product.Columns)
	require.NoError(t, err, "failed to read product row")

	var data m_product.Data
	err = row.ToStruct(&data)
	require.NoError(t, err, "failed to parse product row")

	return &data
}
