//go:build integration

package integration

import (
	"context"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/order-management-service/internal/app/order/contracts"
	orderdomain "github.com/light-bringer/order-management-service/internal/app/order/domain"
	orderrepo "github.com/light-bringer/order-management-service/internal/app/order/repo"
	"github.com/light-bringer/order-management-service/internal/app/order/usecases/create_order"
	"github.com/light-bringer/order-management-service/internal/app/order/usecases/delete_order"
	"github.com/light-bringer/order-management-service/internal/app/order/usecases/update_order"
	productrepo "github.com/light-bringer/order-management-service/internal/app/product/repo"
	"github.com/light-bringer/order-management-service/internal/pkg/committer"
	"github.com/light-bringer/order-management-service/internal/pkg/money"
	"github.com/light-bringer/order-management-service/tests/testutil"
)

type orderFlow struct {
	client      *spanner.Client
	createOrder *create_order.Interactor
	updateOrder *update_order.Interactor
	deleteOrder *delete_order.Interactor
	readModel   contracts.ReadModel
}

func setupOrderFlow(t *testing.T) (*orderFlow, func()) {
	t.Helper()

	client, cleanup := testutil.SetupSpannerTest(t)

	clk := testutil.NewMockClock()
	comm := committer.NewCommitter(client)
	products := productrepo.NewProductRepo(client, clk)
	orders := orderrepo.NewOrderRepo(client, clk)

	return &orderFlow{
		client:      client,
		createOrder: create_order.NewInteractor(orders, products, comm, clk),
		updateOrder: update_order.NewInteractor(orders, products, comm),
		deleteOrder: delete_order.NewInteractor(orders, comm),
		readModel:   orderrepo.NewReadModel(client),
	}, cleanup
}

func TestCreateOrder_SnapshotsPricesAndDerivesTotals(t *testing.T) {
	flow, cleanup := setupOrderFlow(t)
	defer cleanup()

	ctx := context.Background()
	productID := testutil.CreateTestProduct(t, flow.client, "Widget", 950, 100)

	orderID, err := flow.createOrder.Execute(ctx, &create_order.Request{
		OrderNumber: "ORD-001",
		Items: []create_order.ItemInput{
			{ProductID: productID, Quantity: 3},
		},
	})
	require.NoError(t, err)

	dto, err := flow.readModel.GetOrderByID(ctx, orderID)
	require.NoError(t, err)

	assert.Equal(t, "ORD-001", dto.OrderNumber)
	assert.Equal(t, string(orderdomain.StatusPending), dto.Status)
	assert.Equal(t, 1, dto.ProductCount)
	assert.InDelta(t, 28.5, dto.FinalPrice, 1e-9)
}

func TestCreateOrder_ItemPricesSurviveProductRepricing(t *testing.T) {
	flow, cleanup := setupOrderFlow(t)
	defer cleanup()

	ctx := context.Background()
	clk := testutil.NewMockClock()
	products := productrepo.NewProductRepo(flow.client, clk)

	productID := testutil.CreateTestProduct(t, flow.client, "Widget", 950, 100)

	orderID, err := flow.createOrder.Execute(ctx, &create_order.Request{
		OrderNumber: "ORD-001",
		Items: []create_order.ItemInput{
			{ProductID: productID, Quantity: 3},
		},
	})
	require.NoError(t, err)

	product, err := products.GetByID(ctx, productID)
	require.NoError(t, err)

	newPrice, err := money.New(5000, 100)
	require.NoError(t, err)
	require.NoError(t, product.SetUnitPrice(newPrice))

	mutation, err := products.UpdateMut(product)
	require.NoError(t, err)
	_, err = flow.client.Apply(ctx, []*spanner.Mutation{mutation})
	require.NoError(t, err)

	// The item keeps the price snapshot taken at order creation.
	dto, err := flow.readModel.GetOrderByID(ctx, orderID)
	require.NoError(t, err)
	require.Len(t, dto.Items, 1)
	assert.InDelta(t, 9.5, dto.Items[0].UnitPrice, 1e-9)
	assert.InDelta(t, 28.5, dto.FinalPrice, 1e-9)
}

func TestCreateOrder_DuplicateNumberRejected(t *testing.T) {
	flow, cleanup := setupOrderFlow(t)
	defer cleanup()

	ctx := context.Background()

	_, err := flow.createOrder.Execute(ctx, &create_order.Request{OrderNumber: "ORD-001"})
	require.NoError(t, err)

	_, err = flow.createOrder.Execute(ctx, &create_order.Request{OrderNumber: "ORD-001"})
	assert.ErrorIs(t, err, orderdomain.ErrDuplicateOrderNumber)
}

func TestCreateOrder_UnknownProductsSkipped(t *testing.T) {
	flow, cleanup := setupOrderFlow(t)
	defer cleanup()

	ctx := context.Background()
	productID := testutil.CreateTestProduct(t, flow.client, "Widget", 1000, 100)

	orderID, err := flow.createOrder.Execute(ctx, &create_order.Request{
		OrderNumber: "ORD-001",
		Items: []create_order.ItemInput{
			{ProductID: productID, Quantity: 1},
			{ProductID: "no-such-product", Quantity: 4},
		},
	})
	require.NoError(t, err)

	dto, err := flow.readModel.GetOrderByID(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, 1, dto.ProductCount)
}

func TestUpdateOrder_CompletedOrderIsImmutable(t *testing.T) {
	flow, cleanup := setupOrderFlow(t)
	defer cleanup()

	ctx := context.Background()
	orderID := testutil.CreateTestOrder(t, flow.client, "ORD-001", "Completed")

	newNumber := "ORD-002"
	err := flow.updateOrder.Execute(ctx, &update_order.Request{
		OrderID:     orderID,
		OrderNumber: &newNumber,
	})
	assert.ErrorIs(t, err, orderdomain.ErrOrderCompleted)

	err = flow.deleteOrder.Execute(ctx, orderID)
	assert.ErrorIs(t, err, orderdomain.ErrOrderCompleted)

	testutil.AssertRowCount(t, flow.client, "orders", 1)
}

func TestUpdateOrder_ReplacesItemsWholesale(t *testing.T) {
	flow, cleanup := setupOrderFlow(t)
	defer cleanup()

	ctx := context.Background()
	widgetID := testutil.CreateTestProduct(t, flow.client, "Widget", 950, 100)
	gadgetID := testutil.CreateTestProduct(t, flow.client, "Gadget", 2000, 100)

	orderID, err := flow.createOrder.Execute(ctx, &create_order.Request{
		OrderNumber: "ORD-001",
		Items: []create_order.ItemInput{
			{ProductID: widgetID, Quantity: 2},
		},
	})
	require.NoError(t, err)

	err = flow.updateOrder.Execute(ctx, &update_order.Request{
		OrderID:  orderID,
		ItemsSet: true,
		Items: []update_order.ItemInput{
			{ProductID: gadgetID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	dto, err := flow.readModel.GetOrderByID(ctx, orderID)
	require.NoError(t, err)
	require.Equal(t, 1, dto.ProductCount)
	assert.Equal(t, gadgetID, dto.Items[0].ProductID)
	assert.InDelta(t, 20.0, dto.FinalPrice, 1e-9)
	testutil.AssertRowCount(t, flow.client, "order_items", 1)
}

func TestUpdateOrder_CompleteAndReplaceItemsTogether(t *testing.T) {
	flow, cleanup := setupOrderFlow(t)
	defer cleanup()

	ctx := context.Background()
	widgetID := testutil.CreateTestProduct(t, flow.client, "Widget", 950, 100)
	gadgetID := testutil.CreateTestProduct(t, flow.client, "Gadget", 2000, 100)

	orderID, err := flow.createOrder.Execute(ctx, &create_order.Request{
		OrderNumber: "ORD-001",
		Items: []create_order.ItemInput{
			{ProductID: widgetID, Quantity: 2},
		},
	})
	require.NoError(t, err)

	// A single request may move the order to Completed and change its
	// items: the lock only applies to the status the order had before
	// the update.
	status := "Completed"
	err = flow.updateOrder.Execute(ctx, &update_order.Request{
		OrderID:  orderID,
		Status:   &status,
		ItemsSet: true,
		Items: []update_order.ItemInput{
			{ProductID: gadgetID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	dto, err := flow.readModel.GetOrderByID(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, string(orderdomain.StatusCompleted), dto.Status)
	require.Equal(t, 1, dto.ProductCount)
	assert.Equal(t, gadgetID, dto.Items[0].ProductID)

	// From here on the order is locked.
	newNumber := "ORD-002"
	err = flow.updateOrder.Execute(ctx, &update_order.Request{
		OrderID:     orderID,
		OrderNumber: &newNumber,
	})
	assert.ErrorIs(t, err, orderdomain.ErrOrderCompleted)
}

func TestUpdateOrder_StatusChange(t *testing.T) {
	flow, cleanup := setupOrderFlow(t)
	defer cleanup()

	ctx := context.Background()
	orderID := testutil.CreateTestOrder(t, flow.client, "ORD-001", "Pending")

	status := "InProgress"
	err := flow.updateOrder.Execute(ctx, &update_order.Request{
		OrderID: orderID,
		Status:  &status,
	})
	require.NoError(t, err)

	row := testutil.GetOrderRow(t, flow.client, orderID)
	assert.Equal(t, "InProgress", row.Status)
}

func TestUpdateOrder_UnknownStatusRejected(t *testing.T) {
	flow, cleanup := setupOrderFlow(t)
	defer cleanup()

	ctx := context.Background()
	orderID := testutil.CreateTestOrder(t, flow.client, "ORD-001", "Pending")

	status := "Shipped"
	err := flow.updateOrder.Execute(ctx, &update_order.Request{
		OrderID: orderID,
		Status:  &status,
	})
	assert.ErrorIs(t, err, orderdomain.ErrInvalidStatus)
}

func TestDeleteOrder_RemovesItems(t *testing.T) {
	flow, cleanup := setupOrderFlow(t)
	defer cleanup()

	ctx := context.Background()
	productID := testutil.CreateTestProduct(t, flow.client, "Widget", 950, 100)

	orderID, err := flow.createOrder.Execute(ctx, &create_order.Request{
		OrderNumber: "ORD-001",
		Items: []create_order.ItemInput{
			{ProductID: productID, Quantity: 2},
		},
	})
	require.NoError(t, err)

	require.NoError(t, flow.deleteOrder.Execute(ctx, orderID))

	testutil.AssertRowCount(t, flow.client, "orders", 0)
	testutil.AssertRowCount(t, flow.client, "order_items", 0)
	testutil.AssertRowCount(t, flow.client, "products", 1)
}
