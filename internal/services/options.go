package services

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/order-management-service/internal/app/order/queries/get_order"
	"github.com/light-bringer/order-management-service/internal/app/order/queries/list_orders"
	orderrepo "github.com/light-bringer/order-management-service/internal/app/order/repo"
	"github.com/light-bringer/order-management-service/internal/app/order/usecases/create_order"
	"github.com/light-bringer/order-management-service/internal/app/order/usecases/delete_order"
	"github.com/light-bringer/order-management-service/internal/app/order/usecases/update_order"
	"github.com/light-bringer/order-management-service/internal/app/product/queries/get_product"
	"github.com/light-bringer/order-management-service/internal/app/product/queries/list_products"
	productrepo "github.com/light-bringer/order-management-service/internal/app/product/repo"
	"github.com/light-bringer/order-management-service/internal/app/product/usecases/create_product"
	"github.com/light-bringer/order-management-service/internal/app/product/usecases/delete_product"
	"github.com/light-bringer/order-management-service/internal/app/product/usecases/update_product"
	"github.com/light-bringer/order-management-service/internal/pkg/clock"
	"github.com/light-bringer/order-management-service/internal/pkg/committer"
	transport "github.com/light-bringer/order-management-service/internal/transport/http"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient   *spanner.Client
	ProductsHandler *transport.ProductsHandler
	OrdersHandler   *transport.OrdersHandler
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, spannerDB string) (*ServiceOptions, error) {
	// 1. Initialize Spanner client
	spannerClient, err := spanner.NewClient(ctx, spannerDB)
	if err != nil {
		return nil, fmt.Errorf("failed to create Spanner client: %w", err)
	}

	// 2. Create infrastructure components
	clk := clock.NewRealClock()
	comm := committer.NewCommitter(spannerClient)

	// 3. Create repositories and read models
	productRepo := productrepo.NewProductRepo(spannerClient, clk)
	productReadModel := productrepo.NewReadModel(spannerClient)
	orderRepo := orderrepo.NewOrderRepo(spannerClient, clk)
	orderReadModel := orderrepo.NewReadModel(spannerClient)

	// 4. Create command use cases (write operations)
	createProductUseCase := create_product.NewInteractor(productRepo, comm, clk)
	updateProductUseCase := update_product.NewInteractor(productRepo, comm)
	deleteProductUseCase := delete_product.NewInteractor(productRepo, comm)
	createOrderUseCase := create_order.NewInteractor(orderRepo, productRepo, comm, clk)
	updateOrderUseCase := update_order.NewInteractor(orderRepo, productRepo, comm)
	deleteOrderUseCase := delete_order.NewInteractor(orderRepo, comm)

	// 5. Create query use cases (read operations)
	getProductQuery := get_product.NewQuery(productReadModel)
	listProductsQuery := list_products.NewQuery(productReadModel)
	getOrderQuery := get_order.NewQuery(orderReadModel)
	listOrdersQuery := list_orders.NewQuery(orderReadModel)

	// 6. Create HTTP handlers
	productsHandler := transport.NewProductsHandler(
		createProductUseCase,
		updateProductUseCase,
		deleteProductUseCase,
		getProductQuery,
		listProductsQuery,
	)
	ordersHandler := transport.NewOrdersHandler(
		createOrderUseCase,
		updateOrderUseCase,
		deleteOrderUseCase,
		getOrderQuery,
		listOrdersQuery,
	)

	return &ServiceOptions{
		SpannerClient:   spannerClient,
		ProductsHandler: productsHandler,
		OrdersHandler:   ordersHandler,
	}, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}
