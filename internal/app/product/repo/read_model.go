package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/order-management-service/internal/app/product/contracts"
	"github.com/light-bringer/order-management-service/internal/app/product/domain"
	"github.com/light-bringer/order-management-service/internal/models/m_product"
	"github.com/light-bringer/order-management-service/internal/pkg/money"
	"github.com/light-bringer/order-management-service/internal/pkg/query"
)

// ReadModelImpl implements the product ReadModel for Spanner.
type ReadModelImpl struct {
	client *spanner.Client
}

// NewReadModel creates a new ReadModel implementation.
func NewReadModel(client *spanner.Client) contracts.ReadModel {
	return &ReadModelImpl{
		client: client,
	}
}

// GetProductByID retrieves a product DTO by ID.
func (rm *ReadModelImpl) GetProductByID(ctx context.Context, productID string) (*contracts.ProductDTO, error) {
	row, err := rm.client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID}, m_product.Columns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to read product: %w", err)
	}

	var data m_product.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse product: %w", err)
	}

	return dataToDTO(&data)
}

// ListProducts retrieves all products, newest first.
func (rm *ReadModelImpl) ListProducts(ctx context.Context) ([]*contracts.ProductDTO, error) {
	stmt := query.From(m_product.TableName).
		Select(m_product.Columns...).
		OrderBy(m_product.CreatedAt, query.Desc).
		Build()

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	products := make([]*contracts.ProductDTO, 0)

	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate products: %w", err)
		}

		var data m_product.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse product: %w", err)
		}

		dto, err := dataToDTO(&data)
		if err != nil {
			return nil, err
		}

		products = append(products, dto)
	}

	return products, nil
}

func dataToDTO(data *m_product.Data) (*contracts.ProductDTO, error) {
	unitPrice, err := money.New(data.UnitPriceNumerator, data.UnitPriceDenominator)
	if err != nil {
		return nil, fmt.Errorf("invalid unit price: %w", err)
	}

	return &contracts.ProductDTO{
		ProductID: data.ProductID,
		Name:      data.Name,
		UnitPrice: unitPrice.Float64(),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}, nil
}
