package m_product

import (
	"cloud.google.com/go/spanner"
)

// Model provides type-safe mutation factories for the products table.
type Model struct{}

// NewModel creates a Model.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation inserting a product row. Timestamps are
// written with the commit timestamp.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		[]string{
			ProductID,
			Name,
			UnitPriceNumerator,
			UnitPriceDenominator,
			CreatedAt,
			UpdatedAt,
		},
		[]interface{}{
			data.ProductID,
			data.Name,
			data.UnitPriceNumerator,
			data.UnitPriceDenominator,
			spanner.CommitTimestamp,
			spanner.CommitTimestamp,
		},
	)
}

// UpdateMut creates a mutation updating the given columns of a product row.
// updated_at is always touched.
func (m *Model) UpdateMut(productID string, updates map[string]interface{}) *spanner.Mutation {
	if len(updates) == 0 {
		return nil
	}

	updates[UpdatedAt] = spanner.CommitTimestamp

	columns := make([]string, 0, len(updates)+1)
	values := make([]interface{}, 0, len(updates)+1)

	columns = append(columns, ProductID)
	values = append(values, productID)

	for col, val := range updates {
		columns = append(columns, col)
		values = append(values, val)
	}

	return spanner.Update(TableName, columns, values)
}

// DeleteMut creates a mutation deleting a product row. Order items
// referencing the product go with it via the foreign key cascade.
func (m *Model) DeleteMut(productID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{productID})
}
