package m_order_item

import (
	"cloud.google.com/go/spanner"
)

// Model provides type-safe mutation factories for the order_items table.
type Model struct{}

// NewModel creates a Model.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation inserting an order item row.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		[]string{
			OrderID,
			OrderItemID,
			ProductID,
			Quantity,
			UnitPriceNumerator,
			UnitPriceDenominator,
		},
		[]interface{}{
			data.OrderID,
			data.OrderItemID,
			data.ProductID,
			data.Quantity,
			data.UnitPriceNumerator,
			data.UnitPriceDenominator,
		},
	)
}

// DeleteByOrderMut creates a mutation deleting every item of an order.
// The key-prefix delete works because the table is interleaved in orders.
func (m *Model) DeleteByOrderMut(orderID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{orderID}.AsPrefix())
}
