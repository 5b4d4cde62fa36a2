package m_order

import (
	"cloud.google.com/go/spanner"
)

// Model provides type-safe mutation factories for the orders table.
type Model struct{}

// NewModel creates a Model.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation inserting an order row. Timestamps are
// written with the commit timestamp.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		[]string{
			OrderID,
			OrderNumber,
			OrderDate,
			Status,
			CreatedAt,
			UpdatedAt,
		},
		[]interface{}{
			data.OrderID,
			data.OrderNumber,
			data.OrderDate,
			data.Status,
			spanner.CommitTimestamp,
			spanner.CommitTimestamp,
		},
	)
}

// UpdateMut creates a mutation updating the given columns of an order row.
// updated_at is always touched.
func (m *Model) UpdateMut(orderID string, updates map[string]interface{}) *spanner.Mutation {
	if len(updates) == 0 {
		return nil
	}

	updates[UpdatedAt] = spanner.CommitTimestamp

	columns := make([]string, 0, len(updates)+1)
	values := make([]interface{}, 0, len(updates)+1)

	columns = append(columns, OrderID)
	values = append(values, orderID)

	for col, val := range updates {
		columns = append(columns, col)
		values = append(values, val)
	}

	return spanner.Update(TableName, columns, values)
}

// DeleteMut creates a mutation deleting an order row. Interleaved order
// items are removed by the ON DELETE CASCADE of the parent table.
func (m *Model) DeleteMut(orderID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{orderID})
}

// TouchMut creates a mutation that only refreshes updated_at.
func (m *Model) TouchMut(orderID string) *spanner.Mutation {
	return spanner.Update(
		TableName,
		[]string{OrderID, UpdatedAt},
		[]interface{}{orderID, spanner.CommitTimestamp},
	)
}
