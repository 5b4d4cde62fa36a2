package m_order

// Field name constants for the orders table.
const (
	TableName = "orders"

	OrderID     = "order_id"
	OrderNumber = "order_number"
	OrderDate   = "order_date"
	Status      = "status"
	CreatedAt   = "created_at"
	UpdatedAt   = "updated_at"
)

// Columns lists every column of the orders table in read order.
var Columns = []string{
	OrderID,
	OrderNumber,
	OrderDate,
	Status,
	CreatedAt,
	UpdatedAt,
}
