package m_order_item

// Field name constants for the order_items table. The table is interleaved
// in orders, so the primary key is (order_id, order_item_id).
const (
	TableName = "order_items"

	OrderID              = "order_id"
	OrderItemID          = "order_item_id"
	ProductID            = "product_id"
	Quantity             = "quantity"
	UnitPriceNumerator   = "unit_price_numerator"
	UnitPriceDenominator = "unit_price_denominator"
)

// Columns lists every column of the order_items table in read order.
var Columns = []string{
	OrderID,
	OrderItemID,
	ProductID,
	Quantity,
	UnitPriceNumerator,
	UnitPriceDenominator,
}
