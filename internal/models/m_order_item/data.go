package m_order_item

// Data is the row model for the order_items table. The unit price columns
// are the snapshot taken from the product at item construction time.
type Data struct {
	OrderID              string `spanner:"order_id"`
	OrderItemID          string `spanner:"order_item_id"`
	ProductID            string `spanner:"product_id"`
	Quantity             int64  `spanner:"quantity"`
	UnitPriceNumerator   int64  `spanner:"unit_price_numerator"`
	UnitPriceDenominator int64  `spanner:"unit_price_denominator"`
}
