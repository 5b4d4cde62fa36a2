package m_product

// Field name constants for the products table.
const (
	TableName = "products"

	ProductID            = "product_id"
	Name                 = "name"
	UnitPriceNumerator   = "unit_price_numerator"
	UnitPriceDenominator = "unit_price_denominator"
	CreatedAt            = "created_at"
	UpdatedAt            = "updated_at"
)

// Columns lists every column of the products table in read order.
var Columns = []string{
	ProductID,
	Name,
	UnitPriceNumerator,
	UnitPriceDenominator,
	CreatedAt,
	UpdatedAt,
}
