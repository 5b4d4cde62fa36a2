package m_product

import "time"

// Data is the row model for the products table.
type Data struct {
	ProductID            string    `spanner:"product_id"`
	Name                 string    `spanner:"name"`
	UnitPriceNumerator   int64     `spanner:"unit_price_numerator"`
	UnitPriceDenominator int64     `spanner:"unit_price_denominator"`
	CreatedAt            time.Time `spanner:"created_at"`
	UpdatedAt            time.Time `spanner:"updated_at"`
}
