package m_order

import "time"

// Data is the row model for the orders table.
type Data struct {
	OrderID     string    `spanner:"order_id"`
	OrderNumber string    `spanner:"order_number"`
	OrderDate   time.Time `spanner:"order_date"`
	Status      string    `spanner:"status"`
	CreatedAt   time.Time `spanner:"created_at"`
	UpdatedAt   time.Time `spanner:"updated_at"`
}
