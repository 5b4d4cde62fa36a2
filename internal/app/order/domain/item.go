package domain

import (
	"github.com/light-bringer/order-management-service/internal/pkg/money"
)

// Item is a line item of an order. Its unit price is a snapshot of the
// referenced product's price, frozen when the item is constructed; later
// product price changes never reach it. Items are only ever created or
// replaced through their order.
type Item struct {
	id          string
	productID   string
	productName string
	quantity    int64
	unitPrice   *money.Money
}

// NewItem constructs a line item with a price snapshot.
func NewItem(id, productID, productName string, quantity int64, unitPrice *money.Money) (*Item, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	if unitPrice == nil {
		return nil, ErrMissingItemPrice
	}

	return &Item{
		id:          id,
		productID:   productID,
		productName: productName,
		quantity:    quantity,
		unitPrice:   unitPrice.Copy(),
	}, nil
}

// ReconstructItem reconstitutes an item loaded from the database.
func ReconstructItem(id, productID, productName string, quantity int64, unitPrice *money.Money) *Item {
	return &Item{
		id:          id,
		productID:   productID,
		productName: productName,
		quantity:    quantity,
		unitPrice:   unitPrice,
	}
}

// Getters
func (it *Item) ID() string              { return it.id }
func (it *Item) ProductID() string       { return it.productID }
func (it *Item) ProductName() string     { return it.productName }
func (it *Item) Quantity() int64         { return it.quantity }
func (it *Item) UnitPrice() *money.Money { return it.unitPrice.Copy() }

// TotalPrice returns quantity times the snapshotted unit price.
func (it *Item) TotalPrice() *money.Money {
	return it.unitPrice.MultiplyInt(it.quantity)
}
