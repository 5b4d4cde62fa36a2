package domain

import (
	"time"

	"github.com/light-bringer/order-management-service/internal/pkg/clock"
	"github.com/light-bringer/order-management-service/internal/pkg/money"
	"github.com/light-bringer/order-management-service/internal/pkg/tracker"
)

// Field names for change tracking
const (
	FieldOrderNumber = "order_number"
	FieldStatus      = "status"
	FieldItems       = "items"
)

// Order is the aggregate root for the order side of the service. It owns
// its line items: items are created with the order and wholesale-replaced
// on update, never edited individually. Derived values (product count,
// final price) are computed from the items and never stored.
//
// A Completed order is immutable; every mutating method refuses to touch it.
type Order struct {
	id          string
	orderNumber string
	date        time.Time
	status      OrderStatus
	items       []*Item
	createdAt   time.Time
	updatedAt   time.Time

	clock   clock.Clock
	changes *tracker.ChangeTracker
}

// NewOrder creates a new Order aggregate with an empty item set.
func NewOrder(id, orderNumber string, status OrderStatus, now time.Time, clk clock.Clock) (*Order, error) {
	if orderNumber == "" {
		return nil, ErrMissingOrderNumber
	}

	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	o := &Order{
		id:          id,
		orderNumber: orderNumber,
		date:        now,
		status:      status,
		items:       make([]*Item, 0),
		createdAt:   now,
		updatedAt:   now,
		clock:       clk,
		changes:     tracker.NewChangeTracker(),
	}

	o.changes.MarkDirty(FieldOrderNumber)
	o.changes.MarkDirty(FieldStatus)

	return o, nil
}

// ReconstructOrder reconstitutes an Order loaded from the database.
func ReconstructOrder(
	id, orderNumber string,
	date time.Time,
	status OrderStatus,
	items []*Item,
	createdAt, updatedAt time.Time,
	clk clock.Clock,
) *Order {
	return &Order{
		id:          id,
		orderNumber: orderNumber,
		date:        date,
		status:      status,
		items:       items,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		clock:       clk,
		changes:     tracker.NewChangeTracker(),
	}
}

// Getters
func (o *Order) ID() string                     { return o.id }
func (o *Order) OrderNumber() string            { return o.orderNumber }
func (o *Order) Date() time.Time                { return o.date }
func (o *Order) Status() OrderStatus            { return o.status }
func (o *Order) CreatedAt() time.Time           { return o.createdAt }
func (o *Order) UpdatedAt() time.Time           { return o.updatedAt }
func (o *Order) Changes() *tracker.ChangeTracker { return o.changes }

// Items returns the line items in insertion order.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

// ProductCount returns the number of line items.
func (o *Order) ProductCount() int {
	return len(o.items)
}

// FinalPrice returns the sum of all line item totals.
func (o *Order) FinalPrice() *money.Money {
	total := money.Zero()
	for _, item := range o.items {
		total = total.Add(item.TotalPrice())
	}
	return total
}

// IsCompleted returns true once the order reached the Completed status.
func (o *Order) IsCompleted() bool {
	return o.status == StatusCompleted
}

// AddItem appends a line item. Used while assembling a new order; existing
// orders change their items through ReplaceItems.
func (o *Order) AddItem(item *Item) {
	o.items = append(o.items, item)
	o.changes.MarkDirty(FieldItems)
}

// SetOrderNumber changes the order number. Global uniqueness is checked by
// the usecase against the store.
func (o *Order) SetOrderNumber(orderNumber string) error {
	if err := o.checkNotCompleted(); err != nil {
		return err
	}

	if orderNumber == "" {
		return ErrMissingOrderNumber
	}

	o.orderNumber = orderNumber
	o.updatedAt = o.clock.Now()
	o.changes.MarkDirty(FieldOrderNumber)

	return nil
}

// SetStatus moves the order to a new status. Transitions between the three
// states are unconstrained; only mutation of an already Completed order is
// refused.
func (o *Order) SetStatus(status OrderStatus) error {
	if err := o.checkNotCompleted(); err != nil {
		return err
	}

	if !status.Valid() {
		return ErrInvalidStatus
	}

	o.status = status
	o.updatedAt = o.clock.Now()
	o.changes.MarkDirty(FieldStatus)

	return nil
}

// ReplaceItems swaps the entire item set for the given one. The repository
// turns this into a delete-all plus inserts within one commit plan.
func (o *Order) ReplaceItems(items []*Item) error {
	if err := o.checkNotCompleted(); err != nil {
		return err
	}

	o.items = make([]*Item, len(items))
	copy(o.items, items)
	o.updatedAt = o.clock.Now()
	o.changes.MarkDirty(FieldItems)

	return nil
}

func (o *Order) checkNotCompleted() error {
	if o.status == StatusCompleted {
		return ErrOrderCompleted
	}
	return nil
}
