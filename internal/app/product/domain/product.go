package domain

import (
	"time"

	"github.com/light-bringer/order-management-service/internal/pkg/clock"
	"github.com/light-bringer/order-management-service/internal/pkg/money"
	"github.com/light-bringer/order-management-service/internal/pkg/tracker"
)

// Field names for change tracking
const (
	FieldName      = "name"
	FieldUnitPrice = "unit_price"
)

// Product is the aggregate root for the product catalog side of the service.
// The unit price kept here is the live price; order items snapshot it at
// item construction time and never follow later changes.
type Product struct {
	id        string
	name      string
	unitPrice *money.Money
	createdAt time.Time
	updatedAt time.Time

	clock   clock.Clock
	changes *tracker.ChangeTracker
}

// NewProduct creates a new Product aggregate.
func NewProduct(id, name string, unitPrice *money.Money, now time.Time, clk clock.Clock) (*Product, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	if unitPrice == nil {
		return nil, ErrMissingPrice
	}

	if unitPrice.IsNegative() {
		return nil, ErrInvalidPrice
	}

	p := &Product{
		id:        id,
		name:      name,
		unitPrice: unitPrice.Copy(),
		createdAt: now,
		updatedAt: now,
		clock:     clk,
		changes:   tracker.NewChangeTracker(),
	}

	p.changes.MarkDirty(FieldName)
	p.changes.MarkDirty(FieldUnitPrice)

	return p, nil
}

// ReconstructProduct reconstitutes a Product loaded from the database.
func ReconstructProduct(id, name string, unitPrice *money.Money, createdAt, updatedAt time.Time, clk clock.Clock) *Product {
	return &Product{
		id:        id,
		name:      name,
		unitPrice: unitPrice,
		createdAt: createdAt,
		updatedAt: updatedAt,
		clock:     clk,
		changes:   tracker.NewChangeTracker(),
	}
}

// Getters
func (p *Product) ID() string                     { return p.id }
func (p *Product) Name() string                   { return p.name }
func (p *Product) UnitPrice() *money.Money        { return p.unitPrice.Copy() }
func (p *Product) CreatedAt() time.Time           { return p.createdAt }
func (p *Product) UpdatedAt() time.Time           { return p.updatedAt }
func (p *Product) Changes() *tracker.ChangeTracker { return p.changes }

// SetName updates the product name.
func (p *Product) SetName(name string) error {
	if name == "" {
		return ErrEmptyName
	}

	p.name = name
	p.updatedAt = p.clock.Now()
	p.changes.MarkDirty(FieldName)

	return nil
}

// SetUnitPrice updates the live unit price. Existing order items keep their
// snapshots.
func (p *Product) SetUnitPrice(unitPrice *money.Money) error {
	if unitPrice == nil {
		return ErrMissingPrice
	}

	if unitPrice.IsNegative() {
		return ErrInvalidPrice
	}

	p.unitPrice = unitPrice.Copy()
	p.updatedAt = p.clock.Now()
	p.changes.MarkDirty(FieldUnitPrice)

	return nil
}
