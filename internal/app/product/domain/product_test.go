package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/order-management-service/internal/pkg/clock"
	"github.com/light-bringer/order-management-service/internal/pkg/money"
)

func TestNewProduct(t *testing.T) {
	price, _ := money.New(950, 100)
	now := time.Now()
	clk := clock.NewMockClock(now)

	t.Run("valid product creation", func(t *testing.T) {
		p, err := NewProduct("id-1", "Widget", price, now, clk)
		require.NoError(t, err)
		assert.Equal(t, "id-1", p.ID())
		assert.Equal(t, "Widget", p.Name())
		assert.Equal(t, 9.5, p.UnitPrice().Float64())
		assert.True(t, p.Changes().HasChanges())
	})

	t.Run("empty name returns error", func(t *testing.T) {
		_, err := NewProduct("id-1", "", price, now, clk)
		assert.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("missing price returns error", func(t *testing.T) {
		_, err := NewProduct("id-1", "Widget", nil, now, clk)
		assert.ErrorIs(t, err, ErrMissingPrice)
	})

	t.Run("negative price returns error", func(t *testing.T) {
		negative, _ := money.New(-100, 1)
		_, err := NewProduct("id-1", "Widget", negative, now, clk)
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("zero price is allowed", func(t *testing.T) {
		p, err := NewProduct("id-1", "Freebie", money.Zero(), now, clk)
		require.NoError(t, err)
		assert.True(t, p.UnitPrice().IsZero())
	})
}

func TestProduct_SetName(t *testing.T) {
	price, _ := money.New(950, 100)
	now := time.Now()
	clk := clock.NewMockClock(now)
	p := ReconstructProduct("id-1", "Widget", price, now, now, clk)

	require.False(t, p.Changes().HasChanges())

	clk.Advance(time.Minute)
	err := p.SetName("Gadget")
	require.NoError(t, err)
	assert.Equal(t, "Gadget", p.Name())
	assert.True(t, p.Changes().Dirty(FieldName))
	assert.Equal(t, now.Add(time.Minute), p.UpdatedAt())

	assert.ErrorIs(t, p.SetName(""), ErrEmptyName)
}

func TestProduct_SetUnitPrice(t *testing.T) {
	price, _ := money.New(950, 100)
	now := time.Now()
	clk := clock.NewMockClock(now)
	p := ReconstructProduct("id-1", "Widget", price, now, now, clk)

	newPrice, _ := money.New(1250, 100)
	err := p.SetUnitPrice(newPrice)
	require.NoError(t, err)
	assert.Equal(t, 12.5, p.UnitPrice().Float64())
	assert.True(t, p.Changes().Dirty(FieldUnitPrice))

	negative, _ := money.New(-1, 1)
	assert.ErrorIs(t, p.SetUnitPrice(negative), ErrInvalidPrice)
	assert.ErrorIs(t, p.SetUnitPrice(nil), ErrMissingPrice)
}

func TestProduct_UnitPriceIsCopied(t *testing.T) {
	price, _ := money.New(950, 100)
	now := time.Now()
	clk := clock.NewMockClock(now)
	p := ReconstructProduct("id-1", "Widget", price, now, now, clk)

	snapshot := p.UnitPrice()
	_ = snapshot.Add(snapshot)
	assert.Equal(t, 9.5, p.UnitPrice().Float64())
}
