package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/order-management-service/internal/pkg/clock"
	"github.com/light-bringer/order-management-service/internal/pkg/money"
)

func mustItem(t *testing.T, id string, quantity int64, priceNum, priceDenom int64) *Item {
	t.Helper()
	price, err := money.New(priceNum, priceDenom)
	require.NoError(t, err)
	item, err := NewItem(id, "product-"+id, "Product "+id, quantity, price)
	require.NoError(t, err)
	return item
}

func TestNewOrder(t *testing.T) {
	now := time.Now()
	clk := clock.NewMockClock(now)

	t.Run("valid order creation", func(t *testing.T) {
		o, err := NewOrder("id-1", "O-1", StatusPending, now, clk)
		require.NoError(t, err)
		assert.Equal(t, "id-1", o.ID())
		assert.Equal(t, "O-1", o.OrderNumber())
		assert.Equal(t, StatusPending, o.Status())
		assert.Equal(t, now, o.Date())
		assert.Equal(t, 0, o.ProductCount())
		assert.True(t, o.FinalPrice().IsZero())
	})

	t.Run("missing order number returns error", func(t *testing.T) {
		_, err := NewOrder("id-1", "", StatusPending, now, clk)
		assert.ErrorIs(t, err, ErrMissingOrderNumber)
	})

	t.Run("unknown status returns error", func(t *testing.T) {
		_, err := NewOrder("id-1", "O-1", OrderStatus("Shipped"), now, clk)
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestParseStatus(t *testing.T) {
	t.Run("empty defaults to Pending", func(t *testing.T) {
		s, err := ParseStatus("")
		require.NoError(t, err)
		assert.Equal(t, StatusPending, s)
	})

	t.Run("known states parse", func(t *testing.T) {
		for _, name := range []string{"Pending", "InProgress", "Completed"} {
			s, err := ParseStatus(name)
			require.NoError(t, err)
			assert.Equal(t, OrderStatus(name), s)
		}
	})

	t.Run("unknown state is rejected", func(t *testing.T) {
		_, err := ParseStatus("Cancelled")
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestNewItem(t *testing.T) {
	price, _ := money.New(19, 2)

	t.Run("valid item", func(t *testing.T) {
		item, err := NewItem("item-1", "prod-1", "Widget", 3, price)
		require.NoError(t, err)
		assert.Equal(t, int64(3), item.Quantity())
		assert.Equal(t, 9.5, item.UnitPrice().Float64())
		assert.Equal(t, 28.5, item.TotalPrice().Float64())
	})

	t.Run("non-positive quantity is rejected", func(t *testing.T) {
		_, err := NewItem("item-1", "prod-1", "Widget", 0, price)
		assert.ErrorIs(t, err, ErrInvalidQuantity)

		_, err = NewItem("item-1", "prod-1", "Widget", -2, price)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("missing price is rejected", func(t *testing.T) {
		_, err := NewItem("item-1", "prod-1", "Widget", 1, nil)
		assert.ErrorIs(t, err, ErrMissingItemPrice)
	})
}

func TestItem_PriceSnapshotIsFrozen(t *testing.T) {
	price, _ := money.New(950, 100)
	item, err := NewItem("item-1", "prod-1", "Widget", 2, price)
	require.NoError(t, err)

	// Mutating the source money after construction must not reach the item.
	price = price.Add(price)
	assert.Equal(t, 9.5, item.UnitPrice().Float64())
	assert.Equal(t, 19.0, item.TotalPrice().Float64())
}

func TestOrder_DerivedValues(t *testing.T) {
	now := time.Now()
	clk := clock.NewMockClock(now)
	o, _ := NewOrder("id-1", "O-1", StatusPending, now, clk)

	o.AddItem(mustItem(t, "a", 3, 19, 2))  // 3 x 9.50 = 28.50
	o.AddItem(mustItem(t, "b", 1, 250, 100)) // 1 x 2.50 = 2.50

	assert.Equal(t, 2, o.ProductCount())
	assert.Equal(t, 31.0, o.FinalPrice().Float64())
}

func TestOrder_SetOrderNumber(t *testing.T) {
	now := time.Now()
	clk := clock.NewMockClock(now)
	o := ReconstructOrder("id-1", "O-1", now, StatusPending, nil, now, now, clk)

	require.False(t, o.Changes().HasChanges())

	err := o.SetOrderNumber("O-2")
	require.NoError(t, err)
	assert.Equal(t, "O-2", o.OrderNumber())
	assert.True(t, o.Changes().Dirty(FieldOrderNumber))

	assert.ErrorIs(t, o.SetOrderNumber(""), ErrMissingOrderNumber)
}

func TestOrder_SetStatus(t *testing.T) {
	now := time.Now()
	clk := clock.NewMockClock(now)
	o := ReconstructOrder("id-1", "O-1", now, StatusPending, nil, now, now, clk)

	require.NoError(t, o.SetStatus(StatusInProgress))
	assert.Equal(t, StatusInProgress, o.Status())

	assert.ErrorIs(t, o.SetStatus(OrderStatus("Shipped")), ErrInvalidStatus)

	require.NoError(t, o.SetStatus(StatusCompleted))
	assert.True(t, o.IsCompleted())
}

func TestOrder_CompletedIsImmutable(t *testing.T) {
	now := time.Now()
	clk := clock.NewMockClock(now)
	items := []*Item{mustItem(t, "a", 2, 100, 1)}
	o := ReconstructOrder("id-1", "O-1", now, StatusCompleted, items, now, now, clk)

	assert.ErrorIs(t, o.SetOrderNumber("O-2"), ErrOrderCompleted)
	assert.ErrorIs(t, o.SetStatus(StatusPending), ErrOrderCompleted)
	assert.ErrorIs(t, o.ReplaceItems(nil), ErrOrderCompleted)

	// Fields and items are untouched after the refused mutations.
	assert.Equal(t, "O-1", o.OrderNumber())
	assert.Equal(t, StatusCompleted, o.Status())
	assert.Equal(t, 1, o.ProductCount())
	assert.Equal(t, 200.0, o.FinalPrice().Float64())
	assert.False(t, o.Changes().HasChanges())
}

func TestOrder_ReplaceItems(t *testing.T) {
	now := time.Now()
	clk := clock.NewMockClock(now)
	items := []*Item{mustItem(t, "a", 1, 100, 1), mustItem(t, "b", 1, 200, 1)}
	o := ReconstructOrder("id-1", "O-1", now, StatusPending, items, now, now, clk)

	replacement := []*Item{mustItem(t, "c", 5, 10, 1)}
	require.NoError(t, o.ReplaceItems(replacement))

	assert.Equal(t, 1, o.ProductCount())
	assert.Equal(t, 50.0, o.FinalPrice().Float64())
	assert.True(t, o.Changes().Dirty(FieldItems))

	t.Run("replacing with empty set clears items", func(t *testing.T) {
		require.NoError(t, o.ReplaceItems(nil))
		assert.Equal(t, 0, o.ProductCount())
		assert.True(t, o.FinalPrice().IsZero())
	})
}

func TestOrder_ItemsReturnsCopy(t *testing.T) {
	now := time.Now()
	clk := clock.NewMockClock(now)
	o, _ := NewOrder("id-1", "O-1", StatusPending, now, clk)
	o.AddItem(mustItem(t, "a", 1, 100, 1))

	items := o.Items()
	items[0] = nil
	assert.NotNil(t, o.Items()[0])
}
