//go:build unit

package cart_test

import (
	"testing"

	"github.com/bk376/fuelflow-pos/internal/domain/cart"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const taxRate = 0.0875

func newItem(price float64, qty int) cart.Item {
	return cart.Item{
		ID:        uuid.New(),
		ProductID: uuid.New(),
		Name:      "Energy Drink",
		UnitPrice: price,
		Quantity:  qty,
	}
}

func TestCart_AddItem(t *testing.T) {
	t.Run("totals are derived from unit price and quantity", func(t *testing.T) {
		c := cart.New(taxRate)
		require.NoError(t, c.AddItem(newItem(2.49, 2)))

		snap := c.Snapshot()
		require.Len(t, snap.Items, 1)
		assert.InDelta(t, 4.98, snap.Totals.Subtotal, 1e-9)
		assert.InDelta(t, 4.98*taxRate, snap.Totals.TaxAmount, 1e-9)
		assert.InDelta(t, 4.98*(1+taxRate), snap.Totals.TotalAmount, 1e-9)
	})

	t.Run("same line ID merges quantities", func(t *testing.T) {
		c := cart.New(taxRate)
		item := newItem(1.99, 1)
		require.NoError(t, c.AddItem(item))

		item.Quantity = 3
		require.NoError(t, c.AddItem(item))

		snap := c.Snapshot()
		require.Len(t, snap.Items, 1)
		assert.Equal(t, 4, snap.Items[0].Quantity)
		assert.InDelta(t, 1.99*4, snap.Totals.Subtotal, 1e-9)
	})

	t.Run("different line IDs stay separate even for the same product", func(t *testing.T) {
		c := cart.New(taxRate)
		productID := uuid.New()

		a := newItem(1.99, 1)
		a.ProductID = productID
		b := newItem(1.99, 1)
		b.ProductID = productID

		require.NoError(t, c.AddItem(a))
		require.NoError(t, c.AddItem(b))
		assert.Len(t, c.Snapshot().Items, 2)
	})

	t.Run("validation", func(t *testing.T) {
		c := cart.New(taxRate)

		assert.ErrorIs(t, c.AddItem(newItem(1.99, 0)), cart.ErrInvalidQuantity)
		assert.ErrorIs(t, c.AddItem(newItem(1.99, -1)), cart.ErrInvalidQuantity)
		assert.ErrorIs(t, c.AddItem(newItem(-0.01, 1)), cart.ErrInvalidPrice)
		assert.Empty(t, c.Snapshot().Items)

		// Zero-priced promotional items are allowed.
		assert.NoError(t, c.AddItem(newItem(0, 1)))
	})
}

func TestCart_UpdateQuantity(t *testing.T) {
	t.Run("replaces the quantity", func(t *testing.T) {
		c := cart.New(taxRate)
		item := newItem(3.50, 1)
		require.NoError(t, c.AddItem(item))

		c.UpdateQuantity(item.ID, 5)

		snap := c.Snapshot()
		require.Len(t, snap.Items, 1)
		assert.Equal(t, 5, snap.Items[0].Quantity)
		assert.InDelta(t, 17.50, snap.Totals.Subtotal, 1e-9)
	})

	t.Run("zero or negative removes the line", func(t *testing.T) {
		c := cart.New(taxRate)
		item := newItem(3.50, 2)
		require.NoError(t, c.AddItem(item))

		c.UpdateQuantity(item.ID, 0)

		snap := c.Snapshot()
		assert.Empty(t, snap.Items)
		assert.Zero(t, snap.Totals.TotalAmount)
	})

	t.Run("unknown line ID is a no-op", func(t *testing.T) {
		c := cart.New(taxRate)
		require.NoError(t, c.AddItem(newItem(3.50, 2)))

		c.UpdateQuantity(uuid.New(), 10)
		assert.Equal(t, 2, c.Snapshot().Items[0].Quantity)
	})
}

func TestCart_RemoveAndClear(t *testing.T) {
	c := cart.New(taxRate)
	a := newItem(1.00, 1)
	b := newItem(2.00, 1)
	require.NoError(t, c.AddItem(a))
	require.NoError(t, c.AddItem(b))

	// Removing a missing line leaves the cart untouched.
	c.RemoveItem(uuid.New())
	assert.Len(t, c.Snapshot().Items, 2)

	c.RemoveItem(a.ID)
	snap := c.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, b.ID, snap.Items[0].ID)
	assert.InDelta(t, 2.00, snap.Totals.Subtotal, 1e-9)

	c.Clear()
	snap = c.Snapshot()
	assert.Empty(t, snap.Items)
	assert.Zero(t, snap.Totals.Subtotal)
	assert.Zero(t, snap.Totals.TotalAmount)
}

func TestCart_RemoveLines(t *testing.T) {
	c := cart.New(taxRate)
	a := newItem(1.00, 1)
	b := newItem(2.00, 1)
	require.NoError(t, c.AddItem(a))
	require.NoError(t, c.AddItem(b))

	// A line added after the caller's snapshot must survive.
	late := newItem(3.00, 1)
	require.NoError(t, c.AddItem(late))

	c.RemoveLines([]uuid.UUID{a.ID, b.ID, uuid.New()})

	snap := c.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, late.ID, snap.Items[0].ID)
	assert.InDelta(t, 3.00, snap.Totals.Subtotal, 1e-9)
}

func TestCart_SnapshotIsolation(t *testing.T) {
	c := cart.New(taxRate)
	item := newItem(1.25, 2)
	require.NoError(t, c.AddItem(item))

	snap := c.Snapshot()
	snap.Items[0].Quantity = 99

	assert.Equal(t, 2, c.Snapshot().Items[0].Quantity)
}
