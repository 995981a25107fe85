//go:build unit

package cart_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pos-pricing-engine/internal/domain/cart"
	"pos-pricing-engine/internal/pkg/errs"
	"pos-pricing-engine/tests/common/builder"
)

var decimalCmp = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func TestCartAdd(t *testing.T) {
	t.Run("new item starts a line at quantity one", func(t *testing.T) {
		c := cart.New()
		item := builder.NewItemBuilder().Build()

		require.NoError(t, c.Add(item))
		assert.Equal(t, 1, c.QuantityOf(item.ID))
	})

	t.Run("repeat add increments the existing line", func(t *testing.T) {
		c := cart.New()
		item := builder.NewItemBuilder().Build()

		require.NoError(t, c.Add(item))
		require.NoError(t, c.Add(item))
		assert.Equal(t, 2, c.QuantityOf(item.ID))
		assert.Len(t, c.Lines(), 1)
	})

	t.Run("add at stock limit fails and leaves the cart unchanged", func(t *testing.T) {
		c := cart.New()
		item := builder.NewItemBuilder().WithOnHand(3).Build()

		for i := 0; i < 3; i++ {
			require.NoError(t, c.Add(item))
		}
		err := c.Add(item)
		require.ErrorIs(t, err, errs.ErrOutOfStock)
		assert.Equal(t, 3, c.QuantityOf(item.ID))
	})

	t.Run("zero stock item is rejected outright", func(t *testing.T) {
		c := cart.New()
		item := builder.NewItemBuilder().WithOnHand(0).Build()

		require.ErrorIs(t, c.Add(item), errs.ErrOutOfStock)
		assert.True(t, c.IsEmpty())
	})
}

func TestCartQuantity(t *testing.T) {
	t.Run("set beyond stock clamps and reports it", func(t *testing.T) {
		c := cart.New()
		item := builder.NewItemBuilder().WithOnHand(5).Build()
		require.NoError(t, c.Add(item))

		clamped, err := c.SetQuantity(item.ID, 50)
		require.NoError(t, err)
		assert.True(t, clamped)
		assert.Equal(t, 5, c.QuantityOf(item.ID))
	})

	t.Run("delta within stock is not clamped", func(t *testing.T) {
		c := cart.New()
		item := builder.NewItemBuilder().WithOnHand(5).Build()
		require.NoError(t, c.Add(item))

		clamped, err := c.ChangeQuantity(item.ID, 3)
		require.NoError(t, err)
		assert.False(t, clamped)
		assert.Equal(t, 4, c.QuantityOf(item.ID))
	})

	t.Run("quantity reaching zero removes the line", func(t *testing.T) {
		c := cart.New()
		item := builder.NewItemBuilder().Build()
		require.NoError(t, c.Add(item))

		_, err := c.ChangeQuantity(item.ID, -1)
		require.NoError(t, err)
		assert.True(t, c.IsEmpty())
	})

	t.Run("unknown line", func(t *testing.T) {
		c := cart.New()
		_, err := c.SetQuantity("missing", 2)
		require.ErrorIs(t, err, errs.ErrLineNotFound)
	})

	t.Run("per-line cap applies even with huge stock", func(t *testing.T) {
		c := cart.New()
		item := builder.NewItemBuilder().WithOnHand(100000).Build()
		require.NoError(t, c.Add(item))

		clamped, err := c.SetQuantity(item.ID, cart.MaxLineQuantity+1)
		require.NoError(t, err)
		assert.True(t, clamped)
		assert.Equal(t, cart.MaxLineQuantity, c.QuantityOf(item.ID))
	})
}

func TestCartSubtotal(t *testing.T) {
	c := cart.New()
	beans := builder.NewItemBuilder().WithID("var-1").WithPrice("12.50").WithOnHand(10).Build()
	mug := builder.NewItemBuilder().WithID("var-2").WithPrice("8.00").WithOnHand(10).Build()

	require.NoError(t, c.Add(beans))
	require.NoError(t, c.Add(beans))
	require.NoError(t, c.Add(mug))

	// 2 * 12.50 + 8.00
	if diff := cmp.Diff(decimal.RequireFromString("33.00"), c.Subtotal(), decimalCmp); diff != "" {
		t.Errorf("subtotal mismatch (-want +got):\n%s", diff)
	}
}

func TestCartRestore(t *testing.T) {
	t.Run("restored quantities are re-clamped to current stock", func(t *testing.T) {
		persisted := []cart.Line{
			builder.NewItemBuilder().WithID("var-1").WithOnHand(2).BuildLine(5),
			builder.NewItemBuilder().WithID("var-2").WithOnHand(10).BuildLine(3),
		}

		c := cart.Restore(persisted)
		assert.Equal(t, 2, c.QuantityOf("var-1"))
		assert.Equal(t, 3, c.QuantityOf("var-2"))
	})

	t.Run("lines clamped to zero are dropped", func(t *testing.T) {
		persisted := []cart.Line{
			builder.NewItemBuilder().WithID("var-1").WithOnHand(0).BuildLine(4),
		}

		c := cart.Restore(persisted)
		assert.True(t, c.IsEmpty())
	})
}

func TestCartRemoveAndClear(t *testing.T) {
	c := cart.New()
	item := builder.NewItemBuilder().Build()
	require.NoError(t, c.Add(item))

	c.Remove(item.ID)
	assert.True(t, c.IsEmpty())

	require.NoError(t, c.Add(item))
	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.True(t, c.Subtotal().IsZero())
}


