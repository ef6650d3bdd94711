package stock_test

import (
	"testing"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/stock"
	"wms/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func batch(s string) *string { return &s }

func TestNewStock(t *testing.T) {
	t.Run("available_with_normalized_batch", func(t *testing.T) {
		s, err := stock.NewStock(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.MustQuantity(10), batch("  "))

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, stock.Available, s.Status())
		assert.Nil(t, s.Batch())
	})

	t.Run("zero_quantity_is_never_stored", func(t *testing.T) {
		_, err := stock.NewStock(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.ZeroQuantity(), nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("requires_item_and_location", func(t *testing.T) {
		_, err := stock.NewStock(kernel.NewUUID(), kernel.UUID{}, kernel.UUID{}, kernel.MustQuantity(1), nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestStock_Decrease(t *testing.T) {
	s, _ := stock.NewStock(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.MustQuantity(10), batch("B1"))

	depleted, err := s.Decrease(kernel.MustQuantity(5))
	require.NoError(t, err)
	assert.False(t, depleted)
	assert.True(t, s.Quantity().Equal(kernel.MustQuantity(5)))

	_, err = s.Decrease(kernel.MustQuantity(6))
	require.ErrorIs(t, err, errs.ErrInsufficientStock)
	assert.True(t, s.Quantity().Equal(kernel.MustQuantity(5)))

	depleted, err = s.Decrease(kernel.MustQuantity(5))
	require.NoError(t, err)
	assert.True(t, depleted)
}

func TestStock_IsMergeableWith(t *testing.T) {
	itemID, locationID := kernel.NewUUID(), kernel.NewUUID()
	s, _ := stock.NewStock(kernel.NewUUID(), itemID, locationID, kernel.MustQuantity(1), batch("B1"))

	assert.True(t, s.IsMergeableWith(itemID, locationID, batch("B1")))
	assert.False(t, s.IsMergeableWith(itemID, locationID, batch("B2")))
	assert.False(t, s.IsMergeableWith(itemID, locationID, nil))
	assert.False(t, s.IsMergeableWith(itemID, kernel.NewUUID(), batch("B1")))

	s.Increase(kernel.MustQuantity(4))
	assert.True(t, s.Quantity().Equal(kernel.MustQuantity(5)))
}

func TestSameBatch(t *testing.T) {
	assert.True(t, stock.SameBatch(nil, nil))
	assert.True(t, stock.SameBatch(nil, batch("")))
	assert.True(t, stock.SameBatch(batch("X"), batch("X")))
	assert.False(t, stock.SameBatch(batch("X"), nil))
	assert.False(t, stock.SameBatch(batch("X"), batch("Y")))
}

func TestParseStatus(t *testing.T) {
	s, err := stock.ParseStatus("QUARANTINE")
	require.NoError(t, err)
	assert.Equal(t, stock.Quarantine, s)

	_, err = stock.ParseStatus("UNKNOWN")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
