package services_test

import (
	"testing"

	"wms/internal/core/domain/model/item"
	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/location"
	"wms/internal/core/domain/services"
	"wms/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapacityTracker(t *testing.T) {
	tracker := services.NewCapacityTracker()
	unitVolume := decimal.NewFromInt(2)
	bulky, err := item.NewItem(kernel.NewUUID(), "SKU-BULK", "", "", "EA", &unitVolume, nil)
	require.NoError(t, err)

	t.Run("should reserve and release by unit volume", func(t *testing.T) {
		bin, err := location.NewLocation(kernel.NewUUID(), "BIN-1", "", location.Bin, nil, capacityOf(100))
		require.NoError(t, err)

		require.NoError(t, tracker.Reserve(bin, bulky, kernel.MustQuantity(30)))
		assert.True(t, bin.CurrentVolume().Equal(decimal.NewFromInt(60)))
		assert.Equal(t, location.Occupied, bin.Status())

		require.NoError(t, tracker.Release(bin, bulky, kernel.MustQuantity(30)))
		assert.True(t, bin.CurrentVolume().IsZero())
		assert.Equal(t, location.Free, bin.Status())
	})

	t.Run("should refuse reservation over capacity", func(t *testing.T) {
		bin, err := location.NewLocation(kernel.NewUUID(), "BIN-2", "", location.Bin, nil, capacityOf(100))
		require.NoError(t, err)

		err = tracker.Reserve(bin, bulky, kernel.MustQuantity(51))

		require.ErrorIs(t, err, errs.ErrCapacityExceeded)
		assert.True(t, bin.CurrentVolume().IsZero())
	})

	t.Run("should refuse blocked locations as targets", func(t *testing.T) {
		bin, err := location.NewLocation(kernel.NewUUID(), "BIN-3", "", location.Bin, nil, nil)
		require.NoError(t, err)
		require.NoError(t, tracker.EnsureAccepting(bin))

		require.NoError(t, bin.Block())

		require.ErrorIs(t, tracker.EnsureAccepting(bin), errs.ErrInvalidStateTransition)
	})
}
