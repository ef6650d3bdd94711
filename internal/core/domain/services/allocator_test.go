package services_test

import (
	"testing"

	"wms/internal/core/domain/model/item"
	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/stock"
	"wms/internal/core/domain/services"
	"wms/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItem(t *testing.T, code string) *item.Item {
	t.Helper()
	i, err := item.NewItem(kernel.NewUUID(), code, "", "", "EA", nil, nil)
	require.NoError(t, err)
	return i
}

func newStock(t *testing.T, i *item.Item, locationID kernel.UUID, qty int64) *stock.Stock {
	t.Helper()
	s, err := stock.NewStock(kernel.NewUUID(), i.ID(), locationID, kernel.MustQuantity(qty), nil)
	require.NoError(t, err)
	return s
}

func TestAllocator_Allocate(t *testing.T) {
	allocator := services.NewAllocator()
	orderID := kernel.NewUUID()

	t.Run("should split across lots in repository order", func(t *testing.T) {
		widget := newItem(t, "SKU-1")
		locA, locB, locC := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()

		tasks, err := allocator.Allocate(services.AllocationRequest{
			OrderID:   orderID,
			Item:      widget,
			Requested: kernel.MustQuantity(12),
			Candidates: []*stock.Stock{
				newStock(t, widget, locA, 5),
				newStock(t, widget, locB, 5),
				newStock(t, widget, locC, 5),
			},
		})

		require.NoError(t, err)
		require.Len(t, tasks, 3)
		assert.True(t, tasks[0].LocationID().IsEqual(locA))
		assert.True(t, tasks[0].TargetQuantity().Equal(kernel.MustQuantity(5)))
		assert.True(t, tasks[1].TargetQuantity().Equal(kernel.MustQuantity(5)))
		assert.True(t, tasks[2].LocationID().IsEqual(locC))
		assert.True(t, tasks[2].TargetQuantity().Equal(kernel.MustQuantity(2)))
		for _, tk := range tasks {
			assert.True(t, tk.OrderID().IsEqual(orderID))
			assert.True(t, tk.ItemID().IsEqual(widget.ID()))
		}
	})

	t.Run("should stop once the request is covered", func(t *testing.T) {
		widget := newItem(t, "SKU-2")

		tasks, err := allocator.Allocate(services.AllocationRequest{
			OrderID:   orderID,
			Item:      widget,
			Requested: kernel.MustQuantity(3),
			Candidates: []*stock.Stock{
				newStock(t, widget, kernel.NewUUID(), 10),
				newStock(t, widget, kernel.NewUUID(), 10),
			},
		})

		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.True(t, tasks[0].TargetQuantity().Equal(kernel.MustQuantity(3)))
	})

	t.Run("should fail when physical stock is short", func(t *testing.T) {
		widget := newItem(t, "SKU-Y")

		tasks, err := allocator.Allocate(services.AllocationRequest{
			OrderID:    orderID,
			Item:       widget,
			Requested:  kernel.MustQuantity(15),
			Candidates: []*stock.Stock{newStock(t, widget, kernel.NewUUID(), 10)},
		})

		require.ErrorIs(t, err, errs.ErrInsufficientStock)
		assert.Nil(t, tasks)
	})

	t.Run("should subtract reserved quantity", func(t *testing.T) {
		widget := newItem(t, "SKU-3")
		candidates := []*stock.Stock{newStock(t, widget, kernel.NewUUID(), 10)}

		_, err := allocator.Allocate(services.AllocationRequest{
			OrderID:    orderID,
			Item:       widget,
			Requested:  kernel.MustQuantity(4),
			Candidates: candidates,
			Reserved:   kernel.MustQuantity(7),
		})
		require.ErrorIs(t, err, errs.ErrInsufficientStock)

		tasks, err := allocator.Allocate(services.AllocationRequest{
			OrderID:    orderID,
			Item:       widget,
			Requested:  kernel.MustQuantity(3),
			Candidates: candidates,
			Reserved:   kernel.MustQuantity(7),
		})
		require.NoError(t, err)
		require.Len(t, tasks, 1)
	})

	t.Run("should floor availability at zero when reservations exceed the shelf", func(t *testing.T) {
		widget := newItem(t, "SKU-5")

		tasks, err := allocator.Allocate(services.AllocationRequest{
			OrderID:    orderID,
			Item:       widget,
			Requested:  kernel.MustQuantity(1),
			Candidates: []*stock.Stock{newStock(t, widget, kernel.NewUUID(), 2)},
			Reserved:   kernel.MustQuantity(9),
		})

		require.ErrorIs(t, err, errs.ErrInsufficientStock)
		assert.ErrorContains(t, err, "requested 1, available 0")
		assert.Nil(t, tasks)
	})

	t.Run("should report missing stock at requested location", func(t *testing.T) {
		source := "BIN-9"

		_, err := allocator.Allocate(services.AllocationRequest{
			OrderID:            orderID,
			Item:               newItem(t, "SKU-4"),
			Requested:          kernel.MustQuantity(1),
			SourceLocationCode: &source,
		})

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Contains(t, err.Error(), "BIN-9")
	})

	t.Run("should reject an unconstructed item", func(t *testing.T) {
		_, err := allocator.Allocate(services.AllocationRequest{Item: &item.Item{}})
		require.ErrorIs(t, err, item.ErrItemIsNotConstructed)
	})
}
