package services_test

import (
	"testing"
	"time"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/order"
	"wms/internal/core/domain/model/task"
	"wms/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	line, err := order.NewLine("SKU-1", kernel.MustQuantity(10), nil)
	require.NoError(t, err)
	o, err := order.RestoreOrder(kernel.NewUUID(), "ORD-1", "C-1", []order.Line{line}, status, time.Now())
	require.NoError(t, err)
	return o
}

func newTask(t *testing.T, orderID kernel.UUID, status task.Status) *task.PickingTask {
	t.Helper()
	picked := kernel.ZeroQuantity()
	if status == task.Completed {
		picked = kernel.MustQuantity(5)
	}
	tk, err := task.RestorePickingTask(
		kernel.NewUUID(), orderID, kernel.NewUUID(), kernel.NewUUID(),
		kernel.MustQuantity(5), picked, status,
	)
	require.NoError(t, err)
	return tk
}

func TestOrderProgress_Apply(t *testing.T) {
	progress := services.NewOrderProgress()

	t.Run("should move new order to picking after first completion", func(t *testing.T) {
		o := newOrder(t, order.New)
		tasks := []*task.PickingTask{newTask(t, o.ID(), task.Completed), newTask(t, o.ID(), task.Pending)}

		changed, err := progress.Apply(o, tasks)

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, order.Picking, o.Status())
	})

	t.Run("should mark order picked when all tasks complete", func(t *testing.T) {
		o := newOrder(t, order.Picking)
		tasks := []*task.PickingTask{newTask(t, o.ID(), task.Completed), newTask(t, o.ID(), task.Completed)}

		changed, err := progress.Apply(o, tasks)

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, order.Picked, o.Status())
	})

	t.Run("should jump from new to picked on a single task", func(t *testing.T) {
		o := newOrder(t, order.New)

		changed, err := progress.Apply(o, []*task.PickingTask{newTask(t, o.ID(), task.Completed)})

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, order.Picked, o.Status())
	})

	t.Run("should ignore cancelled tasks", func(t *testing.T) {
		o := newOrder(t, order.Picking)
		tasks := []*task.PickingTask{newTask(t, o.ID(), task.Completed), newTask(t, o.ID(), task.Cancelled)}

		changed, err := progress.Apply(o, tasks)

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, order.Picked, o.Status())
	})

	t.Run("should ignore tasks of other orders", func(t *testing.T) {
		o := newOrder(t, order.Picking)
		tasks := []*task.PickingTask{newTask(t, o.ID(), task.Completed), newTask(t, kernel.NewUUID(), task.Pending)}

		_, err := progress.Apply(o, tasks)

		require.NoError(t, err)
		assert.Equal(t, order.Picked, o.Status())
	})

	t.Run("should leave picking order with open tasks unchanged", func(t *testing.T) {
		o := newOrder(t, order.Picking)
		tasks := []*task.PickingTask{newTask(t, o.ID(), task.Completed), newTask(t, o.ID(), task.Assigned)}

		changed, err := progress.Apply(o, tasks)

		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, order.Picking, o.Status())
	})

	t.Run("should not touch shipped orders", func(t *testing.T) {
		o := newOrder(t, order.Shipped)

		changed, err := progress.Apply(o, []*task.PickingTask{newTask(t, o.ID(), task.Completed)})

		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, order.Shipped, o.Status())
	})

	t.Run("should leave order without tasks alone", func(t *testing.T) {
		o := newOrder(t, order.New)

		changed, err := progress.Apply(o, nil)

		require.NoError(t, err)
		assert.False(t, changed)
	})
}
