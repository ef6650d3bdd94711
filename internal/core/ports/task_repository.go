package ports

import (
	"context"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/task"
)

// TaskRepository persists picking tasks and answers reservation questions about them.
type TaskRepository interface {
	Add(ctx context.Context, aggregate *task.PickingTask) error
	Update(ctx context.Context, aggregate *task.PickingTask) error
	Get(ctx context.Context, id kernel.UUID) (*task.PickingTask, error)

	// FindByOrder returns every task of the order regardless of status.
	FindByOrder(ctx context.Context, orderID kernel.UUID) ([]*task.PickingTask, error)

	// ReservedQuantity sums the target quantity of Pending tasks for the item,
	// restricted to one source location when locationID is set.
	ReservedQuantity(ctx context.Context, itemID kernel.UUID, locationID *kernel.UUID) (kernel.Quantity, error)
}
