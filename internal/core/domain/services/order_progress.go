package services

import (
	"wms/internal/core/domain/model/order"
	"wms/internal/core/domain/model/task"
)

// OrderProgress derives an order's status from its picking tasks.
type OrderProgress struct{}

func NewOrderProgress() OrderProgress {
	return OrderProgress{}
}

// Apply updates o after one of its tasks changed and reports whether the status moved.
//
// Cancelled tasks are ignored. When every remaining task is Completed the order
// becomes Picked; otherwise a New order becomes Picking. An order without any
// relevant task is left alone.
func (p OrderProgress) Apply(o *order.Order, tasks []*task.PickingTask) (bool, error) {
	if err := o.Validate(); err != nil {
		return false, err
	}

	relevant, completed := 0, 0
	for _, t := range tasks {
		if !t.OrderID().IsEqual(o.ID()) {
			continue
		}
		switch t.Status() {
		case task.Cancelled:
			continue
		case task.Completed:
			completed++
		}
		relevant++
	}

	switch {
	case relevant > 0 && relevant == completed && o.Status().IsOpen():
		return true, o.FinishPicking()
	case relevant > completed && o.Status() == order.New:
		return true, o.StartPicking()
	default:
		return false, nil
	}
}
