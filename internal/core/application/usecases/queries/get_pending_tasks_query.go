package queries

import (
	"errors"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/pkg/guard"
)

var ErrGetPendingTasksQueryIsNotConstructed = errors.New(
	"GetPendingTasksQuery must be created via NewGetPendingTasksQuery constructor",
)

// GetPendingTasksQuery lists the picking work that is waiting for a picker.
type GetPendingTasksQuery struct {
	guard guard.ConstructorGuard
}

func NewGetPendingTasksQuery() GetPendingTasksQuery {
	return GetPendingTasksQuery{guard: guard.NewConstructorGuard()}
}

func (q GetPendingTasksQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingTasksQueryIsNotConstructed)
}

// TaskResponse is a picking task joined with the codes a picker needs.
type TaskResponse struct {
	ID             kernel.UUID
	OrderID        kernel.UUID
	OrderNumber    string
	ItemID         kernel.UUID
	ItemCode       string
	ItemName       string
	LocationID     kernel.UUID
	LocationCode   string
	TargetQuantity kernel.Quantity
	PickedQuantity kernel.Quantity
	Status         string
}
