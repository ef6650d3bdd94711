// Package taskrepo persists picking tasks with GORM.
package taskrepo

import (
	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/task"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TaskDTO is the row of the picking_tasks table.
type TaskDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Seq            int64           `gorm:"autoIncrement;not null"`
	OrderID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	ItemID         uuid.UUID       `gorm:"type:uuid;not null;index:idx_picking_tasks_item_status"`
	LocationID     uuid.UUID       `gorm:"type:uuid;not null"`
	TargetQuantity decimal.Decimal `gorm:"type:numeric(18,4);not null"`
	PickedQuantity decimal.Decimal `gorm:"type:numeric(18,4);not null;default:0"`
	Status         string          `gorm:"type:varchar(16);not null;index:idx_picking_tasks_item_status"`
}

func (TaskDTO) TableName() string {
	return "picking_tasks"
}

func fromDomain(aggregate *task.PickingTask) TaskDTO {
	return TaskDTO{
		ID:             aggregate.ID().Bytes(),
		OrderID:        aggregate.OrderID().Bytes(),
		ItemID:         aggregate.ItemID().Bytes(),
		LocationID:     aggregate.LocationID().Bytes(),
		TargetQuantity: aggregate.TargetQuantity().Decimal(),
		PickedQuantity: aggregate.PickedQuantity().Decimal(),
		Status:         aggregate.Status().String(),
	}
}

func toDomain(dto TaskDTO) (*task.PickingTask, error) {
	ids := make([]kernel.UUID, 0, 4)
	for _, raw := range []uuid.UUID{dto.ID, dto.OrderID, dto.ItemID, dto.LocationID} {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	target, err := kernel.NewQuantity(dto.TargetQuantity)
	if err != nil {
		return nil, err
	}
	picked, err := kernel.NewQuantity(dto.PickedQuantity)
	if err != nil {
		return nil, err
	}
	status, err := task.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return task.RestorePickingTask(ids[0], ids[1], ids[2], ids[3], target, picked, status)
}
