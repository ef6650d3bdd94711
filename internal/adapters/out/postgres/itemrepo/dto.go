// Package itemrepo persists the item catalog with GORM.
package itemrepo

import (
	"wms/internal/core/domain/model/item"
	"wms/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemDTO is the row of the items table.
type ItemDTO struct {
	ID            uuid.UUID           `gorm:"type:uuid;primaryKey"`
	Code          string              `gorm:"type:varchar(64);not null;uniqueIndex"`
	Description   string              `gorm:"type:text;not null;default:''"`
	Category      string              `gorm:"type:varchar(255);not null;default:''"`
	UnitOfMeasure string              `gorm:"type:varchar(32);not null"`
	UnitVolume    decimal.NullDecimal `gorm:"type:numeric(18,4)"`
	ReorderPoint  decimal.NullDecimal `gorm:"type:numeric(18,4)"`
}

func (ItemDTO) TableName() string {
	return "items"
}

func fromDomain(aggregate *item.Item) ItemDTO {
	dto := ItemDTO{
		ID:            aggregate.ID().Bytes(),
		Code:          aggregate.Code(),
		Description:   aggregate.Description(),
		Category:      aggregate.Category(),
		UnitOfMeasure: aggregate.UnitOfMeasure(),
	}
	if v := aggregate.UnitVolume(); v != nil {
		dto.UnitVolume = decimal.NewNullDecimal(*v)
	}
	if rp := aggregate.ReorderPoint(); rp != nil {
		dto.ReorderPoint = decimal.NewNullDecimal(rp.Decimal())
	}
	return dto
}

func toDomain(dto ItemDTO) (*item.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var unitVolume *decimal.Decimal
	if dto.UnitVolume.Valid {
		unitVolume = &dto.UnitVolume.Decimal
	}

	var reorderPoint *kernel.Quantity
	if dto.ReorderPoint.Valid {
		rp, rpErr := kernel.NewQuantity(dto.ReorderPoint.Decimal)
		if rpErr != nil {
			return nil, rpErr
		}
		reorderPoint = &rp
	}

	return item.RestoreItem(id, dto.Code, dto.Description, dto.Category, dto.UnitOfMeasure, unitVolume, reorderPoint)
}
