// Package locationrepo persists warehouse locations with GORM.
package locationrepo

import (
	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/location"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LocationDTO is the row of the locations table. Parents are referenced by id only;
// the tree is assembled in memory.
type LocationDTO struct {
	ID             uuid.UUID           `gorm:"type:uuid;primaryKey"`
	Code           string              `gorm:"type:varchar(64);not null;uniqueIndex"`
	Description    string              `gorm:"type:text;not null;default:''"`
	Type           string              `gorm:"type:varchar(16);not null;index"`
	ParentID       *uuid.UUID          `gorm:"type:uuid;index"`
	Status         string              `gorm:"type:varchar(16);not null"`
	CapacityVolume decimal.NullDecimal `gorm:"type:numeric(18,4)"`
	CurrentVolume  decimal.Decimal     `gorm:"type:numeric(18,4);not null;default:0"`
}

func (LocationDTO) TableName() string {
	return "locations"
}

func fromDomain(aggregate *location.Location) LocationDTO {
	dto := LocationDTO{
		ID:            aggregate.ID().Bytes(),
		Code:          aggregate.Code(),
		Description:   aggregate.Description(),
		Type:          aggregate.Type().String(),
		Status:        aggregate.Status().String(),
		CurrentVolume: aggregate.CurrentVolume(),
	}
	if parent := aggregate.ParentID(); parent != nil {
		raw := parent.Bytes()
		dto.ParentID = &raw
	}
	if capacity := aggregate.CapacityVolume(); capacity != nil {
		dto.CapacityVolume = decimal.NewNullDecimal(*capacity)
	}
	return dto
}

func toDomain(dto LocationDTO) (*location.Location, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var parentID *kernel.UUID
	if dto.ParentID != nil {
		pID, parentErr := kernel.UUIDFromBytes((*dto.ParentID)[:])
		if parentErr != nil {
			return nil, parentErr
		}
		parentID = &pID
	}

	locationType, err := location.ParseType(dto.Type)
	if err != nil {
		return nil, err
	}
	status, err := location.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var capacity *decimal.Decimal
	if dto.CapacityVolume.Valid {
		capacity = &dto.CapacityVolume.Decimal
	}

	return location.RestoreLocation(id, dto.Code, dto.Description, locationType, parentID, status, capacity, dto.CurrentVolume)
}
