// Package movementrepo appends to the stock movement log with GORM.
package movementrepo

import (
	"time"

	"wms/internal/core/domain/model/movement"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MovementDTO is the row of the stock_movements table.
type MovementDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ItemID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	FromLocationID *uuid.UUID      `gorm:"type:uuid"`
	ToLocationID   *uuid.UUID      `gorm:"type:uuid"`
	Quantity       decimal.Decimal `gorm:"type:numeric(18,4);not null"`
	Reason         string          `gorm:"type:varchar(16);not null"`
	Operator       string          `gorm:"type:varchar(255);not null"`
	CreatedAt      time.Time       `gorm:"type:timestamptz;not null;index"`
}

func (MovementDTO) TableName() string {
	return "stock_movements"
}

func fromDomain(entry *movement.Movement) MovementDTO {
	dto := MovementDTO{
		ID:        entry.ID().Bytes(),
		ItemID:    entry.ItemID().Bytes(),
		Quantity:  entry.Quantity().Decimal(),
		Reason:    entry.Reason().String(),
		Operator:  entry.Operator().String(),
		CreatedAt: entry.OccurredAt(),
	}
	if from := entry.FromLocationID(); from != nil {
		raw := from.Bytes()
		dto.FromLocationID = &raw
	}
	if to := entry.ToLocationID(); to != nil {
		raw := to.Bytes()
		dto.ToLocationID = &raw
	}
	return dto
}
