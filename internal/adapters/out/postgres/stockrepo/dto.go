// Package stockrepo persists stock rows with GORM.
package stockrepo

import (
	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/stock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockDTO is the row of the stocks table. Seq keeps insertion order, which is the
// order allocation walks the lots in.
type StockDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Seq        int64           `gorm:"autoIncrement;not null"`
	ItemID     uuid.UUID       `gorm:"type:uuid;not null;index:idx_stocks_item_location"`
	LocationID uuid.UUID       `gorm:"type:uuid;not null;index:idx_stocks_item_location;index"`
	Quantity   decimal.Decimal `gorm:"type:numeric(18,4);not null"`
	Batch      *string         `gorm:"type:varchar(64)"`
	Status     string          `gorm:"type:varchar(16);not null"`
}

func (StockDTO) TableName() string {
	return "stocks"
}

func fromDomain(aggregate *stock.Stock) StockDTO {
	return StockDTO{
		ID:         aggregate.ID().Bytes(),
		ItemID:     aggregate.ItemID().Bytes(),
		LocationID: aggregate.LocationID().Bytes(),
		Quantity:   aggregate.Quantity().Decimal(),
		Batch:      aggregate.Batch(),
		Status:     aggregate.Status().String(),
	}
}

func toDomain(dto StockDTO) (*stock.Stock, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	itemID, err := kernel.UUIDFromBytes(dto.ItemID[:])
	if err != nil {
		return nil, err
	}
	locationID, err := kernel.UUIDFromBytes(dto.LocationID[:])
	if err != nil {
		return nil, err
	}
	quantity, err := kernel.NewQuantity(dto.Quantity)
	if err != nil {
		return nil, err
	}
	status, err := stock.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return stock.RestoreStock(id, itemID, locationID, quantity, dto.Batch, status)
}

func toDomainList(dtos []StockDTO) ([]*stock.Stock, error) {
	rows := make([]*stock.Stock, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		rows = append(rows, s)
	}
	return rows, nil
}
