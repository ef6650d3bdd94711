// Package orderrepo persists outbound orders with GORM. Lines are informational
// and stored as a JSONB array on the order row.
package orderrepo

import (
	"time"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OrderDTO is the row of the outbound_orders table.
type OrderDTO struct {
	ID         uuid.UUID                    `gorm:"type:uuid;primaryKey"`
	Number     string                       `gorm:"type:varchar(64);not null;uniqueIndex"`
	CustomerID string                       `gorm:"type:varchar(255);not null"`
	Status     string                       `gorm:"type:varchar(16);not null;index"`
	Lines      datatypes.JSONSlice[LineDTO] `gorm:"type:jsonb;not null"`
	CreatedAt  time.Time                    `gorm:"type:timestamptz;not null;index"`
}

func (OrderDTO) TableName() string {
	return "outbound_orders"
}

// LineDTO is one element of the lines JSON array.
type LineDTO struct {
	ItemCode           string          `json:"itemCode"`
	Quantity           decimal.Decimal `json:"quantity"`
	SourceLocationCode *string         `json:"sourceLocationCode,omitempty"`
}

func fromDomain(aggregate *order.Order) OrderDTO {
	lines := make([]LineDTO, 0, len(aggregate.Lines()))
	for _, l := range aggregate.Lines() {
		lines = append(lines, LineDTO{
			ItemCode:           l.ItemCode(),
			Quantity:           l.Quantity().Decimal(),
			SourceLocationCode: l.SourceLocationCode(),
		})
	}

	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		Number:     aggregate.Number(),
		CustomerID: aggregate.CustomerID(),
		Status:     aggregate.Status().String(),
		Lines:      datatypes.NewJSONSlice(lines),
		CreatedAt:  aggregate.CreatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		quantity, qErr := kernel.NewQuantity(l.Quantity)
		if qErr != nil {
			return nil, qErr
		}
		line, lineErr := order.NewLine(l.ItemCode, quantity, l.SourceLocationCode)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(id, dto.Number, dto.CustomerID, lines, status, dto.CreatedAt)
}
