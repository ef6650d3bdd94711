package queries

import (
	"context"
	"fmt"

	"wms/internal/core/domain/model/movement"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetRecentMovementsQueryHandler struct {
	db *gorm.DB
}

func NewGetRecentMovementsQueryHandler(db *gorm.DB) GetRecentMovementsQueryHandler {
	return GetRecentMovementsQueryHandler{db: db}
}

// Handle returns the newest movements first, with item and location codes resolved.
func (h GetRecentMovementsQueryHandler) Handle(
	ctx context.Context,
	query GetRecentMovementsQuery,
) ([]MovementResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT m.id, i.code, f.code, t.code, m.quantity, m.reason, m.operator, m.created_at
		FROM stock_movements m
		JOIN items i ON i.id = m.item_id
		LEFT JOIN locations f ON f.id = m.from_location_id
		LEFT JOIN locations t ON t.id = m.to_location_id
		ORDER BY m.created_at DESC, m.id
		LIMIT ?
	`, query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]MovementResponse, 0, query.Limit())
	for rows.Next() {
		var (
			m        MovementResponse
			id       uuid.UUID
			quantity decimal.Decimal
		)
		if err = rows.Scan(&id, &m.ItemCode, &m.FromLocationCode, &m.ToLocationCode,
			&quantity, &m.Reason, &m.Operator, &m.OccurredAt); err != nil {
			return nil, err
		}
		if m.ID, err = toUUID(id); err != nil {
			return nil, err
		}
		if m.Quantity, err = toQuantity(quantity); err != nil {
			return nil, err
		}
		m.OccurredAt = m.OccurredAt.UTC()
		m.Description = describeMovement(m.Reason, m.Quantity.String())
		result = append(result, m)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func describeMovement(reason string, quantity string) string {
	switch reason {
	case movement.Move.String():
		return fmt.Sprintf("Moved %s units", quantity)
	case movement.Inbound.String():
		return fmt.Sprintf("Received %s units", quantity)
	case movement.Outbound.String():
		return fmt.Sprintf("Shipped %s units", quantity)
	default:
		return reason
	}
}
