package queries

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const taskSelect = `
	SELECT
		t.id,
		t.order_id,
		o.number,
		t.item_id,
		i.code,
		i.description,
		t.location_id,
		l.code,
		t.target_quantity,
		t.picked_quantity,
		t.status
	FROM picking_tasks t
	JOIN outbound_orders o ON o.id = t.order_id
	JOIN items i ON i.id = t.item_id
	JOIN locations l ON l.id = t.location_id
`

// GetPendingTasksQueryHandler returns Pending tasks in creation order.
type GetPendingTasksQueryHandler struct {
	db *gorm.DB
}

func NewGetPendingTasksQueryHandler(db *gorm.DB) GetPendingTasksQueryHandler {
	return GetPendingTasksQueryHandler{db: db}
}

func (h GetPendingTasksQueryHandler) Handle(ctx context.Context, query GetPendingTasksQuery) ([]TaskResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(taskSelect+`
		WHERE t.status = ?
		ORDER BY t.seq
	`, "PENDING").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTasks(rows)
}

func scanTasks(rows *sql.Rows) ([]TaskResponse, error) {
	tasks := make([]TaskResponse, 0)
	for rows.Next() {
		var (
			t                                TaskResponse
			id, orderID, itemID, locationID uuid.UUID
			target, picked                   decimal.Decimal
			err                              error
		)

		if err = rows.Scan(
			&id,
			&orderID,
			&t.OrderNumber,
			&itemID,
			&t.ItemCode,
			&t.ItemName,
			&locationID,
			&t.LocationCode,
			&target,
			&picked,
			&t.Status,
		); err != nil {
			return nil, err
		}

		if t.ID, err = toUUID(id); err != nil {
			return nil, err
		}
		if t.OrderID, err = toUUID(orderID); err != nil {
			return nil, err
		}
		if t.ItemID, err = toUUID(itemID); err != nil {
			return nil, err
		}
		if t.LocationID, err = toUUID(locationID); err != nil {
			return nil, err
		}
		if t.TargetQuantity, err = toQuantity(target); err != nil {
			return nil, err
		}
		if t.PickedQuantity, err = toQuantity(picked); err != nil {
			return nil, err
		}

		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
