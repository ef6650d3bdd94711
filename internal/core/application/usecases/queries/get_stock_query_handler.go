package queries

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const stockSelect = `
	SELECT s.id, s.item_id, i.code, s.location_id, l.code, s.quantity, s.batch, s.status
	FROM stocks s
	JOIN items i ON i.id = s.item_id
	JOIN locations l ON l.id = s.location_id
`

type StockQueryHandler struct {
	db *gorm.DB
}

func NewStockQueryHandler(db *gorm.DB) StockQueryHandler {
	return StockQueryHandler{db: db}
}

// ByLocation returns the rows at a location in receipt order.
func (h StockQueryHandler) ByLocation(ctx context.Context, query GetStockByLocationQuery) ([]StockResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(stockSelect+`
		WHERE s.location_id = ?
		ORDER BY s.seq
	`, query.LocationID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStock(rows)
}

// ByItem returns the rows of an item ordered by location code. An unknown code
// yields an empty list.
func (h StockQueryHandler) ByItem(ctx context.Context, query GetStockByItemQuery) ([]StockResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(stockSelect+`
		WHERE i.code = ?
		ORDER BY l.code, s.seq
	`, query.ItemCode()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStock(rows)
}

// Summary returns one line per item that has stock, ordered by item code.
func (h StockQueryHandler) Summary(
	ctx context.Context,
	query GetInventorySummaryQuery,
) ([]InventorySummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT i.id, i.code, i.description, SUM(s.quantity), COUNT(s.id)
		FROM items i
		JOIN stocks s ON s.item_id = i.id
		GROUP BY i.id
		ORDER BY i.code
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summary := make([]InventorySummaryResponse, 0)
	for rows.Next() {
		var (
			line  InventorySummaryResponse
			id    uuid.UUID
			total decimal.Decimal
		)
		if err = rows.Scan(&id, &line.ItemCode, &line.Description, &total, &line.StockRows); err != nil {
			return nil, err
		}
		if line.ItemID, err = toUUID(id); err != nil {
			return nil, err
		}
		if line.TotalQuantity, err = toQuantity(total); err != nil {
			return nil, err
		}
		summary = append(summary, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summary, nil
}

func scanStock(rows *sql.Rows) ([]StockResponse, error) {
	result := make([]StockResponse, 0)
	for rows.Next() {
		var (
			s                      StockResponse
			id, itemID, locationID uuid.UUID
			quantity               decimal.Decimal
			err                    error
		)
		if err = rows.Scan(&id, &itemID, &s.ItemCode, &locationID, &s.LocationCode, &quantity, &s.Batch, &s.Status); err != nil {
			return nil, err
		}
		if s.ID, err = toUUID(id); err != nil {
			return nil, err
		}
		if s.ItemID, err = toUUID(itemID); err != nil {
			return nil, err
		}
		if s.LocationID, err = toUUID(locationID); err != nil {
			return nil, err
		}
		if s.Quantity, err = toQuantity(quantity); err != nil {
			return nil, err
		}
		result = append(result, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
