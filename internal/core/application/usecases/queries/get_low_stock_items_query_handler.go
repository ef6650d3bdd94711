package queries

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetLowStockItemsQueryHandler sums Available stock per item and applies the
// item's own low-stock rule to the total.
type GetLowStockItemsQueryHandler struct {
	db *gorm.DB
}

func NewGetLowStockItemsQueryHandler(db *gorm.DB) GetLowStockItemsQueryHandler {
	return GetLowStockItemsQueryHandler{db: db}
}

func (h GetLowStockItemsQueryHandler) Handle(
	ctx context.Context,
	query GetLowStockItemsQuery,
) ([]LowStockItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.id,
			i.code,
			i.description,
			i.category,
			i.unit_of_measure,
			i.unit_volume,
			i.reorder_point,
			COALESCE(SUM(s.quantity), 0) AS on_hand
		FROM items i
		LEFT JOIN stocks s ON s.item_id = i.id AND s.status = ?
		GROUP BY i.id
		ORDER BY i.code
	`, "AVAILABLE").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]LowStockItemResponse, 0)
	for rows.Next() {
		var (
			row    itemRow
			onHand decimal.Decimal
		)
		if err = rows.Scan(
			&row.id, &row.code, &row.description, &row.category, &row.unitOfMeasure,
			&row.unitVolume, &row.reorderPoint, &onHand,
		); err != nil {
			return nil, err
		}

		restored, err := row.restore()
		if err != nil {
			return nil, err
		}
		onHandQuantity, err := toQuantity(onHand)
		if err != nil {
			return nil, err
		}
		if !restored.IsLowStock(onHandQuantity, query.DefaultThreshold()) {
			continue
		}

		threshold := query.DefaultThreshold()
		if reorder := restored.ReorderPoint(); reorder != nil {
			threshold = *reorder
		}
		result = append(result, LowStockItemResponse{
			Item:      itemResponseFrom(restored),
			OnHand:    onHandQuantity,
			Threshold: threshold,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
