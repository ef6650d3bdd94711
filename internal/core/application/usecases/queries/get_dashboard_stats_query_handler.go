package queries

import (
	"context"

	"wms/internal/core/domain/model/order"
	"wms/internal/core/domain/model/task"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var pendingOrderStatuses = []string{order.New.String(), order.Picking.String()}

type GetDashboardStatsQueryHandler struct {
	db       *gorm.DB
	lowStock GetLowStockItemsQueryHandler
}

func NewGetDashboardStatsQueryHandler(db *gorm.DB) GetDashboardStatsQueryHandler {
	return GetDashboardStatsQueryHandler{db: db, lowStock: NewGetLowStockItemsQueryHandler(db)}
}

func (h GetDashboardStatsQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardStatsQuery,
) (DashboardStatsResponse, error) {
	if err := query.Validate(); err != nil {
		return DashboardStatsResponse{}, err
	}

	var (
		stats DashboardStatsResponse
		total decimal.Decimal
	)
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COALESCE(SUM(quantity), 0) FROM stocks),
			(SELECT COUNT(*) FROM outbound_orders WHERE status = ANY(?)),
			(SELECT COUNT(*) FROM picking_tasks WHERE status = ?)
	`, pq.Array(pendingOrderStatuses), task.Pending.String()).Row()
	if err := row.Scan(&total, &stats.PendingOrders, &stats.PendingTasks); err != nil {
		return DashboardStatsResponse{}, err
	}

	var err error
	if stats.TotalStockUnits, err = toQuantity(total); err != nil {
		return DashboardStatsResponse{}, err
	}

	low, err := h.lowStock.Handle(ctx, query.lowStock)
	if err != nil {
		return DashboardStatsResponse{}, err
	}
	stats.LowStockAlerts = len(low)

	return stats, nil
}
