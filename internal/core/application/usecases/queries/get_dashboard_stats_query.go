package queries

import (
	"errors"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/pkg/guard"
)

var ErrGetDashboardStatsQueryIsNotConstructed = errors.New(
	"GetDashboardStatsQuery must be created via NewGetDashboardStatsQuery constructor",
)

type GetDashboardStatsQuery struct {
	lowStock GetLowStockItemsQuery

	guard guard.ConstructorGuard
}

// NewGetDashboardStatsQuery takes the threshold used for items without a reorder point.
func NewGetDashboardStatsQuery(defaultThreshold kernel.Quantity) (GetDashboardStatsQuery, error) {
	lowStock, err := NewGetLowStockItemsQuery(defaultThreshold)
	if err != nil {
		return GetDashboardStatsQuery{}, err
	}
	return GetDashboardStatsQuery{lowStock: lowStock, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDashboardStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardStatsQueryIsNotConstructed)
}

type DashboardStatsResponse struct {
	TotalStockUnits kernel.Quantity
	PendingOrders   int64
	PendingTasks    int64
	LowStockAlerts  int
}
