package queries

import (
	"errors"
	"strings"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/pkg/errs"
	"wms/internal/pkg/guard"
)

var (
	ErrGetStockByLocationQueryIsNotConstructed = errors.New(
		"GetStockByLocationQuery must be created via NewGetStockByLocationQuery constructor",
	)
	ErrGetStockByItemQueryIsNotConstructed = errors.New(
		"GetStockByItemQuery must be created via NewGetStockByItemQuery constructor",
	)
	ErrGetInventorySummaryQueryIsNotConstructed = errors.New(
		"GetInventorySummaryQuery must be created via NewGetInventorySummaryQuery constructor",
	)
)

// GetStockByLocationQuery lists what is stored in one location.
type GetStockByLocationQuery struct {
	locationID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetStockByLocationQuery(locationID kernel.UUID) (GetStockByLocationQuery, error) {
	if err := locationID.Validate(); err != nil {
		return GetStockByLocationQuery{}, err
	}
	return GetStockByLocationQuery{locationID: locationID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetStockByLocationQuery) Validate() error {
	return q.guard.Validate(ErrGetStockByLocationQueryIsNotConstructed)
}

func (q GetStockByLocationQuery) LocationID() kernel.UUID {
	return q.locationID
}

// GetStockByItemQuery lists where an item is stored.
type GetStockByItemQuery struct {
	itemCode string

	guard guard.ConstructorGuard
}

func NewGetStockByItemQuery(itemCode string) (GetStockByItemQuery, error) {
	itemCode = strings.TrimSpace(itemCode)
	if itemCode == "" {
		return GetStockByItemQuery{}, errs.NewValueIsRequiredError("item code")
	}
	return GetStockByItemQuery{itemCode: itemCode, guard: guard.NewConstructorGuard()}, nil
}

func (q GetStockByItemQuery) Validate() error {
	return q.guard.Validate(ErrGetStockByItemQueryIsNotConstructed)
}

func (q GetStockByItemQuery) ItemCode() string {
	return q.itemCode
}

// GetInventorySummaryQuery totals stock per item.
type GetInventorySummaryQuery struct {
	guard guard.ConstructorGuard
}

func NewGetInventorySummaryQuery() GetInventorySummaryQuery {
	return GetInventorySummaryQuery{guard: guard.NewConstructorGuard()}
}

func (q GetInventorySummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetInventorySummaryQueryIsNotConstructed)
}

type StockResponse struct {
	ID           kernel.UUID
	ItemID       kernel.UUID
	ItemCode     string
	LocationID   kernel.UUID
	LocationCode string
	Quantity     kernel.Quantity
	Batch        *string
	Status       string
}

type InventorySummaryResponse struct {
	ItemID        kernel.UUID
	ItemCode      string
	Description   string
	TotalQuantity kernel.Quantity
	StockRows     int
}
