package queries

import (
	"errors"

	"wms/internal/core/domain/model/item"
	"wms/internal/core/domain/model/kernel"
	"wms/internal/pkg/guard"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrListItemsQueryIsNotConstructed = errors.New(
		"ListItemsQuery must be created via NewListItemsQuery constructor",
	)
	ErrGetItemQueryIsNotConstructed = errors.New(
		"GetItemQuery must be created via NewGetItemQuery constructor",
	)
)

type ListItemsQuery struct {
	guard guard.ConstructorGuard
}

func NewListItemsQuery() ListItemsQuery {
	return ListItemsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListItemsQuery) Validate() error {
	return q.guard.Validate(ErrListItemsQueryIsNotConstructed)
}

type GetItemQuery struct {
	itemID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetItemQuery(itemID kernel.UUID) (GetItemQuery, error) {
	if err := itemID.Validate(); err != nil {
		return GetItemQuery{}, err
	}
	return GetItemQuery{itemID: itemID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetItemQuery) Validate() error {
	return q.guard.Validate(ErrGetItemQueryIsNotConstructed)
}

func (q GetItemQuery) ItemID() kernel.UUID {
	return q.itemID
}

// ItemResponse is the catalog view of an item.
type ItemResponse struct {
	ID            kernel.UUID
	Code          string
	Description   string
	Category      string
	UnitOfMeasure string
	UnitVolume    *decimal.Decimal
	ReorderPoint  *kernel.Quantity
}

func itemResponseFrom(i *item.Item) ItemResponse {
	return ItemResponse{
		ID:            i.ID(),
		Code:          i.Code(),
		Description:   i.Description(),
		Category:      i.Category(),
		UnitOfMeasure: i.UnitOfMeasure(),
		UnitVolume:    i.UnitVolume(),
		ReorderPoint:  i.ReorderPoint(),
	}
}

// itemRow is the column set shared by the item queries.
type itemRow struct {
	id            uuid.UUID
	code          string
	description   string
	category      string
	unitOfMeasure string
	unitVolume    decimal.NullDecimal
	reorderPoint  decimal.NullDecimal
}

// restore runs the row through the item's own validation.
func (r itemRow) restore() (*item.Item, error) {
	id, err := toUUID(r.id)
	if err != nil {
		return nil, err
	}

	var reorderPoint *kernel.Quantity
	if r.reorderPoint.Valid {
		q, err := toQuantity(r.reorderPoint.Decimal)
		if err != nil {
			return nil, err
		}
		reorderPoint = &q
	}

	return item.RestoreItem(
		id, r.code, r.description, r.category, r.unitOfMeasure,
		toOptionalDecimal(r.unitVolume), reorderPoint,
	)
}
