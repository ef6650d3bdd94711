package queries

import (
	"context"
	"database/sql"
	"errors"

	"wms/internal/pkg/errs"

	"gorm.io/gorm"
)

const itemSelect = `
	SELECT id, code, description, category, unit_of_measure, unit_volume, reorder_point
	FROM items
`

type ItemQueryHandler struct {
	db *gorm.DB
}

func NewItemQueryHandler(db *gorm.DB) ItemQueryHandler {
	return ItemQueryHandler{db: db}
}

// List returns the whole catalog ordered by code.
func (h ItemQueryHandler) List(ctx context.Context, query ListItemsQuery) ([]ItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(itemSelect + ` ORDER BY code`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]ItemResponse, 0)
	for rows.Next() {
		response, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (h ItemQueryHandler) Get(ctx context.Context, query GetItemQuery) (ItemResponse, error) {
	if err := query.Validate(); err != nil {
		return ItemResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(itemSelect+` WHERE id = ?`, query.ItemID().Bytes()).Row()

	response, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return ItemResponse{}, errs.NewObjectNotFoundError("item", query.ItemID())
	}
	return response, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(s scanner) (ItemResponse, error) {
	var r itemRow
	if err := s.Scan(
		&r.id, &r.code, &r.description, &r.category, &r.unitOfMeasure, &r.unitVolume, &r.reorderPoint,
	); err != nil {
		return ItemResponse{}, err
	}

	restored, err := r.restore()
	if err != nil {
		return ItemResponse{}, err
	}
	return itemResponseFrom(restored), nil
}
