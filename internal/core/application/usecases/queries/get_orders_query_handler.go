package queries

import (
	"context"
	"database/sql"
	"errors"

	"wms/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const orderSelect = `
	SELECT id, number, customer_id, status, created_at, lines
	FROM outbound_orders
`

// orderLineJSON mirrors one element of the lines column.
type orderLineJSON struct {
	ItemCode           string          `json:"itemCode"`
	Quantity           decimal.Decimal `json:"quantity"`
	SourceLocationCode *string         `json:"sourceLocationCode,omitempty"`
}

type OrderQueryHandler struct {
	db *gorm.DB
}

func NewOrderQueryHandler(db *gorm.DB) OrderQueryHandler {
	return OrderQueryHandler{db: db}
}

func (h OrderQueryHandler) List(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(orderSelect + ` ORDER BY created_at DESC, number DESC`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func (h OrderQueryHandler) Get(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	db := h.db.WithContext(ctx)
	id := query.OrderID().Bytes()

	o, err := scanOrder(db.Raw(orderSelect+` WHERE id = ?`, id).Row())
	if errors.Is(err, sql.ErrNoRows) {
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}
	if err != nil {
		return OrderResponse{}, err
	}

	rows, err := db.Raw(taskSelect+`
		WHERE t.order_id = ?
		ORDER BY t.seq
	`, id).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	if o.Tasks, err = scanTasks(rows); err != nil {
		return OrderResponse{}, err
	}

	return o, nil
}

func scanOrder(s scanner) (OrderResponse, error) {
	var (
		o     OrderResponse
		id    uuid.UUID
		lines datatypes.JSONSlice[orderLineJSON]
		err   error
	)
	if err = s.Scan(&id, &o.Number, &o.CustomerID, &o.Status, &o.CreatedAt, &lines); err != nil {
		return OrderResponse{}, err
	}
	if o.ID, err = toUUID(id); err != nil {
		return OrderResponse{}, err
	}

	o.CreatedAt = o.CreatedAt.UTC()
	o.Lines = make([]OrderLineResponse, 0, len(lines))
	for _, l := range lines {
		quantity, err := toQuantity(l.Quantity)
		if err != nil {
			return OrderResponse{}, err
		}
		o.Lines = append(o.Lines, OrderLineResponse{
			ItemCode:           l.ItemCode,
			Quantity:           quantity,
			SourceLocationCode: l.SourceLocationCode,
		})
	}

	return o, nil
}
