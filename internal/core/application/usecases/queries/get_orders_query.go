package queries

import (
	"errors"
	"time"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// ListOrdersQuery lists outbound orders, newest first.
type ListOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewListOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// GetOrderQuery loads one order with its lines and picking tasks.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

type OrderLineResponse struct {
	ItemCode           string
	Quantity           kernel.Quantity
	SourceLocationCode *string
}

type OrderResponse struct {
	ID         kernel.UUID
	Number     string
	CustomerID string
	Status     string
	CreatedAt  time.Time
	Lines      []OrderLineResponse

	// Tasks is only filled by GetOrder.
	Tasks []TaskResponse
}
