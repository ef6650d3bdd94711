package queries

import (
	"errors"
	"time"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/pkg/errs"
	"wms/internal/pkg/guard"
)

const (
	DefaultRecentMovementsLimit = 10
	maxRecentMovementsLimit     = 500
)

var ErrGetRecentMovementsQueryIsNotConstructed = errors.New(
	"GetRecentMovementsQuery must be created via NewGetRecentMovementsQuery constructor",
)

// GetRecentMovementsQuery reads the tail of the movement log.
type GetRecentMovementsQuery struct {
	limit int

	guard guard.ConstructorGuard
}

// NewGetRecentMovementsQuery accepts 1..500. Zero means the default of ten.
func NewGetRecentMovementsQuery(limit int) (GetRecentMovementsQuery, error) {
	if limit == 0 {
		limit = DefaultRecentMovementsLimit
	}
	if limit < 1 || limit > maxRecentMovementsLimit {
		return GetRecentMovementsQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, maxRecentMovementsLimit)
	}
	return GetRecentMovementsQuery{limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRecentMovementsQuery) Validate() error {
	return q.guard.Validate(ErrGetRecentMovementsQueryIsNotConstructed)
}

func (q GetRecentMovementsQuery) Limit() int {
	return q.limit
}

type MovementResponse struct {
	ID               kernel.UUID
	ItemCode         string
	FromLocationCode *string
	ToLocationCode   *string
	Quantity         kernel.Quantity
	Reason           string
	Operator         string
	Description      string
	OccurredAt       time.Time
}
