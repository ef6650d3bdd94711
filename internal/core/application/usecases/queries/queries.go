// Package queries contains the read side of the warehouse. Handlers run raw SQL
// against the database and return read models shaped for the caller; they never
// load or mutate aggregates.
package queries

import (
	"wms/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func toUUID(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toOptionalUUID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	converted, err := toUUID(*id)
	if err != nil {
		return nil, err
	}
	return &converted, nil
}

func toQuantity(value decimal.Decimal) (kernel.Quantity, error) {
	return kernel.NewQuantity(value)
}

func toOptionalDecimal(value decimal.NullDecimal) *decimal.Decimal {
	if !value.Valid {
		return nil
	}
	d := value.Decimal
	return &d
}
