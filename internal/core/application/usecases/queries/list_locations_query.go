package queries

import (
	"errors"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/location"
	"wms/internal/pkg/guard"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrListLocationsQueryIsNotConstructed = errors.New(
		"ListLocationsQuery must be created via NewListLocationsQuery constructor",
	)
	ErrGetLocationQueryIsNotConstructed = errors.New(
		"GetLocationQuery must be created via NewGetLocationQuery constructor",
	)
)

// ListLocationsQuery lists locations, optionally only those of one type.
type ListLocationsQuery struct {
	locationType *location.Type

	guard guard.ConstructorGuard
}

func NewListLocationsQuery(locationType *location.Type) (ListLocationsQuery, error) {
	if locationType != nil {
		if err := locationType.Validate(); err != nil {
			return ListLocationsQuery{}, err
		}
	}
	return ListLocationsQuery{locationType: locationType, guard: guard.NewConstructorGuard()}, nil
}

func (q ListLocationsQuery) Validate() error {
	return q.guard.Validate(ErrListLocationsQueryIsNotConstructed)
}

func (q ListLocationsQuery) LocationType() *location.Type {
	return q.locationType
}

// GetLocationQuery loads one location together with its path from the top of the tree.
type GetLocationQuery struct {
	locationID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetLocationQuery(locationID kernel.UUID) (GetLocationQuery, error) {
	if err := locationID.Validate(); err != nil {
		return GetLocationQuery{}, err
	}
	return GetLocationQuery{locationID: locationID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetLocationQuery) Validate() error {
	return q.guard.Validate(ErrGetLocationQueryIsNotConstructed)
}

func (q GetLocationQuery) LocationID() kernel.UUID {
	return q.locationID
}

type LocationResponse struct {
	ID             kernel.UUID
	Code           string
	Description    string
	Type           string
	Status         string
	ParentID       *kernel.UUID
	CapacityVolume *decimal.Decimal
	CurrentVolume  decimal.Decimal

	// Path holds the codes from the topmost ancestor down to this location.
	// Only GetLocation fills it.
	Path []string
}

type locationRow struct {
	id             uuid.UUID
	code           string
	description    string
	locationType   string
	status         string
	parentID       *uuid.UUID
	capacityVolume decimal.NullDecimal
	currentVolume  decimal.Decimal
}

func (r *locationRow) targets() []any {
	return []any{
		&r.id, &r.code, &r.description, &r.locationType, &r.status,
		&r.parentID, &r.capacityVolume, &r.currentVolume,
	}
}

func (r locationRow) restore() (*location.Location, error) {
	id, err := toUUID(r.id)
	if err != nil {
		return nil, err
	}
	parentID, err := toOptionalUUID(r.parentID)
	if err != nil {
		return nil, err
	}
	locationType, err := location.ParseType(r.locationType)
	if err != nil {
		return nil, err
	}
	status, err := location.ParseStatus(r.status)
	if err != nil {
		return nil, err
	}

	return location.RestoreLocation(
		id, r.code, r.description, locationType, parentID, status,
		toOptionalDecimal(r.capacityVolume), r.currentVolume,
	)
}

func locationResponseFrom(l *location.Location) LocationResponse {
	return LocationResponse{
		ID:             l.ID(),
		Code:           l.Code(),
		Description:    l.Description(),
		Type:           l.Type().String(),
		Status:         l.Status().String(),
		ParentID:       l.ParentID(),
		CapacityVolume: l.CapacityVolume(),
		CurrentVolume:  l.CurrentVolume(),
	}
}
