package services

import (
	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/location"

	"github.com/shopspring/decimal"
)

// ZoneCapacity is the volume roll-up of one AREA location over all its descendants.
type ZoneCapacity struct {
	ZoneID      kernel.UUID
	Code        string
	Description string
	Capacity    decimal.Decimal
	Current     decimal.Decimal
	Percentage  int64
}

var hundred = decimal.NewFromInt(100)

// ZoneCapacityCalculator sums configured capacity and current volume below each area.
type ZoneCapacityCalculator struct{}

func NewZoneCapacityCalculator() ZoneCapacityCalculator {
	return ZoneCapacityCalculator{}
}

// Calculate returns one entry per AREA location in tree order. The area's own
// volume is not counted; only its descendants hold stock. Percentage is
// current/capacity rounded half-up to two places, times 100, and 0 without capacity.
func (c ZoneCapacityCalculator) Calculate(tree *location.Tree) []ZoneCapacity {
	zones := tree.OfType(location.Area)
	result := make([]ZoneCapacity, 0, len(zones))

	for _, zone := range zones {
		capacity, current := decimal.Zero, decimal.Zero
		for _, l := range tree.Descendants(zone.ID()) {
			if l.CapacityVolume() != nil {
				capacity = capacity.Add(*l.CapacityVolume())
			}
			current = current.Add(l.CurrentVolume())
		}

		var percentage int64
		if capacity.IsPositive() {
			percentage = current.Div(capacity).Round(2).Mul(hundred).IntPart()
		}

		result = append(result, ZoneCapacity{
			ZoneID:      zone.ID(),
			Code:        zone.Code(),
			Description: zone.Description(),
			Capacity:    capacity,
			Current:     current,
			Percentage:  percentage,
		})
	}

	return result
}
