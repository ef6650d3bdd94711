package services

import (
	"wms/internal/core/domain/model/item"
	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/location"
	"wms/internal/pkg/errs"
)

// CapacityTracker applies stock quantity changes of an item to a location's volume.
type CapacityTracker struct{}

func NewCapacityTracker() CapacityTracker {
	return CapacityTracker{}
}

// Reserve occupies the volume of quantity units of i at l.
func (c CapacityTracker) Reserve(l *location.Location, i *item.Item, quantity kernel.Quantity) error {
	if err := c.validate(l, i); err != nil {
		return err
	}
	return l.ApplyVolumeDelta(quantity, i.UnitVolume(), true)
}

// Release frees the volume of quantity units of i at l, never below zero.
func (c CapacityTracker) Release(l *location.Location, i *item.Item, quantity kernel.Quantity) error {
	if err := c.validate(l, i); err != nil {
		return err
	}
	return l.ApplyVolumeDelta(quantity, i.UnitVolume(), false)
}

// EnsureAccepting fails when l is blocked for new stock.
func (c CapacityTracker) EnsureAccepting(l *location.Location) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if l.Status() == location.Blocked {
		return errs.NewInvalidStateTransitionError("location "+l.Code(), location.Blocked.String(), "receive stock")
	}
	return nil
}

func (c CapacityTracker) validate(l *location.Location, i *item.Item) error {
	if err := l.Validate(); err != nil {
		return err
	}
	return i.Validate()
}
