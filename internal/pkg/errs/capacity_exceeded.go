package errs

import (
	"errors"
	"fmt"
)

var ErrCapacityExceeded = errors.New("capacity exceeded")

// CapacityExceededError is returned when adding volume would push a location above its capacity.
type CapacityExceededError struct {
	Location string
	Current  any
	Delta    any
	Capacity any
}

func NewCapacityExceededError(location string, current, delta, capacity any) *CapacityExceededError {
	return &CapacityExceededError{
		Location: location,
		Current:  current,
		Delta:    delta,
		Capacity: capacity,
	}
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("%s: location %s, current %v, adding %v, capacity %v",
		ErrCapacityExceeded, e.Location, e.Current, e.Delta, e.Capacity)
}

func (e *CapacityExceededError) Unwrap() error {
	return ErrCapacityExceeded
}
