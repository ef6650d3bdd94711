package order

import (
	"fmt"

	"wms/internal/pkg/errs"
)

// Status represents the lifecycle state of an outbound order.
// It implements a state machine with defined transitions so orders follow
// the fulfillment workflow.
//
// State transitions:
//
//	New ──┬──> Picking ──> Picked ──> Shipped
//	      │                  ^
//	      └──────────────────┘
//	 (single-task orders finish picking at once)
//
// Completed is reserved for delivery confirmation; no transition leads to it yet.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status. Tasks may exist but none has been confirmed.
	New

	// Picking indicates at least one task was confirmed and others remain.
	Picking

	// Picked indicates every non-cancelled task is completed.
	Picked

	// Shipped indicates the goods left the warehouse.
	Shipped

	// Completed indicates delivery was confirmed. Final.
	Completed
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		New:       "NEW",
		Picking:   "PICKING",
		Picked:    "PICKED",
		Shipped:   "SHIPPED",
		Completed: "COMPLETED",
	}
}

// getValidStatusStrings returns only the statuses an order may hold.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:       "NEW",
		Picking:   "PICKING",
		Picked:    "PICKED",
		Shipped:   "SHIPPED",
		Completed: "COMPLETED",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: New, Picking, Picked, Shipped, Completed.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the upper-case name of the status, "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// ParseStatus maps a persisted or requested name back to a Status.
func ParseStatus(name string) (Status, error) {
	for s, str := range getValidStatusStrings() {
		if str == name {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", name))
}

// IsOpen reports whether the order still awaits picking.
func (s Status) IsOpen() bool {
	return s == New || s == Picking
}

// StartPicking transitions the status to Picking.
//
// Valid transitions:
//   - New -> Picking (first task confirmed)
//
// Returns (0, error) for any other status.
func (s Status) StartPicking() (Status, error) {
	if s != New {
		return 0, errs.NewInvalidStateTransitionError("order", s.String(), Picking.String())
	}
	return Picking, nil
}

// FinishPicking transitions the status to Picked.
//
// Valid transitions:
//   - New -> Picked (every task confirmed in one go)
//   - Picking -> Picked (last task confirmed)
func (s Status) FinishPicking() (Status, error) {
	if !s.IsOpen() {
		return 0, errs.NewInvalidStateTransitionError("order", s.String(), Picked.String())
	}
	return Picked, nil
}

// Ship transitions the status to Shipped.
//
// Valid transitions:
//   - Picked -> Shipped
//
// Shipping from any other status fails with InvalidStateTransition.
func (s Status) Ship() (Status, error) {
	if s != Picked {
		return 0, errs.NewInvalidStateTransitionError("order", s.String(), Shipped.String())
	}
	return Shipped, nil
}
