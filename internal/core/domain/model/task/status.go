package task

import (
	"fmt"

	"wms/internal/pkg/errs"
)

// Status represents the lifecycle of a picking task.
//
// State transitions:
//
//	Pending ──> Completed
//	   │            ^
//	   ├──> Assigned ┘
//	   │       │
//	   └───────┴──> Cancelled
//
// Pending and Assigned tasks are outstanding: both hold a reservation on their
// stock and both can be confirmed. Allocation only produces Pending tasks.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending tasks reserve stock and wait to be picked.
	Pending

	// Assigned tasks have been handed to a picker and still reserve stock.
	Assigned

	// Completed tasks have removed their stock from the ledger. Final.
	Completed

	// Cancelled tasks no longer count towards their order. Final.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Pending:   "PENDING",
		Assigned:  "ASSIGNED",
		Completed: "COMPLETED",
		Cancelled: "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "PENDING",
		Assigned:  "ASSIGNED",
		Completed: "COMPLETED",
		Cancelled: "CANCELLED",
	}
}

// Validate checks that the status is one of Pending, Assigned, Completed or Cancelled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("task status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

func ParseStatus(name string) (Status, error) {
	for s, str := range getValidStatusStrings() {
		if str == name {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("task status", fmt.Errorf("%q is not a valid status", name))
}

// IsOutstanding reports whether a task in this status still holds its reservation.
func (s Status) IsOutstanding() bool {
	return s == Pending || s == Assigned
}

// OutstandingStatuses lists the statuses that count as reserved stock.
func OutstandingStatuses() []Status {
	return []Status{Pending, Assigned}
}

// Complete transitions Pending or Assigned -> Completed.
func (s Status) Complete() (Status, error) {
	if !s.IsOutstanding() {
		return 0, errs.NewInvalidStateTransitionError("picking task", s.String(), Completed.String())
	}
	return Completed, nil
}

// Assign transitions Pending -> Assigned.
func (s Status) Assign() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidStateTransitionError("picking task", s.String(), Assigned.String())
	}
	return Assigned, nil
}

// Cancel transitions Pending or Assigned -> Cancelled.
func (s Status) Cancel() (Status, error) {
	if !s.IsOutstanding() {
		return 0, errs.NewInvalidStateTransitionError("picking task", s.String(), Cancelled.String())
	}
	return Cancelled, nil
}
