package location

import (
	"fmt"

	"wms/internal/pkg/errs"
)

// Status describes how full a location is.
//
// Free, Occupied and Full are derived from the current volume every time it
// changes:
//
//	current == 0                         -> Free
//	capacity set and current >= capacity -> Full
//	otherwise                            -> Occupied
//
// Blocked is set by an operator and survives volume changes.
type Status int

const (
	// UnknownStatus (0) catches uninitialized values.
	UnknownStatus Status = iota
	Free
	Occupied
	Full
	Blocked
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "UNKNOWN",
		Free:          "FREE",
		Occupied:      "OCCUPIED",
		Full:          "FULL",
		Blocked:       "BLOCKED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		Free:     "FREE",
		Occupied: "OCCUPIED",
		Full:     "FULL",
		Blocked:  "BLOCKED",
	}
}

// Validate rejects UnknownStatus and out-of-range values read from storage.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("location status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// ParseStatus maps a persisted name back to a Status.
func ParseStatus(name string) (Status, error) {
	for s, str := range getValidStatusStrings() {
		if str == name {
			return s, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("location status", fmt.Errorf("%q is not a valid status", name))
}

// Block transitions any status to Blocked.
func (s Status) Block() (Status, error) {
	if s == Blocked {
		return 0, errs.NewInvalidStateTransitionError("location", s.String(), Blocked.String())
	}
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return Blocked, nil
}
