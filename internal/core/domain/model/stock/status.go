package stock

import (
	"fmt"

	"wms/internal/pkg/errs"
)

// Status tells whether a stock row may be allocated. Only Available rows are
// created by the ledger today; the rest are set by quality control.
type Status int

const (
	UnknownStatus Status = iota
	Available
	Allocated
	Quarantine
	Blocked
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "UNKNOWN",
		Available:     "AVAILABLE",
		Allocated:     "ALLOCATED",
		Quarantine:    "QUARANTINE",
		Blocked:       "BLOCKED",
	}
}

func (s Status) Validate() error {
	if s <= UnknownStatus || s > Blocked {
		return errs.NewValueIsInvalidErrorWithCause("stock status", fmt.Errorf("%d is not a valid status", s))
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
	for s, str := range getStatusStrings() {
		if s != UnknownStatus && str == name {
			return s, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("stock status", fmt.Errorf("%q is not a valid status", name))
}
