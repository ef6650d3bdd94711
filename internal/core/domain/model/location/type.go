package location

import (
	"fmt"
	"strings"

	"wms/internal/pkg/errs"
)

// Type is the level of a location in the warehouse hierarchy.
type Type int

const (
	UnknownType Type = iota
	Site
	Area
	Aisle
	Rack
	Level
	Bin
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		UnknownType: "UNKNOWN",
		Site:        "SITE",
		Area:        "AREA",
		Aisle:       "AISLE",
		Rack:        "RACK",
		Level:       "LEVEL",
		Bin:         "BIN",
	}
}

// ParseType accepts the upper-case names used on the wire, case-insensitively.
func ParseType(s string) (Type, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	for t, name := range getTypeStrings() {
		if t != UnknownType && name == upper {
			return t, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause("location type", fmt.Errorf("%q is not a location type", s))
}

func (t Type) Validate() error {
	if t <= UnknownType || t > Bin {
		return errs.NewValueIsInvalidErrorWithCause("location type", fmt.Errorf("%d is not a valid location type", t))
	}
	return nil
}

func (t Type) String() string {
	if s, ok := getTypeStrings()[t]; ok {
		return s
	}
	return "UNKNOWN"
}
