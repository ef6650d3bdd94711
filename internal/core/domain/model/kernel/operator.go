package kernel

import (
	"strings"

	"wms/internal/pkg/errs"
)

// Operator names the person or process on whose behalf the ledger is mutated.
// It is recorded on every stock movement.
type Operator struct {
	name string
}

func NewOperator(name string) (Operator, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Operator{}, errs.NewValueIsRequiredError("operator")
	}
	return Operator{name: name}, nil
}

func (o Operator) String() string {
	return o.name
}

func (o Operator) Validate() error {
	if o.name == "" {
		return errs.NewValueIsRequiredError("operator")
	}
	return nil
}
