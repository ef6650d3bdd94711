package order

import (
	"errors"
	"fmt"
	"strings"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/pkg/errs"
)

// Line is one requested item on an order. Lines are informational: picking
// tasks are the unit of execution.
type Line struct {
	itemCode           string
	quantity           kernel.Quantity
	sourceLocationCode *string
}

// NewLine validates a requested line. A blank source location means "anywhere".
func NewLine(itemCode string, quantity kernel.Quantity, sourceLocationCode *string) (Line, error) {
	itemCode = strings.TrimSpace(itemCode)

	var err error
	if itemCode == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("item code"))
	}
	if !quantity.IsPositive() {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause(
			"line quantity",
			fmt.Errorf("%s is not greater than 0", quantity),
		))
	}
	if err != nil {
		return Line{}, err
	}

	var source *string
	if sourceLocationCode != nil {
		if trimmed := strings.TrimSpace(*sourceLocationCode); trimmed != "" {
			source = &trimmed
		}
	}

	return Line{
		itemCode:           itemCode,
		quantity:           quantity,
		sourceLocationCode: source,
	}, nil
}

func (l Line) ItemCode() string {
	return l.itemCode
}

func (l Line) Quantity() kernel.Quantity {
	return l.quantity
}

func (l Line) SourceLocationCode() *string {
	return l.sourceLocationCode
}
