package item

import (
	"errors"
	"fmt"
	"strings"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const maxCodeLength = 64

var (
	// ErrItemIsNotConstructed is returned for an Item that bypassed NewItem/RestoreItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

	defaultUnitVolume = decimal.NewFromInt(1)
)

// Item is a stock-keeping unit. Its code is the business key used by orders and
// stock moves; the identifier never changes once assigned.
type Item struct {
	id            kernel.UUID
	code          string
	description   string
	category      string
	unitOfMeasure string

	// unitVolume is the volume of one unit in location capacity units; nil means unknown.
	unitVolume *decimal.Decimal

	// reorderPoint is the quantity at or below which the item counts as low on stock.
	reorderPoint *kernel.Quantity

	isConstructed bool
}

// NewItem validates and creates an item.
func NewItem(
	id kernel.UUID,
	code, description, category, unitOfMeasure string,
	unitVolume *decimal.Decimal,
	reorderPoint *kernel.Quantity,
) (*Item, error) {
	i := &Item{isConstructed: true}

	if err := errors.Join(
		i.setID(id),
		i.setCode(code),
		i.setDescription(description),
		i.setCategory(category),
		i.setUnitOfMeasure(unitOfMeasure),
		i.setUnitVolume(unitVolume),
		i.setReorderPoint(reorderPoint),
	); err != nil {
		return nil, err
	}

	return i, nil
}

// RestoreItem rebuilds an item from persistence with the same validation as NewItem.
func RestoreItem(
	id kernel.UUID,
	code, description, category, unitOfMeasure string,
	unitVolume *decimal.Decimal,
	reorderPoint *kernel.Quantity,
) (*Item, error) {
	return NewItem(id, code, description, category, unitOfMeasure, unitVolume, reorderPoint)
}

func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i *Item) ID() kernel.UUID {
	return i.id
}

func (i *Item) Code() string {
	return i.code
}

func (i *Item) Description() string {
	return i.description
}

func (i *Item) Category() string {
	return i.category
}

func (i *Item) UnitOfMeasure() string {
	return i.unitOfMeasure
}

func (i *Item) UnitVolume() *decimal.Decimal {
	return i.unitVolume
}

func (i *Item) ReorderPoint() *kernel.Quantity {
	return i.reorderPoint
}

// EffectiveUnitVolume is the unit volume used for capacity accounting.
// Items without a configured volume count as 1 per unit.
func (i *Item) EffectiveUnitVolume() decimal.Decimal {
	if i.unitVolume == nil {
		return defaultUnitVolume
	}
	return *i.unitVolume
}

// IsLowStock reports whether onHand is at or below the item's reorder point,
// falling back to defaultThreshold for items without one.
func (i *Item) IsLowStock(onHand, defaultThreshold kernel.Quantity) bool {
	threshold := defaultThreshold
	if i.reorderPoint != nil {
		threshold = *i.reorderPoint
	}
	return !onHand.GreaterThan(threshold)
}

// Update replaces the mutable attributes. The code is fixed for the item's lifetime.
func (i *Item) Update(
	description, category, unitOfMeasure string,
	unitVolume *decimal.Decimal,
	reorderPoint *kernel.Quantity,
) error {
	updated := *i
	if err := errors.Join(
		updated.setDescription(description),
		updated.setCategory(category),
		updated.setUnitOfMeasure(unitOfMeasure),
		updated.setUnitVolume(unitVolume),
		updated.setReorderPoint(reorderPoint),
	); err != nil {
		return err
	}

	*i = updated
	return nil
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	if len(code) > maxCodeLength {
		return errs.NewValueIsOutOfRangeError("code length", len(code), 1, maxCodeLength)
	}
	i.code = code
	return nil
}

func (i *Item) setDescription(description string) error {
	i.description = strings.TrimSpace(description)
	return nil
}

func (i *Item) setCategory(category string) error {
	i.category = strings.TrimSpace(category)
	return nil
}

func (i *Item) setUnitOfMeasure(uom string) error {
	uom = strings.TrimSpace(uom)
	if uom == "" {
		return errs.NewValueIsRequiredError("unit of measure")
	}
	i.unitOfMeasure = uom
	return nil
}

func (i *Item) setUnitVolume(unitVolume *decimal.Decimal) error {
	if unitVolume != nil && !unitVolume.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"unit volume",
			fmt.Errorf("%s is not greater than 0", unitVolume.String()),
		)
	}
	i.unitVolume = unitVolume
	return nil
}

func (i *Item) setReorderPoint(reorderPoint *kernel.Quantity) error {
	i.reorderPoint = reorderPoint
	return nil
}
