package location

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
	// ErrLocationIsNotConstructed is returned for a Location that bypassed its constructors.
	ErrLocationIsNotConstructed = errors.New("Location must be created via NewLocation constructor")

	// ErrLocationIsOwnParent guards the only cycle a single record can express on its own.
	ErrLocationIsOwnParent = errors.New("location cannot be its own parent")

	defaultUnitVolume = decimal.NewFromInt(1)
)

// Location is a physical place in the warehouse hierarchy that can hold stock.
//
// Invariants:
//   - currentVolume is never negative
//   - when capacityVolume is set, currentVolume never exceeds it
//   - status is derived from the volumes unless the location is Blocked
//
// The parent is stored as an identifier only; hierarchy walks go through Tree.
type Location struct {
	id           kernel.UUID
	code         string
	description  string
	locationType Type
	parentID     *kernel.UUID
	status       Status

	// capacityVolume is nil for locations without a volume limit.
	capacityVolume *decimal.Decimal
	currentVolume  decimal.Decimal

	isConstructed bool
}

// NewLocation creates an empty location in Free status.
func NewLocation(
	id kernel.UUID,
	code, description string,
	locationType Type,
	parentID *kernel.UUID,
	capacityVolume *decimal.Decimal,
) (*Location, error) {
	l := &Location{
		status:        Free,
		currentVolume: decimal.Zero,
		isConstructed: true,
	}

	if err := errors.Join(
		l.setID(id),
		l.setCode(code),
		l.setDescription(description),
		l.setType(locationType),
		l.setCapacity(capacityVolume),
	); err != nil {
		return nil, err
	}

	if err := l.setParent(parentID); err != nil {
		return nil, err
	}

	return l, nil
}

// RestoreLocation rebuilds a location from persistence, including its volume and status.
func RestoreLocation(
	id kernel.UUID,
	code, description string,
	locationType Type,
	parentID *kernel.UUID,
	status Status,
	capacityVolume *decimal.Decimal,
	currentVolume decimal.Decimal,
) (*Location, error) {
	l, err := NewLocation(id, code, description, locationType, parentID, capacityVolume)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if currentVolume.IsNegative() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"current volume",
			fmt.Errorf("%s is negative", currentVolume.String()),
		)
	}

	l.status = status
	l.currentVolume = currentVolume
	return l, nil
}

func (l *Location) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLocationIsNotConstructed
	}
	return nil
}

func (l *Location) ID() kernel.UUID {
	return l.id
}

func (l *Location) Code() string {
	return l.code
}

func (l *Location) Description() string {
	return l.description
}

func (l *Location) Type() Type {
	return l.locationType
}

func (l *Location) ParentID() *kernel.UUID {
	return l.parentID
}

func (l *Location) Status() Status {
	return l.status
}

func (l *Location) CapacityVolume() *decimal.Decimal {
	return l.capacityVolume
}

func (l *Location) CurrentVolume() decimal.Decimal {
	return l.currentVolume
}

// ApplyVolumeDelta adds or releases quantity × unitVolume of occupied volume.
//
// A nil unitVolume counts as 1. Additions that would push the current volume
// above a configured capacity fail with CapacityExceeded and leave the location
// untouched. Releases are clamped at zero.
func (l *Location) ApplyVolumeDelta(quantity kernel.Quantity, unitVolume *decimal.Decimal, isAddition bool) error {
	perUnit := defaultUnitVolume
	if unitVolume != nil {
		perUnit = *unitVolume
	}
	delta := quantity.Mul(perUnit).Decimal()

	if isAddition {
		next := l.currentVolume.Add(delta)
		if l.capacityVolume != nil && next.GreaterThan(*l.capacityVolume) {
			return errs.NewCapacityExceededError(
				l.code,
				l.currentVolume.String(),
				delta.String(),
				l.capacityVolume.String(),
			)
		}
		l.currentVolume = next
	} else {
		l.currentVolume = decimal.Max(decimal.Zero, l.currentVolume.Sub(delta))
	}

	l.refreshStatus()
	return nil
}

// Update changes the code, description and capacity. Shrinking the capacity below
// the volume already stored is refused.
func (l *Location) Update(code, description string, capacityVolume *decimal.Decimal) error {
	updated := *l
	if err := errors.Join(
		updated.setCode(code),
		updated.setDescription(description),
		updated.setCapacity(capacityVolume),
	); err != nil {
		return err
	}

	if capacityVolume != nil && l.currentVolume.GreaterThan(*capacityVolume) {
		return errs.NewCapacityExceededError(
			l.code,
			l.currentVolume.String(),
			decimal.Zero.String(),
			capacityVolume.String(),
		)
	}

	updated.refreshStatus()
	*l = updated
	return nil
}

// Block takes the location out of use. Volume changes no longer alter its status.
func (l *Location) Block() error {
	next, err := l.status.Block()
	if err != nil {
		return err
	}
	l.status = next
	return nil
}

func (l *Location) refreshStatus() {
	if l.status == Blocked {
		return
	}
	switch {
	case l.currentVolume.IsZero():
		l.status = Free
	case l.capacityVolume != nil && l.currentVolume.GreaterThanOrEqual(*l.capacityVolume):
		l.status = Full
	default:
		l.status = Occupied
	}
}

func (l *Location) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Location) setCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	if len(code) > maxCodeLength {
		return errs.NewValueIsOutOfRangeError("code length", len(code), 1, maxCodeLength)
	}
	l.code = code
	return nil
}

func (l *Location) setDescription(description string) error {
	l.description = strings.TrimSpace(description)
	return nil
}

func (l *Location) setType(locationType Type) error {
	if err := locationType.Validate(); err != nil {
		return err
	}
	l.locationType = locationType
	return nil
}

func (l *Location) setParent(parentID *kernel.UUID) error {
	if parentID == nil {
		l.parentID = nil
		return nil
	}
	if err := parentID.Validate(); err != nil {
		return err
	}
	if parentID.IsEqual(l.id) {
		return errs.NewValueIsInvalidErrorWithCause("parent", ErrLocationIsOwnParent)
	}
	l.parentID = parentID
	return nil
}

func (l *Location) setCapacity(capacityVolume *decimal.Decimal) error {
	if capacityVolume != nil && capacityVolume.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"capacity volume",
			fmt.Errorf("%s is negative", capacityVolume.String()),
		)
	}
	l.capacityVolume = capacityVolume
	return nil
}
