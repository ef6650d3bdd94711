package movement

import (
	"errors"
	"fmt"
	"time"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/pkg/errs"
)

// Reason classifies a movement by which ends of it are inside the warehouse.
type Reason int

const (
	UnknownReason Reason = iota
	// Inbound has only a destination.
	Inbound
	// Outbound has only a source.
	Outbound
	// Move has both.
	Move
)

func (r Reason) String() string {
	switch r {
	case Inbound:
		return "INBOUND"
	case Outbound:
		return "OUTBOUND"
	case Move:
		return "MOVE"
	default:
		return "UNKNOWN"
	}
}

func ParseReason(s string) (Reason, error) {
	for _, r := range []Reason{Inbound, Outbound, Move} {
		if r.String() == s {
			return r, nil
		}
	}
	return UnknownReason, errs.NewValueIsInvalidErrorWithCause("movement reason", fmt.Errorf("%q is not a valid reason", s))
}

var ErrMovementIsNotConstructed = errors.New("Movement must be created via a movement constructor")

// Movement is an immutable audit record of quantity changing place. Movements are
// only ever appended; nothing updates or deletes them.
type Movement struct {
	id             kernel.UUID
	itemID         kernel.UUID
	fromLocationID *kernel.UUID
	toLocationID   *kernel.UUID
	quantity       kernel.Quantity
	reason         Reason
	operator       kernel.Operator
	occurredAt     time.Time

	isConstructed bool
}

func NewInbound(itemID, to kernel.UUID, quantity kernel.Quantity, operator kernel.Operator, at time.Time) (*Movement, error) {
	return RestoreMovement(kernel.NewUUID(), itemID, nil, &to, quantity, Inbound, operator, at)
}

func NewOutbound(itemID, from kernel.UUID, quantity kernel.Quantity, operator kernel.Operator, at time.Time) (*Movement, error) {
	return RestoreMovement(kernel.NewUUID(), itemID, &from, nil, quantity, Outbound, operator, at)
}

func NewMove(itemID, from, to kernel.UUID, quantity kernel.Quantity, operator kernel.Operator, at time.Time) (*Movement, error) {
	return RestoreMovement(kernel.NewUUID(), itemID, &from, &to, quantity, Move, operator, at)
}

// RestoreMovement checks that the locations present match the reason.
func RestoreMovement(
	id, itemID kernel.UUID,
	from, to *kernel.UUID,
	quantity kernel.Quantity,
	reason Reason,
	operator kernel.Operator,
	occurredAt time.Time,
) (*Movement, error) {
	if err := errors.Join(
		id.Validate(),
		itemID.Validate(),
		operator.Validate(),
		validateQuantity(quantity),
		validateEnds(reason, from, to),
	); err != nil {
		return nil, err
	}

	return &Movement{
		id:             id,
		itemID:         itemID,
		fromLocationID: from,
		toLocationID:   to,
		quantity:       quantity,
		reason:         reason,
		operator:       operator,
		occurredAt:     occurredAt.UTC(),
		isConstructed:  true,
	}, nil
}

func validateQuantity(quantity kernel.Quantity) error {
	if !quantity.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%s is not greater than 0", quantity))
	}
	return nil
}

func validateEnds(reason Reason, from, to *kernel.UUID) error {
	var ok bool
	switch reason {
	case Inbound:
		ok = from == nil && to != nil
	case Outbound:
		ok = from != nil && to == nil
	case Move:
		ok = from != nil && to != nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("movement reason", fmt.Errorf("%d is not a valid reason", reason))
	}
	if !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"movement locations",
			fmt.Errorf("%s movement has from=%t to=%t", reason, from != nil, to != nil),
		)
	}
	return nil
}

func (m *Movement) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMovementIsNotConstructed
	}
	return nil
}

func (m *Movement) ID() kernel.UUID {
	return m.id
}

func (m *Movement) ItemID() kernel.UUID {
	return m.itemID
}

func (m *Movement) FromLocationID() *kernel.UUID {
	return m.fromLocationID
}

func (m *Movement) ToLocationID() *kernel.UUID {
	return m.toLocationID
}

func (m *Movement) Quantity() kernel.Quantity {
	return m.quantity
}

func (m *Movement) Reason() Reason {
	return m.reason
}

func (m *Movement) Operator() kernel.Operator {
	return m.operator
}

func (m *Movement) OccurredAt() time.Time {
	return m.occurredAt
}
