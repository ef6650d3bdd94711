package order

import (
	"errors"
	"strings"
	"time"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoLines is returned for an order request without any line.
	ErrOrderHasNoLines = errors.New("order must have at least one line")
)

// Order represents an outbound customer order. It is the aggregate root whose
// status summarises the progress of its picking tasks.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a non-empty order number
//   - Must reference a customer
//   - Must have at least one line
//   - Status transitions follow the fulfillment workflow
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// number is the human-facing order number, unique across orders
	number string

	// customerID references the ordering customer in an external system
	customerID string

	// lines are the requested items in request order
	lines []Line

	// status represents the current state in the order lifecycle
	status Status

	// createdAt is when the order was accepted, in UTC
	createdAt time.Time

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a New order with a generated order number.
//
// Example:
//
//	line, _ := order.NewLine("SKU-1", kernel.MustQuantity(3), nil)
//	o, err := order.NewOrder(kernel.NewUUID(), "CUST-42", []order.Line{line}, time.Now())
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(id kernel.UUID, customerID string, lines []Line, now time.Time) (*Order, error) {
	return RestoreOrder(id, NewOrderNumber(now), customerID, lines, New, now)
}

// RestoreOrder rebuilds an order from persistence.
func RestoreOrder(
	id kernel.UUID,
	number, customerID string,
	lines []Line,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setCustomerID(customerID),
		o.setLines(lines),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}
	o.createdAt = createdAt.UTC()

	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the generated order number.
func (o *Order) Number() string {
	return o.number
}

// CustomerID returns the external customer reference.
func (o *Order) CustomerID() string {
	return o.customerID
}

// Lines returns a copy of the requested lines.
func (o *Order) Lines() []Line {
	return append([]Line(nil), o.lines...)
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns when the order was accepted.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// StartPicking moves a New order to Picking.
func (o *Order) StartPicking() error {
	return o.transition(o.status.StartPicking)
}

// FinishPicking marks every task as picked.
func (o *Order) FinishPicking() error {
	return o.transition(o.status.FinishPicking)
}

// Ship hands a Picked order to the carrier.
//
// Returns an InvalidStateTransition error unless the order is exactly Picked.
func (o *Order) Ship() error {
	return o.transition(o.status.Ship)
}

func (o *Order) transition(next func() (Status, error)) error {
	status, err := next()
	if err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	if strings.TrimSpace(number) == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	o.number = number
	return nil
}

func (o *Order) setCustomerID(customerID string) error {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return errs.NewValueIsRequiredError("customer")
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredErrorWithCause("lines", ErrOrderHasNoLines)
	}
	o.lines = append([]Line(nil), lines...)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
