package commands

import (
	"errors"
	"strings"

	"wms/internal/core/domain/model/order"
	"wms/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents an outbound order request.
//
// Example:
//
//	line, _ := order.NewLine("SKU-1", kernel.MustQuantity(12), nil)
//	cmd, err := NewCreateOrderCommand("CUST-42", []order.Line{line})
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
//
//	o, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID string
	lines      []order.Line

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates that a customer is named and at least one line is requested.
func NewCreateOrderCommand(customerID string, lines []order.Line) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) CustomerID() string {
	return c.customerID
}

// Lines returns the requested lines in request order.
func (c CreateOrderCommand) Lines() []order.Line {
	return append([]order.Line(nil), c.lines...)
}

func (c *CreateOrderCommand) setCustomerID(customerID string) error {
	customerID = strings.TrimSpace(customerID)
	if err := requireText("customer id", customerID); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []order.Line) error {
	if len(lines) == 0 {
		return order.ErrOrderHasNoLines
	}

	c.lines = append([]order.Line(nil), lines...)
	return nil
}
