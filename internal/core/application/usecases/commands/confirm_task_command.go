package commands

import (
	"errors"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/pkg/guard"
)

var ErrConfirmTaskCommandIsNotConstructed = errors.New(
	"ConfirmTaskCommand must be created via NewConfirmTaskCommand constructor",
)

// ConfirmTaskCommand reports that a picker took the task's quantity off the shelf.
type ConfirmTaskCommand struct {
	taskID   kernel.UUID
	operator kernel.Operator

	guard guard.ConstructorGuard
}

func NewConfirmTaskCommand(taskID kernel.UUID, operator kernel.Operator) (ConfirmTaskCommand, error) {
	if err := errors.Join(taskID.Validate(), operator.Validate()); err != nil {
		return ConfirmTaskCommand{}, err
	}

	return ConfirmTaskCommand{
		taskID:   taskID,
		operator: operator,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c ConfirmTaskCommand) Validate() error {
	return c.guard.Validate(ErrConfirmTaskCommandIsNotConstructed)
}

func (c ConfirmTaskCommand) TaskID() kernel.UUID {
	return c.taskID
}

func (c ConfirmTaskCommand) Operator() kernel.Operator {
	return c.operator
}
