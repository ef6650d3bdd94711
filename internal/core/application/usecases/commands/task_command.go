package commands

import (
	"errors"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/pkg/guard"
)

var ErrTaskCommandIsNotConstructed = errors.New(
	"TaskCommand must be created via NewTaskCommand constructor",
)

// TaskCommand addresses a single picking task. It is shared by the assign and
// cancel handlers.
type TaskCommand struct {
	taskID kernel.UUID

	guard guard.ConstructorGuard
}

func NewTaskCommand(taskID kernel.UUID) (TaskCommand, error) {
	if err := taskID.Validate(); err != nil {
		return TaskCommand{}, err
	}

	return TaskCommand{
		taskID: taskID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c TaskCommand) Validate() error {
	return c.guard.Validate(ErrTaskCommandIsNotConstructed)
}

func (c TaskCommand) TaskID() kernel.UUID {
	return c.taskID
}
