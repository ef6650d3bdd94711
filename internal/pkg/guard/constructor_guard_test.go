package guard_test

import (
	"errors"
	"testing"

	"wms/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errPickCommandNotConstructed = errors.New("pickCommand must be created via newPickCommand")

type pickCommand struct {
	taskID string
	guard  guard.ConstructorGuard
}

func newPickCommand(taskID string) (pickCommand, error) {
	if taskID == "" {
		return pickCommand{}, errors.New("task id is required")
	}
	return pickCommand{taskID: taskID, guard: guard.NewConstructorGuard()}, nil
}

func (c pickCommand) Validate() error {
	return c.guard.Validate(errPickCommandNotConstructed)
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_passes", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_returns_given_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("entity not constructed")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
	})
}

func TestConstructorGuard_EmbeddedInCommand(t *testing.T) {
	t.Run("constructor_built_command_is_valid", func(t *testing.T) {
		cmd, err := newPickCommand("task-1")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "task-1", cmd.taskID)
	})

	t.Run("literal_command_is_rejected", func(t *testing.T) {
		cmd := pickCommand{taskID: "task-1"}

		require.ErrorIs(t, cmd.Validate(), errPickCommandNotConstructed)
	})

	t.Run("constructor_errors_surface", func(t *testing.T) {
		_, err := newPickCommand("")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "task id is required")
	})
}
