package movement_test

import (
	"testing"
	"time"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/movement"
	"wms/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func operator(t *testing.T) kernel.Operator {
	t.Helper()
	op, err := kernel.NewOperator("picker-7")
	require.NoError(t, err)
	return op
}

func TestMovementConstructors(t *testing.T) {
	itemID, a, b := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.FixedZone("CET", 3600))
	qty := kernel.MustQuantity(5)

	in, err := movement.NewInbound(itemID, a, qty, operator(t), at)
	require.NoError(t, err)
	assert.Equal(t, movement.Inbound, in.Reason())
	assert.Nil(t, in.FromLocationID())
	assert.True(t, in.ToLocationID().IsEqual(a))
	assert.Equal(t, time.UTC, in.OccurredAt().Location())

	out, err := movement.NewOutbound(itemID, a, qty, operator(t), at)
	require.NoError(t, err)
	assert.Equal(t, "OUTBOUND", out.Reason().String())
	assert.Nil(t, out.ToLocationID())

	mv, err := movement.NewMove(itemID, a, b, qty, operator(t), at)
	require.NoError(t, err)
	assert.True(t, mv.FromLocationID().IsEqual(a))
	assert.True(t, mv.ToLocationID().IsEqual(b))
	assert.Equal(t, "picker-7", mv.Operator().String())
}

func TestRestoreMovement_Validation(t *testing.T) {
	itemID, a := kernel.NewUUID(), kernel.NewUUID()

	t.Run("ends_must_match_reason", func(t *testing.T) {
		_, err := movement.RestoreMovement(kernel.NewUUID(), itemID, &a, &a, kernel.MustQuantity(1),
			movement.Inbound, operator(t), time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("operator_is_required", func(t *testing.T) {
		_, err := movement.RestoreMovement(kernel.NewUUID(), itemID, &a, nil, kernel.MustQuantity(1),
			movement.Outbound, kernel.Operator{}, time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("quantity_must_be_positive", func(t *testing.T) {
		_, err := movement.RestoreMovement(kernel.NewUUID(), itemID, nil, &a, kernel.ZeroQuantity(),
			movement.Inbound, operator(t), time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestParseReason(t *testing.T) {
	r, err := movement.ParseReason("MOVE")
	require.NoError(t, err)
	assert.Equal(t, movement.Move, r)

	_, err = movement.ParseReason("TRANSFER")
	require.Error(t, err)
}
