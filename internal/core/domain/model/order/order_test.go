package order_test

import (
	"regexp"
	"testing"
	"time"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/order"
	"wms/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLine(t *testing.T, code string, qty int64, source *string) order.Line {
	t.Helper()
	line, err := order.NewLine(code, kernel.MustQuantity(qty), source)
	require.NoError(t, err)
	return line
}

func TestNewLine(t *testing.T) {
	t.Run("should blank source mean anywhere", func(t *testing.T) {
		blank := "  "
		line := mustLine(t, " SKU-1 ", 3, &blank)

		assert.Equal(t, "SKU-1", line.ItemCode())
		assert.Nil(t, line.SourceLocationCode())
	})

	t.Run("should keep source location", func(t *testing.T) {
		source := "BIN-7"
		line := mustLine(t, "SKU-1", 3, &source)

		require.NotNil(t, line.SourceLocationCode())
		assert.Equal(t, "BIN-7", *line.SourceLocationCode())
	})

	t.Run("should reject empty code and zero quantity", func(t *testing.T) {
		_, err := order.NewLine("", kernel.ZeroQuantity(), nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewOrder(t *testing.T) {
	now := time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)

	t.Run("should create new order with generated number", func(t *testing.T) {
		id := kernel.NewUUID()
		o, err := order.NewOrder(id, "CUST-1", []order.Line{mustLine(t, "SKU-1", 2, nil)}, now)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, order.New, o.Status())
		assert.Equal(t, "CUST-1", o.CustomerID())
		assert.Len(t, o.Lines(), 1)
		assert.Equal(t, now, o.CreatedAt())
		assert.Regexp(t, regexp.MustCompile(`^ORD-1777896000000-[0-9a-f]{4}$`), o.Number())
	})

	t.Run("should fail without lines and customer", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), " ", nil, now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, order.ErrOrderHasNoLines)
	})

	t.Run("should fail validation for zero value order", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("should not share lines slice with caller", func(t *testing.T) {
		lines := []order.Line{mustLine(t, "SKU-1", 1, nil)}
		o, err := order.NewOrder(kernel.NewUUID(), "CUST-1", lines, now)
		require.NoError(t, err)

		lines[0] = mustLine(t, "SKU-2", 1, nil)
		assert.Equal(t, "SKU-1", o.Lines()[0].ItemCode())
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	o, err := order.NewOrder(kernel.NewUUID(), "CUST-1", []order.Line{mustLine(t, "SKU-1", 2, nil)}, time.Now())
	require.NoError(t, err)

	require.ErrorIs(t, o.Ship(), errs.ErrInvalidStateTransition)
	require.NoError(t, o.StartPicking())
	assert.Equal(t, order.Picking, o.Status())
	require.NoError(t, o.FinishPicking())
	assert.Equal(t, order.Picked, o.Status())
	require.NoError(t, o.Ship())
	assert.Equal(t, order.Shipped, o.Status())
	require.ErrorIs(t, o.Ship(), errs.ErrInvalidStateTransition)
}

func TestRestoreOrder(t *testing.T) {
	o, err := order.RestoreOrder(kernel.NewUUID(), "ORD-1-abcd", "CUST-1",
		[]order.Line{mustLine(t, "SKU-1", 2, nil)}, order.Picked, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "ORD-1-abcd", o.Number())

	_, err = order.RestoreOrder(kernel.NewUUID(), "", "CUST-1",
		[]order.Line{mustLine(t, "SKU-1", 2, nil)}, order.Unknown, time.Now())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewOrderNumber_Distinct(t *testing.T) {
	now := time.Now()
	seen := make(map[string]bool)
	for range 20 {
		seen[order.NewOrderNumber(now)] = true
	}
	assert.Greater(t, len(seen), 1)
}
