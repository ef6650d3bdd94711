package commands_test

import (
	"testing"
	"time"

	"wms/internal/core/application/usecases/commands"
	"wms/internal/core/domain/model/item"
	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/location"
	"wms/internal/core/domain/model/order"
	"wms/internal/core/domain/model/stock"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func operator(t *testing.T) kernel.Operator {
	t.Helper()
	op, err := kernel.NewOperator("picker-7")
	require.NoError(t, err)
	return op
}

func qty(v int64) kernel.Quantity {
	return kernel.MustQuantity(v)
}

func qtyPtr(v int64) *kernel.Quantity {
	q := kernel.MustQuantity(v)
	return &q
}

func dec(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func seedItem(t *testing.T, w *fakeWarehouse, code string, unitVolume *decimal.Decimal, reorderPoint *kernel.Quantity) *item.Item {
	t.Helper()
	cmd := commands.NewCreateItemCommand(code, code+" description", "general", "EA", unitVolume, reorderPoint)
	created, err := commands.NewCreateItemCommandHandler(catalogFactory{w}).Handle(t.Context(), cmd)
	require.NoError(t, err)
	return created
}

func seedLocation(t *testing.T, w *fakeWarehouse, code string, capacity *decimal.Decimal) *location.Location {
	t.Helper()
	cmd, err := commands.NewCreateLocationCommand(code, "", location.Bin, nil, capacity)
	require.NoError(t, err)
	created, err := commands.NewCreateLocationCommandHandler(locationFactory{w}).Handle(t.Context(), cmd)
	require.NoError(t, err)
	return created
}

func seedStock(t *testing.T, w *fakeWarehouse, i *item.Item, l *location.Location, quantity int64, batch *string) *stock.Stock {
	t.Helper()
	cmd, err := commands.NewCreateStockCommand(i.ID(), l.ID(), qty(quantity), batch, operator(t))
	require.NoError(t, err)
	row, err := commands.NewCreateStockCommandHandler(ledgerFactory{w}).Handle(t.Context(), cmd)
	require.NoError(t, err)
	return row
}

func line(t *testing.T, itemCode string, quantity int64, source *string) order.Line {
	t.Helper()
	l, err := order.NewLine(itemCode, qty(quantity), source)
	require.NoError(t, err)
	return l
}

func assertVolume(t *testing.T, want int64, l *location.Location) {
	t.Helper()
	assert.True(t, decimal.NewFromInt(want).Equal(l.CurrentVolume()),
		"location %s: want volume %d, got %s", l.Code(), want, l.CurrentVolume())
}

func assertQuantity(t *testing.T, want int64, got kernel.Quantity) {
	t.Helper()
	assert.True(t, qty(want).Equal(got), "want quantity %d, got %s", want, got)
}

func strPtr(s string) *string {
	return &s
}

func timeForTest() time.Time {
	return time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
}
