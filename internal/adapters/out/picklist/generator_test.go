package picklist_test

import (
	"bytes"
	"testing"
	"time"

	"wms/internal/adapters/out/picklist"
	"wms/internal/core/application/usecases/queries"
	"wms/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func task(location string, quantity int64) queries.TaskResponse {
	return queries.TaskResponse{
		ID:             kernel.NewUUID(),
		ItemCode:       "SKU-1",
		ItemName:       "Blue widget",
		LocationCode:   location,
		TargetQuantity: kernel.MustQuantity(quantity),
		PickedQuantity: kernel.ZeroQuantity(),
		Status:         "PENDING",
	}
}

func order(tasks ...queries.TaskResponse) queries.OrderResponse {
	return queries.OrderResponse{
		ID:         kernel.NewUUID(),
		Number:     "ORD-1709285400000-0a1b",
		CustomerID: "CUST-1",
		Status:     "NEW",
		CreatedAt:  time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
		Tasks:      tasks,
	}
}

func TestGenerator_Render(t *testing.T) {
	t.Run("should produce a PDF document", func(t *testing.T) {
		pdf, err := picklist.NewGenerator().Render(order(task("A-01", 5), task("A-02", 2)))

		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-")))
	})

	t.Run("should render an order without tasks", func(t *testing.T) {
		pdf, err := picklist.NewGenerator().Render(order())

		require.NoError(t, err)
		assert.NotEmpty(t, pdf)
	})

	t.Run("should grow with the number of tasks", func(t *testing.T) {
		few, err := picklist.NewGenerator().Render(order(task("A-01", 1)))
		require.NoError(t, err)

		tasks := make([]queries.TaskResponse, 0, 30)
		for range 30 {
			tasks = append(tasks, task("B-01", 1))
		}
		many, err := picklist.NewGenerator().Render(order(tasks...))
		require.NoError(t, err)

		assert.Greater(t, len(many), len(few))
	})
}
