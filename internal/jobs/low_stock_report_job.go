package jobs

import (
	"context"
	"log/slog"

	"wms/internal/core/application/usecases/queries"
	"wms/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

const DefaultLowStockSchedule = "@every 1h"

type lowStockFinder interface {
	Handle(ctx context.Context, query queries.GetLowStockItemsQuery) ([]queries.LowStockItemResponse, error)
}

// LowStockReportJob logs every item whose available stock is at or below its threshold.
type LowStockReportJob struct {
	finder           lowStockFinder
	defaultThreshold kernel.Quantity
	schedule         string
	cron             *cron.Cron
	logger           *slog.Logger
}

// NewLowStockReportJob creates the job. schedule is a six-field cron expression
// (seconds first) or a descriptor such as "@every 1h"; empty means DefaultLowStockSchedule.
func NewLowStockReportJob(
	finder lowStockFinder,
	defaultThreshold kernel.Quantity,
	schedule string,
	logger *slog.Logger,
) *LowStockReportJob {
	if schedule == "" {
		schedule = DefaultLowStockSchedule
	}
	return &LowStockReportJob{
		finder:           finder,
		defaultThreshold: defaultThreshold,
		schedule:         schedule,
		cron:             cron.New(cron.WithSeconds()),
		logger:           logger.With("component", "low_stock_report_job"),
	}
}

// Start registers the report with the scheduler and starts it.
func (j *LowStockReportJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Low stock report job started", "schedule", j.schedule)
	return nil
}

// Run produces one report. It returns the number of low items, or -1 on failure.
func (j *LowStockReportJob) Run(ctx context.Context) int {
	query, err := queries.NewGetLowStockItemsQuery(j.defaultThreshold)
	if err != nil {
		j.logger.ErrorContext(ctx, "Low stock report job failed", "error", err)
		return -1
	}

	low, err := j.finder.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Low stock report job failed", "error", err)
		return -1
	}

	for _, l := range low {
		j.logger.WarnContext(ctx, "Low stock",
			"item", l.Item.Code,
			"on_hand", l.OnHand.String(),
			"threshold", l.Threshold.String(),
		)
	}
	j.logger.InfoContext(ctx, "Low stock report finished", "low_items", len(low))
	return len(low)
}

// Stop stops the scheduler and waits for a running report to finish.
func (j *LowStockReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Low stock report job stopped")
}
