package jobs

import (
	"fmt"
	"log/slog"

	"wms/internal/core/domain/model/kernel"
)

// Job is a scheduled background task.
type Job interface {
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	jobs []namedJob
}

type namedJob struct {
	name string
	job  Job
}

// NewJobManager creates the manager with the low-stock report.
func NewJobManager(
	lowStock lowStockFinder,
	lowStockThreshold kernel.Quantity,
	lowStockSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		jobs: []namedJob{
			{name: "low stock report", job: NewLowStockReportJob(lowStock, lowStockThreshold, lowStockSchedule, logger)},
		},
	}
}

// StartAll starts every job in order. On failure the jobs already started are stopped.
func (jm *JobManager) StartAll() error {
	for i, j := range jm.jobs {
		if err := j.job.Start(); err != nil {
			for _, started := range jm.jobs[:i] {
				started.job.Stop()
			}
			return fmt.Errorf("failed to start %s job: %w", j.name, err)
		}
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully, in reverse start order.
func (jm *JobManager) StopAll() {
	for i := len(jm.jobs) - 1; i >= 0; i-- {
		jm.jobs[i].job.Stop()
	}
}
