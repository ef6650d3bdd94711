// Package jobs provides scheduled background tasks for the warehouse.
//
// Jobs use github.com/robfig/cron/v3 with a seconds field, so schedules are
// six-field expressions or descriptors like "@every 1h".
//
// # Available Jobs
//
// 1. LowStockReportJob - logs every item at or below its reorder point
//
// # Usage
//
//	jobManager := jobs.NewJobManager(lowStockHandler, threshold, "@every 1h", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and the schedule continues. A schedule that does not
// parse fails StartAll, which stops any job already running.
package jobs
