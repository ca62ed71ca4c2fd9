// Package jobs provides scheduled background tasks of the ordering service.
//
// Jobs are built on github.com/robfig/cron/v3 with second-precision schedules.
//
// # Available Jobs
//
// PendingOrderExpirationJob cancels orders that stayed pending, untouched, for
// longer than the configured timeout. Its schedule defaults to once a minute.
//
// # Usage
//
//	job, err := jobs.NewPendingOrderExpirationJob(handler, 30*time.Minute, "0 * * * * *", logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	jobManager := jobs.NewJobManager(logger, job)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and retried on the next tick. A job that fails to
// start makes StartAll stop the jobs already started.
package jobs
