// Package jobs provides scheduled background tasks for the menu service.
//
// Jobs are built on github.com/robfig/cron/v3 with second-resolution schedules.
//
// # Available Jobs
//
// OrderDigestJob runs GetOrdersQuery on a schedule (every minute by default,
// configurable through DIGEST_SCHEDULE) and logs the number of stored,
// urgent and common orders.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(getOrdersHandler, cfg.DigestSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failing digest is logged and retried at the next tick. An invalid
// schedule makes StartAll fail.
package jobs
