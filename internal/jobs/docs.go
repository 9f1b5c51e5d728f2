// Package jobs provides scheduled background tasks for the development backend.
//
// Jobs are cron-based (github.com/robfig/cron/v3, seconds field enabled) and
// managed through JobManager:
//
//	jobManager := jobs.NewJobManager(createOrderHandler, cfg.SeedSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// OrderSeedingJob publishes a new READY_FOR_DELIVERY order on every tick of
// SEED_SCHEDULE, rotating through the pickup regions so each region's list
// fills up over time.
package jobs
