// Package jobs provides scheduled background tasks for the tracking
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. HoldReminderJob - Runs hourly to find units parked in the hold area
// past the staleness threshold and raise their one-time reminder
// notifications.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(sendHoldRemindersHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Sweep failures are logged and retried on the next tick; the reminder
// flag on each unit keeps repeated sweeps from duplicating notifications.
package jobs
