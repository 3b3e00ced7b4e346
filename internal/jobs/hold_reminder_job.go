package jobs

import (
	"context"
	"log/slog"

	"tracking/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// holdReminderSchedule runs the sweep at the top of every hour. Staleness
// is measured in days, so a tighter schedule would only burn database
// scans without changing which units get reminded about.
const holdReminderSchedule = "0 0 * * * *"

// HoldReminderJob periodically sweeps the hold area for units stuck in
// rework limbo and raises their one-time reminders.
type HoldReminderJob struct {
	handler commands.SendHoldRemindersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewHoldReminderJob creates the stale-hold sweep job.
func NewHoldReminderJob(handler commands.SendHoldRemindersCommandHandler, logger *slog.Logger) *HoldReminderJob {
	return &HoldReminderJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "hold_reminder_job"),
	}
}

// Start begins the hourly sweep.
func (j *HoldReminderJob) Start() error {
	_, err := j.cron.AddFunc(holdReminderSchedule, func() {
		ctx := context.Background()
		cmd := commands.NewSendHoldRemindersCommand()

		count, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Hold reminder sweep failed", "error", err)
			return
		}
		if count > 0 {
			j.logger.InfoContext(ctx, "Hold reminders sent", "count", count)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Hold reminder job started (running hourly)")
	return nil
}

// Stop stops the sweep.
func (j *HoldReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Hold reminder job stopped")
}
