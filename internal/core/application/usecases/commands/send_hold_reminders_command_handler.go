package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"tracking/internal/core/domain/model/unit"
	"tracking/internal/core/ports"
)

// DefaultStaleHoldThreshold is how long a temporarily rejected unit may sit
// in the hold area before the sweep raises a reminder.
const DefaultStaleHoldThreshold = 7 * 24 * time.Hour

// SendHoldRemindersCommandHandler sweeps the hold area and raises a
// one-time reminder for every unit that was temporarily rejected and has
// not moved since the staleness threshold passed.
//
// The reminder flag is persisted with a conditional write before the
// notification goes out: sweeps racing on the same unit all pass the
// in-memory check, but only the one whose write claims the row notifies,
// so a unit is reminded about at most once no matter how often or how
// concurrently the sweep runs.
type SendHoldRemindersCommandHandler struct {
	uowFactory UnitUoWFactory
	publisher  ports.NotificationPublisher
	clock      ports.Clock
	staleAfter time.Duration
	logger     *slog.Logger
}

// NewSendHoldRemindersCommandHandler creates a handler for stale-hold
// sweeps. A non-positive staleAfter falls back to DefaultStaleHoldThreshold.
func NewSendHoldRemindersCommandHandler(
	uowFactory UnitUoWFactory,
	publisher ports.NotificationPublisher,
	clock ports.Clock,
	staleAfter time.Duration,
	logger *slog.Logger,
) SendHoldRemindersCommandHandler {
	if staleAfter <= 0 {
		staleAfter = DefaultStaleHoldThreshold
	}
	return SendHoldRemindersCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      clock,
		staleAfter: staleAfter,
		logger:     logger.With("component", "send_hold_reminders_handler"),
	}
}

// Handle runs one sweep and returns the number of reminders raised.
func (h *SendHoldRemindersCommandHandler) Handle(
	ctx context.Context,
	cmd SendHoldRemindersCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	unitRepo := uow.UnitRepository()
	held, err := unitRepo.GetHeld(ctx)
	if err != nil {
		return 0, err
	}

	now := h.clock.Now()
	notifications := make([]ports.Notification, 0, len(held))

	for _, u := range held {
		if !h.isStale(u, now) {
			continue
		}

		heldSince := u.LatestInspection().At()
		if !u.MarkReminderSent(now) {
			continue
		}

		claimed, claimErr := unitRepo.MarkReminderSent(ctx, u)
		if claimErr != nil {
			return 0, claimErr
		}
		if !claimed {
			continue
		}

		lot := u.LotNumber().String()
		notifications = append(notifications, ports.Notification{
			Title: "Unit stale in hold area",
			Message: fmt.Sprintf("unit %s has been held at %s since %s awaiting rework",
				lot, u.CurrentStation(), heldSince.Format(time.RFC3339)),
			Severity:      ports.SeverityInfo,
			Source:        "production-tracking",
			CorrelationID: lot,
		})
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	publishNotifications(ctx, h.publisher, h.logger, notifications)

	return len(notifications), nil
}

// isStale reports whether the unit qualifies for a reminder: held after a
// temporary reject, untouched past the threshold.
func (h *SendHoldRemindersCommandHandler) isStale(u *unit.Unit, now time.Time) bool {
	if u.CurrentStep() != unit.HoldArea {
		return false
	}

	latest := u.LatestInspection()
	if latest == nil || latest.Outcome() != unit.OutcomeTemporaryReject {
		return false
	}

	return now.Sub(latest.At()) >= h.staleAfter
}
