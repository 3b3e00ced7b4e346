package commands

import (
	"context"
	"log/slog"

	"tracking/internal/core/ports"
)

// publishNotifications hands notifications to the sink after the
// triggering transaction has committed. Failures are logged and swallowed:
// notification delivery is best-effort and must never surface as a command
// failure.
func publishNotifications(
	ctx context.Context,
	publisher ports.NotificationPublisher,
	logger *slog.Logger,
	notifications []ports.Notification,
) {
	for _, n := range notifications {
		if err := publisher.Publish(ctx, n); err != nil {
			logger.WarnContext(ctx, "Notification delivery failed",
				"title", n.Title, "correlation_id", n.CorrelationID, "error", err)
		}
	}
}
