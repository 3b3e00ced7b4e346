package natsnotifier

import (
	"context"
	"log/slog"

	"tracking/internal/core/ports"
)

// LogPublisher is the fallback ports.NotificationPublisher used when no
// NATS server is configured: notifications land in the application log
// instead of a messaging subject.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher creates a publisher that writes notifications to the
// given logger.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.With("component", "notifications")}
}

// Publish logs the notification at the level matching its severity.
func (p *LogPublisher) Publish(ctx context.Context, notification ports.Notification) error {
	attrs := []any{
		"title", notification.Title,
		"severity", string(notification.Severity),
		"source", notification.Source,
		"correlation_id", notification.CorrelationID,
	}

	switch notification.Severity {
	case ports.SeverityError:
		p.logger.ErrorContext(ctx, notification.Message, attrs...)
	case ports.SeverityWarning:
		p.logger.WarnContext(ctx, notification.Message, attrs...)
	default:
		p.logger.InfoContext(ctx, notification.Message, attrs...)
	}
	return nil
}
