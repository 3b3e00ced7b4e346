package ports

import "context"

// Severity grades a notification for the receiving messaging system.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notification is the message handed to the external messaging
// collaborator. CorrelationID ties the notification back to the lot or
// batch that triggered it.
type Notification struct {
	Title         string
	Message       string
	Severity      Severity
	Source        string
	CorrelationID string
}

// NotificationPublisher is the outbound port to the notification sink.
//
// Publishing is strictly best-effort and fire-and-forget: implementations
// log failures and command handlers only publish after their transaction
// has committed, so a failed notification never rolls back or fails the
// state transition that triggered it.
type NotificationPublisher interface {
	Publish(ctx context.Context, notification Notification) error
}
