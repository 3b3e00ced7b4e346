// Package natsnotifier publishes notifications to a NATS subject. It is
// the outbound adapter behind ports.NotificationPublisher: command handlers
// hand it messages after their transaction commits and never wait on
// delivery guarantees.
package natsnotifier

import (
	"context"
	"encoding/json"
	"fmt"

	"tracking/internal/core/ports"

	"github.com/nats-io/nats.go"
)

// DefaultSubject is the subject notifications are published to unless
// overridden.
const DefaultSubject = "tracking.notifications"

// notificationMessage is the JSON wire shape of one notification.
type notificationMessage struct {
	Title         string `json:"title"`
	Message       string `json:"message"`
	Severity      string `json:"severity"`
	Source        string `json:"source"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// NATSPublisher implements ports.NotificationPublisher over a NATS
// connection.
type NATSPublisher struct {
	conn    *nats.Conn
	subject string
}

// NewNATSPublisher connects to the NATS server at url and returns a
// publisher for the given subject. An empty subject falls back to
// DefaultSubject.
func NewNATSPublisher(url, subject string) (*NATSPublisher, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	if subject == "" {
		subject = DefaultSubject
	}
	return &NATSPublisher{conn: conn, subject: subject}, nil
}

// Publish encodes the notification as JSON and publishes it. Delivery is
// fire-and-forget; callers treat errors as log-only.
func (p *NATSPublisher) Publish(_ context.Context, notification ports.Notification) error {
	payload, err := json.Marshal(notificationMessage{
		Title:         notification.Title,
		Message:       notification.Message,
		Severity:      string(notification.Severity),
		Source:        notification.Source,
		CorrelationID: notification.CorrelationID,
	})
	if err != nil {
		return err
	}
	return p.conn.Publish(p.subject, payload)
}

// Close drains the underlying connection.
func (p *NATSPublisher) Close() error {
	p.conn.Close()
	return nil
}
