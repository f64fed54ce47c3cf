// Package notify hands committed job notifications to the external delivery
// channel (websocket gateway, push service). Rows are already persisted when a
// message is published; publishers never participate in the write transaction.
package notify

import (
	"context"
	"time"
)

// Message is the wire payload for one notification.
type Message struct {
	ID             string    `json:"id"`
	NotificationID int64     `json:"notification_id"`
	ApplicationID  int64     `json:"application_id"`
	RecipientID    int64     `json:"recipient_id"`
	CompanyID      int64     `json:"company_id"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// NoopPublisher drops every message. Used when no delivery backend is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, Message) error { return nil }

func (NoopPublisher) Close() error { return nil }
