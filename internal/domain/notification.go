package domain

import (
	"context"
	"time"
)

// Notification is one fan-out row. UserID is always the applicant; HR
// recipients are resolved through the company of the application's vacancy.
type Notification struct {
	ID            int64             `json:"id"`
	UserID        int64             `json:"user_id"`
	ApplicationID int64             `json:"application_id"`
	Status        ApplicationStatus `json:"status"`
	IsSeen        bool              `json:"is_seen"`
	CreatedAt     time.Time         `json:"created_at"`

	CompanyID int64 `json:"company_id,omitempty"`
}

type NotificationRepository interface {
	Create(ctx context.Context, n *Notification) error
	GetByID(ctx context.Context, id int64) (*Notification, error)
	MarkSeen(ctx context.Context, id int64) error
	ListUnreadByUser(ctx context.Context, userID int64, statuses []ApplicationStatus) ([]Notification, error)
	ListUnreadByHR(ctx context.Context, hrUserID int64, statuses []ApplicationStatus) ([]Notification, error)
	ListUnread(ctx context.Context) ([]Notification, error)
}

// NotificationFanout consumes state-machine events within the caller's unit of
// work and delivers the resulting rows once that unit has committed.
type NotificationFanout interface {
	OnApplicationEvent(ctx context.Context, s Store, ev ApplicationEvent) (*Notification, error)
	Deliver(ctx context.Context, n *Notification)
}

type NotificationUsecase interface {
	ListUnread(ctx context.Context, p Principal) ([]Notification, error)
	MarkSeen(ctx context.Context, p Principal, id int64) (*Notification, error)
}
