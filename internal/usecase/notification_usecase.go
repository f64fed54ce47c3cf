package usecase

import (
	"context"
	"errors"

	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/pkg/logger"
	"go-jobmarket-backend/pkg/metrics"
	"go-jobmarket-backend/pkg/notify"

	"github.com/google/uuid"
)

// NotificationService is both the fan-out consumer of application events and
// the read side used by the notifications endpoints.
type NotificationService struct {
	store     domain.Store
	tx        domain.TxManager
	publisher notify.Publisher
}

var (
	_ domain.NotificationFanout  = (*NotificationService)(nil)
	_ domain.NotificationUsecase = (*NotificationService)(nil)
)

func NewNotificationService(store domain.Store, tx domain.TxManager, publisher notify.Publisher) *NotificationService {
	if publisher == nil {
		publisher = notify.NoopPublisher{}
	}
	return &NotificationService{
		store:     store,
		tx:        tx,
		publisher: publisher,
	}
}

// OnApplicationEvent writes exactly one notification row on the caller's
// transaction. The row always points at the applicant; HR recipients are
// resolved at read time through the vacancy's company.
func (s *NotificationService) OnApplicationEvent(ctx context.Context, st domain.Store, ev domain.ApplicationEvent) (*domain.Notification, error) {
	n := &domain.Notification{
		UserID:        ev.ApplicantID,
		ApplicationID: ev.Application.ID,
		Status:        ev.Status,
		CompanyID:     ev.CompanyID,
	}
	if err := st.Notifications().Create(ctx, n); err != nil {
		return nil, err
	}
	metrics.NotificationsCreated.WithLabelValues(n.Status.String()).Inc()
	return n, nil
}

// Deliver hands a committed notification to the push channel. Failures are
// logged and counted only; the row is already durable and listable.
func (s *NotificationService) Deliver(ctx context.Context, n *domain.Notification) {
	if n == nil {
		return
	}
	msg := notify.Message{
		ID:             uuid.NewString(),
		NotificationID: n.ID,
		ApplicationID:  n.ApplicationID,
		RecipientID:    n.UserID,
		CompanyID:      n.CompanyID,
		Status:         n.Status.String(),
		CreatedAt:      n.CreatedAt,
	}
	if err := s.publisher.Publish(ctx, msg); err != nil {
		metrics.NotificationDeliveryFailures.Inc()
		logger.Log.Warn("Notification delivery failed",
			"notification_id", n.ID,
			"application_id", n.ApplicationID,
			"error", err,
		)
	}
}

// ListUnread is role scoped: applicants see decisions on their applications,
// HR sees new submissions to their companies, admins see everything unread.
func (s *NotificationService) ListUnread(ctx context.Context, p domain.Principal) ([]domain.Notification, error) {
	var (
		items []domain.Notification
		err   error
	)
	switch p.Role {
	case domain.RoleAdmin:
		items, err = s.store.Notifications().ListUnread(ctx)
	case domain.RoleHR:
		items, err = s.store.Notifications().ListUnreadByHR(ctx, p.ID,
			[]domain.ApplicationStatus{domain.StatusSubmitted})
	default:
		items, err = s.store.Notifications().ListUnreadByUser(ctx, p.ID,
			[]domain.ApplicationStatus{domain.StatusAccepted, domain.StatusRejected})
	}
	return items, mapError(err)
}

// MarkSeen is idempotent for the recipient.
func (s *NotificationService) MarkSeen(ctx context.Context, p domain.Principal, id int64) (*domain.Notification, error) {
	var n *domain.Notification
	err := s.tx.WithinTx(ctx, func(ctx context.Context, st domain.Store) error {
		var err error
		n, err = st.Notifications().GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return notFound("Notification not found")
			}
			return err
		}
		if !domain.CanSeeNotification(p, n) {
			return denied("Notification belongs to another user")
		}
		if n.IsSeen {
			return nil
		}
		if err := st.Notifications().MarkSeen(ctx, n.ID); err != nil {
			return err
		}
		n.IsSeen = true
		return nil
	})
	if err != nil {
		return nil, mapError(err)
	}
	return n, nil
}
