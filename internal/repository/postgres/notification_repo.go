package postgres

import (
	"context"

	"go-jobmarket-backend/internal/domain"

	"github.com/jackc/pgx/v5"
)

const notificationColumns = `n.id, n.user_id, n.application_id, n.status_id, n.is_seen, n.created_at, v.company_id`

const notificationJoins = `
	FROM job_notifications n
	JOIN applications a ON a.id = n.application_id
	JOIN vacancies v ON v.id = a.vacancy_id`

type notificationRepo struct {
	db DBTX
}

func scanNotification(row pgx.Row) (*domain.Notification, error) {
	var n domain.Notification
	if err := row.Scan(&n.ID, &n.UserID, &n.ApplicationID, &n.Status, &n.IsSeen, &n.CreatedAt, &n.CompanyID); err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *notificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	query := `
		INSERT INTO job_notifications (user_id, application_id, status_id, is_seen)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	return r.db.QueryRow(ctx, query, n.UserID, n.ApplicationID, int64(n.Status), n.IsSeen).
		Scan(&n.ID, &n.CreatedAt)
}

func (r *notificationRepo) GetByID(ctx context.Context, id int64) (*domain.Notification, error) {
	n, err := scanNotification(r.db.QueryRow(ctx, `SELECT `+notificationColumns+notificationJoins+` WHERE n.id = $1`, id))
	if err != nil {
		return nil, notFound(err)
	}
	return n, nil
}

func (r *notificationRepo) MarkSeen(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `UPDATE job_notifications SET is_seen = true WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *notificationRepo) list(ctx context.Context, where string, args ...any) ([]domain.Notification, error) {
	rows, err := r.db.Query(ctx, `SELECT `+notificationColumns+notificationJoins+` `+where+` ORDER BY n.created_at DESC, n.id DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := []domain.Notification{}
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, *n)
	}
	return notifications, rows.Err()
}

func statusIDs(statuses []domain.ApplicationStatus) []int64 {
	ids := make([]int64, len(statuses))
	for i, s := range statuses {
		ids[i] = int64(s)
	}
	return ids
}

func (r *notificationRepo) ListUnreadByUser(ctx context.Context, userID int64, statuses []domain.ApplicationStatus) ([]domain.Notification, error) {
	return r.list(ctx, `WHERE NOT n.is_seen AND n.user_id = $1 AND n.status_id = ANY($2)`, userID, statusIDs(statuses))
}

// ListUnreadByHR resolves recipients through the HR roster of the vacancy's company.
func (r *notificationRepo) ListUnreadByHR(ctx context.Context, hrUserID int64, statuses []domain.ApplicationStatus) ([]domain.Notification, error) {
	return r.list(ctx, `
		WHERE NOT n.is_seen AND n.status_id = ANY($2)
		AND EXISTS (SELECT 1 FROM company_hrs h WHERE h.company_id = v.company_id AND h.user_id = $1)`,
		hrUserID, statusIDs(statuses))
}

func (r *notificationRepo) ListUnread(ctx context.Context) ([]domain.Notification, error) {
	return r.list(ctx, `WHERE NOT n.is_seen`)
}
