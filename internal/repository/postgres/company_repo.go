package postgres

import (
	"context"

	"go-jobmarket-backend/internal/domain"
)

const reviewsUniqueKey = "company_reviews_user_company_key"

type companyRepo struct {
	db DBTX
}

func (r *companyRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM companies WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *companyRepo) AddMember(ctx context.Context, companyID, userID int64) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO company_members (company_id, user_id) VALUES ($1, $2)
		ON CONFLICT DO NOTHING`, companyID, userID)
	return err
}

func (r *companyRepo) ListMembers(ctx context.Context, companyID int64) ([]domain.CompanyMember, error) {
	query := `
		SELECT m.company_id, m.user_id, u.email, m.joined_at
		FROM company_members m
		JOIN users u ON u.id = m.user_id
		WHERE m.company_id = $1
		ORDER BY m.joined_at`

	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []domain.CompanyMember{}
	for rows.Next() {
		var m domain.CompanyMember
		if err := rows.Scan(&m.CompanyID, &m.UserID, &m.Email, &m.JoinedAt); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *companyRepo) HRCompanyIDs(ctx context.Context, userID int64) ([]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT company_id FROM company_hrs WHERE user_id = $1 ORDER BY company_id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *companyRepo) CreateReview(ctx context.Context, rv *domain.CompanyReview) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO company_reviews (company_id, user_id, comment) VALUES ($1, $2, $3)
		RETURNING id, created_at`, rv.CompanyID, rv.UserID, rv.Comment).Scan(&rv.ID, &rv.CreatedAt)
	if isUniqueViolation(err, reviewsUniqueKey) {
		return domain.ErrDuplicateReview
	}
	return err
}

func (r *companyRepo) ListReviews(ctx context.Context, companyID int64) ([]domain.CompanyReview, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, company_id, user_id, comment, created_at
		FROM company_reviews WHERE company_id = $1
		ORDER BY created_at DESC`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []domain.CompanyReview{}
	for rows.Next() {
		var rv domain.CompanyReview
		if err := rows.Scan(&rv.ID, &rv.CompanyID, &rv.UserID, &rv.Comment, &rv.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}
