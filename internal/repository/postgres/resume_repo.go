package postgres

import (
	"context"

	"go-jobmarket-backend/internal/domain"
)

type resumeRepo struct {
	db DBTX
}

func (r *resumeRepo) Create(ctx context.Context, rs *domain.Resume) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO resumes (user_id, category_id, position, content)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		rs.UserID, rs.CategoryID, rs.Position, rs.Content,
	).Scan(&rs.ID, &rs.CreatedAt)
}

func (r *resumeRepo) GetByID(ctx context.Context, id int64) (*domain.Resume, error) {
	var rs domain.Resume
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, category_id, position, content, created_at
		FROM resumes WHERE id = $1`, id).Scan(
		&rs.ID, &rs.UserID, &rs.CategoryID, &rs.Position, &rs.Content, &rs.CreatedAt,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return &rs, nil
}

func (r *resumeRepo) CountByUser(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM resumes WHERE user_id = $1`, userID).Scan(&count)
	return count, err
}

func (r *resumeRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Resume, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, category_id, position, content, created_at
		FROM resumes WHERE user_id = $1
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	resumes := []domain.Resume{}
	for rows.Next() {
		var rs domain.Resume
		if err := rows.Scan(&rs.ID, &rs.UserID, &rs.CategoryID, &rs.Position, &rs.Content, &rs.CreatedAt); err != nil {
			return nil, err
		}
		resumes = append(resumes, rs)
	}
	return resumes, rows.Err()
}

func (r *resumeRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
