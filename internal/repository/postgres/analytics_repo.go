package postgres

import (
	"context"
	"time"

	"go-jobmarket-backend/internal/domain"
)

type analyticsRepo struct {
	db DBTX
}

// CountByDate buckets by calendar date in the session time zone. since is
// compared as a calendar date too, so the caller's zone never shifts the
// lower bound onto the previous day.
func (r *analyticsRepo) CountByDate(ctx context.Context, since time.Time, categoryID *int64) ([]domain.DateCount, error) {
	query := `
		SELECT a.created_at::date AS day, COUNT(*)
		FROM applications a
		JOIN vacancies v ON v.id = a.vacancy_id
		WHERE a.created_at::date >= $1::date
		AND ($2::bigint IS NULL OR v.category_id = $2)
		GROUP BY day
		ORDER BY day ASC`

	rows, err := r.db.Query(ctx, query, since.Format(time.DateOnly), categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := []domain.DateCount{}
	for rows.Next() {
		var dc domain.DateCount
		if err := rows.Scan(&dc.Date, &dc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, dc)
	}
	return counts, rows.Err()
}
