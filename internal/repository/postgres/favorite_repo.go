package postgres

import (
	"context"
	"errors"

	"go-jobmarket-backend/internal/domain"

	"github.com/jackc/pgx/v5"
)

const favoritesUniqueKey = "favorites_user_vacancy_key"

type favoriteRepo struct {
	db DBTX
}

func (r *favoriteRepo) Add(ctx context.Context, userID, vacancyID int64) (*domain.Favorite, bool, error) {
	fav := &domain.Favorite{UserID: userID, VacancyID: vacancyID}

	err := r.db.QueryRow(ctx, `
		INSERT INTO favorites (user_id, vacancy_id) VALUES ($1, $2)
		ON CONFLICT ON CONSTRAINT `+favoritesUniqueKey+` DO NOTHING
		RETURNING id, created_at`, userID, vacancyID).Scan(&fav.ID, &fav.CreatedAt)
	if err == nil {
		return fav, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, err
	}

	// Row already present
	err = r.db.QueryRow(ctx, `
		SELECT id, created_at FROM favorites WHERE user_id = $1 AND vacancy_id = $2`,
		userID, vacancyID).Scan(&fav.ID, &fav.CreatedAt)
	if err != nil {
		return nil, false, notFound(err)
	}
	return fav, false, nil
}

func (r *favoriteRepo) Insert(ctx context.Context, fav *domain.Favorite) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO favorites (user_id, vacancy_id) VALUES ($1, $2)
		RETURNING id, created_at`, fav.UserID, fav.VacancyID).Scan(&fav.ID, &fav.CreatedAt)
	if isUniqueViolation(err, favoritesUniqueKey) {
		return domain.ErrDuplicateFavorite
	}
	return err
}

func (r *favoriteRepo) Remove(ctx context.Context, userID, vacancyID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM favorites WHERE user_id = $1 AND vacancy_id = $2`, userID, vacancyID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *favoriteRepo) CountByVacancy(ctx context.Context, vacancyID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM favorites WHERE vacancy_id = $1`, vacancyID).Scan(&count)
	return count, err
}

func (r *favoriteRepo) ListVacanciesByUser(ctx context.Context, userID int64) ([]domain.Vacancy, error) {
	query := `SELECT` + vacancyColumns + `
		FROM favorites f
		JOIN vacancies v ON v.id = f.vacancy_id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vacancies := []domain.Vacancy{}
	for rows.Next() {
		var v domain.Vacancy
		if err := rows.Scan(vacancyScanTargets(&v)...); err != nil {
			return nil, err
		}
		vacancies = append(vacancies, v)
	}
	return vacancies, rows.Err()
}
