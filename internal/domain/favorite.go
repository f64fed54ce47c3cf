package domain

import (
	"context"
	"time"
)

type Favorite struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	VacancyID int64     `json:"vacancy_id"`
	CreatedAt time.Time `json:"created_at"`
}

type FavoriteRepository interface {
	// Add is idempotent: an existing (user, vacancy) row is returned with created=false.
	Add(ctx context.Context, userID, vacancyID int64) (fav *Favorite, created bool, err error)
	// Insert fails with ErrDuplicateFavorite when the pair already exists.
	Insert(ctx context.Context, fav *Favorite) error
	Remove(ctx context.Context, userID, vacancyID int64) error
	CountByVacancy(ctx context.Context, vacancyID int64) (int64, error)
	ListVacanciesByUser(ctx context.Context, userID int64) ([]Vacancy, error)
}

type FavoriteUsecase interface {
	Add(ctx context.Context, p Principal, vacancyID int64) (*Favorite, error)
	AddStrict(ctx context.Context, p Principal, vacancyID int64) (*Favorite, error)
	Remove(ctx context.Context, p Principal, vacancyID int64) error
	CountFor(ctx context.Context, vacancyID int64) (int64, error)
	ListFor(ctx context.Context, p Principal) ([]Vacancy, error)
}
