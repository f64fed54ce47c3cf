package usecase

import (
	"context"
	"errors"

	"go-jobmarket-backend/internal/domain"
)

type favoriteUsecase struct {
	store domain.Store
}

func NewFavoriteUsecase(store domain.Store) domain.FavoriteUsecase {
	return &favoriteUsecase{store: store}
}

func (uc *favoriteUsecase) ensureVacancy(ctx context.Context, vacancyID int64) error {
	if _, err := uc.store.Vacancies().GetByID(ctx, vacancyID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound("Vacancy not found")
		}
		return mapError(err)
	}
	return nil
}

// Add returns the existing favorite when the pair is already stored.
func (uc *favoriteUsecase) Add(ctx context.Context, p domain.Principal, vacancyID int64) (*domain.Favorite, error) {
	if err := uc.ensureVacancy(ctx, vacancyID); err != nil {
		return nil, err
	}
	fav, _, err := uc.store.Favorites().Add(ctx, p.ID, vacancyID)
	if err != nil {
		return nil, mapError(err)
	}
	return fav, nil
}

func (uc *favoriteUsecase) AddStrict(ctx context.Context, p domain.Principal, vacancyID int64) (*domain.Favorite, error) {
	if err := uc.ensureVacancy(ctx, vacancyID); err != nil {
		return nil, err
	}
	fav := &domain.Favorite{UserID: p.ID, VacancyID: vacancyID}
	if err := uc.store.Favorites().Insert(ctx, fav); err != nil {
		return nil, mapError(err)
	}
	return fav, nil
}

func (uc *favoriteUsecase) Remove(ctx context.Context, p domain.Principal, vacancyID int64) error {
	if err := uc.ensureVacancy(ctx, vacancyID); err != nil {
		return err
	}
	if err := uc.store.Favorites().Remove(ctx, p.ID, vacancyID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound("Vacancy is not in favorites")
		}
		return mapError(err)
	}
	return nil
}

func (uc *favoriteUsecase) CountFor(ctx context.Context, vacancyID int64) (int64, error) {
	if err := uc.ensureVacancy(ctx, vacancyID); err != nil {
		return 0, err
	}
	count, err := uc.store.Favorites().CountByVacancy(ctx, vacancyID)
	return count, mapError(err)
}

func (uc *favoriteUsecase) ListFor(ctx context.Context, p domain.Principal) ([]domain.Vacancy, error) {
	vacancies, err := uc.store.Favorites().ListVacanciesByUser(ctx, p.ID)
	return vacancies, mapError(err)
}
