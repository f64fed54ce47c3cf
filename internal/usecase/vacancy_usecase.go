package usecase

import (
	"context"
	"errors"

	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type vacancyUsecase struct {
	store    domain.Store
	tx       domain.TxManager
	validate *validator.Validate
}

func NewVacancyUsecase(store domain.Store, tx domain.TxManager, validate *validator.Validate) domain.VacancyUsecase {
	return &vacancyUsecase{
		store:    store,
		tx:       tx,
		validate: validate,
	}
}

func (uc *vacancyUsecase) load(ctx context.Context, s domain.Store, id int64) (*domain.Vacancy, error) {
	v, err := s.Vacancies().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, notFound("Vacancy not found")
		}
		return nil, err
	}
	return v, nil
}

func (uc *vacancyUsecase) checkCategory(ctx context.Context, s domain.Store, categoryID *int64) error {
	if categoryID == nil {
		return nil
	}
	exists, err := s.Vacancies().CategoryExists(ctx, *categoryID)
	if err != nil {
		return err
	}
	if !exists {
		return invalid("Unknown job category")
	}
	return nil
}

func (uc *vacancyUsecase) Create(ctx context.Context, p domain.Principal, v *domain.Vacancy) error {
	if !domain.CanManageVacancy(p, v.CompanyID) {
		return denied("You cannot post vacancies for this company")
	}
	if err := uc.validate.Struct(v); err != nil {
		return validationFailed(err)
	}

	err := uc.tx.WithinTx(ctx, func(ctx context.Context, s domain.Store) error {
		exists, err := s.Companies().Exists(ctx, v.CompanyID)
		if err != nil {
			return err
		}
		if !exists {
			return notFound("Company not found")
		}
		if err := uc.checkCategory(ctx, s, v.CategoryID); err != nil {
			return err
		}
		return s.Vacancies().Create(ctx, v)
	})
	if err != nil {
		return mapError(err)
	}

	logger.Log.Info("Vacancy created", "vacancy_id", v.ID, "company_id", v.CompanyID, "actor_id", p.ID)
	return nil
}

// Update keeps the owning company; activation has its own operation.
func (uc *vacancyUsecase) Update(ctx context.Context, p domain.Principal, v *domain.Vacancy) error {
	err := uc.tx.WithinTx(ctx, func(ctx context.Context, s domain.Store) error {
		existing, err := uc.load(ctx, s, v.ID)
		if err != nil {
			return err
		}
		if !domain.CanManageVacancy(p, existing.CompanyID) {
			return denied("Vacancy belongs to another company")
		}
		v.CompanyID = existing.CompanyID
		v.IsActivate = existing.IsActivate
		v.CreatedAt = existing.CreatedAt
		if err := uc.validate.Struct(v); err != nil {
			return validationFailed(err)
		}
		if err := uc.checkCategory(ctx, s, v.CategoryID); err != nil {
			return err
		}
		return s.Vacancies().Update(ctx, v)
	})
	return mapError(err)
}

func (uc *vacancyUsecase) Delete(ctx context.Context, p domain.Principal, id int64) error {
	err := uc.tx.WithinTx(ctx, func(ctx context.Context, s domain.Store) error {
		existing, err := uc.load(ctx, s, id)
		if err != nil {
			return err
		}
		if !domain.CanManageVacancy(p, existing.CompanyID) {
			return denied("Vacancy belongs to another company")
		}
		return s.Vacancies().Delete(ctx, id)
	})
	if err != nil {
		return mapError(err)
	}

	logger.Log.Info("Vacancy deleted", "vacancy_id", id, "actor_id", p.ID)
	return nil
}

func (uc *vacancyUsecase) SetActivation(ctx context.Context, p domain.Principal, id int64, active bool) error {
	err := uc.tx.WithinTx(ctx, func(ctx context.Context, s domain.Store) error {
		existing, err := uc.load(ctx, s, id)
		if err != nil {
			return err
		}
		if !domain.CanManageVacancy(p, existing.CompanyID) {
			return denied("Vacancy belongs to another company")
		}
		return s.Vacancies().SetActivation(ctx, id, active)
	})
	return mapError(err)
}

func (uc *vacancyUsecase) Detail(ctx context.Context, p *domain.Principal, id int64) (*domain.VacancyDetail, error) {
	var detail *domain.VacancyDetail
	err := uc.tx.WithinTx(ctx, func(ctx context.Context, s domain.Store) error {
		v, err := uc.load(ctx, s, id)
		if err != nil {
			return err
		}
		if p != nil {
			if err := s.Vacancies().AddLooker(ctx, id, p.ID); err != nil {
				return err
			}
		}
		counters, err := s.Vacancies().Counters(ctx, id)
		if err != nil {
			return err
		}
		detail = &domain.VacancyDetail{Vacancy: *v, VacancyCounters: *counters}
		return nil
	})
	if err != nil {
		return nil, mapError(err)
	}
	return detail, nil
}

func (uc *vacancyUsecase) MarkSeen(ctx context.Context, p domain.Principal, id int64) (*domain.VacancyDetail, error) {
	var detail *domain.VacancyDetail
	err := uc.tx.WithinTx(ctx, func(ctx context.Context, s domain.Store) error {
		v, err := uc.load(ctx, s, id)
		if err != nil {
			return err
		}
		if err := s.Vacancies().AddViewer(ctx, id, p.ID); err != nil {
			return err
		}
		counters, err := s.Vacancies().Counters(ctx, id)
		if err != nil {
			return err
		}
		detail = &domain.VacancyDetail{Vacancy: *v, VacancyCounters: *counters}
		return nil
	})
	if err != nil {
		return nil, mapError(err)
	}
	return detail, nil
}

// ListPublic lists active vacancies only. Applied/favorite filters need a
// viewer and are dropped for anonymous callers.
func (uc *vacancyUsecase) ListPublic(ctx context.Context, p *domain.Principal, f domain.VacancyFilter, page, pageSize int) ([]domain.VacancyDetail, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	if f.SalaryMin != nil && f.SalaryMax != nil && *f.SalaryMin > *f.SalaryMax {
		return nil, 0, invalid("salary_min cannot be greater than salary_max")
	}

	f.Limit = pageSize
	f.Offset = (page - 1) * pageSize
	if p != nil {
		f.ViewerID = p.ID
	} else {
		f.ViewerID = 0
		f.IsApplied = nil
		f.IsFavorite = nil
	}

	items, total, err := uc.store.Vacancies().ListPublic(ctx, f)
	if err != nil {
		return nil, 0, mapError(err)
	}
	return items, total, nil
}

func (uc *vacancyUsecase) Categories(ctx context.Context) ([]domain.Category, error) {
	categories, err := uc.store.Vacancies().ListCategories(ctx)
	return categories, mapError(err)
}
