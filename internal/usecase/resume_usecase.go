package usecase

import (
	"context"
	"errors"
	"fmt"

	"go-jobmarket-backend/internal/domain"

	"github.com/go-playground/validator/v10"
)

type resumeUsecase struct {
	store    domain.Store
	tx       domain.TxManager
	validate *validator.Validate
	limit    int
}

func NewResumeUsecase(store domain.Store, tx domain.TxManager, validate *validator.Validate, limit int) domain.ResumeUsecase {
	if limit <= 0 {
		limit = domain.DefaultResumeLimit
	}
	return &resumeUsecase{
		store:    store,
		tx:       tx,
		validate: validate,
		limit:    limit,
	}
}

// Create enforces the per-user cap. The count and insert share a transaction
// but are not serialised against a concurrent create, so the cap is soft.
func (uc *resumeUsecase) Create(ctx context.Context, p domain.Principal, r *domain.Resume) error {
	if p.Role != domain.RoleUser {
		return denied("Only job seekers can create resumes")
	}
	r.UserID = p.ID
	if err := uc.validate.Struct(r); err != nil {
		return validationFailed(err)
	}

	err := uc.tx.WithinTx(ctx, func(ctx context.Context, s domain.Store) error {
		count, err := s.Resumes().CountByUser(ctx, p.ID)
		if err != nil {
			return err
		}
		if count >= int64(uc.limit) {
			return fmt.Errorf("%w: at most %d resumes per user", domain.ErrResumeLimit, uc.limit)
		}
		if r.CategoryID != nil {
			exists, err := s.Vacancies().CategoryExists(ctx, *r.CategoryID)
			if err != nil {
				return err
			}
			if !exists {
				return invalid("Unknown job category")
			}
		}
		return s.Resumes().Create(ctx, r)
	})
	return mapError(err)
}

func (uc *resumeUsecase) List(ctx context.Context, p domain.Principal) ([]domain.Resume, error) {
	resumes, err := uc.store.Resumes().ListByUser(ctx, p.ID)
	return resumes, mapError(err)
}

func (uc *resumeUsecase) Delete(ctx context.Context, p domain.Principal, id int64) error {
	err := uc.tx.WithinTx(ctx, func(ctx context.Context, s domain.Store) error {
		r, err := s.Resumes().GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return notFound("Resume not found")
			}
			return err
		}
		if r.UserID != p.ID {
			return denied("Resume belongs to another user")
		}
		return s.Resumes().Delete(ctx, id)
	})
	return mapError(err)
}
