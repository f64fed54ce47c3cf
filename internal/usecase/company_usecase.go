package usecase

import (
	"context"

	"go-jobmarket-backend/internal/domain"

	"github.com/go-playground/validator/v10"
)

type companyUsecase struct {
	store    domain.Store
	validate *validator.Validate
}

func NewCompanyUsecase(store domain.Store, validate *validator.Validate) domain.CompanyUsecase {
	return &companyUsecase{store: store, validate: validate}
}

func (uc *companyUsecase) ensureCompany(ctx context.Context, companyID int64) error {
	exists, err := uc.store.Companies().Exists(ctx, companyID)
	if err != nil {
		return mapError(err)
	}
	if !exists {
		return notFound("Company not found")
	}
	return nil
}

// Members lists the applicant roster of a company for its HR staff.
func (uc *companyUsecase) Members(ctx context.Context, p domain.Principal, companyID int64) ([]domain.CompanyMember, error) {
	if !domain.CanManageVacancy(p, companyID) {
		return nil, denied("You are not HR of this company")
	}
	if err := uc.ensureCompany(ctx, companyID); err != nil {
		return nil, err
	}
	members, err := uc.store.Companies().ListMembers(ctx, companyID)
	return members, mapError(err)
}

func (uc *companyUsecase) AddReview(ctx context.Context, p domain.Principal, companyID int64, comment string) (*domain.CompanyReview, error) {
	if !domain.CanReviewCompany(p) {
		return nil, denied("Only job seekers can review companies")
	}
	review := &domain.CompanyReview{
		CompanyID: companyID,
		UserID:    p.ID,
		Comment:   comment,
	}
	if err := uc.validate.Struct(review); err != nil {
		return nil, validationFailed(err)
	}
	if err := uc.ensureCompany(ctx, companyID); err != nil {
		return nil, err
	}
	if err := uc.store.Companies().CreateReview(ctx, review); err != nil {
		return nil, mapError(err)
	}
	return review, nil
}

func (uc *companyUsecase) Reviews(ctx context.Context, companyID int64) ([]domain.CompanyReview, error) {
	if err := uc.ensureCompany(ctx, companyID); err != nil {
		return nil, err
	}
	reviews, err := uc.store.Companies().ListReviews(ctx, companyID)
	return reviews, mapError(err)
}
