package usecase

import (
	"context"
	"errors"

	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/pkg/apperror"
)

type authUsecase struct {
	store domain.Store
}

func NewAuthUsecase(store domain.Store) domain.AuthUsecase {
	return &authUsecase{store: store}
}

// ResolvePrincipal turns a verified token subject into a Principal. HR users
// carry the companies they are bound to; a user missing from the database is
// treated as unauthenticated.
func (u *authUsecase) ResolvePrincipal(ctx context.Context, userID int64) (*domain.Principal, error) {
	user, err := u.store.Users().GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("User not found")
		}
		return nil, mapError(err)
	}

	role, err := domain.ParseRole(string(user.Role))
	if err != nil {
		return nil, apperror.Unauthorized("User has an unknown role")
	}

	p := &domain.Principal{ID: user.ID, Role: role}
	if role == domain.RoleHR {
		companyIDs, err := u.store.Companies().HRCompanyIDs(ctx, user.ID)
		if err != nil {
			return nil, mapError(err)
		}
		p.CompanyIDs = companyIDs
	}
	return p, nil
}
