package usecase

import (
	"errors"
	"net/http"
	"strings"

	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/pkg/apperror"
	"go-jobmarket-backend/pkg/validation"
)

var sentinelStatus = []struct {
	err  error
	code int
}{
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrResumeLimit, http.StatusBadRequest},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrPermissionDenied, http.StatusForbidden},
	{domain.ErrDuplicateApplication, http.StatusConflict},
	{domain.ErrDuplicateFavorite, http.StatusConflict},
	{domain.ErrDuplicateReview, http.StatusConflict},
	{domain.ErrInvalidTransition, http.StatusConflict},
}

// mapError turns a domain or repository error into an AppError. AppErrors pass
// through untouched; anything unrecognised becomes a 500.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	for _, s := range sentinelStatus {
		if errors.Is(err, s.err) {
			return apperror.Wrap(s.code, err.Error(), err)
		}
	}
	return apperror.Internal(err)
}

func denied(msg string) error {
	return apperror.Wrap(http.StatusForbidden, msg, domain.ErrPermissionDenied)
}

func invalid(msg string) error {
	return apperror.Wrap(http.StatusBadRequest, msg, domain.ErrValidation)
}

func notFound(msg string) error {
	return apperror.Wrap(http.StatusNotFound, msg, domain.ErrNotFound)
}

// validationFailed renders validator errors as one client-facing message.
func validationFailed(err error) error {
	return invalid("Validation failed: " + strings.Join(validation.FormatValidationErrors(err), "; "))
}
