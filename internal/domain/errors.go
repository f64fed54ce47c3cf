package domain

import "errors"

// Domain errors. Usecases wrap them in apperror.AppError with the matching
// HTTP status, so both errors.Is and the HTTP layer see the same cause.
var (
	ErrValidation           = errors.New("validation failed")
	ErrNotFound             = errors.New("resource not found")
	ErrDuplicateApplication = errors.New("application already exists")
	ErrDuplicateFavorite    = errors.New("favorite already exists")
	ErrDuplicateReview      = errors.New("review already exists")
	ErrPermissionDenied     = errors.New("permission denied")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrResumeLimit          = errors.New("resume limit reached")
)
