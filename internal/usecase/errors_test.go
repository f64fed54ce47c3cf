package usecase

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapError(t *testing.T) {
	cases := []struct {
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
		{fmt.Errorf("%w: accepted -> rejected", domain.ErrInvalidTransition), http.StatusConflict},
		{errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			mapped := mapError(tc.err)
			var appErr *apperror.AppError
			require.ErrorAs(t, mapped, &appErr)
			assert.Equal(t, tc.code, appErr.Code)
			assert.ErrorIs(t, mapped, tc.err)
		})
	}

	assert.NoError(t, mapError(nil))

	original := apperror.Unauthorized("nope")
	assert.Same(t, original, mapError(original))
}
