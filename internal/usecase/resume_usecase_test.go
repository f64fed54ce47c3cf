package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/internal/usecase"
	"go-jobmarket-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestResumeLimit(t *testing.T) {
	ctx := context.Background()

	t.Run("Should create below the cap and force the owner", func(t *testing.T) {
		store := newMockStore()
		uc := usecase.NewResumeUsecase(store, &fakeTx{store: store}, validation.New(), 0)
		store.resumes.On("CountByUser", mock.Anything, applicant.ID).Return(int64(2), nil)
		store.resumes.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.Resume) bool {
			return r.UserID == applicant.ID
		})).Return(nil)

		r := &domain.Resume{UserID: stranger.ID}
		require.NoError(t, uc.Create(ctx, applicant, r))
		assert.Equal(t, applicant.ID, r.UserID)
	})

	t.Run("Should refuse at the default cap", func(t *testing.T) {
		store := newMockStore()
		uc := usecase.NewResumeUsecase(store, &fakeTx{store: store}, validation.New(), 0)
		store.resumes.On("CountByUser", mock.Anything, applicant.ID).Return(int64(domain.DefaultResumeLimit), nil)

		err := uc.Create(ctx, applicant, &domain.Resume{})
		assertAppError(t, err, http.StatusBadRequest, domain.ErrResumeLimit)
		store.resumes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should honour a configured cap", func(t *testing.T) {
		store := newMockStore()
		uc := usecase.NewResumeUsecase(store, &fakeTx{store: store}, validation.New(), 5)
		store.resumes.On("CountByUser", mock.Anything, applicant.ID).Return(int64(4), nil)
		store.resumes.On("Create", mock.Anything, mock.Anything).Return(nil)

		require.NoError(t, uc.Create(ctx, applicant, &domain.Resume{}))
	})

	t.Run("Should deny HR", func(t *testing.T) {
		store := newMockStore()
		uc := usecase.NewResumeUsecase(store, &fakeTx{store: store}, validation.New(), 0)

		err := uc.Create(ctx, hr, &domain.Resume{})
		assertAppError(t, err, http.StatusForbidden, domain.ErrPermissionDenied)
	})
}

func TestResumeDelete(t *testing.T) {
	ctx := context.Background()
	store := newMockStore()
	uc := usecase.NewResumeUsecase(store, &fakeTx{store: store}, validation.New(), 0)
	store.resumes.On("GetByID", mock.Anything, int64(5)).Return(&domain.Resume{ID: 5, UserID: applicant.ID}, nil)
	store.resumes.On("GetByID", mock.Anything, int64(6)).Return(nil, domain.ErrNotFound)
	store.resumes.On("Delete", mock.Anything, int64(5)).Return(nil)

	err := uc.Delete(ctx, stranger, 5)
	assertAppError(t, err, http.StatusForbidden, domain.ErrPermissionDenied)

	err = uc.Delete(ctx, applicant, 6)
	assertAppError(t, err, http.StatusNotFound, domain.ErrNotFound)

	require.NoError(t, uc.Delete(ctx, applicant, 5))
	store.resumes.AssertNumberOfCalls(t, "Delete", 1)
}
