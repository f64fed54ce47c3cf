package v1_test

import (
	"context"

	"go-jobmarket-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockAuthUC struct{ mock.Mock }

func (m *MockAuthUC) ResolvePrincipal(ctx context.Context, userID int64) (*domain.Principal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Principal), args.Error(1)
}

type MockApplicationUC struct{ mock.Mock }

func (m *MockApplicationUC) Submit(ctx context.Context, p domain.Principal, in domain.SubmitApplicationInput) (*domain.Application, error) {
	args := m.Called(ctx, p, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationUC) Transition(ctx context.Context, p domain.Principal, id int64, status domain.ApplicationStatus) (*domain.Application, error) {
	args := m.Called(ctx, p, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationUC) Withdraw(ctx context.Context, p domain.Principal, id int64) error {
	return m.Called(ctx, p, id).Error(0)
}

func (m *MockApplicationUC) Get(ctx context.Context, p domain.Principal, id int64) (*domain.Application, error) {
	args := m.Called(ctx, p, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationUC) ListMine(ctx context.Context, p domain.Principal) ([]domain.Application, error) {
	args := m.Called(ctx, p)
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationUC) ListByVacancy(ctx context.Context, p domain.Principal, vacancyID int64) ([]domain.Application, error) {
	args := m.Called(ctx, p, vacancyID)
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationUC) ListByStatus(ctx context.Context, p domain.Principal, status domain.ApplicationStatus) ([]domain.Application, error) {
	args := m.Called(ctx, p, status)
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationUC) ListByCategory(ctx context.Context, p domain.Principal, categoryID int64) ([]domain.Application, error) {
	args := m.Called(ctx, p, categoryID)
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationUC) ListApplicants(ctx context.Context, p domain.Principal) ([]domain.Application, error) {
	args := m.Called(ctx, p)
	return args.Get(0).([]domain.Application), args.Error(1)
}

type MockNotificationUC struct{ mock.Mock }

func (m *MockNotificationUC) ListUnread(ctx context.Context, p domain.Principal) ([]domain.Notification, error) {
	args := m.Called(ctx, p)
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationUC) MarkSeen(ctx context.Context, p domain.Principal, id int64) (*domain.Notification, error) {
	args := m.Called(ctx, p, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

type MockFavoriteUC struct{ mock.Mock }

func (m *MockFavoriteUC) Add(ctx context.Context, p domain.Principal, vacancyID int64) (*domain.Favorite, error) {
	args := m.Called(ctx, p, vacancyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Favorite), args.Error(1)
}

func (m *MockFavoriteUC) AddStrict(ctx context.Context, p domain.Principal, vacancyID int64) (*domain.Favorite, error) {
	args := m.Called(ctx, p, vacancyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Favorite), args.Error(1)
}

func (m *MockFavoriteUC) Remove(ctx context.Context, p domain.Principal, vacancyID int64) error {
	return m.Called(ctx, p, vacancyID).Error(0)
}

func (m *MockFavoriteUC) CountFor(ctx context.Context, vacancyID int64) (int64, error) {
	args := m.Called(ctx, vacancyID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFavoriteUC) ListFor(ctx context.Context, p domain.Principal) ([]domain.Vacancy, error) {
	args := m.Called(ctx, p)
	return args.Get(0).([]domain.Vacancy), args.Error(1)
}

type MockVacancyUC struct{ mock.Mock }

func (m *MockVacancyUC) Create(ctx context.Context, p domain.Principal, v *domain.Vacancy) error {
	return m.Called(ctx, p, v).Error(0)
}

func (m *MockVacancyUC) Update(ctx context.Context, p domain.Principal, v *domain.Vacancy) error {
	return m.Called(ctx, p, v).Error(0)
}

func (m *MockVacancyUC) Delete(ctx context.Context, p domain.Principal, id int64) error {
	return m.Called(ctx, p, id).Error(0)
}

func (m *MockVacancyUC) SetActivation(ctx context.Context, p domain.Principal, id int64, active bool) error {
	return m.Called(ctx, p, id, active).Error(0)
}

func (m *MockVacancyUC) Detail(ctx context.Context, p *domain.Principal, id int64) (*domain.VacancyDetail, error) {
	args := m.Called(ctx, p, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VacancyDetail), args.Error(1)
}

func (m *MockVacancyUC) MarkSeen(ctx context.Context, p domain.Principal, id int64) (*domain.VacancyDetail, error) {
	args := m.Called(ctx, p, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VacancyDetail), args.Error(1)
}

func (m *MockVacancyUC) ListPublic(ctx context.Context, p *domain.Principal, f domain.VacancyFilter, page, pageSize int) ([]domain.VacancyDetail, int64, error) {
	args := m.Called(ctx, p, f, page, pageSize)
	return args.Get(0).([]domain.VacancyDetail), args.Get(1).(int64), args.Error(2)
}

func (m *MockVacancyUC) Categories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Category), args.Error(1)
}

type MockAnalyticsUC struct{ mock.Mock }

func (m *MockAnalyticsUC) Aggregate(ctx context.Context, scope string, categoryID *int64) ([]domain.DateCount, error) {
	args := m.Called(ctx, scope, categoryID)
	return args.Get(0).([]domain.DateCount), args.Error(1)
}

func (m *MockAnalyticsUC) AggregateAll(ctx context.Context, categoryID *int64) (map[string][]domain.DateCount, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(map[string][]domain.DateCount), args.Error(1)
}

func (m *MockAnalyticsUC) Export(ctx context.Context, categoryID *int64) ([]byte, string, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

type MockResumeUC struct{ mock.Mock }

func (m *MockResumeUC) Create(ctx context.Context, p domain.Principal, r *domain.Resume) error {
	return m.Called(ctx, p, r).Error(0)
}

func (m *MockResumeUC) List(ctx context.Context, p domain.Principal) ([]domain.Resume, error) {
	args := m.Called(ctx, p)
	return args.Get(0).([]domain.Resume), args.Error(1)
}

func (m *MockResumeUC) Delete(ctx context.Context, p domain.Principal, id int64) error {
	return m.Called(ctx, p, id).Error(0)
}

type MockCompanyUC struct{ mock.Mock }

func (m *MockCompanyUC) Members(ctx context.Context, p domain.Principal, companyID int64) ([]domain.CompanyMember, error) {
	args := m.Called(ctx, p, companyID)
	return args.Get(0).([]domain.CompanyMember), args.Error(1)
}

func (m *MockCompanyUC) AddReview(ctx context.Context, p domain.Principal, companyID int64, comment string) (*domain.CompanyReview, error) {
	args := m.Called(ctx, p, companyID, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyReview), args.Error(1)
}

func (m *MockCompanyUC) Reviews(ctx context.Context, companyID int64) ([]domain.CompanyReview, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).([]domain.CompanyReview), args.Error(1)
}

type fakeHealth map[string]string

func (f fakeHealth) Check(context.Context) map[string]string { return f }
