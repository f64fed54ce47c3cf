package usecase_test

import (
	"context"
	"time"

	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/pkg/notify"

	"github.com/stretchr/testify/mock"
)

// Mock Store

type MockStore struct {
	users         *MockUserRepo
	applications  *MockApplicationRepo
	vacancies     *MockVacancyRepo
	companies     *MockCompanyRepo
	favorites     *MockFavoriteRepo
	notifications *MockNotificationRepo
	resumes       *MockResumeRepo
	analytics     *MockAnalyticsRepo
}

func newMockStore() *MockStore {
	return &MockStore{
		users:         new(MockUserRepo),
		applications:  new(MockApplicationRepo),
		vacancies:     new(MockVacancyRepo),
		companies:     new(MockCompanyRepo),
		favorites:     new(MockFavoriteRepo),
		notifications: new(MockNotificationRepo),
		resumes:       new(MockResumeRepo),
		analytics:     new(MockAnalyticsRepo),
	}
}

func (s *MockStore) Users() domain.UserRepository                 { return s.users }
func (s *MockStore) Applications() domain.ApplicationRepository   { return s.applications }
func (s *MockStore) Vacancies() domain.VacancyRepository          { return s.vacancies }
func (s *MockStore) Companies() domain.CompanyRepository          { return s.companies }
func (s *MockStore) Favorites() domain.FavoriteRepository         { return s.favorites }
func (s *MockStore) Notifications() domain.NotificationRepository { return s.notifications }
func (s *MockStore) Resumes() domain.ResumeRepository             { return s.resumes }
func (s *MockStore) Analytics() domain.AnalyticsRepository        { return s.analytics }

// fakeTx runs the callback on the mock store and records the outcome.
type fakeTx struct {
	store     domain.Store
	calls     int
	lastError error
}

func (f *fakeTx) WithinTx(ctx context.Context, fn func(ctx context.Context, s domain.Store) error) error {
	f.calls++
	f.lastError = fn(ctx, f.store)
	return f.lastError
}

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}

func (m *MockApplicationRepo) Exists(ctx context.Context, userID, vacancyID int64, resumeID *int64) (bool, error) {
	args := m.Called(ctx, userID, vacancyID, resumeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockApplicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) LockByID(ctx context.Context, id int64) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockApplicationRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockApplicationRepo) list(args mock.Arguments) ([]domain.Application, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Application, error) {
	return m.list(m.Called(ctx, userID))
}

func (m *MockApplicationRepo) ListByVacancy(ctx context.Context, vacancyID int64) ([]domain.Application, error) {
	return m.list(m.Called(ctx, vacancyID))
}

func (m *MockApplicationRepo) ListByStatus(ctx context.Context, status domain.ApplicationStatus) ([]domain.Application, error) {
	return m.list(m.Called(ctx, status))
}

func (m *MockApplicationRepo) ListByCategory(ctx context.Context, categoryID int64) ([]domain.Application, error) {
	return m.list(m.Called(ctx, categoryID))
}

func (m *MockApplicationRepo) ListByCompanies(ctx context.Context, companyIDs []int64) ([]domain.Application, error) {
	return m.list(m.Called(ctx, companyIDs))
}

type MockVacancyRepo struct {
	mock.Mock
}

func (m *MockVacancyRepo) Create(ctx context.Context, v *domain.Vacancy) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockVacancyRepo) GetByID(ctx context.Context, id int64) (*domain.Vacancy, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vacancy), args.Error(1)
}

func (m *MockVacancyRepo) Update(ctx context.Context, v *domain.Vacancy) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockVacancyRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockVacancyRepo) SetActivation(ctx context.Context, id int64, active bool) error {
	return m.Called(ctx, id, active).Error(0)
}

func (m *MockVacancyRepo) AddViewer(ctx context.Context, vacancyID, userID int64) error {
	return m.Called(ctx, vacancyID, userID).Error(0)
}

func (m *MockVacancyRepo) AddLooker(ctx context.Context, vacancyID, userID int64) error {
	return m.Called(ctx, vacancyID, userID).Error(0)
}

func (m *MockVacancyRepo) Counters(ctx context.Context, vacancyID int64) (*domain.VacancyCounters, error) {
	args := m.Called(ctx, vacancyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VacancyCounters), args.Error(1)
}

func (m *MockVacancyRepo) ListPublic(ctx context.Context, f domain.VacancyFilter) ([]domain.VacancyDetail, int64, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.VacancyDetail), args.Get(1).(int64), args.Error(2)
}

func (m *MockVacancyRepo) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockVacancyRepo) CategoryExists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockCompanyRepo struct {
	mock.Mock
}

func (m *MockCompanyRepo) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCompanyRepo) AddMember(ctx context.Context, companyID, userID int64) error {
	return m.Called(ctx, companyID, userID).Error(0)
}

func (m *MockCompanyRepo) ListMembers(ctx context.Context, companyID int64) ([]domain.CompanyMember, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CompanyMember), args.Error(1)
}

func (m *MockCompanyRepo) HRCompanyIDs(ctx context.Context, userID int64) ([]int64, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockCompanyRepo) CreateReview(ctx context.Context, r *domain.CompanyReview) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockCompanyRepo) ListReviews(ctx context.Context, companyID int64) ([]domain.CompanyReview, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CompanyReview), args.Error(1)
}

type MockFavoriteRepo struct {
	mock.Mock
}

func (m *MockFavoriteRepo) Add(ctx context.Context, userID, vacancyID int64) (*domain.Favorite, bool, error) {
	args := m.Called(ctx, userID, vacancyID)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*domain.Favorite), args.Bool(1), args.Error(2)
}

func (m *MockFavoriteRepo) Insert(ctx context.Context, fav *domain.Favorite) error {
	return m.Called(ctx, fav).Error(0)
}

func (m *MockFavoriteRepo) Remove(ctx context.Context, userID, vacancyID int64) error {
	return m.Called(ctx, userID, vacancyID).Error(0)
}

func (m *MockFavoriteRepo) CountByVacancy(ctx context.Context, vacancyID int64) (int64, error) {
	args := m.Called(ctx, vacancyID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFavoriteRepo) ListVacanciesByUser(ctx context.Context, userID int64) ([]domain.Vacancy, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vacancy), args.Error(1)
}

type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *MockNotificationRepo) GetByID(ctx context.Context, id int64) (*domain.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *MockNotificationRepo) MarkSeen(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockNotificationRepo) list(args mock.Arguments) ([]domain.Notification, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationRepo) ListUnreadByUser(ctx context.Context, userID int64, statuses []domain.ApplicationStatus) ([]domain.Notification, error) {
	return m.list(m.Called(ctx, userID, statuses))
}

func (m *MockNotificationRepo) ListUnreadByHR(ctx context.Context, hrUserID int64, statuses []domain.ApplicationStatus) ([]domain.Notification, error) {
	return m.list(m.Called(ctx, hrUserID, statuses))
}

func (m *MockNotificationRepo) ListUnread(ctx context.Context) ([]domain.Notification, error) {
	return m.list(m.Called(ctx))
}

type MockResumeRepo struct {
	mock.Mock
}

func (m *MockResumeRepo) Create(ctx context.Context, r *domain.Resume) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockResumeRepo) GetByID(ctx context.Context, id int64) (*domain.Resume, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resume), args.Error(1)
}

func (m *MockResumeRepo) CountByUser(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockResumeRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Resume, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Resume), args.Error(1)
}

func (m *MockResumeRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockAnalyticsRepo struct {
	mock.Mock
}

func (m *MockAnalyticsRepo) CountByDate(ctx context.Context, since time.Time, categoryID *int64) ([]domain.DateCount, error) {
	args := m.Called(ctx, since, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DateCount), args.Error(1)
}

// Mock Publisher

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, msg notify.Message) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *MockPublisher) Close() error {
	return m.Called().Error(0)
}
