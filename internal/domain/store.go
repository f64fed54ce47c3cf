package domain

import "context"

// Store groups repositories that share one database handle. Inside
// TxManager.WithinTx every repository runs on the same transaction.
type Store interface {
	Users() UserRepository
	Applications() ApplicationRepository
	Vacancies() VacancyRepository
	Companies() CompanyRepository
	Favorites() FavoriteRepository
	Notifications() NotificationRepository
	Resumes() ResumeRepository
	Analytics() AnalyticsRepository
}

type TxManager interface {
	// WithinTx commits when fn returns nil and rolls back otherwise.
	WithinTx(ctx context.Context, fn func(ctx context.Context, s Store) error) error
}
