package postgres

import (
	"context"
	"errors"

	"go-jobmarket-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type store struct {
	db DBTX
}

// NewStore returns repositories bound to the pool (autocommit per statement).
func NewStore(db DBTX) domain.Store {
	return &store{db: db}
}

func (s *store) Users() domain.UserRepository                 { return &userRepo{db: s.db} }
func (s *store) Applications() domain.ApplicationRepository   { return &applicationRepo{db: s.db} }
func (s *store) Vacancies() domain.VacancyRepository          { return &vacancyRepo{db: s.db} }
func (s *store) Companies() domain.CompanyRepository          { return &companyRepo{db: s.db} }
func (s *store) Favorites() domain.FavoriteRepository         { return &favoriteRepo{db: s.db} }
func (s *store) Notifications() domain.NotificationRepository { return &notificationRepo{db: s.db} }
func (s *store) Resumes() domain.ResumeRepository             { return &resumeRepo{db: s.db} }
func (s *store) Analytics() domain.AnalyticsRepository        { return &analyticsRepo{db: s.db} }

type txManager struct {
	pool *pgxpool.Pool
}

func NewTxManager(pool *pgxpool.Pool) domain.TxManager {
	return &txManager{pool: pool}
}

// WithinTx runs fn in a READ COMMITTED transaction. Uniqueness races are
// settled by the table constraints, not by isolation level.
func (m *txManager) WithinTx(ctx context.Context, fn func(ctx context.Context, s domain.Store) error) error {
	return pgx.BeginTxFunc(ctx, m.pool, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(tx pgx.Tx) error {
		return fn(ctx, &store{db: tx})
	})
}

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgUniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}

// notFound maps pgx.ErrNoRows to domain.ErrNotFound and passes anything else through.
func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}
