package postgres

import (
	"context"
	"fmt"

	"go-jobmarket-backend/internal/domain"

	"github.com/jackc/pgx/v5"
)

const (
	applicationsUniqueKey = "applications_user_vacancy_resume_key"

	applicationColumns = `
		a.id, a.user_id, a.vacancy_id, a.resume_id, a.status_id, a.created_at,
		v.company_id, v.title`
)

type applicationRepo struct {
	db DBTX
}

func scanApplication(row pgx.Row) (*domain.Application, error) {
	var app domain.Application
	if err := row.Scan(
		&app.ID, &app.UserID, &app.VacancyID, &app.ResumeID, &app.Status, &app.CreatedAt,
		&app.CompanyID, &app.VacancyTitle,
	); err != nil {
		return nil, err
	}
	return &app, nil
}

func collectApplications(rows pgx.Rows) ([]domain.Application, error) {
	defer rows.Close()

	applications := []domain.Application{}
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		applications = append(applications, *app)
	}
	return applications, rows.Err()
}

// Create inserts a submitted application. A concurrent duplicate surfaces as
// ErrDuplicateApplication through the table's unique constraint.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO applications (user_id, vacancy_id, resume_id, status_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	if app.Status == 0 {
		app.Status = domain.StatusSubmitted
	}

	err := r.db.QueryRow(ctx, query, app.UserID, app.VacancyID, app.ResumeID, int64(app.Status)).
		Scan(&app.ID, &app.CreatedAt)
	if isUniqueViolation(err, applicationsUniqueKey) {
		return domain.ErrDuplicateApplication
	}
	return err
}

func (r *applicationRepo) Exists(ctx context.Context, userID, vacancyID int64, resumeID *int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM applications
			WHERE user_id = $1 AND vacancy_id = $2 AND resume_id IS NOT DISTINCT FROM $3
		)`

	var exists bool
	err := r.db.QueryRow(ctx, query, userID, vacancyID, resumeID).Scan(&exists)
	return exists, err
}

func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	query := `SELECT` + applicationColumns + `
		FROM applications a
		JOIN vacancies v ON v.id = a.vacancy_id
		WHERE a.id = $1`

	app, err := scanApplication(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFound(err)
	}
	return app, nil
}

// LockByID takes a row lock on the application only; the vacancy row is not locked.
func (r *applicationRepo) LockByID(ctx context.Context, id int64) (*domain.Application, error) {
	query := `SELECT` + applicationColumns + `
		FROM applications a
		JOIN vacancies v ON v.id = a.vacancy_id
		WHERE a.id = $1
		FOR UPDATE OF a`

	app, err := scanApplication(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFound(err)
	}
	return app, nil
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus) error {
	tag, err := r.db.Exec(ctx, `UPDATE applications SET status_id = $1 WHERE id = $2`, int64(status), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *applicationRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *applicationRepo) list(ctx context.Context, where string, args ...any) ([]domain.Application, error) {
	query := fmt.Sprintf(`SELECT %s
		FROM applications a
		JOIN vacancies v ON v.id = a.vacancy_id
		%s
		ORDER BY a.created_at DESC, a.id DESC`, applicationColumns, where)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collectApplications(rows)
}

func (r *applicationRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Application, error) {
	return r.list(ctx, `WHERE a.user_id = $1`, userID)
}

func (r *applicationRepo) ListByVacancy(ctx context.Context, vacancyID int64) ([]domain.Application, error) {
	return r.list(ctx, `WHERE a.vacancy_id = $1`, vacancyID)
}

func (r *applicationRepo) ListByStatus(ctx context.Context, status domain.ApplicationStatus) ([]domain.Application, error) {
	return r.list(ctx, `WHERE a.status_id = $1`, int64(status))
}

func (r *applicationRepo) ListByCategory(ctx context.Context, categoryID int64) ([]domain.Application, error) {
	return r.list(ctx, `WHERE v.category_id = $1`, categoryID)
}

func (r *applicationRepo) ListByCompanies(ctx context.Context, companyIDs []int64) ([]domain.Application, error) {
	if companyIDs == nil {
		return r.list(ctx, ``)
	}
	return r.list(ctx, `WHERE v.company_id = ANY($1)`, companyIDs)
}
