package postgres

import (
	"context"
	"fmt"
	"strings"

	"go-jobmarket-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/lib/pq"
)

const vacancyColumns = `
	v.id, v.company_id, v.category_id, v.title, v.description, v.salary,
	v.qualifications, v.skills, v.experience, v.level, v.work_hours,
	v.is_activate, v.created_at, v.updated_at`

const counterColumns = `
	(SELECT COUNT(*) FROM vacancy_viewers vv WHERE vv.vacancy_id = v.id) AS viewer_count,
	(SELECT COUNT(*) FROM vacancy_lookers vl WHERE vl.vacancy_id = v.id) AS looked_count,
	(SELECT COUNT(*) FROM applications ap WHERE ap.vacancy_id = v.id) AS applied_count,
	(SELECT COUNT(*) FROM favorites f WHERE f.vacancy_id = v.id) AS favorite_count`

type vacancyRepo struct {
	db DBTX
}

func vacancyScanTargets(v *domain.Vacancy) []any {
	return []any{
		&v.ID, &v.CompanyID, &v.CategoryID, &v.Title, &v.Description, &v.Salary,
		&v.Qualifications, pq.Array(&v.Skills), &v.Experience, &v.Level, &v.WorkHours,
		&v.IsActivate, &v.CreatedAt, &v.UpdatedAt,
	}
}

func (r *vacancyRepo) Create(ctx context.Context, v *domain.Vacancy) error {
	query := `
		INSERT INTO vacancies (company_id, category_id, title, description, salary,
			qualifications, skills, experience, level, work_hours, is_activate)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at`

	if v.Skills == nil {
		v.Skills = []string{}
	}
	return r.db.QueryRow(ctx, query,
		v.CompanyID, v.CategoryID, v.Title, v.Description, v.Salary,
		v.Qualifications, pq.Array(v.Skills), v.Experience, v.Level, v.WorkHours, v.IsActivate,
	).Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt)
}

func (r *vacancyRepo) GetByID(ctx context.Context, id int64) (*domain.Vacancy, error) {
	query := `SELECT` + vacancyColumns + ` FROM vacancies v WHERE v.id = $1`

	var v domain.Vacancy
	if err := r.db.QueryRow(ctx, query, id).Scan(vacancyScanTargets(&v)...); err != nil {
		return nil, notFound(err)
	}
	return &v, nil
}

// Update rewrites the editable fields; company_id is fixed at creation.
func (r *vacancyRepo) Update(ctx context.Context, v *domain.Vacancy) error {
	query := `
		UPDATE vacancies SET
			category_id = $1, title = $2, description = $3, salary = $4,
			qualifications = $5, skills = $6, experience = $7, level = $8,
			work_hours = $9, updated_at = now()
		WHERE id = $10
		RETURNING updated_at`

	if v.Skills == nil {
		v.Skills = []string{}
	}
	err := r.db.QueryRow(ctx, query,
		v.CategoryID, v.Title, v.Description, v.Salary,
		v.Qualifications, pq.Array(v.Skills), v.Experience, v.Level,
		v.WorkHours, v.ID,
	).Scan(&v.UpdatedAt)
	return notFound(err)
}

func (r *vacancyRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM vacancies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *vacancyRepo) SetActivation(ctx context.Context, id int64, active bool) error {
	tag, err := r.db.Exec(ctx, `UPDATE vacancies SET is_activate = $1, updated_at = now() WHERE id = $2`, active, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AddViewer and AddLooker are set inserts: repeating them changes nothing.
func (r *vacancyRepo) AddViewer(ctx context.Context, vacancyID, userID int64) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO vacancy_viewers (vacancy_id, user_id) VALUES ($1, $2)
		ON CONFLICT DO NOTHING`, vacancyID, userID)
	return err
}

func (r *vacancyRepo) AddLooker(ctx context.Context, vacancyID, userID int64) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO vacancy_lookers (vacancy_id, user_id) VALUES ($1, $2)
		ON CONFLICT DO NOTHING`, vacancyID, userID)
	return err
}

func (r *vacancyRepo) Counters(ctx context.Context, vacancyID int64) (*domain.VacancyCounters, error) {
	query := `SELECT` + counterColumns + ` FROM vacancies v WHERE v.id = $1`

	var c domain.VacancyCounters
	if err := r.db.QueryRow(ctx, query, vacancyID).Scan(&c.Viewers, &c.Lookers, &c.Applicants, &c.Favorites); err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

func orderBy(sort domain.VacancySort) string {
	switch sort {
	case domain.SortAppliedAsc:
		return "applied_count ASC, v.id ASC"
	case domain.SortAppliedDesc:
		return "applied_count DESC, v.id DESC"
	default:
		return "v.created_at DESC, v.id DESC"
	}
}

// ListPublic returns active vacancies matching f with their counters and the
// total match count before paging.
func (r *vacancyRepo) ListPublic(ctx context.Context, f domain.VacancyFilter) ([]domain.VacancyDetail, int64, error) {
	conds := []string{"v.is_activate = true"}
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if len(f.CategoryIDs) > 0 {
		conds = append(conds, "v.category_id = ANY("+arg(f.CategoryIDs)+")")
	}
	if f.SalaryMin != nil {
		conds = append(conds, "v.salary >= "+arg(*f.SalaryMin))
	}
	if f.SalaryMax != nil {
		conds = append(conds, "v.salary <= "+arg(*f.SalaryMax))
	}
	if f.Title != "" {
		conds = append(conds, "v.title ILIKE "+arg("%"+f.Title+"%"))
	}
	if f.CompanyID != nil {
		conds = append(conds, "v.company_id = "+arg(*f.CompanyID))
	}
	if f.IsApplied != nil {
		cond := "EXISTS (SELECT 1 FROM applications ap WHERE ap.vacancy_id = v.id AND ap.user_id = " + arg(f.ViewerID) + ")"
		if !*f.IsApplied {
			cond = "NOT " + cond
		}
		conds = append(conds, cond)
	}
	if f.IsFavorite != nil {
		cond := "EXISTS (SELECT 1 FROM favorites fv WHERE fv.vacancy_id = v.id AND fv.user_id = " + arg(f.ViewerID) + ")"
		if !*f.IsFavorite {
			cond = "NOT " + cond
		}
		conds = append(conds, cond)
	}
	where := "WHERE " + strings.Join(conds, " AND ")

	var total int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM vacancies v "+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT %s, %s FROM vacancies v %s ORDER BY %s`, vacancyColumns, counterColumns, where, orderBy(f.Sort))
	if f.Limit > 0 {
		query += " LIMIT " + arg(f.Limit) + " OFFSET " + arg(f.Offset)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	vacancies := []domain.VacancyDetail{}
	for rows.Next() {
		var d domain.VacancyDetail
		targets := append(vacancyScanTargets(&d.Vacancy),
			&d.Viewers, &d.Lookers, &d.Applicants, &d.Favorites)
		if err := rows.Scan(targets...); err != nil {
			return nil, 0, err
		}
		vacancies = append(vacancies, d)
	}
	return vacancies, total, rows.Err()
}

func (r *vacancyRepo) ListCategories(ctx context.Context) ([]domain.Category, error) {
	query := `
		SELECT c.id, c.tag,
			(SELECT COUNT(*) FROM vacancies v WHERE v.category_id = c.id) AS count_vacancy,
			(SELECT COUNT(*) FROM applications ap JOIN vacancies v ON v.id = ap.vacancy_id
				WHERE v.category_id = c.id) AS count_applied
		FROM categories c
		ORDER BY c.id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[domain.Category])
}

func (r *vacancyRepo) CategoryExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}
