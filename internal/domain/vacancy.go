package domain

import (
	"context"
	"time"
)

type Vacancy struct {
	ID             int64     `json:"id"`
	CompanyID      int64     `json:"company_id" validate:"required,gt=0"`
	CategoryID     *int64    `json:"job_category,omitempty"`
	Title          string    `json:"title" validate:"required,max=255,no_emoji"`
	Description    *string   `json:"description,omitempty"`
	Salary         float64   `json:"salary" validate:"gte=0"`
	Qualifications *string   `json:"qualifications,omitempty" validate:"omitempty,max=255"`
	Skills         []string  `json:"skills" validate:"omitempty,max=50,dive,required,max=64,skill_tag"`
	Experience     bool      `json:"experience"`
	Level          int       `json:"level" validate:"gte=0"`
	WorkHours      *string   `json:"work_hours,omitempty" validate:"omitempty,max=255"`
	IsActivate     bool      `json:"is_activate"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// VacancyCounters are derived from the observer sets, favorites and applications.
type VacancyCounters struct {
	Viewers    int64 `json:"viewer_count"`
	Lookers    int64 `json:"looked_count"`
	Applicants int64 `json:"applied_count"`
	Favorites  int64 `json:"favorite_count"`
}

type VacancyDetail struct {
	Vacancy
	VacancyCounters
}

// VacancySort orders the public listing. The zero value is newest first.
type VacancySort int

const (
	SortNewest VacancySort = iota
	SortAppliedAsc
	SortAppliedDesc
)

// VacancyFilter drives the public listing. Tri-state flags are relative to ViewerID.
type VacancyFilter struct {
	CategoryIDs []int64
	SalaryMin   *float64
	SalaryMax   *float64
	Title       string
	CompanyID   *int64
	ViewerID    int64
	IsApplied   *bool
	IsFavorite  *bool
	Sort        VacancySort
	Limit       int
	Offset      int
}

type Category struct {
	ID           int64  `json:"id"`
	Tag          string `json:"tag"`
	CountVacancy int64  `json:"count_vacancy"`
	CountApplied int64  `json:"count_applied"`
}

type VacancyRepository interface {
	Create(ctx context.Context, v *Vacancy) error
	GetByID(ctx context.Context, id int64) (*Vacancy, error)
	Update(ctx context.Context, v *Vacancy) error
	Delete(ctx context.Context, id int64) error
	SetActivation(ctx context.Context, id int64, active bool) error
	AddViewer(ctx context.Context, vacancyID, userID int64) error
	AddLooker(ctx context.Context, vacancyID, userID int64) error
	Counters(ctx context.Context, vacancyID int64) (*VacancyCounters, error)
	ListPublic(ctx context.Context, f VacancyFilter) ([]VacancyDetail, int64, error)
	ListCategories(ctx context.Context) ([]Category, error)
	CategoryExists(ctx context.Context, id int64) (bool, error)
}

type VacancyUsecase interface {
	Create(ctx context.Context, p Principal, v *Vacancy) error
	Update(ctx context.Context, p Principal, v *Vacancy) error
	Delete(ctx context.Context, p Principal, id int64) error
	SetActivation(ctx context.Context, p Principal, id int64, active bool) error
	// Detail is allowed regardless of activation; an authenticated viewer is recorded as looker.
	Detail(ctx context.Context, p *Principal, id int64) (*VacancyDetail, error)
	MarkSeen(ctx context.Context, p Principal, id int64) (*VacancyDetail, error)
	ListPublic(ctx context.Context, p *Principal, f VacancyFilter, page, pageSize int) ([]VacancyDetail, int64, error)
	Categories(ctx context.Context) ([]Category, error)
}
