package domain

import (
	"context"
	"fmt"
	"time"
)

// ApplicationStatus mirrors the application_statuses lookup table.
type ApplicationStatus int64

const (
	StatusSubmitted ApplicationStatus = 1
	StatusAccepted  ApplicationStatus = 2
	StatusRejected  ApplicationStatus = 3
)

var statusNames = map[ApplicationStatus]string{
	StatusSubmitted: "submitted",
	StatusAccepted:  "accepted",
	StatusRejected:  "rejected",
}

func (s ApplicationStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("status(%d)", int64(s))
}

func (s ApplicationStatus) Known() bool {
	_, ok := statusNames[s]
	return ok
}

// IsTerminal reports whether no further transition is allowed.
func (s ApplicationStatus) IsTerminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// ValidateTransition enforces submitted -> {accepted, rejected}, one way.
func ValidateTransition(from, to ApplicationStatus) error {
	if !to.Known() {
		return fmt.Errorf("%w: unknown status %d", ErrValidation, int64(to))
	}
	if from.IsTerminal() {
		return fmt.Errorf("%w: application is already %s", ErrInvalidTransition, from)
	}
	if to == StatusSubmitted {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return nil
}

// Application ties an applicant, a vacancy and optionally one of their resumes.
type Application struct {
	ID        int64             `json:"id"`
	UserID    int64             `json:"user_id"`
	VacancyID int64             `json:"vacancy_id"`
	ResumeID  *int64            `json:"resume_id,omitempty"`
	Status    ApplicationStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`

	// Joined from the vacancy
	CompanyID    int64   `json:"company_id,omitempty"`
	VacancyTitle *string `json:"vacancy_title,omitempty"`
}

type SubmitApplicationInput struct {
	VacancyID int64  `json:"jobs"`
	ResumeID  *int64 `json:"resume"`
}

type ApplicationEventKind string

const (
	EventSubmitted    ApplicationEventKind = "submitted"
	EventTransitioned ApplicationEventKind = "transitioned"
)

// ApplicationEvent is emitted by the state machine inside its unit of work.
type ApplicationEvent struct {
	Kind        ApplicationEventKind
	Application Application
	Status      ApplicationStatus
	ApplicantID int64
	CompanyID   int64
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	Exists(ctx context.Context, userID, vacancyID int64, resumeID *int64) (bool, error)
	GetByID(ctx context.Context, id int64) (*Application, error)
	// LockByID is GetByID with a row lock held until the transaction ends.
	LockByID(ctx context.Context, id int64) (*Application, error)
	UpdateStatus(ctx context.Context, id int64, status ApplicationStatus) error
	Delete(ctx context.Context, id int64) error
	ListByUser(ctx context.Context, userID int64) ([]Application, error)
	ListByVacancy(ctx context.Context, vacancyID int64) ([]Application, error)
	ListByStatus(ctx context.Context, status ApplicationStatus) ([]Application, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]Application, error)
	// ListByCompanies returns applications to vacancies of the given companies; nil means all.
	ListByCompanies(ctx context.Context, companyIDs []int64) ([]Application, error)
}

type ApplicationUsecase interface {
	Submit(ctx context.Context, p Principal, in SubmitApplicationInput) (*Application, error)
	Transition(ctx context.Context, p Principal, applicationID int64, status ApplicationStatus) (*Application, error)
	Withdraw(ctx context.Context, p Principal, applicationID int64) error

	Get(ctx context.Context, p Principal, applicationID int64) (*Application, error)
	ListMine(ctx context.Context, p Principal) ([]Application, error)
	ListByVacancy(ctx context.Context, p Principal, vacancyID int64) ([]Application, error)
	ListByStatus(ctx context.Context, p Principal, status ApplicationStatus) ([]Application, error)
	ListByCategory(ctx context.Context, p Principal, categoryID int64) ([]Application, error)
	ListApplicants(ctx context.Context, p Principal) ([]Application, error)
}
