package usecase

import (
	"context"
	"errors"

	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/pkg/logger"
	"go-jobmarket-backend/pkg/metrics"
)

type applicationUsecase struct {
	store  domain.Store
	tx     domain.TxManager
	fanout domain.NotificationFanout
}

func NewApplicationUsecase(store domain.Store, tx domain.TxManager, fanout domain.NotificationFanout) domain.ApplicationUsecase {
	return &applicationUsecase{
		store:  store,
		tx:     tx,
		fanout: fanout,
	}
}

// Submit records a new application, puts the applicant on the company roster
// and emits the submitted event, all in one transaction.
func (uc *applicationUsecase) Submit(ctx context.Context, p domain.Principal, in domain.SubmitApplicationInput) (*domain.Application, error) {
	if !domain.CanSubmit(p) {
		return nil, denied("Only job seekers can apply to vacancies")
	}
	if in.VacancyID <= 0 {
		return nil, invalid("Vacancy is required")
	}

	var (
		app   *domain.Application
		notif *domain.Notification
	)
	err := uc.tx.WithinTx(ctx, func(ctx context.Context, s domain.Store) error {
		vacancy, err := s.Vacancies().GetByID(ctx, in.VacancyID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return notFound("Vacancy not found")
			}
			return err
		}
		if !vacancy.IsActivate {
			return invalid("Vacancy is not accepting applications")
		}

		if in.ResumeID != nil {
			resume, err := s.Resumes().GetByID(ctx, *in.ResumeID)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					return notFound("Resume not found")
				}
				return err
			}
			if resume.UserID != p.ID {
				return denied("Resume belongs to another user")
			}
		}

		exists, err := s.Applications().Exists(ctx, p.ID, in.VacancyID, in.ResumeID)
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrDuplicateApplication
		}

		app = &domain.Application{
			UserID:       p.ID,
			VacancyID:    in.VacancyID,
			ResumeID:     in.ResumeID,
			Status:       domain.StatusSubmitted,
			CompanyID:    vacancy.CompanyID,
			VacancyTitle: &vacancy.Title,
		}
		if err := s.Applications().Create(ctx, app); err != nil {
			return err
		}
		if err := s.Companies().AddMember(ctx, vacancy.CompanyID, p.ID); err != nil {
			return err
		}

		notif, err = uc.fanout.OnApplicationEvent(ctx, s, domain.ApplicationEvent{
			Kind:        domain.EventSubmitted,
			Application: *app,
			Status:      domain.StatusSubmitted,
			ApplicantID: p.ID,
			CompanyID:   vacancy.CompanyID,
		})
		return err
	})
	if err != nil {
		return nil, mapError(err)
	}

	metrics.ApplicationEvents.WithLabelValues(string(domain.EventSubmitted), app.Status.String()).Inc()
	logger.Log.Info("Application submitted",
		"application_id", app.ID,
		"vacancy_id", app.VacancyID,
		"actor_id", p.ID,
	)
	uc.fanout.Deliver(ctx, notif)

	return app, nil
}

// Transition moves a submitted application to accepted or rejected. The row
// is locked for the duration, so concurrent decisions serialise and the loser
// sees a terminal status.
func (uc *applicationUsecase) Transition(ctx context.Context, p domain.Principal, applicationID int64, status domain.ApplicationStatus) (*domain.Application, error) {
	if !domain.CanTransition(p) {
		return nil, denied("Only HR or admins can change application status")
	}
	if !status.Known() {
		return nil, invalid("Unknown application status")
	}

	var (
		app   *domain.Application
		notif *domain.Notification
	)
	err := uc.tx.WithinTx(ctx, func(ctx context.Context, s domain.Store) error {
		var err error
		app, err = s.Applications().LockByID(ctx, applicationID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return notFound("Application not found")
			}
			return err
		}
		if err := domain.ValidateTransition(app.Status, status); err != nil {
			return err
		}
		if err := s.Applications().UpdateStatus(ctx, app.ID, status); err != nil {
			return err
		}
		app.Status = status

		notif, err = uc.fanout.OnApplicationEvent(ctx, s, domain.ApplicationEvent{
			Kind:        domain.EventTransitioned,
			Application: *app,
			Status:      status,
			ApplicantID: app.UserID,
			CompanyID:   app.CompanyID,
		})
		return err
	})
	if err != nil {
		return nil, mapError(err)
	}

	metrics.ApplicationEvents.WithLabelValues(string(domain.EventTransitioned), status.String()).Inc()
	logger.Log.Info("Application status changed",
		"application_id", app.ID,
		"status", status.String(),
		"actor_id", p.ID,
	)
	uc.fanout.Deliver(ctx, notif)

	return app, nil
}

// Withdraw deletes the applicant's own application. Its notifications go with
// it through the foreign key cascade; the roster entry stays.
func (uc *applicationUsecase) Withdraw(ctx context.Context, p domain.Principal, applicationID int64) error {
	if p.Role != domain.RoleUser {
		return denied("Only the applicant can withdraw an application")
	}

	err := uc.tx.WithinTx(ctx, func(ctx context.Context, s domain.Store) error {
		app, err := s.Applications().GetByID(ctx, applicationID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return notFound("Application not found")
			}
			return err
		}
		if !domain.CanWithdraw(p, app) {
			return denied("Only the applicant can withdraw an application")
		}
		return s.Applications().Delete(ctx, app.ID)
	})
	if err != nil {
		return mapError(err)
	}

	logger.Log.Info("Application withdrawn", "application_id", applicationID, "actor_id", p.ID)
	return nil
}

func (uc *applicationUsecase) Get(ctx context.Context, p domain.Principal, applicationID int64) (*domain.Application, error) {
	app, err := uc.store.Applications().GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, notFound("Application not found")
		}
		return nil, mapError(err)
	}
	if !domain.CanViewApplication(p, app) {
		return nil, denied("You cannot view this application")
	}
	return app, nil
}

func (uc *applicationUsecase) ListMine(ctx context.Context, p domain.Principal) ([]domain.Application, error) {
	apps, err := uc.store.Applications().ListByUser(ctx, p.ID)
	return apps, mapError(err)
}

func (uc *applicationUsecase) ListByVacancy(ctx context.Context, p domain.Principal, vacancyID int64) ([]domain.Application, error) {
	if !domain.CanBrowseApplications(p) {
		return nil, denied("Only HR or admins can browse applications")
	}
	vacancy, err := uc.store.Vacancies().GetByID(ctx, vacancyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, notFound("Vacancy not found")
		}
		return nil, mapError(err)
	}
	if !domain.CanManageVacancy(p, vacancy.CompanyID) {
		return nil, denied("Vacancy belongs to another company")
	}

	apps, err := uc.store.Applications().ListByVacancy(ctx, vacancyID)
	return apps, mapError(err)
}

func (uc *applicationUsecase) ListByStatus(ctx context.Context, p domain.Principal, status domain.ApplicationStatus) ([]domain.Application, error) {
	if !domain.CanBrowseApplications(p) {
		return nil, denied("Only HR or admins can browse applications")
	}
	if !status.Known() {
		return nil, invalid("Unknown application status")
	}

	apps, err := uc.store.Applications().ListByStatus(ctx, status)
	if err != nil {
		return nil, mapError(err)
	}
	return visibleTo(p, apps), nil
}

func (uc *applicationUsecase) ListByCategory(ctx context.Context, p domain.Principal, categoryID int64) ([]domain.Application, error) {
	if !domain.CanBrowseApplications(p) {
		return nil, denied("Only HR or admins can browse applications")
	}
	exists, err := uc.store.Vacancies().CategoryExists(ctx, categoryID)
	if err != nil {
		return nil, mapError(err)
	}
	if !exists {
		return nil, notFound("Category not found")
	}

	apps, err := uc.store.Applications().ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, mapError(err)
	}
	return visibleTo(p, apps), nil
}

// ListApplicants is the HR view of everyone who applied to their companies.
func (uc *applicationUsecase) ListApplicants(ctx context.Context, p domain.Principal) ([]domain.Application, error) {
	if !domain.CanBrowseApplications(p) {
		return nil, denied("Only HR or admins can browse applications")
	}

	var companyIDs []int64
	if p.Role == domain.RoleHR {
		if len(p.CompanyIDs) == 0 {
			return []domain.Application{}, nil
		}
		companyIDs = p.CompanyIDs
	}

	apps, err := uc.store.Applications().ListByCompanies(ctx, companyIDs)
	return apps, mapError(err)
}

func visibleTo(p domain.Principal, apps []domain.Application) []domain.Application {
	if p.Role == domain.RoleAdmin {
		return apps
	}
	out := make([]domain.Application, 0, len(apps))
	for _, app := range apps {
		if domain.CanViewApplication(p, &app) {
			out = append(out, app)
		}
	}
	return out
}
