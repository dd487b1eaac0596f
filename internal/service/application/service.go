package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"arakkha-job-connect/internal/domain"
	"arakkha-job-connect/internal/repository"
	"arakkha-job-connect/internal/service/email"
	"arakkha-job-connect/internal/service/job"
)

var (
	ErrProfileRequired = errors.New("jobseeker profile required")
	ErrEmployerOnly    = errors.New("only employers can perform this action")
	ErrNotOwner        = errors.New("application does not belong to this employer")
)

type Service interface {
	// Apply admits a jobseeker to a posting. The duplicate check runs
	// pre-flight and again through the unique constraint inside the insert
	// transaction; the capacity gate closes the posting as a committed side
	// effect even when the application itself is refused.
	Apply(ctx context.Context, userID, jobID uuid.UUID, input domain.ApplyInput) (*domain.Application, error)

	// UpdateStatus moves an application along the review pipeline on behalf
	// of the employer owning its job.
	UpdateStatus(ctx context.Context, userID, appID uuid.UUID, input domain.UpdateApplicationStatusInput) (*domain.Application, error)

	// Withdraw removes an application on behalf of its applicant or the
	// owning employer, and reopens the job if the freed slot brings it back
	// under capacity.
	Withdraw(ctx context.Context, userID, appID uuid.UUID) error

	GetByID(ctx context.Context, userID, appID uuid.UUID) (*domain.Application, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]domain.ApplicationListItem, error)
	ListForEmployer(ctx context.Context, userID uuid.UUID) ([]domain.ApplicationListItem, error)
	ListForEmployerByStatus(ctx context.Context, userID uuid.UUID, statusLabel string) ([]domain.ApplicationListItem, error)
	ListRecent(ctx context.Context, limit int) ([]domain.ApplicationListItem, error)
	StatusCounts(ctx context.Context, userID uuid.UUID) (map[string]int64, error)
}

type service struct {
	appRepo       repository.ApplicationRepository
	jobRepo       repository.JobRepository
	jobseekerRepo repository.JobseekerProfileRepository
	employerRepo  repository.EmployerProfileRepository
	userRepo      repository.UserRepository
	auditRepo     repository.AuditLogRepository
	jobSvc        job.Service
	emailSvc      email.Service
}

func NewService(
	appRepo repository.ApplicationRepository,
	jobRepo repository.JobRepository,
	jobseekerRepo repository.JobseekerProfileRepository,
	employerRepo repository.EmployerProfileRepository,
	userRepo repository.UserRepository,
	auditRepo repository.AuditLogRepository,
	jobSvc job.Service,
	emailSvc email.Service,
) Service {
	return &service{
		appRepo:       appRepo,
		jobRepo:       jobRepo,
		jobseekerRepo: jobseekerRepo,
		employerRepo:  employerRepo,
		userRepo:      userRepo,
		auditRepo:     auditRepo,
		jobSvc:        jobSvc,
		emailSvc:      emailSvc,
	}
}

func (s *service) Apply(ctx context.Context, userID, jobID uuid.UUID, input domain.ApplyInput) (*domain.Application, error) {
	profile, err := s.jobseekerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileRequired
	}

	posting, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if posting == nil {
		return nil, repository.ErrJobNotFound
	}

	exists, err := s.appRepo.ExistsByJobAndProfile(ctx, jobID, profile.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, repository.ErrDuplicateApplication
	}

	employer, err := s.employerRepo.GetByID(ctx, posting.EmployerID)
	if err != nil {
		return nil, err
	}
	if employer == nil {
		return nil, repository.ErrJobNotFound
	}

	app := &domain.Application{
		ID:              uuid.New(),
		JobID:           jobID,
		ProfileID:       profile.ID,
		Status:          domain.StatusPending,
		CoverLetterText: input.CoverLetterText,
	}

	notif := &domain.Notification{
		ID:          uuid.New(),
		UserID:      employer.UserID,
		Kind:        domain.NotifApplicationCreated,
		Message:     fmt.Sprintf("%s applied for '%s'.", profile.FullName, posting.Title),
		SubjectKind: domain.SubjectApplication,
		SubjectID:   app.ID,
	}

	if err := s.appRepo.Apply(ctx, app, notif); err != nil {
		return nil, err
	}

	s.sendApplyEmails(profile, employer, posting)

	return app, nil
}

func (s *service) sendApplyEmails(profile *domain.JobseekerProfile, employer *domain.EmployerProfile, posting *domain.Job) {
	if s.emailSvc == nil {
		return
	}

	ctx := context.Background()

	if applicant, err := s.userRepo.GetByID(ctx, profile.UserID); err == nil && applicant != nil {
		go func(toEmail, name, jobTitle string) {
			if err := s.emailSvc.SendApplicationReceivedEmail(context.Background(), toEmail, name, jobTitle); err != nil {
				fmt.Printf("Failed to send application received email: %v\n", err)
			}
		}(applicant.Email, applicant.DisplayName(profile.FullName), posting.Title)
	}

	if owner, err := s.userRepo.GetByID(ctx, employer.UserID); err == nil && owner != nil {
		go func(toEmail, name, applicantName, jobTitle string) {
			if err := s.emailSvc.SendNewApplicantEmail(context.Background(), toEmail, name, applicantName, jobTitle); err != nil {
				fmt.Printf("Failed to send new applicant email: %v\n", err)
			}
		}(owner.Email, owner.DisplayName(employer.BusinessName), profile.FullName, posting.Title)
	}
}

func (s *service) UpdateStatus(ctx context.Context, userID, appID uuid.UUID, input domain.UpdateApplicationStatusInput) (*domain.Application, error) {
	employer, err := s.employerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if employer == nil {
		return nil, ErrEmployerOnly
	}

	app, err := s.appRepo.GetByID(ctx, appID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, repository.ErrApplicationNotFound
	}

	posting, err := s.jobRepo.GetByID(ctx, app.JobID)
	if err != nil {
		return nil, err
	}
	if posting == nil {
		return nil, repository.ErrJobNotFound
	}
	if posting.EmployerID != employer.ID {
		return nil, ErrNotOwner
	}

	next, err := domain.ParseApplicationStatus(input.NewStatus)
	if err != nil {
		return nil, err
	}

	previous := app.Status
	if err := app.Transition(next); err != nil {
		return nil, err
	}

	applicant, err := s.jobseekerRepo.GetByID(ctx, app.ProfileID)
	if err != nil {
		return nil, err
	}
	if applicant == nil {
		return nil, fmt.Errorf("applicant profile %s missing for application %s", app.ProfileID, app.ID)
	}

	notif := &domain.Notification{
		ID:          uuid.New(),
		UserID:      applicant.UserID,
		Kind:        domain.NotifApplicationUpdate,
		Message:     fmt.Sprintf("Your application for '%s' has been updated to '%s'.", posting.Title, app.Status.Display()),
		SubjectKind: domain.SubjectApplication,
		SubjectID:   app.ID,
	}

	if err := s.appRepo.UpdateStatus(ctx, app, notif); err != nil {
		return nil, err
	}

	s.recordTransition(ctx, userID, app, previous)
	s.sendStatusEmail(app, posting)

	return app, nil
}

func (s *service) recordTransition(ctx context.Context, userID uuid.UUID, app *domain.Application, previous domain.ApplicationStatus) {
	oldValue, _ := json.Marshal(map[string]string{"status": string(previous)})
	newValue, _ := json.Marshal(map[string]string{"status": string(app.Status)})

	entry := &domain.AuditLog{
		ID:         uuid.New(),
		UserID:     userID,
		Action:     "UPDATE_STATUS",
		EntityType: "APPLICATION",
		EntityID:   app.ID,
		OldValue:   oldValue,
		NewValue:   newValue,
	}
	if err := s.auditRepo.Create(ctx, entry); err != nil {
		fmt.Printf("Failed to record status transition audit for application %s: %v\n", app.ID, err)
	}
}

func (s *service) sendStatusEmail(app *domain.Application, posting *domain.Job) {
	if s.emailSvc == nil {
		return
	}

	ctx := context.Background()
	profile, err := s.jobseekerRepo.GetByID(ctx, app.ProfileID)
	if err != nil || profile == nil {
		return
	}
	applicant, err := s.userRepo.GetByID(ctx, profile.UserID)
	if err != nil || applicant == nil || applicant.Email == "" {
		return
	}

	go func(toEmail, name, jobTitle, statusDisplay string) {
		if err := s.emailSvc.SendApplicationStatusEmail(context.Background(), toEmail, name, jobTitle, statusDisplay); err != nil {
			fmt.Printf("Failed to send status update email: %v\n", err)
		}
	}(applicant.Email, applicant.DisplayName(profile.FullName), posting.Title, app.Status.Display())
}

func (s *service) Withdraw(ctx context.Context, userID, appID uuid.UUID) error {
	app, err := s.appRepo.GetByID(ctx, appID)
	if err != nil {
		return err
	}
	if app == nil {
		return repository.ErrApplicationNotFound
	}

	allowed, err := s.canView(ctx, userID, app)
	if err != nil {
		return err
	}
	if !allowed {
		return ErrNotOwner
	}

	if err := s.appRepo.Delete(ctx, appID); err != nil {
		return err
	}

	// Freed capacity may reopen the job.
	return s.jobSvc.Reconcile(ctx, app.JobID)
}

func (s *service) GetByID(ctx context.Context, userID, appID uuid.UUID) (*domain.Application, error) {
	app, err := s.appRepo.GetByID(ctx, appID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, repository.ErrApplicationNotFound
	}

	allowed, err := s.canView(ctx, userID, app)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, ErrNotOwner
	}

	return app, nil
}

func (s *service) canView(ctx context.Context, userID uuid.UUID, app *domain.Application) (bool, error) {
	if profile, err := s.jobseekerRepo.GetByUserID(ctx, userID); err != nil {
		return false, err
	} else if profile != nil && profile.ID == app.ProfileID {
		return true, nil
	}

	employer, err := s.employerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return false, err
	}
	if employer == nil {
		return false, nil
	}

	posting, err := s.jobRepo.GetByID(ctx, app.JobID)
	if err != nil {
		return false, err
	}
	return posting != nil && posting.EmployerID == employer.ID, nil
}

func (s *service) ListMine(ctx context.Context, userID uuid.UUID) ([]domain.ApplicationListItem, error) {
	profile, err := s.jobseekerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileRequired
	}

	return s.appRepo.ListByProfile(ctx, profile.ID)
}

func (s *service) ListForEmployer(ctx context.Context, userID uuid.UUID) ([]domain.ApplicationListItem, error) {
	employer, err := s.employerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if employer == nil {
		return nil, ErrEmployerOnly
	}

	return s.appRepo.ListByEmployer(ctx, employer.ID)
}

func (s *service) ListForEmployerByStatus(ctx context.Context, userID uuid.UUID, statusLabel string) ([]domain.ApplicationListItem, error) {
	employer, err := s.employerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if employer == nil {
		return nil, ErrEmployerOnly
	}

	status, err := domain.ParseApplicationStatus(statusLabel)
	if err != nil {
		return nil, err
	}

	return s.appRepo.ListByEmployerAndStatus(ctx, employer.ID, status)
}

func (s *service) ListRecent(ctx context.Context, limit int) ([]domain.ApplicationListItem, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	return s.appRepo.ListRecent(ctx, limit)
}

func (s *service) StatusCounts(ctx context.Context, userID uuid.UUID) (map[string]int64, error) {
	employer, err := s.employerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if employer == nil {
		return nil, ErrEmployerOnly
	}

	counts := make(map[string]int64, 5)
	for _, status := range []domain.ApplicationStatus{
		domain.StatusPending,
		domain.StatusReview,
		domain.StatusShortlist,
		domain.StatusHired,
		domain.StatusRejected,
	} {
		n, err := s.appRepo.CountByEmployerAndStatus(ctx, employer.ID, status)
		if err != nil {
			return nil, err
		}
		counts[status.Label()] = n
	}

	return counts, nil
}
