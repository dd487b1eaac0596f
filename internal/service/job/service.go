package job

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"arakkha-job-connect/internal/domain"
	"arakkha-job-connect/internal/repository"
	"arakkha-job-connect/internal/service/notification"
)

var (
	ErrNotOwner                = errors.New("job does not belong to this employer")
	ErrEmployerProfileRequired = errors.New("employer profile required")
)

const activeJobsCacheKey = "jobs:active"

type Service interface {
	Create(ctx context.Context, userID uuid.UUID, input domain.CreateJobInput) (*domain.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Job, error)
	Update(ctx context.Context, userID, jobID uuid.UUID, input domain.UpdateJobInput) (*domain.Job, error)
	Delete(ctx context.Context, userID, jobID uuid.UUID) error

	ListActive(ctx context.Context) ([]domain.Job, error)
	ListAll(ctx context.Context) ([]domain.Job, error)
	ListByEmployer(ctx context.Context, userID uuid.UUID) ([]domain.Job, error)
	Search(ctx context.Context, params domain.JobSearchParams) ([]domain.Job, error)

	// Reconcile re-derives is_active from the confirmed application count.
	// Called after an application is removed or max_applicants is edited;
	// admission-time closing happens inside the application transaction.
	Reconcile(ctx context.Context, jobID uuid.UUID) error

	CreateCategory(ctx context.Context, userID uuid.UUID, input domain.CreateJobCategoryInput) (*domain.JobCategory, error)
	ListCategories(ctx context.Context, userID uuid.UUID) ([]domain.JobCategory, error)
	DeleteCategory(ctx context.Context, id, userID uuid.UUID) error
}

type service struct {
	jobRepo      repository.JobRepository
	appRepo      repository.ApplicationRepository
	employerRepo repository.EmployerProfileRepository
	notifSvc     notification.Service
	redis        *redis.Client
}

func NewService(
	jobRepo repository.JobRepository,
	appRepo repository.ApplicationRepository,
	employerRepo repository.EmployerProfileRepository,
	notifSvc notification.Service,
	redisClient *redis.Client,
) Service {
	return &service{
		jobRepo:      jobRepo,
		appRepo:      appRepo,
		employerRepo: employerRepo,
		notifSvc:     notifSvc,
		redis:        redisClient,
	}
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, input domain.CreateJobInput) (*domain.Job, error) {
	employer, err := s.employerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if employer == nil {
		return nil, ErrEmployerProfileRequired
	}

	priority := domain.PriorityNormal
	if input.Priority != nil {
		priority = domain.JobPriority(*input.Priority)
	}
	jobType := input.JobType
	if jobType == "" {
		jobType = domain.JobTypeFull
	}

	job := &domain.Job{
		ID:            uuid.New(),
		EmployerID:    employer.ID,
		Title:         input.Title,
		Description:   input.Description,
		Location:      input.Location,
		JobType:       jobType,
		Salary:        input.Salary,
		CategoryID:    input.CategoryID,
		IsActive:      true,
		MaxApplicants: input.MaxApplicants,
		Deadline:      input.Deadline,
		Priority:      priority,
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}

	if err := s.notifSvc.NotifyJobCreated(ctx, job, employer.UserID); err != nil {
		fmt.Printf("Failed to create job notification for employer %s: %v\n", employer.UserID, err)
	}

	s.invalidateCache(ctx)
	return job, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, repository.ErrJobNotFound
	}
	return job, nil
}

func (s *service) Update(ctx context.Context, userID, jobID uuid.UUID, input domain.UpdateJobInput) (*domain.Job, error) {
	job, err := s.ownedJob(ctx, userID, jobID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		job.Title = *input.Title
	}
	if input.Description != nil {
		job.Description = *input.Description
	}
	if input.Location != nil {
		job.Location = *input.Location
	}
	if input.JobType != nil {
		job.JobType = *input.JobType
	}
	if input.Salary != nil {
		job.Salary = *input.Salary
	}
	if input.CategoryID != nil {
		job.CategoryID = *input.CategoryID
	}
	if input.MaxApplicants != nil {
		job.MaxApplicants = *input.MaxApplicants
	}
	if input.Deadline != nil {
		job.Deadline = *input.Deadline
	}
	if input.Priority != nil {
		job.Priority = domain.JobPriority(*input.Priority)
	}

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}

	// Raising max_applicants above the current count reopens a job that was
	// closed by the capacity gate.
	if err := s.Reconcile(ctx, job.ID); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return s.GetByID(ctx, job.ID)
}

func (s *service) Delete(ctx context.Context, userID, jobID uuid.UUID) error {
	if _, err := s.ownedJob(ctx, userID, jobID); err != nil {
		return err
	}

	if err := s.jobRepo.Delete(ctx, jobID); err != nil {
		return err
	}

	s.invalidateCache(ctx)
	return nil
}

func (s *service) ListActive(ctx context.Context) ([]domain.Job, error) {
	expired, err := s.jobRepo.DeactivateExpired(ctx)
	if err != nil {
		return nil, err
	}
	if expired > 0 {
		s.invalidateCache(ctx)
	}

	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, activeJobsCacheKey).Result(); err == nil {
			var jobs []domain.Job
			if json.Unmarshal([]byte(cached), &jobs) == nil {
				return jobs, nil
			}
		}
	}

	jobs, err := s.jobRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if jobsJSON, err := json.Marshal(jobs); err == nil {
			_ = s.redis.Set(ctx, activeJobsCacheKey, jobsJSON, 5*time.Minute).Err()
		}
	}

	return jobs, nil
}

func (s *service) ListAll(ctx context.Context) ([]domain.Job, error) {
	if _, err := s.jobRepo.DeactivateExpired(ctx); err != nil {
		return nil, err
	}
	return s.jobRepo.ListAll(ctx)
}

func (s *service) ListByEmployer(ctx context.Context, userID uuid.UUID) ([]domain.Job, error) {
	employer, err := s.employerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if employer == nil {
		return nil, ErrEmployerProfileRequired
	}

	return s.jobRepo.ListByEmployer(ctx, employer.ID)
}

func (s *service) Search(ctx context.Context, params domain.JobSearchParams) ([]domain.Job, error) {
	if _, err := s.jobRepo.DeactivateExpired(ctx); err != nil {
		return nil, err
	}
	return s.jobRepo.Search(ctx, params)
}

func (s *service) Reconcile(ctx context.Context, jobID uuid.UUID) error {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return err
	}
	if job == nil {
		return repository.ErrJobNotFound
	}

	count, err := s.appRepo.CountByJob(ctx, jobID)
	if err != nil {
		return err
	}

	switch {
	case job.IsActive && !job.AcceptsMore(count):
		if err := s.jobRepo.SetActive(ctx, jobID, false); err != nil {
			return err
		}
		s.invalidateCache(ctx)
	case !job.IsActive && job.AcceptsMore(count) && !job.DeadlinePassed(time.Now()):
		if err := s.jobRepo.SetActive(ctx, jobID, true); err != nil {
			return err
		}
		s.invalidateCache(ctx)
	}

	return nil
}

func (s *service) CreateCategory(ctx context.Context, userID uuid.UUID, input domain.CreateJobCategoryInput) (*domain.JobCategory, error) {
	category := &domain.JobCategory{
		ID:     uuid.New(),
		UserID: userID,
		Name:   input.Name,
	}

	if err := s.jobRepo.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *service) ListCategories(ctx context.Context, userID uuid.UUID) ([]domain.JobCategory, error) {
	return s.jobRepo.ListCategoriesByUser(ctx, userID)
}

func (s *service) DeleteCategory(ctx context.Context, id, userID uuid.UUID) error {
	return s.jobRepo.DeleteCategory(ctx, id, userID)
}

func (s *service) ownedJob(ctx context.Context, userID, jobID uuid.UUID) (*domain.Job, error) {
	employer, err := s.employerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if employer == nil {
		return nil, ErrEmployerProfileRequired
	}

	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, repository.ErrJobNotFound
	}
	if job.EmployerID != employer.ID {
		return nil, ErrNotOwner
	}

	return job, nil
}

func (s *service) invalidateCache(ctx context.Context) {
	if s.redis != nil {
		_ = s.redis.Del(ctx, activeJobsCacheKey).Err()
	}
}
