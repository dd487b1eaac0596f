package savedjob

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"arakkha-job-connect/internal/domain"
	"arakkha-job-connect/internal/repository"
)

var ErrProfileRequired = errors.New("jobseeker profile required")

type Service interface {
	Save(ctx context.Context, userID, jobID uuid.UUID) (*domain.SavedJob, error)
	Unsave(ctx context.Context, userID, jobID uuid.UUID) error
	IsSaved(ctx context.Context, userID, jobID uuid.UUID) (bool, error)
	List(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.SavedJob], error)
}

type service struct {
	savedRepo repository.SavedJobRepository
	jobRepo   repository.JobRepository
	profRepo  repository.JobseekerProfileRepository
}

func NewService(savedRepo repository.SavedJobRepository, jobRepo repository.JobRepository, profRepo repository.JobseekerProfileRepository) Service {
	return &service{
		savedRepo: savedRepo,
		jobRepo:   jobRepo,
		profRepo:  profRepo,
	}
}

func (s *service) Save(ctx context.Context, userID, jobID uuid.UUID) (*domain.SavedJob, error) {
	profile, err := s.profRepo.GetByUserID(ctx, userID)
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

	saved := &domain.SavedJob{
		ID:        uuid.New(),
		ProfileID: profile.ID,
		JobID:     jobID,
	}

	if err := s.savedRepo.Save(ctx, saved); err != nil {
		return nil, err
	}

	saved.JobTitle = posting.Title
	return saved, nil
}

func (s *service) Unsave(ctx context.Context, userID, jobID uuid.UUID) error {
	profile, err := s.profRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if profile == nil {
		return ErrProfileRequired
	}

	return s.savedRepo.Unsave(ctx, profile.ID, jobID)
}

func (s *service) IsSaved(ctx context.Context, userID, jobID uuid.UUID) (bool, error) {
	profile, err := s.profRepo.GetByUserID(ctx, userID)
	if err != nil {
		return false, err
	}
	if profile == nil {
		return false, nil
	}

	return s.savedRepo.Exists(ctx, profile.ID, jobID)
}

func (s *service) List(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.SavedJob], error) {
	profile, err := s.profRepo.GetByUserID(ctx, userID)
	if err != nil {
		return domain.PaginatedResponse[domain.SavedJob]{}, err
	}
	if profile == nil {
		return domain.PaginatedResponse[domain.SavedJob]{}, ErrProfileRequired
	}

	saved, total, err := s.savedRepo.ListByProfile(ctx, profile.ID, params)
	if err != nil {
		return domain.PaginatedResponse[domain.SavedJob]{}, err
	}

	return domain.NewPaginatedResponse(saved, params.Page, params.PageSize, total), nil
}
