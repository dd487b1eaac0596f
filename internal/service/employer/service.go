package employer

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
)

var (
	ErrProfileExists   = errors.New("employer profile already exists")
	ErrProfileRequired = errors.New("employer profile required")
)

type Service interface {
	CreateProfile(ctx context.Context, userID uuid.UUID, input domain.UpsertEmployerProfileInput) (*domain.EmployerProfile, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.EmployerProfile, error)
	GetProfileByID(ctx context.Context, id uuid.UUID) (*domain.EmployerProfile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input domain.UpsertEmployerProfileInput) (*domain.EmployerProfile, error)
	ListAll(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.EmployerProfile], error)
	GetDashboard(ctx context.Context, userID uuid.UUID) (*Dashboard, error)
}

// Dashboard is the employer landing page summary.
type Dashboard struct {
	TotalJobs          int64                        `json:"total_jobs"`
	ActiveJobs         int64                        `json:"active_jobs"`
	TotalApplications  int64                        `json:"total_applications"`
	StatusCounts       map[string]int64             `json:"status_counts"`
	RecentApplications []domain.ApplicationListItem `json:"recent_applications"`
}

type service struct {
	employerRepo repository.EmployerProfileRepository
	jobRepo      repository.JobRepository
	appRepo      repository.ApplicationRepository
	redis        *redis.Client
}

func NewService(
	employerRepo repository.EmployerProfileRepository,
	jobRepo repository.JobRepository,
	appRepo repository.ApplicationRepository,
	redisClient *redis.Client,
) Service {
	return &service{
		employerRepo: employerRepo,
		jobRepo:      jobRepo,
		appRepo:      appRepo,
		redis:        redisClient,
	}
}

func (s *service) CreateProfile(ctx context.Context, userID uuid.UUID, input domain.UpsertEmployerProfileInput) (*domain.EmployerProfile, error) {
	existing, err := s.employerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrProfileExists
	}

	profile := &domain.EmployerProfile{
		ID:           uuid.New(),
		UserID:       userID,
		BusinessName: input.BusinessName,
		About:        input.About,
		Website:      input.Website,
		Location:     input.Location,
	}

	if err := s.employerRepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *service) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.EmployerProfile, error) {
	profile, err := s.employerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileRequired
	}
	return profile, nil
}

func (s *service) GetProfileByID(ctx context.Context, id uuid.UUID) (*domain.EmployerProfile, error) {
	profile, err := s.employerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileRequired
	}
	return profile, nil
}

func (s *service) UpdateProfile(ctx context.Context, userID uuid.UUID, input domain.UpsertEmployerProfileInput) (*domain.EmployerProfile, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.BusinessName = input.BusinessName
	profile.About = input.About
	profile.Website = input.Website
	profile.Location = input.Location

	if err := s.employerRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	if s.redis != nil {
		_ = s.redis.Del(ctx, dashboardCacheKey(userID)).Err()
	}
	return profile, nil
}

func (s *service) ListAll(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.EmployerProfile], error) {
	profiles, total, err := s.employerRepo.ListAll(ctx, params)
	if err != nil {
		return domain.PaginatedResponse[domain.EmployerProfile]{}, err
	}
	return domain.NewPaginatedResponse(profiles, params.Page, params.PageSize, total), nil
}

func (s *service) GetDashboard(ctx context.Context, userID uuid.UUID) (*Dashboard, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	cacheKey := dashboardCacheKey(userID)
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var dashboard Dashboard
			if json.Unmarshal([]byte(cached), &dashboard) == nil {
				return &dashboard, nil
			}
		}
	}

	jobs, err := s.jobRepo.ListByEmployer(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	dashboard := &Dashboard{
		TotalJobs:    int64(len(jobs)),
		StatusCounts: make(map[string]int64, 5),
	}
	for _, j := range jobs {
		if j.IsActive {
			dashboard.ActiveJobs++
		}
	}

	for _, status := range []domain.ApplicationStatus{
		domain.StatusPending,
		domain.StatusReview,
		domain.StatusShortlist,
		domain.StatusHired,
		domain.StatusRejected,
	} {
		n, err := s.appRepo.CountByEmployerAndStatus(ctx, profile.ID, status)
		if err != nil {
			return nil, err
		}
		dashboard.StatusCounts[status.Label()] = n
		dashboard.TotalApplications += n
	}

	recent, err := s.appRepo.ListByEmployer(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	if len(recent) > 5 {
		recent = recent[:5]
	}
	dashboard.RecentApplications = recent

	if s.redis != nil {
		if dashboardJSON, err := json.Marshal(dashboard); err == nil {
			_ = s.redis.Set(ctx, cacheKey, dashboardJSON, 2*time.Minute).Err()
		}
	}

	return dashboard, nil
}

func dashboardCacheKey(userID uuid.UUID) string {
	return fmt.Sprintf("dashboard:employer:%s", userID)
}
