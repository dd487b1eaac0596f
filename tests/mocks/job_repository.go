package mocks

import (
	"context"

	"arakkha-job-connect/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type JobRepository struct {
	mock.Mock
}

func (m *JobRepository) Create(ctx context.Context, job *domain.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *JobRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *JobRepository) Update(ctx context.Context, job *domain.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *JobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *JobRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

func (m *JobRepository) ListActive(ctx context.Context) ([]domain.Job, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *JobRepository) ListByEmployer(ctx context.Context, employerID uuid.UUID) ([]domain.Job, error) {
	args := m.Called(ctx, employerID)
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *JobRepository) ListAll(ctx context.Context) ([]domain.Job, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *JobRepository) Search(ctx context.Context, params domain.JobSearchParams) ([]domain.Job, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *JobRepository) DeactivateExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *JobRepository) CreateCategory(ctx context.Context, category *domain.JobCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *JobRepository) ListCategoriesByUser(ctx context.Context, userID uuid.UUID) ([]domain.JobCategory, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.JobCategory), args.Error(1)
}

func (m *JobRepository) DeleteCategory(ctx context.Context, id, userID uuid.UUID) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}
