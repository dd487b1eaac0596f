package mocks

import (
	"context"

	"arakkha-job-connect/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type JobService struct {
	mock.Mock
}

func (m *JobService) Create(ctx context.Context, userID uuid.UUID, input domain.CreateJobInput) (*domain.Job, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *JobService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *JobService) Update(ctx context.Context, userID, jobID uuid.UUID, input domain.UpdateJobInput) (*domain.Job, error) {
	args := m.Called(ctx, userID, jobID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *JobService) Delete(ctx context.Context, userID, jobID uuid.UUID) error {
	args := m.Called(ctx, userID, jobID)
	return args.Error(0)
}

func (m *JobService) ListActive(ctx context.Context) ([]domain.Job, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *JobService) ListAll(ctx context.Context) ([]domain.Job, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *JobService) ListByEmployer(ctx context.Context, userID uuid.UUID) ([]domain.Job, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *JobService) Search(ctx context.Context, params domain.JobSearchParams) ([]domain.Job, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *JobService) Reconcile(ctx context.Context, jobID uuid.UUID) error {
	args := m.Called(ctx, jobID)
	return args.Error(0)
}

func (m *JobService) CreateCategory(ctx context.Context, userID uuid.UUID, input domain.CreateJobCategoryInput) (*domain.JobCategory, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobCategory), args.Error(1)
}

func (m *JobService) ListCategories(ctx context.Context, userID uuid.UUID) ([]domain.JobCategory, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.JobCategory), args.Error(1)
}

func (m *JobService) DeleteCategory(ctx context.Context, id, userID uuid.UUID) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}
