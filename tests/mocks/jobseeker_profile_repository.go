package mocks

import (
	"context"

	"arakkha-job-connect/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type JobseekerProfileRepository struct {
	mock.Mock
}

func (m *JobseekerProfileRepository) Create(ctx context.Context, profile *domain.JobseekerProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *JobseekerProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.JobseekerProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobseekerProfile), args.Error(1)
}

func (m *JobseekerProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.JobseekerProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobseekerProfile), args.Error(1)
}

func (m *JobseekerProfileRepository) Update(ctx context.Context, profile *domain.JobseekerProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *JobseekerProfileRepository) CreateResume(ctx context.Context, resume *domain.Resume) error {
	args := m.Called(ctx, resume)
	return args.Error(0)
}

func (m *JobseekerProfileRepository) ListResumes(ctx context.Context, profileID uuid.UUID) ([]domain.Resume, error) {
	args := m.Called(ctx, profileID)
	return args.Get(0).([]domain.Resume), args.Error(1)
}

func (m *JobseekerProfileRepository) GetResume(ctx context.Context, id, profileID uuid.UUID) (*domain.Resume, error) {
	args := m.Called(ctx, id, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resume), args.Error(1)
}

func (m *JobseekerProfileRepository) DeleteResume(ctx context.Context, id, profileID uuid.UUID) error {
	args := m.Called(ctx, id, profileID)
	return args.Error(0)
}
