package mocks

import (
	"context"

	"arakkha-job-connect/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type SavedJobRepository struct {
	mock.Mock
}

func (m *SavedJobRepository) Save(ctx context.Context, saved *domain.SavedJob) error {
	args := m.Called(ctx, saved)
	return args.Error(0)
}

func (m *SavedJobRepository) Unsave(ctx context.Context, profileID, jobID uuid.UUID) error {
	args := m.Called(ctx, profileID, jobID)
	return args.Error(0)
}

func (m *SavedJobRepository) Exists(ctx context.Context, profileID, jobID uuid.UUID) (bool, error) {
	args := m.Called(ctx, profileID, jobID)
	return args.Bool(0), args.Error(1)
}

func (m *SavedJobRepository) ListByProfile(ctx context.Context, profileID uuid.UUID, params domain.PaginationParams) ([]domain.SavedJob, int64, error) {
	args := m.Called(ctx, profileID, params)
	return args.Get(0).([]domain.SavedJob), args.Get(1).(int64), args.Error(2)
}
