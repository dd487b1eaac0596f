package mocks

import (
	"context"

	"arakkha-job-connect/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type EmployerProfileRepository struct {
	mock.Mock
}

func (m *EmployerProfileRepository) Create(ctx context.Context, profile *domain.EmployerProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *EmployerProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.EmployerProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployerProfile), args.Error(1)
}

func (m *EmployerProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.EmployerProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployerProfile), args.Error(1)
}

func (m *EmployerProfileRepository) Update(ctx context.Context, profile *domain.EmployerProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *EmployerProfileRepository) ListAll(ctx context.Context, params domain.PaginationParams) ([]domain.EmployerProfile, int64, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]domain.EmployerProfile), args.Get(1).(int64), args.Error(2)
}
