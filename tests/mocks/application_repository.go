package mocks

import (
	"context"

	"arakkha-job-connect/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type ApplicationRepository struct {
	mock.Mock
}

func (m *ApplicationRepository) Apply(ctx context.Context, app *domain.Application, notif *domain.Notification) error {
	args := m.Called(ctx, app, notif)
	return args.Error(0)
}

func (m *ApplicationRepository) UpdateStatus(ctx context.Context, app *domain.Application, notif *domain.Notification) error {
	args := m.Called(ctx, app, notif)
	return args.Error(0)
}

func (m *ApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *ApplicationRepository) ExistsByJobAndProfile(ctx context.Context, jobID, profileID uuid.UUID) (bool, error) {
	args := m.Called(ctx, jobID, profileID)
	return args.Bool(0), args.Error(1)
}

func (m *ApplicationRepository) CountByJob(ctx context.Context, jobID uuid.UUID) (int, error) {
	args := m.Called(ctx, jobID)
	return args.Int(0), args.Error(1)
}

func (m *ApplicationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ApplicationRepository) ListByProfile(ctx context.Context, profileID uuid.UUID) ([]domain.ApplicationListItem, error) {
	args := m.Called(ctx, profileID)
	return args.Get(0).([]domain.ApplicationListItem), args.Error(1)
}

func (m *ApplicationRepository) ListByEmployer(ctx context.Context, employerID uuid.UUID) ([]domain.ApplicationListItem, error) {
	args := m.Called(ctx, employerID)
	return args.Get(0).([]domain.ApplicationListItem), args.Error(1)
}

func (m *ApplicationRepository) ListByEmployerAndStatus(ctx context.Context, employerID uuid.UUID, status domain.ApplicationStatus) ([]domain.ApplicationListItem, error) {
	args := m.Called(ctx, employerID, status)
	return args.Get(0).([]domain.ApplicationListItem), args.Error(1)
}

func (m *ApplicationRepository) ListRecent(ctx context.Context, limit int) ([]domain.ApplicationListItem, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.ApplicationListItem), args.Error(1)
}

func (m *ApplicationRepository) CountByEmployerAndStatus(ctx context.Context, employerID uuid.UUID, status domain.ApplicationStatus) (int64, error) {
	args := m.Called(ctx, employerID, status)
	return args.Get(0).(int64), args.Error(1)
}
