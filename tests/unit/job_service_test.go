package unit_test

import (
	"context"
	"testing"
	"time"

	"arakkha-job-connect/internal/domain"
	"arakkha-job-connect/internal/service/job"
	"arakkha-job-connect/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestJobService_Create(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	employerID := uuid.New()
	employer := &domain.EmployerProfile{ID: employerID, UserID: userID, BusinessName: "Arakkha Tech"}

	t.Run("Success", func(t *testing.T) {
		mockJobRepo := new(mocks.JobRepository)
		mockAppRepo := new(mocks.ApplicationRepository)
		mockEmployerRepo := new(mocks.EmployerProfileRepository)
		mockNotifSvc := new(mocks.NotificationService)

		svc := job.NewService(mockJobRepo, mockAppRepo, mockEmployerRepo, mockNotifSvc, nil)

		mockEmployerRepo.On("GetByUserID", ctx, userID).Return(employer, nil).Once()
		mockJobRepo.On("Create", ctx, mock.MatchedBy(func(j *domain.Job) bool {
			return j.EmployerID == employerID && j.IsActive &&
				j.Priority == domain.PriorityNormal && j.MaxApplicants == 3
		})).Return(nil).Once()
		mockNotifSvc.On("NotifyJobCreated", ctx, mock.Anything, userID).Return(nil).Once()

		created, err := svc.Create(ctx, userID, domain.CreateJobInput{
			Title:         "Backend Engineer",
			Description:   "Build the platform.",
			MaxApplicants: 3,
		})

		assert.NoError(t, err)
		assert.True(t, created.IsActive)
		assert.Equal(t, employerID, created.EmployerID)

		mockJobRepo.AssertExpectations(t)
		mockNotifSvc.AssertExpectations(t)
	})

	t.Run("Requires Employer Profile", func(t *testing.T) {
		mockJobRepo := new(mocks.JobRepository)
		mockAppRepo := new(mocks.ApplicationRepository)
		mockEmployerRepo := new(mocks.EmployerProfileRepository)
		mockNotifSvc := new(mocks.NotificationService)

		svc := job.NewService(mockJobRepo, mockAppRepo, mockEmployerRepo, mockNotifSvc, nil)

		mockEmployerRepo.On("GetByUserID", ctx, userID).Return(nil, nil).Once()

		created, err := svc.Create(ctx, userID, domain.CreateJobInput{Title: "Backend Engineer"})

		assert.ErrorIs(t, err, job.ErrEmployerProfileRequired)
		assert.Nil(t, created)
		mockJobRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestJobService_Update(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	employerID := uuid.New()
	jobID := uuid.New()
	employer := &domain.EmployerProfile{ID: employerID, UserID: userID, BusinessName: "Arakkha Tech"}

	newService := func() (job.Service, *mocks.JobRepository, *mocks.ApplicationRepository, *mocks.EmployerProfileRepository) {
		mockJobRepo := new(mocks.JobRepository)
		mockAppRepo := new(mocks.ApplicationRepository)
		mockEmployerRepo := new(mocks.EmployerProfileRepository)
		svc := job.NewService(mockJobRepo, mockAppRepo, mockEmployerRepo, new(mocks.NotificationService), nil)
		return svc, mockJobRepo, mockAppRepo, mockEmployerRepo
	}

	t.Run("Raising The Cap Reopens A Closed Job", func(t *testing.T) {
		svc, mockJobRepo, mockAppRepo, mockEmployerRepo := newService()

		posting := &domain.Job{ID: jobID, EmployerID: employerID, Title: "Backend Engineer", IsActive: false, MaxApplicants: 1}

		mockEmployerRepo.On("GetByUserID", ctx, userID).Return(employer, nil).Once()
		mockJobRepo.On("GetByID", ctx, jobID).Return(posting, nil)
		mockJobRepo.On("Update", ctx, mock.MatchedBy(func(j *domain.Job) bool {
			return j.ID == jobID && j.MaxApplicants == 2
		})).Return(nil).Once()
		mockAppRepo.On("CountByJob", ctx, jobID).Return(1, nil).Once()
		mockJobRepo.On("SetActive", ctx, jobID, true).Return(nil).Once()

		newMax := 2
		updated, err := svc.Update(ctx, userID, jobID, domain.UpdateJobInput{MaxApplicants: &newMax})

		assert.NoError(t, err)
		assert.NotNil(t, updated)
		mockJobRepo.AssertExpectations(t)
	})

	t.Run("Lowering The Cap Closes A Full Job", func(t *testing.T) {
		svc, mockJobRepo, mockAppRepo, mockEmployerRepo := newService()

		posting := &domain.Job{ID: jobID, EmployerID: employerID, Title: "Backend Engineer", IsActive: true, MaxApplicants: 5}

		mockEmployerRepo.On("GetByUserID", ctx, userID).Return(employer, nil).Once()
		mockJobRepo.On("GetByID", ctx, jobID).Return(posting, nil)
		mockJobRepo.On("Update", ctx, mock.Anything).Return(nil).Once()
		mockAppRepo.On("CountByJob", ctx, jobID).Return(3, nil).Once()
		mockJobRepo.On("SetActive", ctx, jobID, false).Return(nil).Once()

		newMax := 2
		_, err := svc.Update(ctx, userID, jobID, domain.UpdateJobInput{MaxApplicants: &newMax})

		assert.NoError(t, err)
		mockJobRepo.AssertExpectations(t)
	})
}

func TestJobService_Reconcile(t *testing.T) {
	ctx := context.Background()
	jobID := uuid.New()

	newService := func() (job.Service, *mocks.JobRepository, *mocks.ApplicationRepository) {
		mockJobRepo := new(mocks.JobRepository)
		mockAppRepo := new(mocks.ApplicationRepository)
		svc := job.NewService(mockJobRepo, mockAppRepo, new(mocks.EmployerProfileRepository), new(mocks.NotificationService), nil)
		return svc, mockJobRepo, mockAppRepo
	}

	t.Run("Closes Full Job", func(t *testing.T) {
		svc, mockJobRepo, mockAppRepo := newService()

		posting := &domain.Job{ID: jobID, IsActive: true, MaxApplicants: 2}
		mockJobRepo.On("GetByID", ctx, jobID).Return(posting, nil).Once()
		mockAppRepo.On("CountByJob", ctx, jobID).Return(2, nil).Once()
		mockJobRepo.On("SetActive", ctx, jobID, false).Return(nil).Once()

		assert.NoError(t, svc.Reconcile(ctx, jobID))
		mockJobRepo.AssertExpectations(t)
	})

	t.Run("Reopens Job With Freed Capacity", func(t *testing.T) {
		svc, mockJobRepo, mockAppRepo := newService()

		posting := &domain.Job{ID: jobID, IsActive: false, MaxApplicants: 2}
		mockJobRepo.On("GetByID", ctx, jobID).Return(posting, nil).Once()
		mockAppRepo.On("CountByJob", ctx, jobID).Return(1, nil).Once()
		mockJobRepo.On("SetActive", ctx, jobID, true).Return(nil).Once()

		assert.NoError(t, svc.Reconcile(ctx, jobID))
		mockJobRepo.AssertExpectations(t)
	})

	t.Run("Never Reopens Past Deadline", func(t *testing.T) {
		svc, mockJobRepo, mockAppRepo := newService()

		deadline := time.Now().AddDate(0, 0, -7)
		posting := &domain.Job{ID: jobID, IsActive: false, MaxApplicants: 2, Deadline: &deadline}
		mockJobRepo.On("GetByID", ctx, jobID).Return(posting, nil).Once()
		mockAppRepo.On("CountByJob", ctx, jobID).Return(1, nil).Once()

		assert.NoError(t, svc.Reconcile(ctx, jobID))
		mockJobRepo.AssertNotCalled(t, "SetActive", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Active Job With Room Is Untouched", func(t *testing.T) {
		svc, mockJobRepo, mockAppRepo := newService()

		posting := &domain.Job{ID: jobID, IsActive: true, MaxApplicants: 5}
		mockJobRepo.On("GetByID", ctx, jobID).Return(posting, nil).Once()
		mockAppRepo.On("CountByJob", ctx, jobID).Return(2, nil).Once()

		assert.NoError(t, svc.Reconcile(ctx, jobID))
		mockJobRepo.AssertNotCalled(t, "SetActive", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unlimited Job Never Closes", func(t *testing.T) {
		svc, mockJobRepo, mockAppRepo := newService()

		posting := &domain.Job{ID: jobID, IsActive: true, MaxApplicants: 0}
		mockJobRepo.On("GetByID", ctx, jobID).Return(posting, nil).Once()
		mockAppRepo.On("CountByJob", ctx, jobID).Return(9000, nil).Once()

		assert.NoError(t, svc.Reconcile(ctx, jobID))
		mockJobRepo.AssertNotCalled(t, "SetActive", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestJobService_ListActive(t *testing.T) {
	ctx := context.Background()

	mockJobRepo := new(mocks.JobRepository)
	mockAppRepo := new(mocks.ApplicationRepository)
	svc := job.NewService(mockJobRepo, mockAppRepo, new(mocks.EmployerProfileRepository), new(mocks.NotificationService), nil)

	jobs := []domain.Job{{ID: uuid.New(), Title: "Backend Engineer", IsActive: true}}
	mockJobRepo.On("DeactivateExpired", ctx).Return(int64(0), nil).Once()
	mockJobRepo.On("ListActive", ctx).Return(jobs, nil).Once()

	result, err := svc.ListActive(ctx)

	assert.NoError(t, err)
	assert.Equal(t, jobs, result)
	mockJobRepo.AssertExpectations(t)
}
