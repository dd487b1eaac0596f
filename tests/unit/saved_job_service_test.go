package unit_test

import (
	"context"
	"testing"

	"arakkha-job-connect/internal/domain"
	"arakkha-job-connect/internal/repository"
	"arakkha-job-connect/internal/service/savedjob"
	"arakkha-job-connect/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSavedJobService_Save(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	jobID := uuid.New()
	profileID := uuid.New()

	profile := &domain.JobseekerProfile{ID: profileID, UserID: userID}
	posting := &domain.Job{ID: jobID, Title: "Backend Engineer"}

	t.Run("Success", func(t *testing.T) {
		mockSavedRepo := new(mocks.SavedJobRepository)
		mockJobRepo := new(mocks.JobRepository)
		mockProfileRepo := new(mocks.JobseekerProfileRepository)
		svc := savedjob.NewService(mockSavedRepo, mockJobRepo, mockProfileRepo)

		mockProfileRepo.On("GetByUserID", ctx, userID).Return(profile, nil).Once()
		mockJobRepo.On("GetByID", ctx, jobID).Return(posting, nil).Once()
		mockSavedRepo.On("Save", ctx, mock.MatchedBy(func(s *domain.SavedJob) bool {
			return s.ProfileID == profileID && s.JobID == jobID
		})).Return(nil).Once()

		saved, err := svc.Save(ctx, userID, jobID)

		assert.NoError(t, err)
		assert.Equal(t, "Backend Engineer", saved.JobTitle)
		mockSavedRepo.AssertExpectations(t)
	})

	t.Run("Already Saved", func(t *testing.T) {
		mockSavedRepo := new(mocks.SavedJobRepository)
		mockJobRepo := new(mocks.JobRepository)
		mockProfileRepo := new(mocks.JobseekerProfileRepository)
		svc := savedjob.NewService(mockSavedRepo, mockJobRepo, mockProfileRepo)

		mockProfileRepo.On("GetByUserID", ctx, userID).Return(profile, nil).Once()
		mockJobRepo.On("GetByID", ctx, jobID).Return(posting, nil).Once()
		mockSavedRepo.On("Save", ctx, mock.Anything).Return(repository.ErrJobAlreadySaved).Once()

		saved, err := svc.Save(ctx, userID, jobID)

		assert.ErrorIs(t, err, repository.ErrJobAlreadySaved)
		assert.Nil(t, saved)
	})

	t.Run("No Profile", func(t *testing.T) {
		mockSavedRepo := new(mocks.SavedJobRepository)
		mockJobRepo := new(mocks.JobRepository)
		mockProfileRepo := new(mocks.JobseekerProfileRepository)
		svc := savedjob.NewService(mockSavedRepo, mockJobRepo, mockProfileRepo)

		mockProfileRepo.On("GetByUserID", ctx, userID).Return(nil, nil).Once()

		saved, err := svc.Save(ctx, userID, jobID)

		assert.ErrorIs(t, err, savedjob.ErrProfileRequired)
		assert.Nil(t, saved)
	})

	t.Run("Job Not Found", func(t *testing.T) {
		mockSavedRepo := new(mocks.SavedJobRepository)
		mockJobRepo := new(mocks.JobRepository)
		mockProfileRepo := new(mocks.JobseekerProfileRepository)
		svc := savedjob.NewService(mockSavedRepo, mockJobRepo, mockProfileRepo)

		mockProfileRepo.On("GetByUserID", ctx, userID).Return(profile, nil).Once()
		mockJobRepo.On("GetByID", ctx, jobID).Return(nil, nil).Once()

		saved, err := svc.Save(ctx, userID, jobID)

		assert.ErrorIs(t, err, repository.ErrJobNotFound)
		assert.Nil(t, saved)
	})
}

func TestSavedJobService_Unsave(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	jobID := uuid.New()
	profileID := uuid.New()
	profile := &domain.JobseekerProfile{ID: profileID, UserID: userID}

	mockSavedRepo := new(mocks.SavedJobRepository)
	mockJobRepo := new(mocks.JobRepository)
	mockProfileRepo := new(mocks.JobseekerProfileRepository)
	svc := savedjob.NewService(mockSavedRepo, mockJobRepo, mockProfileRepo)

	mockProfileRepo.On("GetByUserID", ctx, userID).Return(profile, nil).Once()
	mockSavedRepo.On("Unsave", ctx, profileID, jobID).Return(nil).Once()

	assert.NoError(t, svc.Unsave(ctx, userID, jobID))
	mockSavedRepo.AssertExpectations(t)
}
