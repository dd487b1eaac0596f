package unit_test

import (
	"context"
	"errors"
	"testing"

	"arakkha-job-connect/internal/domain"
	"arakkha-job-connect/internal/repository"
	"arakkha-job-connect/internal/service/application"
	"arakkha-job-connect/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type applicationServiceMocks struct {
	appRepo       *mocks.ApplicationRepository
	jobRepo       *mocks.JobRepository
	jobseekerRepo *mocks.JobseekerProfileRepository
	employerRepo  *mocks.EmployerProfileRepository
	userRepo      *mocks.UserRepository
	auditRepo     *mocks.AuditLogRepository
	jobSvc        *mocks.JobService
}

func newApplicationService(m *applicationServiceMocks) application.Service {
	return application.NewService(
		m.appRepo, m.jobRepo, m.jobseekerRepo, m.employerRepo,
		m.userRepo, m.auditRepo, m.jobSvc, nil,
	)
}

func newApplicationServiceMocks() *applicationServiceMocks {
	return &applicationServiceMocks{
		appRepo:       new(mocks.ApplicationRepository),
		jobRepo:       new(mocks.JobRepository),
		jobseekerRepo: new(mocks.JobseekerProfileRepository),
		employerRepo:  new(mocks.EmployerProfileRepository),
		userRepo:      new(mocks.UserRepository),
		auditRepo:     new(mocks.AuditLogRepository),
		jobSvc:        new(mocks.JobService),
	}
}

func TestApplicationService_Apply(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	jobID := uuid.New()
	profileID := uuid.New()
	employerID := uuid.New()
	employerUserID := uuid.New()

	profile := &domain.JobseekerProfile{ID: profileID, UserID: userID, FullName: "Sari Dewi"}
	posting := &domain.Job{ID: jobID, EmployerID: employerID, Title: "Backend Engineer", IsActive: true, MaxApplicants: 5}
	employer := &domain.EmployerProfile{ID: employerID, UserID: employerUserID, BusinessName: "Arakkha Tech"}

	t.Run("Success", func(t *testing.T) {
		m := newApplicationServiceMocks()
		svc := newApplicationService(m)

		m.jobseekerRepo.On("GetByUserID", ctx, userID).Return(profile, nil).Once()
		m.jobRepo.On("GetByID", ctx, jobID).Return(posting, nil).Once()
		m.appRepo.On("ExistsByJobAndProfile", ctx, jobID, profileID).Return(false, nil).Once()
		m.employerRepo.On("GetByID", ctx, employerID).Return(employer, nil).Once()
		m.appRepo.On("Apply", ctx, mock.MatchedBy(func(app *domain.Application) bool {
			return app.JobID == jobID && app.ProfileID == profileID && app.Status == domain.StatusPending
		}), mock.MatchedBy(func(notif *domain.Notification) bool {
			return notif.UserID == employerUserID &&
				notif.Kind == domain.NotifApplicationCreated &&
				notif.Message == "Sari Dewi applied for 'Backend Engineer'."
		})).Return(nil).Once()

		app, err := svc.Apply(ctx, userID, jobID, domain.ApplyInput{CoverLetterText: "Dear hiring team"})

		assert.NoError(t, err)
		assert.NotNil(t, app)
		assert.Equal(t, domain.StatusPending, app.Status)
		assert.Equal(t, "Dear hiring team", app.CoverLetterText)

		m.appRepo.AssertExpectations(t)
	})

	t.Run("No Jobseeker Profile", func(t *testing.T) {
		m := newApplicationServiceMocks()
		svc := newApplicationService(m)

		m.jobseekerRepo.On("GetByUserID", ctx, userID).Return(nil, nil).Once()

		app, err := svc.Apply(ctx, userID, jobID, domain.ApplyInput{})

		assert.ErrorIs(t, err, application.ErrProfileRequired)
		assert.Nil(t, app)
	})

	t.Run("Job Not Found", func(t *testing.T) {
		m := newApplicationServiceMocks()
		svc := newApplicationService(m)

		m.jobseekerRepo.On("GetByUserID", ctx, userID).Return(profile, nil).Once()
		m.jobRepo.On("GetByID", ctx, jobID).Return(nil, nil).Once()

		app, err := svc.Apply(ctx, userID, jobID, domain.ApplyInput{})

		assert.ErrorIs(t, err, repository.ErrJobNotFound)
		assert.Nil(t, app)
	})

	t.Run("Already Applied", func(t *testing.T) {
		m := newApplicationServiceMocks()
		svc := newApplicationService(m)

		m.jobseekerRepo.On("GetByUserID", ctx, userID).Return(profile, nil).Once()
		m.jobRepo.On("GetByID", ctx, jobID).Return(posting, nil).Once()
		m.appRepo.On("ExistsByJobAndProfile", ctx, jobID, profileID).Return(true, nil).Once()

		app, err := svc.Apply(ctx, userID, jobID, domain.ApplyInput{})

		assert.ErrorIs(t, err, repository.ErrDuplicateApplication)
		assert.Nil(t, app)
		m.appRepo.AssertNotCalled(t, "Apply", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Capacity Gate Refusal Surfaces", func(t *testing.T) {
		m := newApplicationServiceMocks()
		svc := newApplicationService(m)

		m.jobseekerRepo.On("GetByUserID", ctx, userID).Return(profile, nil).Once()
		m.jobRepo.On("GetByID", ctx, jobID).Return(posting, nil).Once()
		m.appRepo.On("ExistsByJobAndProfile", ctx, jobID, profileID).Return(false, nil).Once()
		m.employerRepo.On("GetByID", ctx, employerID).Return(employer, nil).Once()
		m.appRepo.On("Apply", ctx, mock.Anything, mock.Anything).Return(repository.ErrJobAtCapacity).Once()

		app, err := svc.Apply(ctx, userID, jobID, domain.ApplyInput{})

		assert.ErrorIs(t, err, repository.ErrJobAtCapacity)
		assert.Nil(t, app)
	})

	t.Run("Duplicate Race Inside Transaction", func(t *testing.T) {
		m := newApplicationServiceMocks()
		svc := newApplicationService(m)

		m.jobseekerRepo.On("GetByUserID", ctx, userID).Return(profile, nil).Once()
		m.jobRepo.On("GetByID", ctx, jobID).Return(posting, nil).Once()
		m.appRepo.On("ExistsByJobAndProfile", ctx, jobID, profileID).Return(false, nil).Once()
		m.employerRepo.On("GetByID", ctx, employerID).Return(employer, nil).Once()
		m.appRepo.On("Apply", ctx, mock.Anything, mock.Anything).Return(repository.ErrDuplicateApplication).Once()

		app, err := svc.Apply(ctx, userID, jobID, domain.ApplyInput{})

		assert.ErrorIs(t, err, repository.ErrDuplicateApplication)
		assert.Nil(t, app)
	})
}

func TestApplicationService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	appID := uuid.New()
	jobID := uuid.New()
	profileID := uuid.New()
	employerID := uuid.New()
	applicantUserID := uuid.New()

	employer := &domain.EmployerProfile{ID: employerID, UserID: userID, BusinessName: "Arakkha Tech"}
	posting := &domain.Job{ID: jobID, EmployerID: employerID, Title: "Backend Engineer"}
	applicantProfile := &domain.JobseekerProfile{ID: profileID, UserID: applicantUserID, FullName: "Sari Dewi"}

	pendingApp := func() *domain.Application {
		return &domain.Application{ID: appID, JobID: jobID, ProfileID: profileID, Status: domain.StatusPending}
	}

	t.Run("Success", func(t *testing.T) {
		m := newApplicationServiceMocks()
		svc := newApplicationService(m)

		m.employerRepo.On("GetByUserID", ctx, userID).Return(employer, nil).Once()
		m.appRepo.On("GetByID", ctx, appID).Return(pendingApp(), nil).Once()
		m.jobRepo.On("GetByID", ctx, jobID).Return(posting, nil).Once()
		m.jobseekerRepo.On("GetByID", ctx, profileID).Return(applicantProfile, nil).Once()
		m.appRepo.On("UpdateStatus", ctx, mock.MatchedBy(func(app *domain.Application) bool {
			return app.Status == domain.StatusReview
		}), mock.MatchedBy(func(notif *domain.Notification) bool {
			return notif.UserID == applicantUserID &&
				notif.Kind == domain.NotifApplicationUpdate &&
				notif.Message == "Your application for 'Backend Engineer' has been updated to 'Review'."
		})).Return(nil).Once()
		m.auditRepo.On("Create", ctx, mock.MatchedBy(func(entry *domain.AuditLog) bool {
			return entry.Action == "UPDATE_STATUS" && entry.EntityType == "APPLICATION" && entry.EntityID == appID
		})).Return(nil).Once()

		app, err := svc.UpdateStatus(ctx, userID, appID, domain.UpdateApplicationStatusInput{NewStatus: "review"})

		assert.NoError(t, err)
		assert.Equal(t, domain.StatusReview, app.Status)

		m.appRepo.AssertExpectations(t)
		m.auditRepo.AssertExpectations(t)
	})

	t.Run("Applicant Profile Lookup Failure Aborts", func(t *testing.T) {
		m := newApplicationServiceMocks()
		svc := newApplicationService(m)

		m.employerRepo.On("GetByUserID", ctx, userID).Return(employer, nil).Once()
		m.appRepo.On("GetByID", ctx, appID).Return(pendingApp(), nil).Once()
		m.jobRepo.On("GetByID", ctx, jobID).Return(posting, nil).Once()
		m.jobseekerRepo.On("GetByID", ctx, profileID).Return(nil, errors.New("connection reset")).Once()

		_, err := svc.UpdateStatus(ctx, userID, appID, domain.UpdateApplicationStatusInput{NewStatus: "review"})

		assert.EqualError(t, err, "connection reset")
		m.appRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Not An Employer", func(t *testing.T) {
		m := newApplicationServiceMocks()
		svc := newApplicationService(m)

		m.employerRepo.On("GetByUserID", ctx, userID).Return(nil, nil).Once()

		_, err := svc.UpdateStatus(ctx, userID, appID, domain.UpdateApplicationStatusInput{NewStatus: "review"})

		assert.ErrorIs(t, err, application.ErrEmployerOnly)
	})

	t.Run("Not The Owning Employer", func(t *testing.T) {
		m := newApplicationServiceMocks()
		svc := newApplicationService(m)

		other := &domain.EmployerProfile{ID: uuid.New(), UserID: userID}
		m.employerRepo.On("GetByUserID", ctx, userID).Return(other, nil).Once()
		m.appRepo.On("GetByID", ctx, appID).Return(pendingApp(), nil).Once()
		m.jobRepo.On("GetByID", ctx, jobID).Return(posting, nil).Once()

		_, err := svc.UpdateStatus(ctx, userID, appID, domain.UpdateApplicationStatusInput{NewStatus: "review"})

		assert.ErrorIs(t, err, application.ErrNotOwner)
	})

	t.Run("Invalid Status Label", func(t *testing.T) {
		m := newApplicationServiceMocks()
		svc := newApplicationService(m)

		m.employerRepo.On("GetByUserID", ctx, userID).Return(employer, nil).Once()
		m.appRepo.On("GetByID", ctx, appID).Return(pendingApp(), nil).Once()
		m.jobRepo.On("GetByID", ctx, jobID).Return(posting, nil).Once()

		_, err := svc.UpdateStatus(ctx, userID, appID, domain.UpdateApplicationStatusInput{NewStatus: "approved"})

		var invalid *domain.InvalidStatusError
		assert.True(t, errors.As(err, &invalid))
		m.appRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Illegal Transition", func(t *testing.T) {
		m := newApplicationServiceMocks()
		svc := newApplicationService(m)

		m.employerRepo.On("GetByUserID", ctx, userID).Return(employer, nil).Once()
		m.appRepo.On("GetByID", ctx, appID).Return(pendingApp(), nil).Once()
		m.jobRepo.On("GetByID", ctx, jobID).Return(posting, nil).Once()

		_, err := svc.UpdateStatus(ctx, userID, appID, domain.UpdateApplicationStatusInput{NewStatus: "hired"})

		var illegal *domain.IllegalTransitionError
		assert.True(t, errors.As(err, &illegal))
		assert.Equal(t, []string{"R"}, illegal.AllowedNext())
		m.appRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Application Not Found", func(t *testing.T) {
		m := newApplicationServiceMocks()
		svc := newApplicationService(m)

		m.employerRepo.On("GetByUserID", ctx, userID).Return(employer, nil).Once()
		m.appRepo.On("GetByID", ctx, appID).Return(nil, nil).Once()

		_, err := svc.UpdateStatus(ctx, userID, appID, domain.UpdateApplicationStatusInput{NewStatus: "review"})

		assert.ErrorIs(t, err, repository.ErrApplicationNotFound)
	})
}

func TestApplicationService_Withdraw(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	appID := uuid.New()
	jobID := uuid.New()
	profileID := uuid.New()

	profile := &domain.JobseekerProfile{ID: profileID, UserID: userID}

	t.Run("Success Reconciles Job", func(t *testing.T) {
		m := newApplicationServiceMocks()
		svc := newApplicationService(m)

		app := &domain.Application{ID: appID, JobID: jobID, ProfileID: profileID, Status: domain.StatusPending}
		m.jobseekerRepo.On("GetByUserID", ctx, userID).Return(profile, nil).Once()
		m.appRepo.On("GetByID", ctx, appID).Return(app, nil).Once()
		m.appRepo.On("Delete", ctx, appID).Return(nil).Once()
		m.jobSvc.On("Reconcile", ctx, jobID).Return(nil).Once()

		err := svc.Withdraw(ctx, userID, appID)

		assert.NoError(t, err)
		m.appRepo.AssertExpectations(t)
		m.jobSvc.AssertExpectations(t)
	})

	t.Run("Owning Employer Can Remove", func(t *testing.T) {
		m := newApplicationServiceMocks()
		svc := newApplicationService(m)

		employerID := uuid.New()
		app := &domain.Application{ID: appID, JobID: jobID, ProfileID: profileID, Status: domain.StatusPending}
		m.appRepo.On("GetByID", ctx, appID).Return(app, nil).Once()
		m.jobseekerRepo.On("GetByUserID", ctx, userID).Return(nil, nil).Once()
		m.employerRepo.On("GetByUserID", ctx, userID).Return(&domain.EmployerProfile{ID: employerID, UserID: userID}, nil).Once()
		m.jobRepo.On("GetByID", ctx, jobID).Return(&domain.Job{ID: jobID, EmployerID: employerID}, nil).Once()
		m.appRepo.On("Delete", ctx, appID).Return(nil).Once()
		m.jobSvc.On("Reconcile", ctx, jobID).Return(nil).Once()

		err := svc.Withdraw(ctx, userID, appID)

		assert.NoError(t, err)
		m.appRepo.AssertExpectations(t)
	})

	t.Run("Cannot Withdraw Someone Else's Application", func(t *testing.T) {
		m := newApplicationServiceMocks()
		svc := newApplicationService(m)

		app := &domain.Application{ID: appID, JobID: jobID, ProfileID: uuid.New(), Status: domain.StatusPending}
		m.appRepo.On("GetByID", ctx, appID).Return(app, nil).Once()
		m.jobseekerRepo.On("GetByUserID", ctx, userID).Return(profile, nil).Once()
		m.employerRepo.On("GetByUserID", ctx, userID).Return(nil, nil).Once()

		err := svc.Withdraw(ctx, userID, appID)

		assert.ErrorIs(t, err, application.ErrNotOwner)
		m.appRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestApplicationService_StatusCounts(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	employerID := uuid.New()
	employer := &domain.EmployerProfile{ID: employerID, UserID: userID}

	m := newApplicationServiceMocks()
	svc := newApplicationService(m)

	m.employerRepo.On("GetByUserID", ctx, userID).Return(employer, nil).Once()
	counts := map[domain.ApplicationStatus]int64{
		domain.StatusPending:   4,
		domain.StatusReview:    2,
		domain.StatusShortlist: 1,
		domain.StatusHired:     1,
		domain.StatusRejected:  3,
	}
	for status, n := range counts {
		m.appRepo.On("CountByEmployerAndStatus", ctx, employerID, status).Return(n, nil).Once()
	}

	result, err := svc.StatusCounts(ctx, userID)

	assert.NoError(t, err)
	assert.Equal(t, map[string]int64{
		"pending": 4, "review": 2, "shortlist": 1, "hired": 1, "rejected": 3,
	}, result)
}
