package unit_test

import (
	"context"
	"testing"

	"arakkha-job-connect/internal/domain"
	"arakkha-job-connect/internal/service/notification"
	"arakkha-job-connect/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNotificationService_List(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	params := domain.PaginationParams{Page: 1, PageSize: 10}

	mockRepo := new(mocks.NotificationRepository)
	svc := notification.NewService(mockRepo)

	notifs := []domain.Notification{
		{ID: uuid.New(), UserID: userID, Kind: domain.NotifApplicationCreated, Message: "Sari Dewi applied for 'Backend Engineer'."},
	}
	mockRepo.On("ListByUser", ctx, userID, false, params).Return(notifs, int64(1), nil).Once()

	result, err := svc.List(ctx, userID, false, params)

	assert.NoError(t, err)
	assert.Len(t, result.Data, 1)
	assert.Equal(t, int64(1), result.TotalItems)
	assert.Equal(t, 1, result.TotalPages)
}

func TestNotificationService_NotifyJobCreated(t *testing.T) {
	ctx := context.Background()
	employerUserID := uuid.New()
	posting := &domain.Job{ID: uuid.New(), Title: "Backend Engineer"}

	mockRepo := new(mocks.NotificationRepository)
	svc := notification.NewService(mockRepo)

	mockRepo.On("Create", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.UserID == employerUserID &&
			n.Kind == domain.NotifJobCreated &&
			n.SubjectKind == domain.SubjectJob &&
			n.SubjectID == posting.ID &&
			n.Message == "Your job posting 'Backend Engineer' is now live."
	})).Return(nil).Once()

	assert.NoError(t, svc.NotifyJobCreated(ctx, posting, employerUserID))
	mockRepo.AssertExpectations(t)
}

func TestNotificationService_DeleteByReadState(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	mockRepo := new(mocks.NotificationRepository)
	svc := notification.NewService(mockRepo)

	mockRepo.On("DeleteByReadState", ctx, userID, "read").Return(int64(3), nil).Once()

	deleted, err := svc.DeleteByReadState(ctx, userID, "read")

	assert.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
}
