package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"arakkha-job-connect/internal/domain"
	"arakkha-job-connect/internal/repository"
)

type Service interface {
	List(ctx context.Context, userID uuid.UUID, unreadOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error)
	GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.Notification, error)
	Counts(ctx context.Context, userID uuid.UUID) (domain.NotificationCounts, error)
	MarkAsRead(ctx context.Context, id, userID uuid.UUID) error
	MarkAsUnread(ctx context.Context, id, userID uuid.UUID) error
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) error
	Delete(ctx context.Context, id, userID uuid.UUID) (string, error)
	DeleteByReadState(ctx context.Context, userID uuid.UUID, filter string) (int64, error)

	// NotifyJobCreated records the posting confirmation for the employer. It
	// runs after the job insert committed; a failure here never unwinds the
	// posting.
	NotifyJobCreated(ctx context.Context, job *domain.Job, employerUserID uuid.UUID) error
}

type service struct {
	notifRepo repository.NotificationRepository
}

func NewService(notifRepo repository.NotificationRepository) Service {
	return &service{
		notifRepo: notifRepo,
	}
}

func (s *service) List(ctx context.Context, userID uuid.UUID, unreadOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error) {
	notifications, total, err := s.notifRepo.ListByUser(ctx, userID, unreadOnly, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Notification]{}, err
	}

	return domain.NewPaginatedResponse(notifications, params.Page, params.PageSize, total), nil
}

func (s *service) GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.Notification, error) {
	return s.notifRepo.GetByID(ctx, id, userID)
}

func (s *service) Counts(ctx context.Context, userID uuid.UUID) (domain.NotificationCounts, error) {
	return s.notifRepo.Counts(ctx, userID)
}

func (s *service) MarkAsRead(ctx context.Context, id, userID uuid.UUID) error {
	return s.notifRepo.SetRead(ctx, id, userID, true)
}

func (s *service) MarkAsUnread(ctx context.Context, id, userID uuid.UUID) error {
	return s.notifRepo.SetRead(ctx, id, userID, false)
}

func (s *service) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return s.notifRepo.MarkAllAsRead(ctx, userID)
}

func (s *service) Delete(ctx context.Context, id, userID uuid.UUID) (string, error) {
	return s.notifRepo.Delete(ctx, id, userID)
}

func (s *service) DeleteByReadState(ctx context.Context, userID uuid.UUID, filter string) (int64, error) {
	return s.notifRepo.DeleteByReadState(ctx, userID, filter)
}

func (s *service) NotifyJobCreated(ctx context.Context, job *domain.Job, employerUserID uuid.UUID) error {
	notif := &domain.Notification{
		ID:          uuid.New(),
		UserID:      employerUserID,
		Kind:        domain.NotifJobCreated,
		Message:     fmt.Sprintf("Your job posting '%s' is now live.", job.Title),
		SubjectKind: domain.SubjectJob,
		SubjectID:   job.ID,
	}
	return s.notifRepo.Create(ctx, notif)
}
