package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"arakkha-job-connect/internal/domain"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationRepository interface {
	Create(ctx context.Context, notif *domain.Notification) error
	GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.Notification, error)
	ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, params domain.PaginationParams) ([]domain.Notification, int64, error)
	Counts(ctx context.Context, userID uuid.UUID) (domain.NotificationCounts, error)
	SetRead(ctx context.Context, id, userID uuid.UUID, read bool) error
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) error
	Delete(ctx context.Context, id, userID uuid.UUID) (string, error)
	DeleteByReadState(ctx context.Context, userID uuid.UUID, filter string) (int64, error)
}

type notificationRepository struct {
	db *sqlx.DB
}

func NewNotificationRepository(db *sqlx.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notif *domain.Notification) error {
	query := `
		INSERT INTO notifications (id, user_id, kind, message, subject_kind, subject_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		notif.ID, notif.UserID, notif.Kind, notif.Message, notif.SubjectKind, notif.SubjectID,
	).Scan(&notif.CreatedAt)
}

func (r *notificationRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.Notification, error) {
	var notif domain.Notification
	query := `SELECT * FROM notifications WHERE id = $1 AND user_id = $2`
	err := r.db.GetContext(ctx, &notif, query, id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &notif, nil
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, params domain.PaginationParams) ([]domain.Notification, int64, error) {
	params.Validate()

	var total int64
	var notifications []domain.Notification

	if unreadOnly {
		countQuery := `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = false`
		if err := r.db.GetContext(ctx, &total, countQuery, userID); err != nil {
			return nil, 0, err
		}

		query := `
			SELECT * FROM notifications
			WHERE user_id = $1 AND is_read = false
			ORDER BY created_at DESC
			LIMIT $2 OFFSET $3`
		err := r.db.SelectContext(ctx, &notifications, query, userID, params.PageSize, params.Offset())
		return notifications, total, err
	}

	countQuery := `SELECT COUNT(*) FROM notifications WHERE user_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, userID); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT * FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	err := r.db.SelectContext(ctx, &notifications, query, userID, params.PageSize, params.Offset())
	return notifications, total, err
}

func (r *notificationRepository) Counts(ctx context.Context, userID uuid.UUID) (domain.NotificationCounts, error) {
	var counts domain.NotificationCounts
	query := `
		SELECT COUNT(*) AS total,
		       COUNT(*) FILTER (WHERE is_read) AS read,
		       COUNT(*) FILTER (WHERE NOT is_read) AS unread
		FROM notifications WHERE user_id = $1`
	err := r.db.QueryRowxContext(ctx, query, userID).Scan(&counts.Total, &counts.Read, &counts.Unread)
	return counts, err
}

func (r *notificationRepository) SetRead(ctx context.Context, id, userID uuid.UUID, read bool) error {
	query := `UPDATE notifications SET is_read = $3, updated_at = NOW() WHERE id = $1 AND user_id = $2`
	result, err := r.db.ExecContext(ctx, query, id, userID, read)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *notificationRepository) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	query := `UPDATE notifications SET is_read = true, updated_at = NOW() WHERE user_id = $1 AND is_read = false`
	_, err := r.db.ExecContext(ctx, query, userID)
	return err
}

func (r *notificationRepository) Delete(ctx context.Context, id, userID uuid.UUID) (string, error) {
	var message string
	query := `DELETE FROM notifications WHERE id = $1 AND user_id = $2 RETURNING message`
	err := r.db.QueryRowxContext(ctx, query, id, userID).Scan(&message)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotificationNotFound
	}
	return message, err
}

// DeleteByReadState bulk-deletes a user's notifications. Filter is one of
// "read", "unread" or "all".
func (r *notificationRepository) DeleteByReadState(ctx context.Context, userID uuid.UUID, filter string) (int64, error) {
	query := `DELETE FROM notifications WHERE user_id = $1`
	switch filter {
	case "read":
		query += ` AND is_read = true`
	case "unread":
		query += ` AND is_read = false`
	}

	result, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return 0, err
	}
	n, _ := result.RowsAffected()
	return n, nil
}
