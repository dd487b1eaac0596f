package domain

import (
	"time"

	"github.com/google/uuid"
)

type NotificationKind string

const (
	NotifJobCreated         NotificationKind = "job_created"
	NotifApplicationCreated NotificationKind = "application_created"
	NotifApplicationUpdate  NotificationKind = "application_update"
)

// SubjectKind tags which entity a notification points at. The reference is
// weak: the subject may have been deleted by the time the notification is
// read, and lookups must tolerate that.
type SubjectKind string

const (
	SubjectJob         SubjectKind = "job"
	SubjectApplication SubjectKind = "application"
)

type Notification struct {
	ID          uuid.UUID        `json:"id" db:"id"`
	UserID      uuid.UUID        `json:"user_id" db:"user_id"`
	Kind        NotificationKind `json:"kind" db:"kind"`
	Message     string           `json:"message" db:"message"`
	SubjectKind SubjectKind      `json:"subject_kind" db:"subject_kind"`
	SubjectID   uuid.UUID        `json:"subject_id" db:"subject_id"`
	IsRead      bool             `json:"is_read" db:"is_read"`
	CreatedAt   time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at" db:"updated_at"`
}

// NotificationCounts partitions a user's notifications for the navbar badge.
type NotificationCounts struct {
	Total  int64 `json:"total"`
	Read   int64 `json:"read"`
	Unread int64 `json:"unread"`
}
