package domain

import (
	"time"

	"github.com/google/uuid"
)

type JobseekerProfile struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	FullName  string    `json:"full_name" db:"full_name"`
	Phone     *string   `json:"phone,omitempty" db:"phone"`
	Location  *string   `json:"location,omitempty" db:"location"`
	Summary   *string   `json:"summary,omitempty" db:"summary"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	User *User `json:"user,omitempty" db:"-"`
}

type Resume struct {
	ID          uuid.UUID `json:"id" db:"id"`
	ProfileID   uuid.UUID `json:"profile_id" db:"profile_id"`
	Title       string    `json:"title" db:"title"`
	FileName    string    `json:"file_name" db:"file_name"`
	FileSize    int64     `json:"file_size" db:"file_size"`
	MimeType    string    `json:"mime_type" db:"mime_type"`
	StoragePath string    `json:"-" db:"storage_path"`
	URL         string    `json:"url" db:"-"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type EmployerProfile struct {
	ID           uuid.UUID `json:"id" db:"id"`
	UserID       uuid.UUID `json:"user_id" db:"user_id"`
	BusinessName string    `json:"business_name" db:"business_name"`
	About        *string   `json:"about,omitempty" db:"about"`
	Website      *string   `json:"website,omitempty" db:"website"`
	Location     *string   `json:"location,omitempty" db:"location"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`

	User *User `json:"user,omitempty" db:"-"`
}

type UpsertJobseekerProfileInput struct {
	FullName string  `json:"full_name" validate:"required,max=150"`
	Phone    *string `json:"phone,omitempty"`
	Location *string `json:"location,omitempty"`
	Summary  *string `json:"summary,omitempty"`
}

type UpsertEmployerProfileInput struct {
	BusinessName string  `json:"business_name" validate:"required,max=255"`
	About        *string `json:"about,omitempty"`
	Website      *string `json:"website,omitempty"`
	Location     *string `json:"location,omitempty"`
}
