package domain

import (
	"time"

	"github.com/google/uuid"
)

type SavedJob struct {
	ID        uuid.UUID `json:"id" db:"id"`
	ProfileID uuid.UUID `json:"profile_id" db:"profile_id"`
	JobID     uuid.UUID `json:"job_id" db:"job_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// Joined display fields for the saved-jobs listing.
	JobTitle    string `json:"job_title,omitempty" db:"job_title"`
	JobLocation string `json:"job_location,omitempty" db:"job_location"`
	JobIsActive bool   `json:"job_is_active" db:"job_is_active"`

	// IsApplied reports whether the owner has since applied to this job.
	IsApplied bool `json:"is_applied" db:"is_applied"`
}
