package domain

import (
	"time"

	"github.com/google/uuid"
)

type JobType string

const (
	JobTypeFull   JobType = "FULL"
	JobTypePart   JobType = "PART"
	JobTypeIntern JobType = "INTERN"
	JobTypeRemote JobType = "REMOTE"
)

type JobPriority string

const (
	PriorityNormal   JobPriority = "NORMAL"
	PriorityFeatured JobPriority = "FEATURED"
	PriorityUrgent   JobPriority = "URGENT"
)

type JobCategory struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type Job struct {
	ID          uuid.UUID   `json:"id" db:"id"`
	EmployerID  uuid.UUID   `json:"employer_id" db:"employer_id"`
	Title       string      `json:"title" db:"title"`
	Description string      `json:"description" db:"description"`
	Location    string      `json:"location" db:"location"`
	JobType     JobType     `json:"job_type" db:"job_type"`
	Salary      *float64    `json:"salary,omitempty" db:"salary"`
	CategoryID  *uuid.UUID  `json:"category_id,omitempty" db:"category_id"`
	IsActive    bool        `json:"is_active" db:"is_active"`
	// MaxApplicants of 0 means unlimited. The capacity gate only applies to
	// finite limits.
	MaxApplicants int         `json:"max_applicants" db:"max_applicants"`
	Deadline      *time.Time  `json:"deadline,omitempty" db:"deadline"`
	Priority      JobPriority `json:"priority" db:"priority"`
	CreatedAt     time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at" db:"updated_at"`

	Employer *EmployerProfile `json:"employer,omitempty" db:"-"`
}

// Unlimited reports whether the posting accepts any number of applications.
func (j *Job) Unlimited() bool {
	return j.MaxApplicants <= 0
}

// AcceptsMore is the capacity decision for a posting with the given confirmed
// application count. It does not consider is_active or the deadline; callers
// gate on those separately.
func (j *Job) AcceptsMore(count int) bool {
	if j.Unlimited() {
		return true
	}
	return count < j.MaxApplicants
}

func (j *Job) DeadlinePassed(now time.Time) bool {
	if j.Deadline == nil {
		return false
	}
	return j.Deadline.Before(now.Truncate(24 * time.Hour))
}

type CreateJobInput struct {
	Title         string     `json:"title" validate:"required,max=150"`
	Description   string     `json:"description" validate:"required"`
	Location      string     `json:"location"`
	JobType       JobType    `json:"job_type"`
	Salary        *float64   `json:"salary,omitempty"`
	CategoryID    *uuid.UUID `json:"category_id,omitempty"`
	MaxApplicants int        `json:"max_applicants"`
	Deadline      *time.Time `json:"deadline,omitempty"`
	Priority      *string    `json:"priority,omitempty"`
}

type UpdateJobInput struct {
	Title         *string     `json:"title,omitempty" validate:"omitempty,max=150"`
	Description   *string     `json:"description,omitempty"`
	Location      *string     `json:"location,omitempty"`
	JobType       *JobType    `json:"job_type,omitempty"`
	Salary        **float64   `json:"salary,omitempty"`
	CategoryID    **uuid.UUID `json:"category_id,omitempty"`
	MaxApplicants *int        `json:"max_applicants,omitempty"`
	Deadline      **time.Time `json:"deadline,omitempty"`
	Priority      *string     `json:"priority,omitempty"`
}

type JobSearchParams struct {
	Query    string `query:"q"`
	Location string `query:"loc"`
}

type CreateJobCategoryInput struct {
	Name string `json:"name" validate:"required,max=100"`
}
