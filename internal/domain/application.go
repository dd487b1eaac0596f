package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type ApplicationStatus string

const (
	StatusPending   ApplicationStatus = "P"
	StatusReview    ApplicationStatus = "R"
	StatusShortlist ApplicationStatus = "SL"
	StatusHired     ApplicationStatus = "H"
	StatusRejected  ApplicationStatus = "RJ"
)

// statusLabels maps the human-readable label accepted on the wire to its
// status code. Matching is case-insensitive.
var statusLabels = map[string]ApplicationStatus{
	"pending":   StatusPending,
	"review":    StatusReview,
	"shortlist": StatusShortlist,
	"hired":     StatusHired,
	"rejected":  StatusRejected,
}

var statusDisplay = map[ApplicationStatus]string{
	StatusPending:   "Pending",
	StatusReview:    "Review",
	StatusShortlist: "Shortlist",
	StatusHired:     "Hired",
	StatusRejected:  "Rejected",
}

// allowedTransitions is the full workflow graph. Pending is the only initial
// state; Hired and Rejected are terminal. There is no skipping: every
// application goes through Review before any accept/reject decision.
var allowedTransitions = map[ApplicationStatus][]ApplicationStatus{
	StatusPending:   {StatusReview},
	StatusReview:    {StatusShortlist, StatusRejected},
	StatusShortlist: {StatusHired, StatusRejected},
	StatusHired:     {},
	StatusRejected:  {},
}

func (s ApplicationStatus) IsValid() bool {
	_, ok := statusDisplay[s]
	return ok
}

func (s ApplicationStatus) Display() string {
	if label, ok := statusDisplay[s]; ok {
		return label
	}
	return string(s)
}

// Label returns the lowercase wire label for the status ("pending", "hired"...).
func (s ApplicationStatus) Label() string {
	return strings.ToLower(s.Display())
}

func (s ApplicationStatus) IsTerminal() bool {
	return len(allowedTransitions[s]) == 0 && s.IsValid()
}

// AllowedNext returns the set of statuses reachable from s. The returned
// slice is a copy; callers may keep it.
func (s ApplicationStatus) AllowedNext() []ApplicationStatus {
	next := allowedTransitions[s]
	out := make([]ApplicationStatus, len(next))
	copy(out, next)
	return out
}

func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ParseApplicationStatus resolves a human label or raw code to a status code.
func ParseApplicationStatus(raw string) (ApplicationStatus, error) {
	if code, ok := statusLabels[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return code, nil
	}
	if s := ApplicationStatus(strings.ToUpper(strings.TrimSpace(raw))); s.IsValid() {
		return s, nil
	}
	return "", &InvalidStatusError{Given: raw}
}

// ValidStatusCodes lists every status code, in workflow order.
func ValidStatusCodes() []string {
	return []string{
		string(StatusPending),
		string(StatusReview),
		string(StatusShortlist),
		string(StatusHired),
		string(StatusRejected),
	}
}

type InvalidStatusError struct {
	Given string
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("invalid status value %q", e.Given)
}

type IllegalTransitionError struct {
	From      ApplicationStatus
	Requested ApplicationStatus
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("cannot move application from '%s' to '%s'",
		e.From.Display(), e.Requested.Display())
}

// AllowedNext reports the legal moves out of the state the transition was
// attempted from, for the error response body.
func (e *IllegalTransitionError) AllowedNext() []string {
	next := e.From.AllowedNext()
	out := make([]string, len(next))
	for i, s := range next {
		out[i] = string(s)
	}
	return out
}

type Application struct {
	ID              uuid.UUID         `json:"id" db:"id"`
	JobID           uuid.UUID         `json:"job_id" db:"job_id"`
	ProfileID       uuid.UUID         `json:"profile_id" db:"profile_id"`
	Status          ApplicationStatus `json:"status" db:"status"`
	CoverLetterText string            `json:"cover_letter_text" db:"cover_letter_text"`
	AppliedAt       time.Time         `json:"applied_at" db:"applied_at"`
	UpdatedAt       time.Time         `json:"updated_at" db:"updated_at"`

	Job     *Job              `json:"job,omitempty" db:"-"`
	Profile *JobseekerProfile `json:"profile,omitempty" db:"-"`
}

// Transition validates and applies a status change in place. It is the only
// legal way to mutate Status after creation.
func (a *Application) Transition(next ApplicationStatus) error {
	if !next.IsValid() {
		return &InvalidStatusError{Given: string(next)}
	}
	if !a.Status.CanTransitionTo(next) {
		return &IllegalTransitionError{From: a.Status, Requested: next}
	}
	a.Status = next
	a.UpdatedAt = time.Now()
	return nil
}

type ApplyInput struct {
	CoverLetterText string `json:"cover_letter_text" validate:"omitempty,max=5000"`
}

type UpdateApplicationStatusInput struct {
	NewStatus string `json:"new_status" validate:"required"`
}

// ApplicationListItem is the employer/jobseeker list row with the joined
// display fields the frontend renders.
type ApplicationListItem struct {
	ID              uuid.UUID         `json:"id" db:"id"`
	JobID           uuid.UUID         `json:"job_id" db:"job_id"`
	JobTitle        string            `json:"job_title" db:"job_title"`
	ProfileID       uuid.UUID         `json:"profile_id" db:"profile_id"`
	JobseekerName   string            `json:"jobseeker_name" db:"jobseeker_name"`
	JobseekerEmail  string            `json:"jobseeker_email" db:"jobseeker_email"`
	Status          ApplicationStatus `json:"status" db:"status"`
	StatusDisplay   string            `json:"status_display" db:"-"`
	CoverLetterText string            `json:"cover_letter_text" db:"cover_letter_text"`
	AppliedAt       time.Time         `json:"applied_at" db:"applied_at"`
}
