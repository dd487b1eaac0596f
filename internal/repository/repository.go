package repository

import (
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	User             UserRepository
	JobseekerProfile JobseekerProfileRepository
	EmployerProfile  EmployerProfileRepository
	Job              JobRepository
	Application      ApplicationRepository
	SavedJob         SavedJobRepository
	Notification     NotificationRepository
	Legal            LegalRepository
	AuditLog         AuditLogRepository
	Session          SessionRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		User:             NewUserRepository(db),
		JobseekerProfile: NewJobseekerProfileRepository(db),
		EmployerProfile:  NewEmployerProfileRepository(db),
		Job:              NewJobRepository(db),
		Application:      NewApplicationRepository(db),
		SavedJob:         NewSavedJobRepository(db),
		Notification:     NewNotificationRepository(db),
		Legal:            NewLegalRepository(db),
		AuditLog:         NewAuditLogRepository(db),
		Session:          NewSessionRepository(db),
	}
}
