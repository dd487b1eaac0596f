package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"

	"arakkha-job-connect/internal/config"
	"arakkha-job-connect/internal/repository"
	"arakkha-job-connect/internal/service/application"
	"arakkha-job-connect/internal/service/audit"
	"arakkha-job-connect/internal/service/auth"
	"arakkha-job-connect/internal/service/email"
	"arakkha-job-connect/internal/service/employer"
	"arakkha-job-connect/internal/service/job"
	"arakkha-job-connect/internal/service/jobseeker"
	"arakkha-job-connect/internal/service/legal"
	"arakkha-job-connect/internal/service/notification"
	"arakkha-job-connect/internal/service/savedjob"
)

type Services struct {
	Auth         auth.Service
	Jobseeker    jobseeker.Service
	Employer     employer.Service
	Job          job.Service
	Application  application.Service
	SavedJob     savedjob.Service
	Notification notification.Service
	Legal        legal.Service
	Email        email.Service
	Audit        audit.Service
}

func NewServices(repos *repository.Repositories, redisClient *redis.Client, minioClient *minio.Client, cfg *config.Config) *Services {
	emailService := email.NewService(cfg)
	authService := auth.NewService(repos.User, repos.Session, emailService, cfg)
	notificationService := notification.NewService(repos.Notification)
	jobService := job.NewService(repos.Job, repos.Application, repos.EmployerProfile, notificationService, redisClient)
	applicationService := application.NewService(
		repos.Application,
		repos.Job,
		repos.JobseekerProfile,
		repos.EmployerProfile,
		repos.User,
		repos.AuditLog,
		jobService,
		emailService,
	)
	jobseekerService := jobseeker.NewService(repos.JobseekerProfile, minioClient, cfg)
	employerService := employer.NewService(repos.EmployerProfile, repos.Job, repos.Application, redisClient)
	savedJobService := savedjob.NewService(repos.SavedJob, repos.Job, repos.JobseekerProfile)
	legalService := legal.NewService(repos.Legal)
	auditService := audit.NewService(repos.AuditLog)

	return &Services{
		Auth:         authService,
		Jobseeker:    jobseekerService,
		Employer:     employerService,
		Job:          jobService,
		Application:  applicationService,
		SavedJob:     savedJobService,
		Notification: notificationService,
		Legal:        legalService,
		Email:        emailService,
		Audit:        auditService,
	}
}
