package handler

import (
	"github.com/gofiber/fiber/v2"

	"arakkha-job-connect/internal/domain"
	"arakkha-job-connect/internal/service"
)

type Handlers struct {
	Auth         *AuthHandler
	Jobseeker    *JobseekerHandler
	Employer     *EmployerHandler
	Job          *JobHandler
	Application  *ApplicationHandler
	SavedJob     *SavedJobHandler
	Notification *NotificationHandler
	Legal        *LegalHandler
	Audit        *AuditHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(services.Auth),
		Jobseeker:    NewJobseekerHandler(services.Jobseeker),
		Employer:     NewEmployerHandler(services.Employer),
		Job:          NewJobHandler(services.Job),
		Application:  NewApplicationHandler(services.Application, services.Job),
		SavedJob:     NewSavedJobHandler(services.SavedJob),
		Notification: NewNotificationHandler(services.Notification),
		Legal:        NewLegalHandler(services.Legal),
		Audit:        NewAuditHandler(services.Audit),
	}
}

func getPaginationParams(c *fiber.Ctx) domain.PaginationParams {
	params := domain.DefaultPagination()

	if page := c.QueryInt("page", 1); page > 0 {
		params.Page = page
	}
	if pageSize := c.QueryInt("page_size", 20); pageSize > 0 {
		params.PageSize = pageSize
	}

	params.Validate()
	return params
}
