package handler

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"arakkha-job-connect/internal/domain"
	"arakkha-job-connect/internal/middleware"
	"arakkha-job-connect/internal/repository"
	"arakkha-job-connect/internal/service/application"
	"arakkha-job-connect/internal/service/job"
)

type ApplicationHandler struct {
	appService application.Service
	jobService job.Service
}

func NewApplicationHandler(appService application.Service, jobService job.Service) *ApplicationHandler {
	return &ApplicationHandler{appService: appService, jobService: jobService}
}

// Apply keeps the response contract the frontend was built against:
// duplicate and capacity failures come back as a bare {"message": ...} body.
func (h *ApplicationHandler) Apply(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	jobID, err := uuid.Parse(c.Params("jobId"))
	if err != nil {
		return middleware.BadRequest("Invalid job ID")
	}

	var input domain.ApplyInput
	if err := c.BodyParser(&input); err != nil && len(c.Body()) > 0 {
		return middleware.BadRequest("Invalid request body")
	}

	app, err := h.appService.Apply(c.Context(), userID, jobID, input)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateApplication):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "You have already applied for this job.",
			})
		case errors.Is(err, repository.ErrJobAtCapacity):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "The maximum number of applicants for this job has been reached.",
			})
		case errors.Is(err, repository.ErrJobInactive):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "This job is no longer accepting applications.",
			})
		case errors.Is(err, repository.ErrJobNotFound):
			return middleware.NotFound("Job not found")
		case errors.Is(err, application.ErrProfileRequired):
			return middleware.NotFound("You have to create a jobseeker profile before applying")
		}
		return err
	}

	title := ""
	if posting, err := h.jobService.GetByID(c.Context(), jobID); err == nil {
		title = posting.Title
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("You have successfully applied for the job '%s'.", title),
		"data":    app,
	})
}

func (h *ApplicationHandler) UpdateStatus(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	appID, err := uuid.Parse(c.Params("appId"))
	if err != nil {
		return middleware.BadRequest("Invalid application ID")
	}

	var input domain.UpdateApplicationStatusInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	app, err := h.appService.UpdateStatus(c.Context(), userID, appID, input)
	if err != nil {
		var invalidStatus *domain.InvalidStatusError
		var illegalTransition *domain.IllegalTransitionError

		switch {
		case errors.As(err, &invalidStatus):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":          "Invalid status value.",
				"valid_statuses": domain.ValidStatusCodes(),
			})
		case errors.As(err, &illegalTransition):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":        illegalTransition.Error() + ".",
				"allowed_next": illegalTransition.AllowedNext(),
			})
		case errors.Is(err, application.ErrEmployerOnly):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Only employers can perform this action.",
			})
		case errors.Is(err, application.ErrNotOwner):
			return middleware.Forbidden("This application does not belong to one of your jobs")
		case errors.Is(err, repository.ErrApplicationNotFound):
			return middleware.NotFound("Application not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":    true,
		"new_status": app.Status,
		"message":    fmt.Sprintf("Application %s updated to '%s'.", app.ID, app.Status),
	})
}

func (h *ApplicationHandler) Withdraw(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	appID, err := uuid.Parse(c.Params("appId"))
	if err != nil {
		return middleware.BadRequest("Invalid application ID")
	}

	if err := h.appService.Withdraw(c.Context(), userID, appID); err != nil {
		switch {
		case errors.Is(err, repository.ErrApplicationNotFound):
			return middleware.NotFound("Application not found")
		case errors.Is(err, application.ErrNotOwner):
			return middleware.Forbidden("You can only remove applications you are part of")
		}
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}

func (h *ApplicationHandler) Get(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	appID, err := uuid.Parse(c.Params("appId"))
	if err != nil {
		return middleware.BadRequest("Invalid application ID")
	}

	app, err := h.appService.GetByID(c.Context(), userID, appID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrApplicationNotFound):
			return middleware.NotFound("Application not found")
		case errors.Is(err, application.ErrNotOwner):
			return middleware.Forbidden("You do not have access to this application")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(app)
}

func (h *ApplicationHandler) ListMine(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	apps, err := h.appService.ListMine(c.Context(), userID)
	if err != nil {
		if errors.Is(err, application.ErrProfileRequired) {
			return middleware.NotFound("Jobseeker profile not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"applications": apps,
		"count":        len(apps),
	})
}

func (h *ApplicationHandler) ListForEmployer(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	if status := c.Query("status"); status != "" {
		apps, err := h.appService.ListForEmployerByStatus(c.Context(), userID, status)
		if err != nil {
			var invalidStatus *domain.InvalidStatusError
			switch {
			case errors.As(err, &invalidStatus):
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error":          "Invalid status value.",
					"valid_statuses": domain.ValidStatusCodes(),
				})
			case errors.Is(err, application.ErrEmployerOnly):
				return middleware.Forbidden("Only employers can perform this action")
			}
			return err
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"applications": apps,
			"count":        len(apps),
		})
	}

	apps, err := h.appService.ListForEmployer(c.Context(), userID)
	if err != nil {
		if errors.Is(err, application.ErrEmployerOnly) {
			return middleware.Forbidden("Only employers can perform this action")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"applications": apps,
		"count":        len(apps),
	})
}

func (h *ApplicationHandler) ListRecent(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)

	apps, err := h.appService.ListRecent(c.Context(), limit)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"applications": apps,
	})
}

func (h *ApplicationHandler) StatusCounts(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	counts, err := h.appService.StatusCounts(c.Context(), userID)
	if err != nil {
		if errors.Is(err, application.ErrEmployerOnly) {
			return middleware.Forbidden("Only employers can perform this action")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(counts)
}
