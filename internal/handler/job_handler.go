package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"arakkha-job-connect/internal/domain"
	"arakkha-job-connect/internal/middleware"
	"arakkha-job-connect/internal/repository"
	"arakkha-job-connect/internal/service/job"
)

type JobHandler struct {
	jobService job.Service
}

func NewJobHandler(jobService job.Service) *JobHandler {
	return &JobHandler{jobService: jobService}
}

func (h *JobHandler) Create(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	var input domain.CreateJobInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.Title == "" {
		return middleware.BadRequest("Title is required")
	}

	posting, err := h.jobService.Create(c.Context(), userID, input)
	if err != nil {
		if errors.Is(err, job.ErrEmployerProfileRequired) {
			return middleware.NotFound("You have to create an employer profile before posting jobs")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(posting)
}

func (h *JobHandler) List(c *fiber.Ctx) error {
	jobs, err := h.jobService.ListActive(c.Context())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"jobs":  jobs,
		"count": len(jobs),
	})
}

func (h *JobHandler) Search(c *fiber.Ctx) error {
	var params domain.JobSearchParams
	if err := c.QueryParser(&params); err != nil {
		return middleware.BadRequest("Invalid search parameters")
	}

	jobs, err := h.jobService.Search(c.Context(), params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"jobs":  jobs,
		"count": len(jobs),
	})
}

func (h *JobHandler) Get(c *fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("jobId"))
	if err != nil {
		return middleware.BadRequest("Invalid job ID")
	}

	posting, err := h.jobService.GetByID(c.Context(), jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return middleware.NotFound("Job not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(posting)
}

func (h *JobHandler) ListAll(c *fiber.Ctx) error {
	jobs, err := h.jobService.ListAll(c.Context())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"jobs":  jobs,
		"count": len(jobs),
	})
}

func (h *JobHandler) ListMine(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	jobs, err := h.jobService.ListByEmployer(c.Context(), userID)
	if err != nil {
		if errors.Is(err, job.ErrEmployerProfileRequired) {
			return middleware.NotFound("Employer profile not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"jobs":  jobs,
		"count": len(jobs),
	})
}

func (h *JobHandler) Update(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	jobID, err := uuid.Parse(c.Params("jobId"))
	if err != nil {
		return middleware.BadRequest("Invalid job ID")
	}

	var input domain.UpdateJobInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	posting, err := h.jobService.Update(c.Context(), userID, jobID, input)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrJobNotFound):
			return middleware.NotFound("Job not found")
		case errors.Is(err, job.ErrNotOwner):
			return middleware.Forbidden("This job belongs to another employer")
		case errors.Is(err, job.ErrEmployerProfileRequired):
			return middleware.NotFound("Employer profile not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(posting)
}

func (h *JobHandler) Delete(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	jobID, err := uuid.Parse(c.Params("jobId"))
	if err != nil {
		return middleware.BadRequest("Invalid job ID")
	}

	if err := h.jobService.Delete(c.Context(), userID, jobID); err != nil {
		switch {
		case errors.Is(err, repository.ErrJobNotFound):
			return middleware.NotFound("Job not found")
		case errors.Is(err, job.ErrNotOwner):
			return middleware.Forbidden("This job belongs to another employer")
		case errors.Is(err, job.ErrEmployerProfileRequired):
			return middleware.NotFound("Employer profile not found")
		}
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}

func (h *JobHandler) CreateCategory(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	var input domain.CreateJobCategoryInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.Name == "" {
		return middleware.BadRequest("Category name is required")
	}

	category, err := h.jobService.CreateCategory(c.Context(), userID, input)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateCategory) {
			return middleware.Conflict("Category already exists")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(category)
}

func (h *JobHandler) ListCategories(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	categories, err := h.jobService.ListCategories(c.Context(), userID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"categories": categories,
	})
}

func (h *JobHandler) DeleteCategory(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	categoryID, err := uuid.Parse(c.Params("categoryId"))
	if err != nil {
		return middleware.BadRequest("Invalid category ID")
	}

	if err := h.jobService.DeleteCategory(c.Context(), categoryID, userID); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}
