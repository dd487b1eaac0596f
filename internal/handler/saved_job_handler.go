package handler

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"arakkha-job-connect/internal/middleware"
	"arakkha-job-connect/internal/repository"
	"arakkha-job-connect/internal/service/savedjob"
)

type SavedJobHandler struct {
	savedJobService savedjob.Service
}

func NewSavedJobHandler(savedJobService savedjob.Service) *SavedJobHandler {
	return &SavedJobHandler{savedJobService: savedJobService}
}

func (h *SavedJobHandler) Save(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	jobID, err := uuid.Parse(c.Params("jobId"))
	if err != nil {
		return middleware.BadRequest("Invalid job ID")
	}

	saved, err := h.savedJobService.Save(c.Context(), userID, jobID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrJobAlreadySaved):
			return middleware.BadRequest("You have already saved this job")
		case errors.Is(err, repository.ErrJobNotFound):
			return middleware.NotFound("This job does not exist")
		case errors.Is(err, savedjob.ErrProfileRequired):
			return middleware.NotFound("You have to create a profile before saving jobs")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Job '%s' has been saved successfully.", saved.JobTitle),
		"data":    saved,
	})
}

func (h *SavedJobHandler) Unsave(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	jobID, err := uuid.Parse(c.Params("jobId"))
	if err != nil {
		return middleware.BadRequest("Invalid job ID")
	}

	if err := h.savedJobService.Unsave(c.Context(), userID, jobID); err != nil {
		switch {
		case errors.Is(err, repository.ErrSavedJobNotFound):
			return middleware.NotFound("This job is not saved")
		case errors.Is(err, savedjob.ErrProfileRequired):
			return middleware.NotFound("Jobseeker profile not found")
		}
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}

func (h *SavedJobHandler) IsSaved(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	jobID, err := uuid.Parse(c.Params("jobId"))
	if err != nil {
		return middleware.BadRequest("Invalid job ID")
	}

	saved, err := h.savedJobService.IsSaved(c.Context(), userID, jobID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"saved": saved})
}

func (h *SavedJobHandler) List(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)
	params := getPaginationParams(c)

	result, err := h.savedJobService.List(c.Context(), userID, params)
	if err != nil {
		if errors.Is(err, savedjob.ErrProfileRequired) {
			return middleware.NotFound("Jobseeker profile not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
