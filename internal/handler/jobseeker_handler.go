package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"arakkha-job-connect/internal/domain"
	"arakkha-job-connect/internal/middleware"
	"arakkha-job-connect/internal/repository"
	"arakkha-job-connect/internal/service/jobseeker"
)

type JobseekerHandler struct {
	jobseekerService jobseeker.Service
}

func NewJobseekerHandler(jobseekerService jobseeker.Service) *JobseekerHandler {
	return &JobseekerHandler{jobseekerService: jobseekerService}
}

func (h *JobseekerHandler) CreateProfile(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	var input domain.UpsertJobseekerProfileInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.FullName == "" {
		return middleware.BadRequest("Full name is required")
	}

	profile, err := h.jobseekerService.CreateProfile(c.Context(), userID, input)
	if err != nil {
		if errors.Is(err, jobseeker.ErrProfileExists) {
			return middleware.Conflict("Profile already exists")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(profile)
}

func (h *JobseekerHandler) GetProfile(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	profile, err := h.jobseekerService.GetProfile(c.Context(), userID)
	if err != nil {
		if errors.Is(err, jobseeker.ErrProfileRequired) {
			return middleware.NotFound("Profile not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(profile)
}

func (h *JobseekerHandler) UpdateProfile(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	var input domain.UpsertJobseekerProfileInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	profile, err := h.jobseekerService.UpdateProfile(c.Context(), userID, input)
	if err != nil {
		if errors.Is(err, jobseeker.ErrProfileRequired) {
			return middleware.NotFound("Profile not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(profile)
}

func (h *JobseekerHandler) UploadResume(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.BadRequest("Resume file is required")
	}

	title := c.FormValue("title", fileHeader.Filename)

	file, err := fileHeader.Open()
	if err != nil {
		return middleware.BadRequest("Could not read uploaded file")
	}
	defer file.Close()

	mimeType := fileHeader.Header.Get("Content-Type")

	resume, err := h.jobseekerService.UploadResume(c.Context(), userID, title, fileHeader.Filename, fileHeader.Size, mimeType, file)
	if err != nil {
		switch {
		case errors.Is(err, jobseeker.ErrProfileRequired):
			return middleware.NotFound("Profile not found")
		case errors.Is(err, jobseeker.ErrFileTooLarge):
			return middleware.BadRequest("Resume file exceeds the 5 MB limit")
		case errors.Is(err, jobseeker.ErrBadMimeType):
			return middleware.BadRequest("Resume must be a PDF or Word document")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resume)
}

func (h *JobseekerHandler) ListResumes(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	resumes, err := h.jobseekerService.ListResumes(c.Context(), userID)
	if err != nil {
		if errors.Is(err, jobseeker.ErrProfileRequired) {
			return middleware.NotFound("Profile not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"resumes": resumes,
	})
}

func (h *JobseekerHandler) DeleteResume(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	resumeID, err := uuid.Parse(c.Params("resumeId"))
	if err != nil {
		return middleware.BadRequest("Invalid resume ID")
	}

	if err := h.jobseekerService.DeleteResume(c.Context(), userID, resumeID); err != nil {
		switch {
		case errors.Is(err, jobseeker.ErrProfileRequired):
			return middleware.NotFound("Profile not found")
		case errors.Is(err, repository.ErrResumeNotFound):
			return middleware.NotFound("Resume not found")
		}
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}
