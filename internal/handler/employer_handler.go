package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"arakkha-job-connect/internal/domain"
	"arakkha-job-connect/internal/middleware"
	"arakkha-job-connect/internal/service/employer"
)

type EmployerHandler struct {
	employerService employer.Service
}

func NewEmployerHandler(employerService employer.Service) *EmployerHandler {
	return &EmployerHandler{employerService: employerService}
}

func (h *EmployerHandler) CreateProfile(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	var input domain.UpsertEmployerProfileInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.BusinessName == "" {
		return middleware.BadRequest("Business name is required")
	}

	profile, err := h.employerService.CreateProfile(c.Context(), userID, input)
	if err != nil {
		if errors.Is(err, employer.ErrProfileExists) {
			return middleware.Conflict("Profile already exists")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(profile)
}

func (h *EmployerHandler) GetProfile(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	profile, err := h.employerService.GetProfile(c.Context(), userID)
	if err != nil {
		if errors.Is(err, employer.ErrProfileRequired) {
			return middleware.NotFound("Profile not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(profile)
}

func (h *EmployerHandler) GetPublicProfile(c *fiber.Ctx) error {
	employerID, err := uuid.Parse(c.Params("employerId"))
	if err != nil {
		return middleware.BadRequest("Invalid employer ID")
	}

	profile, err := h.employerService.GetProfileByID(c.Context(), employerID)
	if err != nil {
		if errors.Is(err, employer.ErrProfileRequired) {
			return middleware.NotFound("Employer not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(profile)
}

func (h *EmployerHandler) UpdateProfile(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	var input domain.UpsertEmployerProfileInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	profile, err := h.employerService.UpdateProfile(c.Context(), userID, input)
	if err != nil {
		if errors.Is(err, employer.ErrProfileRequired) {
			return middleware.NotFound("Profile not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(profile)
}

func (h *EmployerHandler) List(c *fiber.Ctx) error {
	params := getPaginationParams(c)

	result, err := h.employerService.ListAll(c.Context(), params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *EmployerHandler) Dashboard(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	dashboard, err := h.employerService.GetDashboard(c.Context(), userID)
	if err != nil {
		if errors.Is(err, employer.ErrProfileRequired) {
			return middleware.NotFound("Employer profile not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(dashboard)
}
