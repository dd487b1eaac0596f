package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"arakkha-job-connect/internal/domain"
	"arakkha-job-connect/internal/middleware"
	"arakkha-job-connect/internal/service/legal"
)

type LegalHandler struct {
	legalService legal.Service
}

func NewLegalHandler(legalService legal.Service) *LegalHandler {
	return &LegalHandler{legalService: legalService}
}

func (h *LegalHandler) GetPage(c *fiber.Ctx) error {
	slug := c.Params("slug")

	content, err := h.legalService.GetPage(c.Context(), slug)
	if err != nil {
		switch {
		case errors.Is(err, legal.ErrUnknownSlug):
			return middleware.NotFound("Unknown page")
		case errors.Is(err, legal.ErrPageNotFound):
			return middleware.NotFound("Page content has not been published yet")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(content)
}

func (h *LegalHandler) UpsertPage(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var input domain.UpsertLegalContentInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.Title == "" || input.Content == "" {
		return middleware.BadRequest("Title and content are required")
	}

	content, err := h.legalService.UpsertPage(c.Context(), slug, input)
	if err != nil {
		if errors.Is(err, legal.ErrUnknownSlug) {
			return middleware.NotFound("Unknown page")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(content)
}
