package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"arakkha-job-connect/internal/middleware"
	"arakkha-job-connect/internal/repository"
	"arakkha-job-connect/internal/service/notification"
)

type NotificationHandler struct {
	notifService notification.Service
}

func NewNotificationHandler(notifService notification.Service) *NotificationHandler {
	return &NotificationHandler{notifService: notifService}
}

func (h *NotificationHandler) List(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	unreadOnly := c.Query("unread_only") == "true"
	params := getPaginationParams(c)

	result, err := h.notifService.List(c.Context(), userID, unreadOnly, params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *NotificationHandler) Counts(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	counts, err := h.notifService.Counts(c.Context(), userID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(counts)
}

func (h *NotificationHandler) Get(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	notifID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid notification ID")
	}

	notif, err := h.notifService.GetByID(c.Context(), notifID, userID)
	if err != nil {
		return err
	}
	if notif == nil {
		return middleware.NotFound("Notification not found")
	}

	return c.Status(fiber.StatusOK).JSON(notif)
}

func (h *NotificationHandler) MarkAsRead(c *fiber.Ctx) error {
	return h.setRead(c, true)
}

func (h *NotificationHandler) MarkAsUnread(c *fiber.Ctx) error {
	return h.setRead(c, false)
}

func (h *NotificationHandler) setRead(c *fiber.Ctx, read bool) error {
	userID := middleware.GetCurrentUserID(c)

	notifID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid notification ID")
	}

	var svcErr error
	if read {
		svcErr = h.notifService.MarkAsRead(c.Context(), notifID, userID)
	} else {
		svcErr = h.notifService.MarkAsUnread(c.Context(), notifID, userID)
	}
	if svcErr != nil {
		if errors.Is(svcErr, repository.ErrNotificationNotFound) {
			return middleware.NotFound("Notification not found")
		}
		return svcErr
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}

func (h *NotificationHandler) MarkAllAsRead(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	if err := h.notifService.MarkAllAsRead(c.Context(), userID); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}

func (h *NotificationHandler) Delete(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	notifID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid notification ID")
	}

	message, err := h.notifService.Delete(c.Context(), notifID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return middleware.NotFound("Notification not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Notification deleted",
		"deleted": message,
	})
}

func (h *NotificationHandler) DeleteByReadState(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	filter := c.Query("filter", "read")
	if filter != "read" && filter != "unread" && filter != "all" {
		return middleware.BadRequest("Filter must be one of: read, unread, all")
	}

	deleted, err := h.notifService.DeleteByReadState(c.Context(), userID, filter)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"deleted": deleted,
	})
}
