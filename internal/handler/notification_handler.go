package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"zentproje-backend/internal/domain"
	"zentproje-backend/internal/middleware"
	"zentproje-backend/internal/service/notification"
)

type NotificationHandler struct {
	notificationService notification.Service
}

func NewNotificationHandler(notificationService notification.Service) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func (h *NotificationHandler) Feed(c *fiber.Ctx) error {
	params := getPaginationParams(c)

	feed, err := h.notificationService.Feed(c.Context(), middleware.GetAdminSubject(c), params)
	if err != nil {
		return err
	}
	return c.JSON(feed)
}

func (h *NotificationHandler) MarkAsRead(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid notification ID")
	}

	if err := h.notificationService.MarkAsRead(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotificationNotFound) {
			return middleware.NotFound("Notification not found")
		}
		return err
	}
	return c.JSON(fiber.Map{"message": "Marked as read"})
}

func (h *NotificationHandler) MarkAllAsRead(c *fiber.Ctx) error {
	if err := h.notificationService.MarkAllAsRead(c.Context()); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "All notifications marked as read"})
}

func (h *NotificationHandler) UnreadCount(c *fiber.Ctx) error {
	count, err := h.notificationService.UnreadCount(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"unread_count": count})
}
