package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"zentproje-backend/internal/domain"
	"zentproje-backend/internal/middleware"
	"zentproje-backend/internal/service/contact"
)

type ContactHandler struct {
	contactService contact.Service
}

func NewContactHandler(contactService contact.Service) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

func (h *ContactHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateContactInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.Name == "" || input.Message == "" {
		return middleware.UnprocessableEntity("Name and message are required")
	}
	if !strings.Contains(input.Email, "@") {
		return middleware.UnprocessableEntity("A valid email is required")
	}

	created, err := h.contactService.Create(c.Context(), input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *ContactHandler) List(c *fiber.Ctx) error {
	params := getPaginationParams(c)

	resp, err := h.contactService.List(c.Context(), params)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

func (h *ContactHandler) MarkAsRead(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid contact ID")
	}

	if err := h.contactService.MarkAsRead(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrContactNotFound) {
			return middleware.NotFound("Contact message not found")
		}
		return err
	}
	return c.JSON(fiber.Map{"message": "Marked as read"})
}

func (h *ContactHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid contact ID")
	}

	if err := h.contactService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrContactNotFound) {
			return middleware.NotFound("Contact message not found")
		}
		return err
	}
	return c.JSON(fiber.Map{"message": "Contact message deleted"})
}
