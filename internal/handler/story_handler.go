package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"zentproje-backend/internal/domain"
	"zentproje-backend/internal/middleware"
	"zentproje-backend/internal/service/story"
)

type StoryHandler struct {
	storyService story.Service
}

func NewStoryHandler(storyService story.Service) *StoryHandler {
	return &StoryHandler{storyService: storyService}
}

func (h *StoryHandler) ListPublic(c *fiber.Ctx) error {
	list, err := h.storyService.ListActive(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"stories": list})
}

func (h *StoryHandler) ListAll(c *fiber.Ctx) error {
	list, err := h.storyService.ListAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"stories": list})
}

func (h *StoryHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateStoryInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.Title == "" || input.Image == "" {
		return middleware.UnprocessableEntity("Title and image are required")
	}

	s, err := h.storyService.Create(c.Context(), input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(s)
}

func (h *StoryHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid story ID")
	}

	var input domain.UpdateStoryInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	s, err := h.storyService.Update(c.Context(), id, input)
	if err != nil {
		if errors.Is(err, domain.ErrStoryNotFound) {
			return middleware.NotFound("Story not found")
		}
		return err
	}
	return c.JSON(s)
}

func (h *StoryHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid story ID")
	}

	if err := h.storyService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrStoryNotFound) {
			return middleware.NotFound("Story not found")
		}
		return err
	}
	return c.JSON(fiber.Map{"message": "Story deleted"})
}
