package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"zentproje-backend/internal/domain"
	"zentproje-backend/internal/middleware"
	"zentproje-backend/internal/service/blog"
)

type BlogHandler struct {
	blogService blog.Service
}

func NewBlogHandler(blogService blog.Service) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

func (h *BlogHandler) ListPublic(c *fiber.Ctx) error {
	params := getPaginationParams(c)

	resp, err := h.blogService.List(c.Context(), true, params)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

func (h *BlogHandler) GetBySlug(c *fiber.Ctx) error {
	post, err := h.blogService.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return middleware.NotFound("Post not found")
		}
		return err
	}
	return c.JSON(post)
}

func (h *BlogHandler) ListAll(c *fiber.Ctx) error {
	params := getPaginationParams(c)

	resp, err := h.blogService.List(c.Context(), false, params)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

func (h *BlogHandler) Create(c *fiber.Ctx) error {
	var input domain.CreatePostInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.Title == "" || input.Slug == "" || input.Content == "" {
		return middleware.UnprocessableEntity("Title, slug and content are required")
	}

	post, err := h.blogService.Create(c.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrSlugExists) {
			return middleware.Conflict("Slug already in use")
		}
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

func (h *BlogHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid post ID")
	}

	var input domain.UpdatePostInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	post, err := h.blogService.Update(c.Context(), id, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPostNotFound):
			return middleware.NotFound("Post not found")
		case errors.Is(err, domain.ErrSlugExists):
			return middleware.Conflict("Slug already in use")
		}
		return err
	}
	return c.JSON(post)
}

func (h *BlogHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid post ID")
	}

	if err := h.blogService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return middleware.NotFound("Post not found")
		}
		return err
	}
	return c.JSON(fiber.Map{"message": "Post deleted"})
}
