package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"zentproje-backend/internal/domain"
	"zentproje-backend/internal/middleware"
	"zentproje-backend/internal/service/project"
)

type ProjectHandler struct {
	projectService project.Service
}

func NewProjectHandler(projectService project.Service) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func (h *ProjectHandler) List(c *fiber.Ctx) error {
	featuredOnly := c.QueryBool("featured", false)

	list, err := h.projectService.List(c.Context(), featuredOnly)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"projects": list})
}

func (h *ProjectHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid project ID")
	}

	proj, err := h.projectService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			return middleware.NotFound("Project not found")
		}
		return err
	}
	return c.JSON(proj)
}

func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateProjectInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.Title == "" || input.Description == "" {
		return middleware.UnprocessableEntity("Title and description are required")
	}
	if input.Progress < 0 || input.Progress > 100 {
		return middleware.UnprocessableEntity("Progress must be between 0 and 100")
	}

	proj, err := h.projectService.Create(c.Context(), input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(proj)
}

func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid project ID")
	}

	var input domain.UpdateProjectInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.Progress != nil && (*input.Progress < 0 || *input.Progress > 100) {
		return middleware.UnprocessableEntity("Progress must be between 0 and 100")
	}

	proj, err := h.projectService.Update(c.Context(), id, input)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			return middleware.NotFound("Project not found")
		}
		return err
	}
	return c.JSON(proj)
}

func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid project ID")
	}

	if err := h.projectService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			return middleware.NotFound("Project not found")
		}
		return err
	}
	return c.JSON(fiber.Map{"message": "Project deleted"})
}
