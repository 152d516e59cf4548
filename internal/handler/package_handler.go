package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"zentproje-backend/internal/domain"
	"zentproje-backend/internal/middleware"
	"zentproje-backend/internal/service/packages"
)

type PackageHandler struct {
	packageService packages.Service
}

func NewPackageHandler(packageService packages.Service) *PackageHandler {
	return &PackageHandler{packageService: packageService}
}

func (h *PackageHandler) ListPublic(c *fiber.Ctx) error {
	list, err := h.packageService.ListActive(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"packages": list})
}

func (h *PackageHandler) ListAll(c *fiber.Ctx) error {
	list, err := h.packageService.ListAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"packages": list})
}

func (h *PackageHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid package ID")
	}

	pkg, err := h.packageService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrPackageNotFound) {
			return middleware.NotFound("Package not found")
		}
		return err
	}
	return c.JSON(pkg)
}

func (h *PackageHandler) Create(c *fiber.Ctx) error {
	var input domain.CreatePackageInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.Name == "" || input.Description == "" {
		return middleware.UnprocessableEntity("Name and description are required")
	}
	if input.Price < 0 {
		return middleware.UnprocessableEntity("Price must not be negative")
	}

	pkg, err := h.packageService.Create(c.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownAddon) {
			return middleware.UnprocessableEntity(err.Error())
		}
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(pkg)
}

func (h *PackageHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid package ID")
	}

	var input domain.UpdatePackageInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	pkg, err := h.packageService.Update(c.Context(), id, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPackageNotFound):
			return middleware.NotFound("Package not found")
		case errors.Is(err, domain.ErrUnknownAddon):
			return middleware.UnprocessableEntity(err.Error())
		}
		return err
	}
	return c.JSON(pkg)
}

func (h *PackageHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid package ID")
	}

	if err := h.packageService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrPackageNotFound) {
			return middleware.NotFound("Package not found")
		}
		return err
	}
	return c.JSON(fiber.Map{"message": "Package deleted"})
}
