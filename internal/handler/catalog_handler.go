package handler

import (
	"github.com/gofiber/fiber/v2"

	"zentproje-backend/internal/catalog"
)

// CatalogHandler serves the embedded add-on and design template catalog so
// clients never hard-code prices.
type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

func (h *CatalogHandler) Get(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"addons":    catalog.Addons(),
		"templates": catalog.Templates(),
	})
}
