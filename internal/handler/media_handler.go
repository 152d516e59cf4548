package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"zentproje-backend/internal/domain"
	"zentproje-backend/internal/middleware"
	"zentproje-backend/internal/service/media"
)

type MediaHandler struct {
	mediaService media.Service
}

func NewMediaHandler(mediaService media.Service) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

func (h *MediaHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.BadRequest("Missing file")
	}

	folder := c.FormValue("folder", "uploads")

	file, err := fileHeader.Open()
	if err != nil {
		return middleware.BadRequest("Unable to read file")
	}
	defer file.Close()

	url, err := h.mediaService.Upload(
		c.Context(),
		folder,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		file,
	)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnsupportedFileType):
			return middleware.UnprocessableEntity("Only JPEG, PNG and WebP images are allowed")
		case errors.Is(err, domain.ErrFileTooLarge):
			return middleware.NewError(fiber.StatusRequestEntityTooLarge, "File exceeds the 5MB limit")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"url": url})
}
