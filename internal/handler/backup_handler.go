package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"zentproje-backend/internal/domain"
	"zentproje-backend/internal/middleware"
	"zentproje-backend/internal/service/backup"
)

type BackupHandler struct {
	backupService backup.Service
}

func NewBackupHandler(backupService backup.Service) *BackupHandler {
	return &BackupHandler{backupService: backupService}
}

func (h *BackupHandler) Create(c *fiber.Ctx) error {
	file, err := h.backupService.Create(c.Context())
	if err != nil {
		if errors.Is(err, domain.ErrBackupInProgress) {
			return middleware.Conflict("Another backup or restore is running")
		}
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(file)
}

func (h *BackupHandler) List(c *fiber.Ctx) error {
	backups, err := h.backupService.List()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"backups": backups})
}

func (h *BackupHandler) Download(c *fiber.Ctx) error {
	name := c.Params("filename")

	data, err := h.backupService.Read(name)
	if err != nil {
		if errors.Is(err, domain.ErrBackupNotFound) {
			return middleware.NotFound("Backup file not found")
		}
		return err
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Send(data)
}

// Restore takes an optional filename and defaults to the newest snapshot.
func (h *BackupHandler) Restore(c *fiber.Ctx) error {
	var input struct {
		Filename string `json:"filename"`
	}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return middleware.BadRequest("Invalid request body")
		}
	}

	name := input.Filename
	if name == "" {
		backups, err := h.backupService.List()
		if err != nil {
			return err
		}
		if len(backups) == 0 {
			return middleware.NotFound("No backup files available")
		}
		name = backups[0].Name
	}

	if err := h.backupService.Restore(c.Context(), name); err != nil {
		switch {
		case errors.Is(err, domain.ErrBackupNotFound):
			return middleware.NotFound("Backup file not found")
		case errors.Is(err, domain.ErrInvalidBackup):
			return middleware.UnprocessableEntity(err.Error())
		case errors.Is(err, domain.ErrBackupInProgress):
			return middleware.Conflict("Another backup or restore is running")
		}
		return err
	}

	return c.JSON(fiber.Map{"message": "Database restored", "filename": name})
}

func (h *BackupHandler) Delete(c *fiber.Ctx) error {
	if err := h.backupService.Delete(c.Params("filename")); err != nil {
		if errors.Is(err, domain.ErrBackupNotFound) {
			return middleware.NotFound("Backup file not found")
		}
		return err
	}
	return c.JSON(fiber.Map{"message": "Backup deleted"})
}
