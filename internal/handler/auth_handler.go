package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"zentproje-backend/internal/config"
	"zentproje-backend/internal/domain"
	"zentproje-backend/internal/middleware"
	"zentproje-backend/internal/service/auth"
)

type AuthHandler struct {
	authService auth.Service
	cfg         *config.Config
}

func NewAuthHandler(authService auth.Service, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg}
}

func (h *AuthHandler) sessionCookie(name, token string) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     name,
		Value:    token,
		Expires:  time.Now().Add(h.cfg.SessionExpiry),
		HTTPOnly: true,
		Secure:   h.cfg.Environment == "production",
		SameSite: "Lax",
		Path:     "/",
	}
}

func clearCookie(name string) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     name,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Path:     "/",
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input domain.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.Name == "" || input.Email == "" || len(input.Password) < 8 {
		return middleware.UnprocessableEntity("Name, email and a password of at least 8 characters are required")
	}

	user, token, err := h.authService.Register(c.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrEmailExists) {
			return middleware.Conflict("Email already registered")
		}
		return err
	}

	c.Cookie(h.sessionCookie(middleware.UserCookieName, token))

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user":  user,
		"token": token,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input domain.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	user, token, err := h.authService.Login(c.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return middleware.Unauthorized("Invalid email or password")
		}
		return err
	}

	c.Cookie(h.sessionCookie(middleware.UserCookieName, token))

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user":  user,
		"token": token,
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(clearCookie(middleware.UserCookieName))
	return c.JSON(fiber.Map{"message": "Logged out"})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("Not authenticated")
	}
	return c.JSON(fiber.Map{"user": user})
}

func (h *AuthHandler) AdminLogin(c *fiber.Ctx) error {
	var input domain.AdminLoginInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	token, err := h.authService.AdminLogin(c.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return middleware.Unauthorized("Invalid admin password")
		}
		return err
	}

	// The back-office session replaces any user session in the browser.
	c.Cookie(clearCookie(middleware.UserCookieName))
	c.Cookie(h.sessionCookie(middleware.AdminCookieName, token))

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"token": token,
	})
}

func (h *AuthHandler) AdminLogout(c *fiber.Ctx) error {
	c.Cookie(clearCookie(middleware.AdminCookieName))
	return c.JSON(fiber.Map{"message": "Logged out"})
}

func (h *AuthHandler) AdminMe(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"subject": middleware.GetAdminSubject(c),
		"role":    domain.RoleAdmin,
	})
}
