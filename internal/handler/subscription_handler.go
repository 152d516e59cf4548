package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"zentproje-backend/internal/domain"
	"zentproje-backend/internal/middleware"
	"zentproje-backend/internal/service/subscription"
)

type SubscriptionHandler struct {
	subscriptionService subscription.Service
}

func NewSubscriptionHandler(subscriptionService subscription.Service) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

func (h *SubscriptionHandler) Subscribe(c *fiber.Ctx) error {
	var input domain.SubscribeInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if !strings.Contains(input.Email, "@") {
		return middleware.UnprocessableEntity("A valid email is required")
	}

	sub, err := h.subscriptionService.Subscribe(c.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadySubscribed) {
			return middleware.Conflict("Email already subscribed")
		}
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(sub)
}

func (h *SubscriptionHandler) Unsubscribe(c *fiber.Ctx) error {
	var input domain.SubscribeInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if err := h.subscriptionService.Unsubscribe(c.Context(), input.Email); err != nil {
		if errors.Is(err, domain.ErrSubscriptionNotFound) {
			return middleware.NotFound("Subscription not found")
		}
		return err
	}
	return c.JSON(fiber.Map{"message": "Unsubscribed"})
}

func (h *SubscriptionHandler) List(c *fiber.Ctx) error {
	params := getPaginationParams(c)

	resp, err := h.subscriptionService.List(c.Context(), params)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

func (h *SubscriptionHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid subscription ID")
	}

	if err := h.subscriptionService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrSubscriptionNotFound) {
			return middleware.NotFound("Subscription not found")
		}
		return err
	}
	return c.JSON(fiber.Map{"message": "Subscription deleted"})
}
