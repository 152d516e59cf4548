package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"zentproje-backend/internal/domain"
	"zentproje-backend/internal/middleware"
	"zentproje-backend/internal/service/order"
)

type OrderHandler struct {
	orderService order.Service
}

func NewOrderHandler(orderService order.Service) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) Create(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)
	if userID == uuid.Nil {
		return middleware.Unauthorized("Not authenticated")
	}

	var input domain.CreateOrderInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.PackageID == uuid.Nil || input.SiteName == "" || input.Domain == "" || input.Description == "" {
		return middleware.UnprocessableEntity("Package, site name, domain and description are required")
	}

	created, err := h.orderService.Create(c.Context(), userID, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPackageNotFound):
			return middleware.NotFound("Package not found")
		case errors.Is(err, domain.ErrPackageInactive):
			return middleware.UnprocessableEntity("Package is not open for orders")
		case errors.Is(err, domain.ErrUnknownAddon),
			errors.Is(err, domain.ErrUnknownTemplate),
			errors.Is(err, domain.ErrTotalMismatch):
			return middleware.UnprocessableEntity(err.Error())
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *OrderHandler) ListMine(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)
	if userID == uuid.Nil {
		return middleware.Unauthorized("Not authenticated")
	}

	orders, err := h.orderService.ListByUser(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"orders": orders})
}

func (h *OrderHandler) List(c *fiber.Ctx) error {
	params := getPaginationParams(c)

	resp, err := h.orderService.List(c.Context(), params)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

func (h *OrderHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid order ID")
	}

	o, err := h.orderService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return middleware.NotFound("Order not found")
		}
		return err
	}
	return c.JSON(o)
}

func (h *OrderHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid order ID")
	}

	var input domain.UpdateOrderInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	o, err := h.orderService.Update(c.Context(), id, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOrderNotFound):
			return middleware.NotFound("Order not found")
		case errors.Is(err, domain.ErrInvalidTransition):
			return middleware.Conflict(err.Error())
		}
		return err
	}
	return c.JSON(o)
}

func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid order ID")
	}

	if err := h.orderService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return middleware.NotFound("Order not found")
		}
		return err
	}
	return c.JSON(fiber.Map{"message": "Order deleted"})
}
