package handler

import (
	"errors"

	"go-warehouse-stock/internal/model"
	"go-warehouse-stock/internal/service"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	service service.OrderService
}

func NewOrderHandler(s service.OrderService) *OrderHandler {
	return &OrderHandler{service: s}
}

// Helper to pull the authenticated user id set by RequireAuth
func getUserID(c *fiber.Ctx) uint {
	if id, ok := c.Locals("user_id").(uint); ok {
		return id
	}
	return 0
}

func (h *OrderHandler) GetOrders(c *fiber.Ctx) error {
	orders, err := h.service.ListOrders()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(orders)
}

func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var order model.Order
	if err := c.BodyParser(&order); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateOrder(&order, getUserID(c)); err != nil {
		if errors.Is(err, service.ErrProductNotFound) || errors.Is(err, service.ErrUserNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Order created", "data": order})
}

// MarkDelivered transitions a pending order to delivered
// PUT /api/v1/orders/:id/deliver
func (h *OrderHandler) MarkDelivered(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	order, err := h.service.MarkDelivered(id)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Order delivered", "data": order})
}

// MarkReturned transitions a delivered order to returned
// PUT /api/v1/orders/:id/return
func (h *OrderHandler) MarkReturned(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	order, err := h.service.MarkReturned(id)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Order returned", "data": order})
}

func (h *OrderHandler) GetPredictions(c *fiber.Ctx) error {
	predictions, err := h.service.ListPredictions()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(predictions)
}

func (h *OrderHandler) CreatePrediction(c *fiber.Ctx) error {
	var prediction model.OrderPrediction
	if err := c.BodyParser(&prediction); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreatePrediction(&prediction); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Prediction created", "data": prediction})
}

// GenerateOrder creates a replenishment order from a prediction
// POST /api/v1/predictions/:id/orders
func (h *OrderHandler) GenerateOrder(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid prediction ID"})
	}

	order, err := h.service.GenerateOrder(id, getUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrPredictionNotFound) || errors.Is(err, service.ErrUserNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Order generated from prediction", "data": order})
}
