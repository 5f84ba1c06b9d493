package handler

import (
	"errors"

	"go-warehouse-stock/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AlertHandler struct {
	service service.AlertService
}

func NewAlertHandler(s service.AlertService) *AlertHandler {
	return &AlertHandler{service: s}
}

func (h *AlertHandler) GetAlerts(c *fiber.Ctx) error {
	alerts, err := h.service.ListAlerts()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(alerts)
}

// AssignRequest names the user taking ownership of the alert
type AssignRequest struct {
	UserID uint `json:"user_id"`
}

// AssignAlert hands the alert to a user
// PUT /api/v1/alerts/:id/assign
func (h *AlertHandler) AssignAlert(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid alert ID"})
	}

	var req AssignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	alert, err := h.service.AssignAlert(id, req.UserID)
	if err != nil {
		if errors.Is(err, service.ErrAlertNotFound) || errors.Is(err, service.ErrUserNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Alert assigned", "data": alert})
}

// ResolveAlert closes the alert
// PUT /api/v1/alerts/:id/resolve
func (h *AlertHandler) ResolveAlert(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid alert ID"})
	}

	alert, err := h.service.ResolveAlert(id)
	if err != nil {
		if errors.Is(err, service.ErrAlertNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Alert resolved", "data": alert})
}
