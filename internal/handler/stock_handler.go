package handler

import (
	"errors"

	"go-warehouse-stock/internal/service"

	"github.com/gofiber/fiber/v2"
)

type StockHandler struct {
	service service.StockService
}

func NewStockHandler(s service.StockService) *StockHandler {
	return &StockHandler{service: s}
}

// UpsertRequest sets the absolute quantity for one (product, zone) pair
type UpsertRequest struct {
	ProductID uint `json:"product_id"`
	ZoneID    uint `json:"zone_id"`
	Quantity  int  `json:"quantity"`
}

// UpsertInventory creates or overwrites the ledger row for the pair
// POST /api/v1/inventory
func (h *StockHandler) UpsertInventory(c *fiber.Ctx) error {
	var req UpsertRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if req.ProductID == 0 || req.ZoneID == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "product_id and zone_id are required"})
	}

	result, err := h.service.Upsert(req.ProductID, req.ZoneID, req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) || errors.Is(err, service.ErrZoneNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	if result.Created {
		return c.Status(201).JSON(fiber.Map{"message": "Inventory created", "data": result})
	}
	return c.JSON(fiber.Map{"message": "Inventory updated", "data": result})
}

// GetInventory lists the full ledger joined with product and zone names
// GET /api/v1/inventory
func (h *StockHandler) GetInventory(c *fiber.Ctx) error {
	records, err := h.service.List()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(records)
}
