package handler

import (
	"fmt"

	"go-warehouse-stock/internal/model"
	"go-warehouse-stock/internal/repository"
	"go-warehouse-stock/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

type ZoneHandler struct {
	zoneRepo repository.ZoneRepository
}

func NewZoneHandler(zoneRepo repository.ZoneRepository) *ZoneHandler {
	return &ZoneHandler{zoneRepo: zoneRepo}
}

// GetZones lists all storage zones
// GET /api/v1/zones
func (h *ZoneHandler) GetZones(c *fiber.Ctx) error {
	zones, err := h.zoneRepo.FindAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch zones"})
	}
	return c.JSON(zones)
}

// CreateZone adds a storage zone
// POST /api/v1/zones
func (h *ZoneHandler) CreateZone(c *fiber.Ctx) error {
	var zone model.Zone
	if err := c.BodyParser(&zone); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if errs := validator.ValidateStruct(&zone); len(errs) > 0 {
		firstErr := errs[0]
		return c.Status(400).JSON(fiber.Map{
			"error": fmt.Sprintf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag),
		})
	}

	if err := h.zoneRepo.Create(&zone); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create zone"})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Zone created", "data": zone})
}
